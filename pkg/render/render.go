package render

import (
	"context"

	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/errors"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
	"github.com/solversa/link-grammar/pkg/render/listing"
	"github.com/solversa/link-grammar/pkg/render/nodelink"
	"github.com/solversa/link-grammar/pkg/render/postscript"
)

// Format names one output artifact kind.
type Format string

// Supported output formats.
const (
	FormatASCII     Format = "ascii"
	FormatPS        Format = "ps"
	FormatPSBody    Format = "ps-body"
	FormatLinks     Format = "links"
	FormatDisjuncts Format = "disjuncts"
	FormatSenses    Format = "senses"
	FormatDOT       Format = "dot"
	FormatSVG       Format = "svg"
)

// ParseFormat validates a format name from a flag or query parameter.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatASCII, FormatPS, FormatPSBody, FormatLinks,
		FormatDisjuncts, FormatSenses, FormatDOT, FormatSVG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", name)
}

// ContentType returns the MIME type of the format's artifact.
func (f Format) ContentType() string {
	switch f {
	case FormatPS, FormatPSBody:
		return "application/postscript"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render produces the requested artifact for one linkage. The scorer
// may be nil; the listings then use their score-free forms.
func Render(ctx context.Context, f Format, lk *linkage.Linkage, m *dict.Markers,
	opts diagram.Options, scorer corpus.Scorer) ([]byte, error) {

	switch f {
	case FormatASCII:
		l, err := diagram.Compute(lk, m, opts)
		if err != nil {
			return nil, err
		}
		return []byte(diagram.RenderASCII(l)), nil

	case FormatPS, FormatPSBody:
		l, err := diagram.Compute(lk, m, opts)
		if err != nil {
			return nil, err
		}
		mode := postscript.ModeDocument
		if f == FormatPSBody {
			mode = postscript.ModeBody
		}
		return []byte(postscript.Render(l, mode)), nil

	case FormatLinks:
		return []byte(listing.Links(lk, m, opts)), nil

	case FormatDisjuncts:
		s, err := listing.Disjuncts(ctx, lk, scorer)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil

	case FormatSenses:
		s, err := listing.Senses(ctx, lk, scorer)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil

	case FormatDOT:
		dot, err := nodelink.ToDOT(lk, m, opts)
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil

	case FormatSVG:
		dot, err := nodelink.ToDOT(lk, m, opts)
		if err != nil {
			return nil, err
		}
		return nodelink.RenderSVG(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", string(f))
}
