// Package dict holds the per-dictionary marker tables the renderers
// consult: boundary word display names, suppressor connectors, the
// suffix and empty-word conventions of morphology-splitting
// dictionaries, and the subscript separator.
//
// None of these strings are linguistic decisions of this codebase; they
// mirror what the dictionary that produced a linkage uses. They are a
// configuration table rather than hard-coded logic so per-language
// dictionaries can adjust them, either through the built-in presets
// ([English], [Russian]) or a TOML file (see [LoadFile]).
package dict

import (
	"strings"

	"github.com/solversa/link-grammar/pkg/errors"
)

// Markers is the marker table for one dictionary.
type Markers struct {
	// LeftWallDisplay and RightWallDisplay replace the synthetic
	// boundary tokens in every rendered output.
	LeftWallDisplay  string `toml:"left_wall_display"`
	RightWallDisplay string `toml:"right_wall_display"`

	// LeftWallSuppress and RightWallSuppress name the connectors that,
	// when they account for a boundary's only attachment, hide that
	// boundary from the diagram.
	LeftWallSuppress  string `toml:"left_wall_suppress"`
	RightWallSuppress string `toml:"right_wall_suppress"`

	// EmptyWord is the placeholder token some dictionaries link
	// variable-length splits to; it always renders as an empty string.
	EmptyWord string `toml:"empty_word"`

	// EmptyWordSuppress is the label of links leading to the empty
	// word; such links are never drawn.
	EmptyWordSuppress string `toml:"empty_word_suppress"`

	// SuffixMarker is the prefix of split-off suffix tokens ("=ing").
	SuffixMarker string `toml:"suffix_marker"`

	// SuffixLinkPrefix is the label prefix of stem-to-suffix links,
	// hidden when suffixes are fused back into their stems.
	SuffixLinkPrefix string `toml:"suffix_link_prefix"`

	// SuffixExempt lists tokens that begin with SuffixMarker for
	// unrelated reasons (equality and verb markers in some
	// dictionaries) and must not be treated as suffixes.
	SuffixExempt []string `toml:"suffix_exempt"`

	// SubscriptMarker separates a token from its disambiguation
	// subscript ("dog.n").
	SubscriptMarker string `toml:"subscript_marker"`
}

// English returns the marker table of the English dictionary.
func English() *Markers {
	return &Markers{
		LeftWallDisplay:   "LEFT-WALL",
		RightWallDisplay:  "RIGHT-WALL",
		LeftWallSuppress:  "Wd",
		RightWallSuppress: "RW",
		EmptyWord:         "=.zzz",
		EmptyWordSuppress: "ZZZ",
		SuffixMarker:      "=",
		SuffixLinkPrefix:  "LL",
		SuffixExempt:      []string{"=[!]", "=.v", "=.eq"},
		SubscriptMarker:   ".",
	}
}

// Russian returns the marker table of the Russian dictionary, which
// splits words into stem+suffix and links the parts with LL links.
// The suffix conventions are identical to English; the exempt list is
// empty because the Russian dictionary has no bare "=" entries.
func Russian() *Markers {
	m := English()
	m.SuffixExempt = nil
	return m
}

// Validate checks that the table can support rendering at all.
func (m *Markers) Validate() error {
	if m.SuffixMarker == "" {
		return errors.New(errors.ErrCodeInvalidMarkers, "suffix_marker must not be empty")
	}
	if m.SubscriptMarker == "" {
		return errors.New(errors.ErrCodeInvalidMarkers, "subscript_marker must not be empty")
	}
	if m.LeftWallDisplay == "" || m.RightWallDisplay == "" {
		return errors.New(errors.ErrCodeInvalidMarkers, "wall display names must not be empty")
	}
	return nil
}

// IsSuffix reports whether a token is a split-off suffix: it begins
// with the suffix marker, is longer than the marker alone, and is not
// one of the exempt tokens that share the marker for unrelated reasons.
func (m *Markers) IsSuffix(token string) bool {
	if !strings.HasPrefix(token, m.SuffixMarker) {
		return false
	}
	if len(token) <= len(m.SuffixMarker) {
		return false
	}
	for _, exempt := range m.SuffixExempt {
		if token == exempt {
			return false
		}
	}
	return true
}

// StripSubscript removes the trailing disambiguation subscript, if any:
// everything from the last subscript marker onward. Tokens without a
// marker are returned unchanged.
func (m *Markers) StripSubscript(token string) string {
	if i := strings.LastIndex(token, m.SubscriptMarker); i >= 0 {
		return token[:i]
	}
	return token
}

// HasSubscript reports whether the token carries a subscript marker.
func (m *Markers) HasSubscript(token string) bool {
	return strings.Contains(token, m.SubscriptMarker)
}

// SuffixBody returns the suffix token without its leading marker.
func (m *Markers) SuffixBody(token string) string {
	return strings.TrimPrefix(token, m.SuffixMarker)
}
