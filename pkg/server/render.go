package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/solversa/link-grammar/pkg/cache"
	"github.com/solversa/link-grammar/pkg/errors"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

// maxBodyBytes bounds the accepted linkage document size.
const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the posted linkage JSON into the artifact named
// by the format query parameter.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := render.ParseFormat(queryDefault(r, "format", string(render.FormatASCII)))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidLinkage, err, "reading request body"))
		return
	}

	key := s.cfg.Keyer.ArtifactKey(cache.Hash(body), string(format), opts)
	if data, hit, err := s.cfg.Cache.Get(ctx, key); err == nil && hit {
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	}

	lk, err := linkage.ReadLinkage(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := render.Render(ctx, format, lk, s.cfg.Markers, opts, s.cfg.Scorer)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_ = s.cfg.Cache.Set(ctx, key, data, cache.TTLArtifact)

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(data)
}

// optionsFromQuery maps the recognized query parameters onto the
// renderer option bundle. Unknown parameters are ignored; malformed
// numeric values are rejected.
func optionsFromQuery(r *http.Request) (diagram.Options, error) {
	opts := diagram.DefaultOptions()
	q := r.URL.Query()

	boolParam := func(name string, dst *bool) {
		if v := q.Get(name); v != "" {
			*dst = v == "1" || v == "true"
		}
	}
	boolParam("show_walls", &opts.ShowWalls)
	boolParam("hide_suffix", &opts.HideSuffix)
	boolParam("word_subscripts", &opts.ShowWordSubscripts)
	boolParam("link_subscripts", &opts.ShowLinkSubscripts)
	boolParam("short", &opts.ShortDisplay)

	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidOptions, "width must be a positive integer, got %q", v)
		}
		opts.ScreenWidth = n
	}
	if v := q.Get("max_height"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidOptions, "max_height must be a positive integer, got %q", v)
		}
		opts.MaxHeight = n
	}
	return opts, nil
}

func queryDefault(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidLinkage, errors.ErrCodeInvalidMarkers,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidOptions:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeDiagramTooTall:
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: requestID(r.Context()),
	})
}
