package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// createRequest is the body of POST /api/layouts. Exactly one of Tags and
// Text must be set.
type createRequest struct {
	Tags    []tags.Tag      `json:"tags,omitempty"`
	Text    string          `json:"text,omitempty"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createLayout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	opts, err := s.options(req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ts, err := requestTags(req, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	layout, cached, err := s.runner.Layout(r.Context(), ts, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := s.store.Save(r.Context(), layout)
	if err != nil {
		s.writeError(w, err)
		return
	}
	layout, err = s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Debug("stored layout", "id", id, "tags", len(layout.Tags), "cached", cached)
	w.Header().Set("Location", "/api/layouts/"+id)
	writeJSON(w, http.StatusCreated, layout)
}

func (s *Server) listLayouts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid limit %q", v))
			return
		}
		limit = n
	}

	layouts, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layouts)
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) deleteLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderLayout renders a stored layout. Query parameters style, background,
// margin and scale override the server defaults.
func (s *Server) renderLayout(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	layout, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := s.defaults.Clone()
	opts.Formats = []string{format}
	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("background"); v != "" {
		opts.Background = v
	}
	if v := q.Get("margin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid margin %q", v))
			return
		}
		opts.Margin = n
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid scale %q", v))
			return
		}
		opts.Scale = f
	}

	artifacts, _, err := s.runner.Render(r.Context(), layout, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// options decodes raw request options onto the server defaults.
func (s *Server) options(raw json.RawMessage) (pipeline.Options, error) {
	opts := s.defaults.Clone()
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &opts); err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options")
		}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func requestTags(req createRequest, opts pipeline.Options) ([]tags.Tag, error) {
	switch {
	case len(req.Tags) > 0 && req.Text != "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "set either tags or text, not both")
	case len(req.Tags) > 0:
		for _, t := range req.Tags {
			if err := errors.ValidateWord(t.Word); err != nil {
				return nil, err
			}
			if t.Weight < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "negative weight for %q", t.Word)
			}
		}
		return req.Tags, nil
	case req.Text != "":
		return pipeline.ParseTags(strings.NewReader(req.Text), opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "request needs tags or text")
}
