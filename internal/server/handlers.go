package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ketchup/pkg/catalog"
)

type messageResponse struct {
	Rule         string `json:"rule"`
	Template     string `json:"template"`
	Placeholders int    `json:"placeholders"`
}

type formatResponse struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// listMessages serves the whole catalog as an ordered JSON object.
func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	s.serveAsset(w, r, s.json)
}

// script serves the catalog as the JavaScript the browser plugin loads.
func (s *Server) script(w http.ResponseWriter, r *http.Request) {
	s.serveAsset(w, r, s.js)
}

func (s *Server) getMessage(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	tmpl, ok := s.catalog.Lookup(rule)
	if !ok {
		writeError(w, r, ErrUnknownRule)
		return
	}

	s.setCacheControl(w)
	writeJSON(w, http.StatusOK, messageResponse{
		Rule:         rule,
		Template:     tmpl,
		Placeholders: catalog.Placeholders(tmpl),
	})
}

// formatMessage renders a template with the "arg" query values, in order.
// With strict=true a missing argument is a 422 instead of a literal placeholder.
func (s *Server) formatMessage(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	tmpl, ok := s.catalog.Lookup(rule)
	if !ok {
		writeError(w, r, ErrUnknownRule)
		return
	}

	query := r.URL.Query()
	strict := false
	if v := query.Get("strict"); v != "" {
		var err error
		if strict, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, ErrBadRequest.WithErr(err))
			return
		}
	}

	values := query["arg"]
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	msg := catalog.Format(tmpl, args...)
	if strict {
		if _, err := catalog.FormatStrict(tmpl, args...); err != nil {
			writeError(w, r, ErrMissingArgument.WithErr(err))
			return
		}
	}

	writeJSON(w, http.StatusOK, formatResponse{Rule: rule, Message: msg})
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, a asset) {
	h := w.Header()
	h.Set("ETag", a.etag)
	s.setCacheControl(w)

	if etagMatches(r.Header.Get("If-None-Match"), a.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", a.contentType)
	h.Set("Content-Length", strconv.Itoa(len(a.body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(a.body)
	}
}

func (s *Server) setCacheControl(w http.ResponseWriter) {
	if s.cacheMaxAge <= 0 {
		w.Header().Set("Cache-Control", "no-cache")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(s.cacheMaxAge.Seconds())))
}

// etagMatches reports whether an If-None-Match header value matches etag.
// Weak validators compare equal to their strong form.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
