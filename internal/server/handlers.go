package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mrbrightsides/mermaind/internal/embed"
)

// layoutResponse is the JSON response for /api/layout.
type layoutResponse struct {
	Src string `json:"src"`
	embed.Layout
	Visibility *embed.Visibility `json:"visibility,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	body, etag := s.page.Bytes()
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := s.page.Frame().RenderDocument(w, s.page.Title()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	frame := s.page.Frame()
	resp := layoutResponse{Src: frame.Src, Layout: frame.Layout()}

	if raw := r.URL.Query().Get("width"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "width must be a positive integer"})
			return
		}
		v := resp.Layout.VisibilityAt(width)
		resp.Visibility = &v
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
