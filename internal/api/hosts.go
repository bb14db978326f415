// SPDX-License-Identifier: Apache-2.0

// Package api implements the HTTP endpoints served by `wm serve`: listing
// the configured hosts and triggering wakes over the same dispatcher the
// CLI uses.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	"github.com/gorilla/mux"
)

// Server exposes the host registry over HTTP.
type Server struct {
	reg        *wol.Registry
	dispatcher *wake.Dispatcher
	log        *slog.Logger
}

// NewServer builds an API server over the given registry and dispatcher.
func NewServer(reg *wol.Registry, dispatcher *wake.Dispatcher, log *slog.Logger) *Server {
	return &Server{reg: reg, dispatcher: dispatcher, log: log}
}

// Register attaches the API routes to the router.
func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/api/hosts", s.handleListHosts).Methods(http.MethodGet)
	r.HandleFunc("/api/hosts/{name}/wake", s.handleWakeHost).Methods(http.MethodPost)
	r.HandleFunc("/api/wake", s.handleWake).Methods(http.MethodPost)
}

// hostJSON is the wire representation of a host.
type hostJSON struct {
	Name string `json:"name"`
	MAC  string `json:"mac"`
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

// wakeRequest is the body of POST /api/wake. An empty or absent name list
// means "wake every host".
type wakeRequest struct {
	Names []string `json:"names"`
}

type wakeResponse struct {
	Woken   int      `json:"woken"`
	Unknown []string `json:"unknown,omitempty"`
}

func (s *Server) handleListHosts(w http.ResponseWriter, r *http.Request) {
	hosts := s.reg.All()
	out := make([]hostJSON, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, hostJSON{Name: h.Name, MAC: h.MAC, IP: h.IP, Port: h.Port})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWakeHost(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	h, ok := s.reg.Get(name)
	if !ok {
		s.log.Warn("Unknown host requested over API", "name", name)
		writeError(w, http.StatusNotFound, "unknown host")
		return
	}

	sent, err := s.dispatcher.Wake(r.Context(), []wol.Host{h})
	if err != nil {
		s.log.Error("Wake failed", "host", h.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send magic packet")
		return
	}
	writeJSON(w, http.StatusOK, wakeResponse{Woken: sent})
}

func (s *Server) handleWake(w http.ResponseWriter, r *http.Request) {
	var req wakeRequest
	// An empty body is allowed and means "wake every host".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var targets []wol.Host
	var unknown []string
	if len(req.Names) == 0 {
		targets = s.reg.All()
	} else {
		for _, name := range req.Names {
			h, ok := s.reg.Get(name)
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			targets = append(targets, h)
		}
	}

	sent, err := s.dispatcher.Wake(r.Context(), targets)
	if err != nil && !errors.Is(err, wake.ErrNoTargets) {
		s.log.Error("Wake failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send magic packet")
		return
	}
	writeJSON(w, http.StatusOK, wakeResponse{Woken: sent, Unknown: unknown})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
