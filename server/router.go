package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ConceptN8/poker-study-tool/server/advisor"
	"github.com/ConceptN8/poker-study-tool/server/pressure"
	"github.com/ConceptN8/poker-study-tool/server/store"
	"github.com/ConceptN8/poker-study-tool/server/study"
)

// reviewRequest is the body for /api/recommend and /api/hands: the decision
// point plus the loose tournament metadata map from the OCR/lobby layer.
type reviewRequest struct {
	Hand     study.HandState   `json:"hand"`
	Metadata map[string]string `json:"metadata"`
}

type recommendResponse struct {
	Action    string  `json:"action"`
	Size      string  `json:"size"`
	Rationale string  `json:"rationale"`
	Pressure  float64 `json:"pressure"`
}

// Router wires the review API. db may be nil (recommend-only deployments);
// persistence endpoints then answer 503.
func Router(db *store.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true, "db": db != nil})
	})

	// Stateless recommendation: no I/O beyond the one-time table load.
	r.Post("/api/recommend", func(w http.ResponseWriter, req *http.Request) {
		var in reviewRequest
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		rec, err := advisor.Recommend(in.Hand, pressure.ParseMetadata(in.Metadata))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, recommendResponse{
			Action:    string(rec.Action),
			Size:      rec.Size.String(),
			Rationale: rec.Rationale,
			Pressure:  rec.Pressure,
		})
	})

	// Analyse & persist a reviewed hand.
	r.Post("/api/hands", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		var in reviewRequest
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		rec, err := advisor.Recommend(in.Hand, pressure.ParseMetadata(in.Metadata))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var metaJSON []byte
		if len(in.Metadata) > 0 {
			metaJSON, _ = json.Marshal(in.Metadata)
		}
		h := store.Hand{
			HeroHand:    in.Hand.HeroHand,
			Position:    in.Hand.Position,
			EffectiveBB: in.Hand.EffectiveBB,
			Opener:      in.Hand.Opener,
			Board:       in.Hand.Board,
			Pot:         in.Hand.Pot,
			PlayersLeft: in.Hand.PlayersLeft,
			BuyIn:       in.Hand.BuyIn,
			Pressure:    rec.Pressure,
			RecAction:   string(rec.Action),
			RecSize:     rec.Size.String(),
			Rationale:   rec.Rationale,
		}
		id, err := db.InsertHand(req.Context(), h, metaJSON)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stored, err := db.GetHand(req.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stored)
	})

	// Review log, newest first.
	r.Get("/api/hands", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		limit := 100
		if v := req.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		hands, err := db.ListHands(req.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"hands": hands})
	})

	// Full session export.
	r.Get("/api/hands/export", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		hands, err := db.ListHands(req.Context(), 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="poker_study_session.json"`)
		writeJSON(w, hands)
	})

	// Single hand, including the recorded action (the quiz reveal).
	r.Get("/api/hands/{id}", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		h, err := db.GetHand(req.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "hand not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, h)
	})

	// Record what the player actually did.
	r.Post("/api/hands/{id}/action", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var in struct {
			Action string `json:"action"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil || in.Action == "" {
			http.Error(w, "bad request: action required", http.StatusBadRequest)
			return
		}
		if err := db.RecordAction(req.Context(), id, in.Action); errors.Is(err, store.ErrNotFound) {
			http.Error(w, "hand not found", http.StatusNotFound)
			return
		} else if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	// Quiz mode: one stored hand with the recorded action withheld.
	r.Get("/api/quiz", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "database not configured", http.StatusServiceUnavailable)
			return
		}
		h, err := db.RandomHand(req.Context())
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "no hands stored yet", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		recorded := h.PlayerAction != nil
		h.PlayerAction = nil // hide until reveal
		writeJSON(w, map[string]any{"hand": h, "action_recorded": recorded})
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
