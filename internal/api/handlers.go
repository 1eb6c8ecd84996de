package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// defaultListLimit is used when no journal list limit is configured.
const defaultListLimit = 10

// Handler implements the API endpoints over a tracker.
type Handler struct {
	Svc              *tracker.Service
	Log              *zap.SugaredLogger
	JournalListLimit int
}

type textReq struct {
	Text string `json:"text"`
}

type errorResp struct {
	Error string `json:"error"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r, 0)
	if !ok {
		return
	}
	checkins, err := h.Svc.RecentCheckIns(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkins)
}

func (h *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var req tracker.CheckInInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "bad json"})
		return
	}

	c, streak, err := h.Svc.SubmitCheckIn(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"checkin": c, "streak": streak})
}

func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request) {
	def := h.JournalListLimit
	if def <= 0 {
		def = defaultListLimit
	}
	limit, ok := parseLimit(w, r, def)
	if !ok {
		return
	}
	entries, err := h.Svc.RecentJournal(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	var req textReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "bad json"})
		return
	}

	entry, err := h.Svc.SaveJournal(r.Context(), req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) Sentiment(w http.ResponseWriter, r *http.Request) {
	var req textReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "bad json"})
		return
	}

	res, err := h.Svc.Analyze(req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Svc.Recommendations(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	ins, err := h.Svc.Insights(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

// fail maps validation errors to 400 with their message and everything
// else to 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isValidation(err) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	h.Log.Errorw("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResp{Error: "server error"})
}

func isValidation(err error) bool {
	return errors.Is(err, tracker.ErrMoodRequired) ||
		errors.Is(err, tracker.ErrMoodOutOfRange) ||
		errors.Is(err, tracker.ErrEmptyText)
}

// parseLimit reads the optional ?limit= query parameter. It writes a 400
// and returns false when the value is not a non-negative integer.
func parseLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid limit"})
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
