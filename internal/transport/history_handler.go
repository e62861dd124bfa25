// Package transport exposes the bid history sessions over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/history"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SessionStore interface {
		Open(txID string) (*history.Session, error)
		Get(id string) (*history.Session, error)
		Close(id string) error
	}
	LinkBuilder interface {
		TransactionURL(txID string) string
	}
)

// HistoryHandler serves bid history sessions.
type HistoryHandler struct {
	sessions SessionStore
	links    LinkBuilder
	logger   *zap.Logger
}

// NewHistoryHandler returns a HistoryHandler instance.
func NewHistoryHandler(sessions SessionStore, links LinkBuilder, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		sessions: sessions,
		links:    links,
		logger:   logger.Named("http"),
	}
}

// Register mounts the handler routes on mux.
func (h *HistoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/sessions", h.open)
	mux.HandleFunc("GET /api/v1/sessions/{id}", h.get)
	mux.HandleFunc("POST /api/v1/sessions/{id}/next", h.next)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", h.close)
	mux.HandleFunc("GET /healthz", h.health)
}

type openRequest struct {
	TxID  string `json:"tx_id"`
	Count int    `json:"count"`
}

type bidResponse struct {
	TxID      string    `json:"tx_id"`
	Amount    string    `json:"amount"`
	Value     uint64    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
}

type sessionResponse struct {
	SessionID string             `json:"session_id"`
	State     model.SessionState `json:"state"`
	Cursor    string             `json:"cursor,omitempty"`
	HasMore   bool               `json:"has_more"`
	Records   []bidResponse      `json:"records"`
	Total     int                `json:"total"`
	Error     string             `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HistoryHandler) open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Count < 0 || req.Count > history.MaxBatchSize {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count out of range"})
		return
	}

	s, err := h.sessions.Open(req.TxID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("session opened", zap.String("session", s.ID()), zap.String("tx_id", req.TxID))
	h.load(r.Context(), w, s, req.Count, http.StatusCreated)
}

func (h *HistoryHandler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	info := s.Info()
	h.writeJSON(w, http.StatusOK, h.sessionResponse(info, info.Records))
}

func (h *HistoryHandler) next(w http.ResponseWriter, r *http.Request) {
	count, err := parseCount(r.URL.Query().Get("count"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.load(r.Context(), w, s, count, http.StatusOK)
}

func (h *HistoryHandler) close(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// load runs one batch. A failed batch still answers with the bids it resolved.
func (h *HistoryHandler) load(ctx context.Context, w http.ResponseWriter, s *history.Session, count, okStatus int) {
	result, err := s.LoadNext(ctx, count)
	resp := h.sessionResponse(s.Info(), result.Records)
	if err != nil {
		h.logger.Warn("load next failed", zap.String("session", s.ID()), zap.Error(err))
		resp.Error = err.Error()
		h.writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	h.writeJSON(w, okStatus, resp)
}

func (h *HistoryHandler) sessionResponse(info history.SessionInfo, records []model.BidRecord) sessionResponse {
	bids := make([]bidResponse, 0, len(records))
	for _, rec := range records {
		bids = append(bids, bidResponse{
			TxID:      rec.TxID,
			Amount:    rec.Amount.String(),
			Value:     rec.Value,
			Timestamp: rec.Timestamp,
			Label:     rec.Label(),
			URL:       h.links.TransactionURL(rec.TxID),
		})
	}
	resp := sessionResponse{
		SessionID: info.ID,
		State:     info.State,
		Cursor:    info.Cursor.TxID(),
		HasMore:   info.HasMore,
		Records:   bids,
		Total:     len(info.Records),
	}
	if info.LastError != nil {
		resp.Error = info.LastError.Error()
	}
	return resp
}

func (h *HistoryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, history.ErrSessionNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, history.ErrEmptyTxID):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *HistoryHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 || count > history.MaxBatchSize {
		return 0, errors.New("count must be between 0 and " + strconv.Itoa(history.MaxBatchSize))
	}
	return count, nil
}
