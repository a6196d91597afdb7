package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/raffaelramalhorosa/feedbridge/internal/feed"
	"github.com/raffaelramalhorosa/feedbridge/internal/fetcher"
	"github.com/raffaelramalhorosa/feedbridge/internal/models"
	"github.com/raffaelramalhorosa/feedbridge/internal/store"
	"github.com/raffaelramalhorosa/feedbridge/internal/syndication"
)

const defaultMaxBody = 5 << 20

// Refresher fetches one subscribed feed on demand.
type Refresher interface {
	Refresh(ctx context.Context, feedID string) (int, error)
}

// Server holds dependencies for the HTTP handlers.
type Server struct {
	store     *store.Store
	refresher Refresher
	validate  *validator.Validate
	logger    *zap.Logger
	maxBody   int64
	mux       *http.ServeMux
}

// New wires up routes and returns a ready-to-use Server. maxBody caps
// documents posted to the conversion endpoint; zero selects 5 MiB.
func New(s *store.Store, refresher Refresher, logger *zap.Logger, maxBody int64) *Server {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	srv := &Server{
		store:     s,
		refresher: refresher,
		validate:  validator.New(),
		logger:    logger,
		maxBody:   maxBody,
		mux:       http.NewServeMux(),
	}
	srv.routes()
	return srv
}

// ServeHTTP makes Server satisfy the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ---------- Routes ----------

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("GET /api/feeds", s.handleListFeeds)
	s.mux.HandleFunc("POST /api/feeds", s.handleAddFeed)
	s.mux.HandleFunc("DELETE /api/feeds/{id}", s.handleRemoveFeed)
	s.mux.HandleFunc("POST /api/feeds/{id}/refresh", s.handleRefreshFeed)

	s.mux.HandleFunc("GET /api/entries", s.handleListEntries)

	s.mux.HandleFunc("POST /api/convert", s.handleConvert)
}

// ---------- Handlers ----------

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListFeeds(w http.ResponseWriter, _ *http.Request) {
	feeds := s.store.ListFeeds()
	writeJSON(w, http.StatusOK, feeds)
}

func (s *Server) handleAddFeed(w http.ResponseWriter, r *http.Request) {
	var req models.AddFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := s.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	var format feed.Format
	if req.Format != "" {
		format, _ = feed.ParseFormat(req.Format)
	}

	sub := s.store.AddFeed(req.Name, req.URL, format)
	s.logger.Info("feed added", zap.String("id", sub.ID), zap.String("name", sub.Name))
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleRemoveFeed(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.store.RemoveFeed(id) {
		writeError(w, http.StatusNotFound, "feed not found")
		return
	}
	s.logger.Info("feed removed", zap.String("id", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "feed removed"})
}

func (s *Server) handleRefreshFeed(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	saved, err := s.refresher.Refresh(r.Context(), id)
	switch {
	case errors.Is(err, fetcher.ErrFeedNotFound):
		writeError(w, http.StatusNotFound, "feed not found")
		return
	case err != nil:
		s.logger.Warn("feed refresh failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"new_entries": saved})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	feedID := r.URL.Query().Get("feed_id")

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries := s.store.ListEntries(feedID, limit)
	writeJSON(w, http.StatusOK, entries)
}

// handleConvert reads a posted RSS or Atom document and answers with its
// entries in the unified model or re-emitted in either native shape.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req := models.ConvertRequest{
		From: strings.ToLower(r.URL.Query().Get("from")),
		To:   strings.ToLower(r.URL.Query().Get("to")),
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "from must be rss, atom or auto and to must be unified, rss or atom")
		return
	}
	if req.From == "" {
		req.From = "auto"
	}
	if req.To == "" {
		req.To = "unified"
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		writeError(w, http.StatusBadRequest, "could not read body")
		return
	}

	var native *feed.Native
	if req.From == "auto" {
		native, err = feed.ReadAuto(data)
	} else {
		format, _ := feed.ParseFormat(req.From)
		native, err = feed.Read(bytes.NewReader(data), format)
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	entries, reports := native.EntriesWithReport()
	resp := models.ConvertResponse{
		Source:  native.Format,
		Target:  req.To,
		Title:   native.Title(),
		Entries: entries,
		Reports: nonEmptyReports(reports),
	}
	if req.To != "unified" {
		target, _ := feed.ParseFormat(req.To)
		emitted, err := feed.Emit(entries, target)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Entries = emitted
	}

	s.logger.Debug("document converted",
		zap.Stringer("from", native.Format),
		zap.String("to", req.To),
		zap.Int("entries", len(entries)),
	)
	writeJSON(w, http.StatusOK, resp)
}

// ---------- Helpers ----------

// nonEmptyReports keeps the reports aligned with the entries but returns nil
// when nothing at all was dropped.
func nonEmptyReports(reports []syndication.Report) []syndication.Report {
	for _, r := range reports {
		if !r.Empty() {
			return reports
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}
