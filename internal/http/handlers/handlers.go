package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	nethttp "net/http"
	"time"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/poller"
)

// PageErrorMessage is returned when the roster page cannot be rendered.
const PageErrorMessage = "An error occurred while loading the roster"

//go:embed templates/roster.html
var templateFS embed.FS

var rosterPage = template.Must(template.ParseFS(templateFS, "templates/roster.html"))

type nowFunc func() time.Time

// RosterService is the read side the handlers need.
type RosterService interface {
	Roster(ctx context.Context) domainroster.Roster
}

// Handler wires HTTP routes to the roster service.
type Handler struct {
	svc      RosterService
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
	page     *template.Template
}

// NewHandler constructs a Handler with defaults. statusFn may be nil when no
// background refresher runs.
func NewHandler(svc RosterService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
		page:     rosterPage,
	}
}

type pageData struct {
	TeamName    string
	Season      string
	Players     []domainroster.Player
	CurrentYear int
	UpdatedAt   time.Time
}

// Page renders the roster as HTML. The template is executed into a buffer so a
// failure can still produce a clean JSON 500.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	roster := h.svc.Roster(r.Context())

	data := pageData{
		TeamName:    roster.TeamName,
		Season:      roster.Season,
		Players:     roster.Players,
		CurrentYear: h.now().Year(),
		UpdatedAt:   roster.FetchedAt,
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logging.Error(logger, "roster page render failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, PageErrorMessage, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warn(logger, "roster page write failed", "error", err)
	}
}

// Roster returns the roster as JSON.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	roster := h.svc.Roster(r.Context())
	logging.Info(loggerFromContext(r, h.logger), "served roster",
		slog.String(logging.FieldTeamID, roster.TeamID),
		slog.String(logging.FieldSeason, roster.Season),
		slog.Int(logging.FieldCount, len(roster.Players)),
	)
	writeJSON(w, nethttp.StatusOK, roster, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound is the JSON fallback for unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON fallback for known routes with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
