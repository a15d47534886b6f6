package handlers

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"runtime/debug"

	"github.com/preston-bernstein/nba-roster-service/internal/logging"
)

// Recover turns a handler panic into the JSON error body used by every other failure.
func (h *Handler) Recover(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == nethttp.ErrAbortHandler {
				panic(rec)
			}
			logging.Error(loggerFromContext(r, h.logger), "handler panic", fmt.Errorf("%v", rec),
				slog.String("stack", string(debug.Stack())),
			)
			writeError(w, r, nethttp.StatusInternalServerError, PageErrorMessage, h.logger)
		}()
		next.ServeHTTP(w, r)
	})
}
