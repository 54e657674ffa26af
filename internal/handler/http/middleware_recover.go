package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
)

// withRecover turns a panic in a downstream handler into a 500 response with
// the usual error body. http.ErrAbortHandler is re-panicked so that the
// server aborts the connection as it normally would.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			correlationID := utils.NewCorrelationID()
			logger.FromRequest(r).Error().
				Str("correlation_id", correlationID).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteError(w, msgInternalError, correlationID, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
