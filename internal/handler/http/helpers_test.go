package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler returns a Handler without services that logs to buf.
func newTestHandler(buf *bytes.Buffer) *Handler {
	if buf == nil {
		return &Handler{logger: logger.Nop()}
	}
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// withRequestLogger puts a logger writing to buf into the request context
// the same way withTraceID does.
func withRequestLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

// decodeErrorBody asserts the ["message", "correlation id"] shape and
// returns both parts.
func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	require.Len(t, body, 2)

	_, err := uuid.Parse(body[1])
	assert.NoError(t, err, "correlation id must be a UUID, got %q", body[1])

	return body[0], body[1]
}
