package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authTransport attaches bearer auth and a correlation ID to every outgoing
// request, and logs the round trip.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
	logger zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated.
	clone := req.Clone(req.Context())

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			clone.Header.Set("Authorization", "Bearer "+token)
		}
	}
	clone.Header.Set("Accept", "application/json")
	clone.Header.Set("X-Correlation-ID", uuid.NewString())

	start := time.Now()
	resp, err := t.next.RoundTrip(clone)
	duration := time.Since(start)

	if err != nil {
		t.logger.Error().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("duration", duration).
			Err(err).
			Msg("http request failed")
		return nil, err
	}

	t.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("http request")

	return resp, nil
}
