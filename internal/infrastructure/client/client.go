// Package client implements the outbound HTTP clients for the two
// collaborator services this core aggregates from. Calls are synchronous and
// carry no retry: any transport error or non-2xx response surfaces as
// domain.ErrCollaboratorUnavailable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pokebid/user-service/internal/api/metrics"
	"github.com/pokebid/user-service/internal/core/domain"
)

const defaultClientTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes the response body into out.
func getJSON(ctx context.Context, hc *http.Client, service, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	metrics.CollaboratorRequestDuration.WithLabelValues(service, "GET").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues(service).Inc()
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.CollaboratorErrorsTotal.WithLabelValues(service).Inc()
		return fmt.Errorf("%w: %s returned %d", domain.ErrCollaboratorUnavailable, service, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrCollaboratorUnavailable, err)
	}
	return nil
}

// postJSON issues a POST with a JSON body and discards the response body.
func postJSON(ctx context.Context, hc *http.Client, service, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := hc.Do(req)
	metrics.CollaboratorRequestDuration.WithLabelValues(service, "POST").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues(service).Inc()
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.CollaboratorErrorsTotal.WithLabelValues(service).Inc()
		return fmt.Errorf("%w: %s returned %d", domain.ErrCollaboratorUnavailable, service, resp.StatusCode)
	}
	return nil
}
