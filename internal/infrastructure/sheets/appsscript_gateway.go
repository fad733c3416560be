// Package sheets talks to the spreadsheet-backed web app (a Google Apps
// Script deployment) that durably stores every procurement request. The
// service itself persists nothing; this gateway is its only storage path.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"pengadaan_monitor/internal/metrics"
	"pengadaan_monitor/internal/usecase/interfaces"
)

var ErrMissingWebAppURL = errors.New("missing SHEETS_WEBAPP_URL")

// defaultTimeout bounds every outbound call. There are no retries and no
// cancellation beyond this bound; a timed-out action is reported failed and
// nothing partial is retained.
const defaultTimeout = 60 * time.Second

// APIError is an application-level failure: the backend answered 2xx with
// ok=false. Its message is surfaced to the user verbatim.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheets %s failed: %s", e.Action, e.Message)
}

// envelope is the response shape of every web app action. Older deployments
// answer list rows under "rows" instead of "data".
type envelope struct {
	OK        bool             `json:"ok"`
	Data      []map[string]any `json:"data"`
	Rows      []map[string]any `json:"rows"`
	RequestID string           `json:"request_id"`
	Error     string           `json:"error"`
}

type Gateway struct {
	webAppURL string
	key       string
	client    *http.Client
	mockMode  bool

	// mock-mode row store
	mu       sync.Mutex
	mockRows []map[string]any
	mockSeq  int
}

var _ interfaces.ISheetGateway = (*Gateway)(nil)

// NewGateway builds a gateway against an explicit web app deployment.
func NewGateway(webAppURL, key string, timeout time.Duration) (*Gateway, error) {
	if isSheetsGatewayMockEnabled() {
		log.Printf("[sheets][gateway] mock mode enabled")
		return &Gateway{mockMode: true}, nil
	}

	if strings.TrimSpace(webAppURL) == "" {
		log.Printf("[sheets][gateway] missing SHEETS_WEBAPP_URL")
		return nil, ErrMissingWebAppURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[sheets][gateway] client initialized timeout=%s", timeout)

	return &Gateway{
		webAppURL: strings.TrimSpace(webAppURL),
		key:       key,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// NewGatewayFromEnv builds a gateway from environment variables:
//   - SHEETS_WEBAPP_URL: the Apps Script deployment URL
//   - ENGINEERING_KEY: shared key sent with list/update actions
//   - SHEETS_TIMEOUT: optional duration, default 60s
//   - SHEETS_GATEWAY_MOCK: in-memory backend for local runs
func NewGatewayFromEnv() (*Gateway, error) {
	timeout := defaultTimeout
	if v := os.Getenv("SHEETS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			log.Printf("[sheets][gateway] invalid SHEETS_TIMEOUT=%q, using default", v)
		}
	}
	return NewGateway(os.Getenv("SHEETS_WEBAPP_URL"), os.Getenv("ENGINEERING_KEY"), timeout)
}

// ListRequests fetches every stored row. Rows come back raw; normalization
// is the caller's concern.
func (g *Gateway) ListRequests(ctx context.Context) ([]map[string]any, error) {
	if g.mockMode {
		return g.mockList(), nil
	}

	env, err := g.post(ctx, "list_requests", map[string]any{
		"action": "list_requests",
		"key":    g.key,
	})
	if err != nil {
		return nil, err
	}

	rows := env.Data
	if len(rows) == 0 {
		rows = env.Rows
	}
	log.Printf("[sheets][gateway] list success rows=%d", len(rows))
	return rows, nil
}

// SubmitRequest creates one request with inline attachments. The backend
// stores the files in Drive, assigns the request id, and answers with it.
func (g *Gateway) SubmitRequest(ctx context.Context, payload interfaces.SubmitPayload) (string, error) {
	if g.mockMode {
		return g.mockSubmit(payload), nil
	}

	env, err := g.post(ctx, "submit_request", map[string]any{
		"action":           "submit_request",
		"tanggal_upload":   payload.UploadDate,
		"no_spbj_kapal":    payload.ShipReference,
		"judul_permintaan": payload.Title,
		"files":            payload.Files,
	})
	if err != nil {
		return "", err
	}
	log.Printf("[sheets][gateway] submit success request_id=%s", env.RequestID)
	return env.RequestID, nil
}

// UpdateRequest patches the stage columns of one request. The patch is
// all-or-nothing; the backend also recomputes LAST_UPDATE.
func (g *Gateway) UpdateRequest(ctx context.Context, requestID string, fields map[string]string) error {
	if g.mockMode {
		return g.mockUpdate(requestID, fields)
	}

	_, err := g.post(ctx, "update_request", map[string]any{
		"action":     "update_request",
		"key":        g.key,
		"request_id": requestID,
		"fields":     fields,
	})
	if err != nil {
		return err
	}
	log.Printf("[sheets][gateway] update success request_id=%s fields=%d", requestID, len(fields))
	return nil
}

func (g *Gateway) post(ctx context.Context, action string, payload map[string]any) (*envelope, error) {
	start := time.Now()

	body, err := json.Marshal(payload)
	if err != nil {
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.webAppURL, bytes.NewReader(body))
	if err != nil {
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[sheets][gateway] %s transport error err=%v", action, err)
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[sheets][gateway] %s unexpected status=%d", action, resp.StatusCode)
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, fmt.Errorf("sheets %s: unexpected status %d", action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[sheets][gateway] %s malformed response err=%v", action, err)
		metrics.ObserveSheetsCall(action, "transport_error", time.Since(start))
		return nil, fmt.Errorf("sheets %s: malformed response: %w", action, err)
	}

	if !env.OK {
		msg := env.Error
		if msg == "" {
			msg = "unknown backend error"
		}
		log.Printf("[sheets][gateway] %s backend error=%q", action, msg)
		metrics.ObserveSheetsCall(action, "api_error", time.Since(start))
		return nil, &APIError{Action: action, Message: msg}
	}

	metrics.ObserveSheetsCall(action, "success", time.Since(start))
	return &env, nil
}

func isSheetsGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SHEETS_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
