package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pengadaan_monitor/internal/usecase/interfaces"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	t.Setenv("SHEETS_GATEWAY_MOCK", "")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGateway(srv.URL, "kunci-teknik", 5*time.Second)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	return g
}

func TestNewGateway(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		t.Setenv("SHEETS_GATEWAY_MOCK", "")
		if _, err := NewGateway("  ", "key", 0); !errors.Is(err, ErrMissingWebAppURL) {
			t.Fatalf("expected ErrMissingWebAppURL, got %v", err)
		}
	})

	t.Run("mock mode skips url check", func(t *testing.T) {
		t.Setenv("SHEETS_GATEWAY_MOCK", "1")
		g, err := NewGateway("", "", 0)
		if err != nil {
			t.Fatalf("NewGateway: %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})
}

func TestGateway_ListRequests(t *testing.T) {
	t.Run("rows under data", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if body["action"] != "list_requests" || body["key"] != "kunci-teknik" {
				t.Fatalf("unexpected request body: %+v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"ok":   true,
				"data": []map[string]any{{"REQUEST_ID": "REQ-1"}},
			})
		})

		rows, err := g.ListRequests(context.Background())
		if err != nil {
			t.Fatalf("ListRequests: %v", err)
		}
		if len(rows) != 1 || rows[0]["REQUEST_ID"] != "REQ-1" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("legacy rows key", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"ok":   true,
				"rows": []map[string]any{{"REQUEST_ID": "REQ-2"}},
			})
		})

		rows, err := g.ListRequests(context.Background())
		if err != nil {
			t.Fatalf("ListRequests: %v", err)
		}
		if len(rows) != 1 || rows[0]["REQUEST_ID"] != "REQ-2" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("backend rejection", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "key salah"})
		})

		_, err := g.ListRequests(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Action != "list_requests" || apiErr.Message != "key salah" {
			t.Fatalf("unexpected APIError: %+v", apiErr)
		}
	})

	t.Run("rejection without message", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false})
		})

		_, err := g.ListRequests(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != "unknown backend error" {
			t.Fatalf("unexpected message: %q", apiErr.Message)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := g.ListRequests(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			t.Fatalf("transport failure must not be an APIError: %v", err)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		})

		if _, err := g.ListRequests(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGateway_SubmitRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var captured map[string]any
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{"ok": true, "request_id": "REQ-42"})
		})

		payload := interfaces.SubmitPayload{
			UploadDate:    "2025-01-10",
			ShipReference: "SPBJ-7",
			Title:         "Pengadaan sparepart",
			Files: []interfaces.SubmitFile{
				{Name: "penawaran.pdf", Mime: "application/pdf", Base64Payload: "aGFsbG8="},
			},
		}
		id, err := g.SubmitRequest(context.Background(), payload)
		if err != nil {
			t.Fatalf("SubmitRequest: %v", err)
		}
		if id != "REQ-42" {
			t.Fatalf("unexpected request id: %q", id)
		}

		if captured["action"] != "submit_request" {
			t.Fatalf("unexpected action: %v", captured["action"])
		}
		if captured["judul_permintaan"] != "Pengadaan sparepart" || captured["no_spbj_kapal"] != "SPBJ-7" {
			t.Fatalf("unexpected submit body: %+v", captured)
		}
		files, ok := captured["files"].([]any)
		if !ok || len(files) != 1 {
			t.Fatalf("unexpected files: %+v", captured["files"])
		}
		file := files[0].(map[string]any)
		if file["name"] != "penawaran.pdf" || file["base64Payload"] != "aGFsbG8=" {
			t.Fatalf("unexpected file payload: %+v", file)
		}
	})

	t.Run("backend rejection", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "drive quota exceeded"})
		})

		_, err := g.SubmitRequest(context.Background(), interfaces.SubmitPayload{Title: "x"})
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "drive quota exceeded" {
			t.Fatalf("expected APIError with backend message, got %v", err)
		}
	})
}

func TestGateway_UpdateRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var captured map[string]any
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{"ok": true})
		})

		fields := map[string]string{
			"EVALUASI_STATUS":  "Done",
			"EVALUASI_TANGGAL": "2025-01-10",
		}
		if err := g.UpdateRequest(context.Background(), "REQ-1", fields); err != nil {
			t.Fatalf("UpdateRequest: %v", err)
		}

		if captured["action"] != "update_request" || captured["request_id"] != "REQ-1" || captured["key"] != "kunci-teknik" {
			t.Fatalf("unexpected update body: %+v", captured)
		}
		sent, ok := captured["fields"].(map[string]any)
		if !ok || sent["EVALUASI_STATUS"] != "Done" || sent["EVALUASI_TANGGAL"] != "2025-01-10" {
			t.Fatalf("unexpected fields: %+v", captured["fields"])
		}
	})

	t.Run("backend rejection", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "request not found"})
		})

		err := g.UpdateRequest(context.Background(), "REQ-9", map[string]string{"PO_STATUS": "Done"})
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "request not found" {
			t.Fatalf("expected APIError with backend message, got %v", err)
		}
	})
}

func TestGateway_MockMode(t *testing.T) {
	t.Setenv("SHEETS_GATEWAY_MOCK", "1")

	g, err := NewGateway("", "", 0)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	ctx := context.Background()

	id, err := g.SubmitRequest(ctx, interfaces.SubmitPayload{
		UploadDate:    "2025-01-10",
		ShipReference: "SPBJ-7",
		Title:         "Pengadaan sparepart",
		Files:         []interfaces.SubmitFile{{Name: "penawaran.pdf", Base64Payload: "aGFsbG8="}},
	})
	if err != nil {
		t.Fatalf("SubmitRequest: %v", err)
	}
	if id == "" {
		t.Fatal("expected assigned request id")
	}

	rows, err := g.ListRequests(ctx)
	if err != nil {
		t.Fatalf("ListRequests: %v", err)
	}
	if len(rows) != 1 || rows[0]["REQUEST_ID"] != id {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if err := g.UpdateRequest(ctx, id, map[string]string{"EVALUASI_STATUS": "Done"}); err != nil {
		t.Fatalf("UpdateRequest: %v", err)
	}
	rows, err = g.ListRequests(ctx)
	if err != nil {
		t.Fatalf("ListRequests: %v", err)
	}
	if rows[0]["EVALUASI_STATUS"] != "Done" {
		t.Fatalf("update not applied: %+v", rows[0])
	}

	err = g.UpdateRequest(ctx, "REQ-9999", map[string]string{"PO_STATUS": "Done"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError for unknown id, got %v", err)
	}
}
