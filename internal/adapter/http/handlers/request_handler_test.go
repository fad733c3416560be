package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pengadaan_monitor/internal/adapter/http/handlers/mocks"
	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/infrastructure/sheets"
	"pengadaan_monitor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testRequest() entities.ProcurementRequest {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return entities.ProcurementRequest{
		RequestID: "REQ-1",
		Title:     "Pengadaan sparepart",
		Attachments: []entities.FileRef{
			{Name: "penawaran.pdf", FileID: "XYZ"},
		},
		Stages: map[entities.StageKey]entities.StageState{
			entities.StageEvaluation: {Status: entities.StageStatusDone, Date: &date},
		},
	}
}

func TestRequestHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("backend unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		uc.EXPECT().ListRequests(gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("backend rejection is surfaced verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		uc.EXPECT().ListRequests(gomock.Any()).Return(nil, &sheets.APIError{Action: "list_requests", Message: "key salah"})

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["message"] != "key salah" {
			t.Fatalf("expected verbatim backend message, got %q", body["message"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		uc.EXPECT().ListRequests(gomock.Any()).Return([]entities.ProcurementRequest{testRequest()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(body) != 1 || body[0]["request_id"] != "REQ-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		uc.EXPECT().GetRequest(gomock.Any(), "REQ-9").Return(entities.ProcurementRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/REQ-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success resolves attachment links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		uc.EXPECT().GetRequest(gomock.Any(), "REQ-1").Return(testRequest(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/REQ-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Attachments []struct {
				Name string `json:"name"`
				Link string `json:"link"`
			} `json:"attachments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(body.Attachments) != 1 || body.Attachments[0].Link != "https://drive.google.com/uc?export=download&id=XYZ" {
			t.Fatalf("unexpected attachments: %+v", body.Attachments)
		}
	})
}

func TestRequestHandler_SubmitRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		uc.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).Return("", usecase.ErrNoFiles)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"title":"Pengadaan","files":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.SubmitRequest)

		uc.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.SubmitInput) (string, error) {
				if in.Title != "Pengadaan" || len(in.Files) != 1 || in.Files[0].Base64Payload != "aGFsbG8=" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return "REQ-42", nil
			},
		)

		payload := `{"judul_permintaan":"Pengadaan","files":[{"name":"a.pdf","b64":"aGFsbG8="}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["request_id"] != "REQ-42" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestRequestHandler_UpdateStages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing stages key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/stages", h.UpdateStages)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/REQ-1/stages", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/stages", h.UpdateStages)

		uc.EXPECT().UpdateStages(gomock.Any(), "REQ-1", gomock.Any()).Return(usecase.ErrUnknownStage)

		payload := `{"stages":{"shipping":{"status":"Done"}}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/REQ-1/stages", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/stages", h.UpdateStages)

		uc.EXPECT().UpdateStages(gomock.Any(), "REQ-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, changes map[entities.StageKey]usecase.StageChange) error {
				if changes[entities.StageEvaluation].Status != "selesai" {
					t.Fatalf("unexpected changes: %+v", changes)
				}
				return nil
			},
		)

		payload := `{"stages":{"evaluation":{"status":"selesai","date":"2025-01-10"}}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/REQ-1/stages", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
