package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pengadaan_monitor/internal/adapter/http/dto/request"
	response "pengadaan_monitor/internal/adapter/http/dto/response"
	"pengadaan_monitor/internal/infrastructure/sheets"
	"pengadaan_monitor/internal/usecase"
	"pengadaan_monitor/pkg"
)

var (
	errInvalidSubmitPayload = pkg.NewDomainErrorSimple("INVALID_SUBMIT_INPUT", "Invalid submit payload", http.StatusBadRequest)
	errInvalidStagePayload  = pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage update payload", http.StatusBadRequest)
)

// RequestHandler handles HTTP requests for procurement requests: public
// submission by the ship actor, listing/reading/stage updates by the
// engineering actor.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// ListRequests returns every stored request, normalized.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.usecase.ListRequests(c.Request.Context())
	if err != nil {
		log.Printf("[request][handler] list failed err=%v", err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProcurementRequests(requests))
}

// GetRequest returns one request by id, with resolved attachment links.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID := c.Param("request_id")

	req, err := h.usecase.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		log.Printf("[request][handler] get failed request_id=%s err=%v", requestID, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProcurementRequest(req))
}

// SubmitRequest accepts a new procurement request from the ship actor.
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[request][handler] submit invalid payload err=%v", err)
		c.JSON(errInvalidSubmitPayload.HTTPStatus, errInvalidSubmitPayload.ToHTTPError())
		return
	}

	requestID, err := h.usecase.SubmitRequest(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[request][handler] submit failed err=%v", err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] submit success request_id=%s", requestID)

	c.JSON(http.StatusCreated, response.SubmitResponse{RequestID: requestID})
}

// UpdateStages patches stage statuses/dates of one request. The patch is
// all-or-nothing: one bad stage key rejects everything and nothing reaches
// the backend.
func (h *RequestHandler) UpdateStages(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.UpdateStagesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[request][handler] update invalid payload request_id=%s err=%v", requestID, err)
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateStages(c.Request.Context(), requestID, payload.ToChanges()); err != nil {
		log.Printf("[request][handler] update failed request_id=%s err=%v", requestID, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] update success request_id=%s", requestID)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func mapRequestError(err error) *pkg.AppError {
	var apiErr *sheets.APIError
	switch {
	case errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrNoFiles),
		errors.Is(err, usecase.ErrInvalidFileName),
		errors.Is(err, usecase.ErrEmptyFilePayload),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrUnknownStage),
		errors.Is(err, usecase.ErrNoStageChanges):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.As(err, &apiErr):
		// Application-level backend rejection: the backend message passes
		// through verbatim.
		return pkg.NewDomainError("BACKEND_ERROR", apiErr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Spreadsheet backend unavailable", err, http.StatusBadGateway)
	}
}
