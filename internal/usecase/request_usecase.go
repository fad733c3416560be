package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/domain/normalize"
	"pengadaan_monitor/internal/usecase/interfaces"
)

var (
	ErrInvalidTitle     = errors.New("title is required")
	ErrNoFiles          = errors.New("at least one file is required")
	ErrInvalidFileName  = errors.New("file name is required")
	ErrEmptyFilePayload = errors.New("file payload is required")
	ErrInvalidRequestID = errors.New("invalid request id")
	ErrRequestNotFound  = errors.New("request not found")
	ErrUnknownStage     = errors.New("unknown stage key")
	ErrNoStageChanges   = errors.New("no stage changes provided")
)

// FileInput is one attachment as received from the ship actor.
type FileInput struct {
	Name          string
	Mime          string
	Base64Payload string
}

// SubmitInput carries the header fields and attachments of a new request.
// UploadDate is "YYYY-MM-DD" or empty (today).
type SubmitInput struct {
	UploadDate    string
	ShipReference string
	Title         string
	Files         []FileInput
}

// StageChange is one raw stage edit as received from the engineering actor.
// Values are normalized here, not at the HTTP boundary, so every caller gets
// the same invariant enforcement.
type StageChange struct {
	Status string
	Date   string
}

// IRequestUseCase exposes the procurement request operations.
//
//   - ship actor: SubmitRequest
//   - engineering actor: ListRequests, GetRequest, UpdateStages
type IRequestUseCase interface {
	ListRequests(ctx context.Context) ([]entities.ProcurementRequest, error)
	GetRequest(ctx context.Context, requestID string) (entities.ProcurementRequest, error)
	SubmitRequest(ctx context.Context, in SubmitInput) (string, error)
	UpdateStages(ctx context.Context, requestID string, changes map[entities.StageKey]StageChange) error
}

type RequestUseCase struct {
	gateway interfaces.ISheetGateway
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(gateway interfaces.ISheetGateway) *RequestUseCase {
	return &RequestUseCase{gateway: gateway}
}

// ListRequests pulls every raw row from the backend and normalizes each one.
// Rows never fail normalization individually; a transport or backend error
// fails the whole listing (no partial render downstream).
func (u *RequestUseCase) ListRequests(ctx context.Context) ([]entities.ProcurementRequest, error) {
	rows, err := u.gateway.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	requests := make([]entities.ProcurementRequest, 0, len(rows))
	for _, row := range rows {
		req := normalize.Record(row)
		if req.RequestID == "" {
			// Spreadsheet padding rows carry no id; skip them.
			continue
		}
		requests = append(requests, req)
	}
	log.Printf("[request][usecase] list success rows=%d requests=%d", len(rows), len(requests))
	return requests, nil
}

// GetRequest returns one normalized request by id. The backend has no
// single-row action, so this lists and filters, same as the original UI did.
func (u *RequestUseCase) GetRequest(ctx context.Context, requestID string) (entities.ProcurementRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ProcurementRequest{}, ErrInvalidRequestID
	}

	requests, err := u.ListRequests(ctx)
	if err != nil {
		return entities.ProcurementRequest{}, err
	}
	for _, req := range requests {
		if req.RequestID == requestID {
			return req, nil
		}
	}
	return entities.ProcurementRequest{}, ErrRequestNotFound
}

// SubmitRequest validates the ship actor's input and forwards it to the
// backend. The backend assigns the request id and creates every stage as
// (None, absent).
func (u *RequestUseCase) SubmitRequest(ctx context.Context, in SubmitInput) (string, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "", ErrInvalidTitle
	}
	if len(in.Files) == 0 {
		return "", ErrNoFiles
	}

	files := make([]interfaces.SubmitFile, 0, len(in.Files))
	for _, f := range in.Files {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return "", ErrInvalidFileName
		}
		if strings.TrimSpace(f.Base64Payload) == "" {
			return "", ErrEmptyFilePayload
		}
		mime := strings.TrimSpace(f.Mime)
		if mime == "" {
			mime = "application/octet-stream"
		}
		files = append(files, interfaces.SubmitFile{
			Name:          name,
			Mime:          mime,
			Base64Payload: f.Base64Payload,
		})
	}

	uploadDate := normalize.Date(in.UploadDate)
	if uploadDate == nil {
		now := time.Now().UTC()
		uploadDate = &now
	}

	requestID, err := u.gateway.SubmitRequest(ctx, interfaces.SubmitPayload{
		UploadDate:    normalize.DateString(uploadDate),
		ShipReference: strings.TrimSpace(in.ShipReference),
		Title:         title,
		Files:         files,
	})
	if err != nil {
		log.Printf("[request][usecase] submit failed title=%q err=%v", title, err)
		return "", err
	}
	log.Printf("[request][usecase] submit success request_id=%s files=%d", requestID, len(files))
	return requestID, nil
}

// UpdateStages normalizes every edited (status, date) pair and sends one
// all-or-nothing patch. Any subset of the seven stages may be edited, in any
// order; no sequential completion is enforced. Dates on non-Done statuses
// are silently discarded by normalization before anything reaches the wire.
func (u *RequestUseCase) UpdateStages(ctx context.Context, requestID string, changes map[entities.StageKey]StageChange) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ErrInvalidRequestID
	}
	if len(changes) == 0 {
		return ErrNoStageChanges
	}

	states := make(map[entities.StageKey]entities.StageState, len(changes))
	for key, ch := range changes {
		if !entities.IsKnownStage(key) {
			return ErrUnknownStage
		}
		states[key] = normalize.State(ch.Status, ch.Date)
	}

	fields := normalize.StagePatch(states)
	if err := u.gateway.UpdateRequest(ctx, requestID, fields); err != nil {
		log.Printf("[request][usecase] update failed request_id=%s err=%v", requestID, err)
		return err
	}
	log.Printf("[request][usecase] update success request_id=%s stages=%d", requestID, len(states))
	return nil
}
