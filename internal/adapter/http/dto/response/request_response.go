package response

import (
	"time"

	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/domain/normalize"
)

// StageStateResponse is one canonical stage state on the wire. Date is
// "YYYY-MM-DD" or empty; Flagged marks the accepted soft violation of a
// Done stage still waiting for its date to be backfilled.
type StageStateResponse struct {
	Status  string `json:"status"`
	Date    string `json:"date"`
	Flagged bool   `json:"flagged,omitempty"`
}

// AttachmentResponse is one stored document with its resolved link. Link may
// be empty for legacy rows that kept only a bare filename.
type AttachmentResponse struct {
	Name string `json:"name"`
	Mime string `json:"mime,omitempty"`
	Link string `json:"link,omitempty"`
}

// RequestResponse is one normalized procurement request. StageOrder repeats
// the fixed pipeline order so clients can render columns and form sections
// without hardcoding it.
type RequestResponse struct {
	RequestID     string                        `json:"request_id"`
	UploadDate    string                        `json:"upload_date"`
	ShipReference string                        `json:"ship_reference,omitempty"`
	Title         string                        `json:"title"`
	Attachments   []AttachmentResponse          `json:"attachments"`
	StageOrder    []string                      `json:"stage_order"`
	Stages        map[string]StageStateResponse `json:"stages"`
	LastUpdate    *time.Time                    `json:"last_update,omitempty"`
}

func FromProcurementRequest(req entities.ProcurementRequest) RequestResponse {
	order := make([]string, 0, len(entities.AllStageKeys()))
	stages := make(map[string]StageStateResponse, len(entities.AllStageKeys()))
	for _, key := range entities.AllStageKeys() {
		order = append(order, string(key))
		st := req.Stages[key]
		if st.Status == "" {
			st.Status = entities.StageStatusNone
		}
		stages[string(key)] = StageStateResponse{
			Status:  string(st.Status),
			Date:    normalize.DateString(st.Date),
			Flagged: st.Flagged(),
		}
	}

	attachments := make([]AttachmentResponse, 0, len(req.Attachments))
	for _, f := range req.Attachments {
		attachments = append(attachments, AttachmentResponse{
			Name: f.Name,
			Mime: f.Mime,
			Link: f.ResolveLink(),
		})
	}

	return RequestResponse{
		RequestID:     req.RequestID,
		UploadDate:    normalize.DateString(req.UploadDate),
		ShipReference: req.ShipReference,
		Title:         req.Title,
		Attachments:   attachments,
		StageOrder:    order,
		Stages:        stages,
		LastUpdate:    req.LastUpdate,
	}
}

func FromProcurementRequests(reqs []entities.ProcurementRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromProcurementRequest(r))
	}
	return out
}
