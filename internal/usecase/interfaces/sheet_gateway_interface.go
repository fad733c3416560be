package interfaces

import "context"

// SubmitFile is one attachment sent inline at submit time. The content
// travels base64-encoded; the backend stores it in Drive and keeps only a
// durable reference.
type SubmitFile struct {
	Name          string `json:"name"`
	Mime          string `json:"mime"`
	Base64Payload string `json:"base64Payload"`
}

// SubmitPayload is the wire shape of a submit_request action. Field names
// follow the backend's spreadsheet columns.
type SubmitPayload struct {
	UploadDate    string       `json:"tanggal_upload"`
	ShipReference string       `json:"no_spbj_kapal"`
	Title         string       `json:"judul_permintaan"`
	Files         []SubmitFile `json:"files"`
}

// ISheetGateway abstracts the spreadsheet-backed web app that durably stores
// every request. All three actions are synchronous, one HTTP call each, no
// retries; an in-flight call runs to completion or failure.
//
// Raw rows come back as arbitrary mappings; normalization happens above this
// interface, in the domain layer.
type ISheetGateway interface {
	ListRequests(ctx context.Context) ([]map[string]any, error)
	SubmitRequest(ctx context.Context, payload SubmitPayload) (requestID string, err error)
	UpdateRequest(ctx context.Context, requestID string, fields map[string]string) error
}
