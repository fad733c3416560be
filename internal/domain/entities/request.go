package entities

import (
	"strings"
	"time"
)

// driveDownloadURL synthesizes a download link from a bare Drive file id.
// The attachment store behind the spreadsheet backend is Google Drive.
const driveDownloadURL = "https://drive.google.com/uc?export=download&id="

// FileRef describes one uploaded document. At submit time it carries inline
// content (Base64Payload); once stored, the backend returns durable
// references instead. Never both for the same lifecycle phase.
type FileRef struct {
	Name          string `json:"name"`
	Mime          string `json:"mime,omitempty"`
	Base64Payload string `json:"base64Payload,omitempty"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	ViewURL       string `json:"viewUrl,omitempty"`
	FileID        string `json:"fileId,omitempty"`
	LegacyID      string `json:"id,omitempty"`
}

// ResolveLink returns the one displayable link for the file, trying in fixed
// preference order: explicit download URL, view URL, a Drive download URL
// synthesized from the file id, else "" (bare filename, no link).
func (f FileRef) ResolveLink() string {
	if v := strings.TrimSpace(f.DownloadURL); v != "" {
		return v
	}
	if v := strings.TrimSpace(f.ViewURL); v != "" {
		return v
	}
	if id := strings.TrimSpace(f.FileID); id != "" {
		return driveDownloadURL + id
	}
	if id := strings.TrimSpace(f.LegacyID); id != "" {
		return driveDownloadURL + id
	}
	return ""
}

// ProcurementRequest is one submitted procurement request.
//
// Header fields and attachments are immutable after creation; only the stage
// map changes, through engineering updates. LastUpdate is recomputed by the
// backend on every successful patch and is read-only here.
type ProcurementRequest struct {
	RequestID     string                  `json:"request_id"`
	UploadDate    *time.Time              `json:"upload_date,omitempty"`
	ShipReference string                  `json:"ship_reference,omitempty"`
	Title         string                  `json:"title"`
	Attachments   []FileRef               `json:"attachments"`
	Stages        map[StageKey]StageState `json:"stages"`
	LastUpdate    *time.Time              `json:"last_update,omitempty"`
}
