package request

import (
	"strings"

	"pengadaan_monitor/internal/usecase"
)

// SubmitFileRequest is one attachment in a submit payload. Legacy clients
// send the content under "b64"; the current field name is "base64Payload".
type SubmitFileRequest struct {
	Name          string `json:"name" binding:"required"`
	Mime          string `json:"mime"`
	Base64Payload string `json:"base64Payload"`
	B64           string `json:"b64"`
}

func (f SubmitFileRequest) ResolvePayload() string {
	if v := strings.TrimSpace(f.Base64Payload); v != "" {
		return v
	}
	return strings.TrimSpace(f.B64)
}

// SubmitRequest is the ship actor's submission payload. Both the English
// field names and the backend's Indonesian column names are accepted, so the
// endpoint stays compatible with clients written against either shape.
type SubmitRequest struct {
	UploadDate      string              `json:"upload_date"`
	TanggalUpload   string              `json:"tanggal_upload"`
	ShipReference   string              `json:"ship_reference"`
	NoSPBJKapal     string              `json:"no_spbj_kapal"`
	Title           string              `json:"title"`
	JudulPermintaan string              `json:"judul_permintaan"`
	Files           []SubmitFileRequest `json:"files"`
}

func (r SubmitRequest) ResolveUploadDate() string {
	if v := strings.TrimSpace(r.UploadDate); v != "" {
		return v
	}
	return strings.TrimSpace(r.TanggalUpload)
}

func (r SubmitRequest) ResolveShipReference() string {
	if v := strings.TrimSpace(r.ShipReference); v != "" {
		return v
	}
	return strings.TrimSpace(r.NoSPBJKapal)
}

func (r SubmitRequest) ResolveTitle() string {
	if v := strings.TrimSpace(r.Title); v != "" {
		return v
	}
	return strings.TrimSpace(r.JudulPermintaan)
}

// ToInput translates the payload into the domain command expected by the
// use case. Validation (title, file count, payloads) happens there.
func (r SubmitRequest) ToInput() usecase.SubmitInput {
	files := make([]usecase.FileInput, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, usecase.FileInput{
			Name:          strings.TrimSpace(f.Name),
			Mime:          strings.TrimSpace(f.Mime),
			Base64Payload: f.ResolvePayload(),
		})
	}
	return usecase.SubmitInput{
		UploadDate:    r.ResolveUploadDate(),
		ShipReference: r.ResolveShipReference(),
		Title:         r.ResolveTitle(),
		Files:         files,
	}
}
