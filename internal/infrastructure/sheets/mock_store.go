package sheets

import (
	"fmt"
	"log"
	"time"

	"pengadaan_monitor/internal/usecase/interfaces"
)

// Mock-mode backing store. Lets the whole service run end-to-end with no
// spreadsheet deployed behind it, mirroring the rest of the wire contract:
// submitted rows get ids, file refs and None stages; updates patch columns
// and bump LAST_UPDATE.

func (g *Gateway) mockList() []map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := make([]map[string]any, len(g.mockRows))
	for i, row := range g.mockRows {
		cp := make(map[string]any, len(row))
		for k, v := range row {
			cp[k] = v
		}
		rows[i] = cp
	}
	log.Printf("[sheets][gateway] mock list rows=%d", len(rows))
	return rows
}

func (g *Gateway) mockSubmit(payload interfaces.SubmitPayload) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.mockSeq++
	requestID := fmt.Sprintf("REQ-%04d", g.mockSeq)

	files := make([]map[string]any, len(payload.Files))
	for i, f := range payload.Files {
		files[i] = map[string]any{
			"name":   f.Name,
			"mime":   f.Mime,
			"fileId": fmt.Sprintf("mock-%s-%d", requestID, i+1),
		}
	}

	row := map[string]any{
		"REQUEST_ID":       requestID,
		"TANGGAL_UPLOAD":   payload.UploadDate,
		"NO_SPBJ_KAPAL":    payload.ShipReference,
		"JUDUL_PERMINTAAN": payload.Title,
		"FILES":            files,
		"LAST_UPDATE":      time.Now().UTC().Format(time.RFC3339),
	}
	g.mockRows = append(g.mockRows, row)

	log.Printf("[sheets][gateway] mock submit success request_id=%s files=%d", requestID, len(files))
	return requestID
}

func (g *Gateway) mockUpdate(requestID string, fields map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, row := range g.mockRows {
		if row["REQUEST_ID"] == requestID {
			for k, v := range fields {
				row[k] = v
			}
			row["LAST_UPDATE"] = time.Now().UTC().Format(time.RFC3339)
			log.Printf("[sheets][gateway] mock update success request_id=%s fields=%d", requestID, len(fields))
			return nil
		}
	}
	return &APIError{Action: "update_request", Message: fmt.Sprintf("request %s not found", requestID)}
}
