package normalize

import (
	"strings"

	"pengadaan_monitor/internal/domain/entities"
)

// Backend header columns. The spreadsheet schema keeps the original
// Indonesian names; keys are canonicalized to UPPER_SNAKE on the way in.
const (
	ColRequestID     = "REQUEST_ID"
	ColUploadDate    = "TANGGAL_UPLOAD"
	ColShipReference = "NO_SPBJ_KAPAL"
	ColTitle         = "JUDUL_PERMINTAAN"
	ColFiles         = "FILES"
	ColFilesJSON     = "FILES_JSON"
	ColLastUpdate    = "LAST_UPDATE"
)

// CanonicalKeys uppercases and trims every key of a raw row, so the rest of
// the pipeline can address columns case-insensitively. Later duplicates win,
// matching how the backend resolves conflicting headers.
func CanonicalKeys(raw map[string]any) map[string]any {
	rec := make(map[string]any, len(raw))
	for k, v := range raw {
		rec[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return rec
}

// Record maps one raw backend row onto a strict ProcurementRequest. This is
// the only place where "anything could come back" is tamed: every stage pair
// passes through State, attachments through the candidate chain, dates
// through Date/Timestamp. It never fails, whatever the row contains.
func Record(raw map[string]any) entities.ProcurementRequest {
	rec := CanonicalKeys(raw)

	stages := make(map[entities.StageKey]entities.StageState, len(entities.AllStageKeys()))
	for _, key := range entities.AllStageKeys() {
		stages[key] = State(rec[key.StatusColumn()], rec[key.DateColumn()])
	}

	return entities.ProcurementRequest{
		RequestID:     strings.TrimSpace(asString(rec[ColRequestID])),
		UploadDate:    Date(rec[ColUploadDate]),
		ShipReference: strings.TrimSpace(asString(rec[ColShipReference])),
		Title:         strings.TrimSpace(asString(rec[ColTitle])),
		// Attachments occasionally land in stray columns of legacy rows; the
		// regular columns are tried first.
		Attachments: FileList(rec[ColFiles], rec[ColFilesJSON], rec["EVALUASI_STATUS"]),
		Stages:      stages,
		LastUpdate:  Timestamp(rec[ColLastUpdate]),
	}
}

// StagePatch serializes edited stage states into the wire fields of an
// update_request call. Every state passes through State again so a patch can
// never violate the stage invariant, whatever the caller assembled.
//
// Each field is emitted in both UPPER_SNAKE and lower_snake casings; backend
// schema versions disagree on which one they read.
func StagePatch(changes map[entities.StageKey]entities.StageState) map[string]string {
	fields := make(map[string]string, len(changes)*4)
	for key, st := range changes {
		if !entities.IsKnownStage(key) {
			continue
		}
		clean := State(string(st.Status), DateString(st.Date))
		status := string(clean.Status)
		date := DateString(clean.Date)

		fields[key.StatusColumn()] = status
		fields[key.DateColumn()] = date
		fields[strings.ToLower(key.StatusColumn())] = status
		fields[strings.ToLower(key.DateColumn())] = date
	}
	return fields
}
