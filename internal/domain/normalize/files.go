package normalize

import (
	"encoding/json"
	"strings"

	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/metrics"
)

// FileRefs extracts an attachment list from a raw cell value. Accepted
// shapes, in decreasing order of likelihood:
//
//   - a native list (decoded JSON array of objects)
//   - a JSON array or object encoded as a string
//   - a single object (wrapped into a one-element list)
//
// Anything else, including undecodable JSON, yields an empty list. Elements
// without a name are dropped; a FileRef that cannot be displayed is useless.
func FileRefs(raw any) []entities.FileRef {
	switch v := raw.(type) {
	case nil:
		return nil
	case []entities.FileRef:
		return keepNamed(v)
	case entities.FileRef:
		return keepNamed([]entities.FileRef{v})
	case string:
		s := strings.TrimSpace(v)
		if s == "" || (!strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{")) {
			return nil
		}
		return decodeFileJSON([]byte(s))
	case []any, map[string]any:
		// Re-encode and decode through the FileRef shape; the raw value came
		// out of a JSON response body, so this round-trip is lossless.
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return decodeFileJSON(b)
	default:
		return nil
	}
}

// FileList is the ordered candidate-extractor chain for attachments: each
// candidate cell is tried in turn and the first one producing a non-empty
// list wins. Callers pass the regular columns first and known-stray legacy
// columns last.
func FileList(candidates ...any) []entities.FileRef {
	for _, c := range candidates {
		if refs := FileRefs(c); len(refs) > 0 {
			return refs
		}
	}
	return nil
}

func decodeFileJSON(b []byte) []entities.FileRef {
	var list []entities.FileRef
	if err := json.Unmarshal(b, &list); err == nil {
		return keepNamed(list)
	}
	var one entities.FileRef
	if err := json.Unmarshal(b, &one); err == nil {
		return keepNamed([]entities.FileRef{one})
	}
	metrics.NormalizationAnomaliesTotal.WithLabelValues(metrics.AnomalyFileJSON).Inc()
	return nil
}

func keepNamed(refs []entities.FileRef) []entities.FileRef {
	out := make([]entities.FileRef, 0, len(refs))
	for _, r := range refs {
		if strings.TrimSpace(r.Name) != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
