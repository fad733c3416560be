package request

import (
	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/usecase"
)

// StageChangeRequest is one raw stage edit. Status and date arrive as the
// client typed or stored them; canonicalization is the use case's job, so
// legacy tokens ("selesai", "progress", ISO timestamps) are all acceptable.
type StageChangeRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

// UpdateStagesRequest patches any subset of the seven pipeline stages of one
// request. Keys are stage identifiers (e.g. "evaluation",
// "purchase_order"); unknown keys reject the whole patch.
type UpdateStagesRequest struct {
	Stages map[string]StageChangeRequest `json:"stages" binding:"required"`
}

func (r UpdateStagesRequest) ToChanges() map[entities.StageKey]usecase.StageChange {
	changes := make(map[entities.StageKey]usecase.StageChange, len(r.Stages))
	for key, ch := range r.Stages {
		changes[entities.StageKey(key)] = usecase.StageChange{
			Status: ch.Status,
			Date:   ch.Date,
		}
	}
	return changes
}
