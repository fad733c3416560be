package entities

import "time"

// StageStatus is the canonical status vocabulary for a pipeline stage.
//
// Domain notes:
//   - The spreadsheet backend stores free-form text; only these three
//     canonical strings are ever written back.
//   - Historical rows may contain anything (booleans, Indonesian tokens,
//     JSON that landed in the wrong column). The normalize package maps all
//     of that onto this enum.

type StageStatus string

const (
	StageStatusNone      StageStatus = "None"
	StageStatusInProcess StageStatus = "In Process"
	StageStatusDone      StageStatus = "Done"
)

// StageKey identifies one of the seven fixed steps of the procurement
// approval pipeline. The order is meaningful for display (table columns,
// form sections) but completion order is never enforced: engineering can set
// any stage at any time.
type StageKey string

const (
	StageEvaluation        StageKey = "evaluation"
	StageProposalLetter    StageKey = "proposal_letter"
	StageApprovalLetter    StageKey = "approval_letter"
	StageDeliveryOrderCert StageKey = "delivery_order_cert" // SP2B/J
	StagePurchaseOrder     StageKey = "purchase_order"
	StagePaid              StageKey = "paid"
	StageSupply            StageKey = "supply"
)

// stageColumns maps each stage to its spreadsheet column prefix. The backend
// schema keeps the original Indonesian column names.
var stageColumns = map[StageKey]string{
	StageEvaluation:        "EVALUASI",
	StageProposalLetter:    "SURAT_USULAN",
	StageApprovalLetter:    "SURAT_PERSETUJUAN",
	StageDeliveryOrderCert: "SP2BJ",
	StagePurchaseOrder:     "PO",
	StagePaid:              "TERBAYAR",
	StageSupply:            "SUPPLY",
}

// AllStageKeys returns the seven stage keys in pipeline order. Both the
// summary table column order and the edit form section order derive from it.
func AllStageKeys() []StageKey {
	return []StageKey{
		StageEvaluation,
		StageProposalLetter,
		StageApprovalLetter,
		StageDeliveryOrderCert,
		StagePurchaseOrder,
		StagePaid,
		StageSupply,
	}
}

// IsKnownStage reports whether k is one of the seven pipeline stages.
func IsKnownStage(k StageKey) bool {
	_, ok := stageColumns[k]
	return ok
}

// ColumnPrefix returns the spreadsheet column prefix for the stage, e.g.
// "EVALUASI" for StageEvaluation. Unknown keys return "".
func (k StageKey) ColumnPrefix() string {
	return stageColumns[k]
}

// StatusColumn returns the backend column holding the stage status.
func (k StageKey) StatusColumn() string {
	return stageColumns[k] + "_STATUS"
}

// DateColumn returns the backend column holding the stage date.
func (k StageKey) DateColumn() string {
	return stageColumns[k] + "_TANGGAL"
}

// StageState is the per-stage value object.
//
// Invariant: a date may be present only when Status == StageStatusDone.
// Done with an absent date is legal (rows often arrive before the date is
// backfilled) but flagged, see Flagged.
type StageState struct {
	Status StageStatus `json:"status"`
	Date   *time.Time  `json:"date,omitempty"`
}

// IsLegalState reports whether the (status, date) pair satisfies the stage
// invariant: status must be one of the three canonical values and only Done
// may carry a date.
func IsLegalState(status StageStatus, date *time.Time) bool {
	switch status {
	case StageStatusNone, StageStatusInProcess, StageStatusDone:
	default:
		return false
	}
	if date != nil && status != StageStatusDone {
		return false
	}
	return true
}

// Flagged reports the soft invariant violation: Done without a date. Such
// states are accepted, never rejected; the flag exists so callers and tests
// can observe them.
func (s StageState) Flagged() bool {
	return s.Status == StageStatusDone && s.Date == nil
}
