package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome values recorded per staging action.
const (
	// OutcomeStaged means a proposal was queued with the coordination service.
	OutcomeStaged = "staged"

	// OutcomeSubmitted means a transaction reached the chain and mined.
	OutcomeSubmitted = "submitted"

	// OutcomeSkippedDuplicate means an equivalent transaction was already pending.
	OutcomeSkippedDuplicate = "skipped_duplicate"

	// OutcomeSkippedOwned means the target already had the desired owner.
	OutcomeSkippedOwned = "skipped_already_owned"

	// OutcomeFailed means the submission errored; Error carries the reason.
	OutcomeFailed = "failed"
)

// Record captures one staging action. Addresses and hashes are stored as hex
// strings so every store serializes the same JSON shape.
type Record struct {
	// Id is a random identifier assigned at append time.
	Id string `json:"id"`

	// StagedAt is the Unix timestamp when the action completed.
	StagedAt int64 `json:"stagedAt"`

	// SignerKind is the backend the session ran with.
	SignerKind string `json:"signerKind"`

	// Network names the chain the session ran against.
	Network string `json:"network"`

	// Contract is the target whose ownership transfer was staged.
	Contract string `json:"contract"`

	// NewOwner is the address ownership transfers to.
	NewOwner string `json:"newOwner"`

	// Outcome is one of the Outcome* constants.
	Outcome string `json:"outcome"`

	// TxHash is set when the action produced an on-chain transaction.
	TxHash string `json:"txHash,omitempty"`

	// SafeTxHash and Sequence are set for coordinated proposals.
	SafeTxHash string `json:"safeTxHash,omitempty"`
	Sequence   uint64 `json:"sequence,omitempty"`

	// GasUsed is set when a receipt was returned.
	GasUsed uint64 `json:"gasUsed,omitempty"`

	// Error carries the failure message for OutcomeFailed records.
	Error string `json:"error,omitempty"`
}

// PrepareRecord validates a record and returns a storable copy with id and
// timestamp filled in. Stores call this before persisting so the caller's
// record is never mutated.
func PrepareRecord(record *Record) (*Record, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot store nil Record")
	}
	if record.Outcome == "" {
		return nil, fmt.Errorf("record outcome is required")
	}

	stored := *record
	if stored.Id == "" {
		stored.Id = uuid.New().String()
	}
	if stored.StagedAt == 0 {
		stored.StagedAt = time.Now().Unix()
	}

	return &stored, nil
}
