package staging

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PendingTransaction is one staged-but-unexecuted transaction known to the
// active backend. Sequence carries the backend-specific ordering identifier:
// the Safe nonce for coordinated backends and the transaction id for legacy
// wallets.
type PendingTransaction struct {
	Destination common.Address
	Data        []byte
	Sequence    uint64

	// SafeTxHash is set for coordinated backends only.
	SafeTxHash string
}

// Candidate is a transaction a caller wants staged: a destination and the
// ABI-encoded call data. Value is always zero in this domain.
type Candidate struct {
	Destination common.Address
	Data        []byte
}

// StagedProposal acknowledges a proposal queued with the coordination
// service. Execution happens later once enough co-signers approve, so no
// on-chain receipt exists yet.
type StagedProposal struct {
	SafeTxHash string
	Sequence   uint64
}

// Result reports how a submission concluded. Exactly one field is non-nil:
// Staged for proposals queued off-chain, Receipt for transactions mined
// on-chain.
type Result struct {
	Staged  *StagedProposal
	Receipt *types.Receipt
}
