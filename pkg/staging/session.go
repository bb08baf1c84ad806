package staging

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/multisig-stager-go/pkg/journal"
	"github.com/Layr-Labs/multisig-stager-go/pkg/multisig-bindings/Ownable"
	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Session runs ownership-transfer staging for a batch of contracts through
// one backend, journaling the outcome of every action. Setup failures abort
// the session; per-contract failures are reported individually so the rest
// of the batch continues.
type Session struct {
	backend Backend
	client  ContractBackend
	journal journal.IJournal
	network string
	logger  *zap.Logger
}

// StageOutcome reports how staging concluded for one target contract.
// Result is set for staged or submitted outcomes; Err for failures.
type StageOutcome struct {
	Contract common.Address
	Outcome  string
	Result   *Result
	Err      error
}

// NewSession wires a backend to a journal. The journal may be nil when no
// history should be kept.
func NewSession(
	backend Backend,
	client ContractBackend,
	jrnl journal.IJournal,
	network string,
	logger *zap.Logger,
) (*Session, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if client == nil {
		return nil, fmt.Errorf("contract backend is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Session{
		backend: backend,
		client:  client,
		journal: jrnl,
		network: network,
		logger:  logger,
	}, nil
}

// StageOwnershipTransfers stages a transferOwnership call to newOwner for
// every contract in the batch. The pending set is fetched once up front;
// each contract is then checked for an existing owner, deduplicated against
// the pending set, and submitted. One outcome is returned per contract, in
// input order.
func (s *Session) StageOwnershipTransfers(ctx context.Context, contracts []common.Address, newOwner common.Address) ([]StageOutcome, error) {
	calldata, err := util.TransferOwnershipCalldata(newOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transferOwnership call: %w", err)
	}

	pending, err := s.backend.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Sugar().Infow("Staging ownership transfers",
		zap.String("signerKind", s.backend.Kind().String()),
		zap.String("newOwner", newOwner.Hex()),
		zap.Int("contracts", len(contracts)),
		zap.Int("pending", len(pending)),
	)

	outcomes := make([]StageOutcome, 0, len(contracts))
	for _, contract := range contracts {
		outcomes = append(outcomes, s.stageOne(ctx, pending, contract, newOwner, calldata))
	}
	return outcomes, nil
}

func (s *Session) stageOne(
	ctx context.Context,
	pending []PendingTransaction,
	contract common.Address,
	newOwner common.Address,
	calldata []byte,
) StageOutcome {
	if s.alreadyOwned(ctx, contract, newOwner) {
		s.logger.Sugar().Infow("Skipping contract already owned by target",
			zap.String("contract", contract.Hex()),
		)
		s.record(contract, newOwner, journal.OutcomeSkippedOwned, nil, nil)
		return StageOutcome{Contract: contract, Outcome: journal.OutcomeSkippedOwned}
	}

	duplicate, err := s.backend.IsDuplicate(ctx, pending, contract, calldata)
	if err != nil {
		s.record(contract, newOwner, journal.OutcomeFailed, nil, err)
		return StageOutcome{Contract: contract, Outcome: journal.OutcomeFailed, Err: err}
	}
	if duplicate {
		s.logger.Sugar().Infow("Skipping contract with equivalent transfer already staged",
			zap.String("contract", contract.Hex()),
		)
		s.record(contract, newOwner, journal.OutcomeSkippedDuplicate, nil, nil)
		return StageOutcome{Contract: contract, Outcome: journal.OutcomeSkippedDuplicate}
	}

	result, err := s.backend.Submit(ctx, &Candidate{Destination: contract, Data: calldata})
	if err != nil {
		s.logger.Sugar().Errorw("Failed to stage ownership transfer",
			zap.String("contract", contract.Hex()),
			zap.Error(err),
		)
		s.record(contract, newOwner, journal.OutcomeFailed, nil, err)
		return StageOutcome{Contract: contract, Outcome: journal.OutcomeFailed, Err: err}
	}

	outcome := journal.OutcomeSubmitted
	if result.Staged != nil {
		outcome = journal.OutcomeStaged
	}
	s.record(contract, newOwner, outcome, result, nil)
	return StageOutcome{Contract: contract, Outcome: outcome, Result: result}
}

// alreadyOwned reads owner() on the target. The read is advisory: a contract
// without an owner() view or a transient read failure does not block
// staging.
func (s *Session) alreadyOwned(ctx context.Context, contract common.Address, newOwner common.Address) bool {
	caller, err := Ownable.NewOwnableCaller(contract, s.client)
	if err != nil {
		s.logger.Sugar().Debugw("Skipping ownership pre-check",
			zap.String("contract", contract.Hex()),
			zap.String("error", err.Error()),
		)
		return false
	}
	owner, err := caller.Owner(&bind.CallOpts{Context: ctx})
	if err != nil {
		s.logger.Sugar().Debugw("Skipping ownership pre-check",
			zap.String("contract", contract.Hex()),
			zap.String("error", err.Error()),
		)
		return false
	}
	return owner == newOwner
}

func (s *Session) record(contract common.Address, newOwner common.Address, outcome string, result *Result, stageErr error) {
	if s.journal == nil {
		return
	}

	record := &journal.Record{
		SignerKind: s.backend.Kind().String(),
		Network:    s.network,
		Contract:   contract.Hex(),
		NewOwner:   newOwner.Hex(),
		Outcome:    outcome,
	}
	if result != nil {
		if result.Staged != nil {
			record.SafeTxHash = result.Staged.SafeTxHash
			record.Sequence = result.Staged.Sequence
		}
		if result.Receipt != nil {
			record.TxHash = result.Receipt.TxHash.Hex()
			record.GasUsed = result.Receipt.GasUsed
		}
	}
	if stageErr != nil {
		record.Error = stageErr.Error()
	}

	if err := s.journal.Append(record); err != nil {
		s.logger.Sugar().Warnw("Failed to journal staging outcome",
			zap.String("contract", contract.Hex()),
			zap.String("error", err.Error()),
		)
	}
}
