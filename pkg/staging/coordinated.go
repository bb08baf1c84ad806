package staging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/multisig-stager-go/pkg/clients/safeservice"
	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

const (
	// operationCall is the Safe operation selector for a plain CALL.
	operationCall uint8 = 0

	// proposalOrigin identifies this tool in proposals queued with the
	// coordination service.
	proposalOrigin = "multisig-stager"
)

// CoordinatedBackend stages transactions as Safe proposals queued with an
// off-chain coordination service. Proposals execute later, once enough
// co-signers confirm, so submissions return a StagedProposal rather than a
// receipt. In fork mode the service is bypassed and candidates execute
// directly against the forked network.
type CoordinatedBackend struct {
	cfg     *Config
	client  ContractBackend
	service safeservice.IClient
	signer  txSigner.ITransactionSigner
	safe    SafeContract
	logger  *zap.Logger

	// trackedSequence is the highest sequence number known used, seeded
	// from the contract at construction and advanced on each successful
	// staging. Advancing locally avoids re-fetching and colliding on the
	// same sequence before an earlier proposal is externally confirmed.
	// Not safe for concurrent submissions.
	trackedSequence uint64
}

var _ Backend = (*CoordinatedBackend)(nil)

// NewCoordinatedBackend connects to the coordinating Safe contract and
// fetches its current sequence number once. A sequence that reads as zero is
// indistinguishable from reading empty state at a non-Safe address, so it
// fails with ErrBackendUnreachable rather than seeding a session that would
// propose colliding nonces.
func NewCoordinatedBackend(
	ctx context.Context,
	cfg *Config,
	client ContractBackend,
	service safeservice.IClient,
	signer txSigner.ITransactionSigner,
	safe SafeContract,
	logger *zap.Logger,
) (*CoordinatedBackend, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("coordination service client is required")
	}
	if safe == nil {
		return nil, fmt.Errorf("safe contract is required")
	}

	sequence, err := safe.Nonce(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sequence number from safe %s: %v", ErrBackendUnreachable, cfg.SafeAddress.Hex(), err)
	}
	if sequence == nil || sequence.Sign() == 0 {
		return nil, fmt.Errorf("%w: safe %s reported an unusable sequence number", ErrBackendUnreachable, cfg.SafeAddress.Hex())
	}

	logger.Sugar().Infow("Using coordinating safe contract",
		zap.String("safeAddress", cfg.SafeAddress.Hex()),
		zap.Uint64("sequence", sequence.Uint64()),
	)

	return &CoordinatedBackend{
		cfg:             cfg,
		client:          client,
		service:         service,
		signer:          signer,
		safe:            safe,
		logger:          logger,
		trackedSequence: sequence.Uint64(),
	}, nil
}

func (cb *CoordinatedBackend) Kind() SignerKind {
	return KindCoordinated
}

// TrackedSequence returns the highest sequence number this session has
// observed or used. It is monotonically non-decreasing across submissions.
func (cb *CoordinatedBackend) TrackedSequence() uint64 {
	return cb.trackedSequence
}

func (cb *CoordinatedBackend) ListPending(ctx context.Context) ([]PendingTransaction, error) {
	queued, err := cb.service.GetPendingTransactions(ctx, cb.cfg.SafeAddress.Hex())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list pending transactions: %v", ErrBackendUnreachable, err)
	}

	pending := make([]PendingTransaction, 0, len(queued))
	for _, tx := range queued {
		pending = append(pending, PendingTransaction{
			Destination: common.HexToAddress(tx.To),
			Data:        common.FromHex(tx.Data),
			Sequence:    tx.Nonce,
			SafeTxHash:  tx.SafeTxHash,
		})
	}
	return pending, nil
}

// IsDuplicate matches on destination and call data, ignoring entries whose
// sequence number is below the tracked sequence: those are stale proposals
// already superseded by on-chain state.
func (cb *CoordinatedBackend) IsDuplicate(ctx context.Context, pending []PendingTransaction, destination common.Address, data []byte) (bool, error) {
	matches := util.Filter(pending, func(tx PendingTransaction) bool {
		return tx.Sequence >= cb.trackedSequence &&
			tx.Destination == destination &&
			bytes.Equal(tx.Data, data)
	})
	return len(matches) > 0, nil
}

func (cb *CoordinatedBackend) Submit(ctx context.Context, candidate *Candidate) (*Result, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}

	if cb.cfg.Fork {
		receipt, err := submitDirect(ctx, cb.client, cb.signer, cb.cfg, candidate, cb.logger)
		if err != nil {
			return nil, err
		}
		return &Result{Receipt: receipt}, nil
	}

	sequence := cb.trackedSequence + 1
	nonce := new(big.Int).SetUint64(sequence)
	zero := new(big.Int)

	hash, err := cb.safe.GetTransactionHash(
		&bind.CallOpts{Context: ctx},
		candidate.Destination,
		zero,
		candidate.Data,
		operationCall,
		zero,
		zero,
		zero,
		common.Address{},
		common.Address{},
		nonce,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute safe transaction hash: %v", ErrBackendUnreachable, err)
	}
	cb.verifyTransactionHash(ctx, hash, candidate, nonce)

	signature, err := cb.signer.SignHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign safe transaction hash: %v", ErrSignatureFailure, err)
	}
	sender, err := cb.signer.GetAddress()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve sender address: %v", ErrSignatureFailure, err)
	}

	proposal := &safeservice.TransactionProposal{
		To:                      candidate.Destination.Hex(),
		Value:                   "0",
		Data:                    hexutil.Encode(candidate.Data),
		Operation:               int(operationCall),
		SafeTxGas:               0,
		BaseGas:                 0,
		GasPrice:                "0",
		GasToken:                (common.Address{}).Hex(),
		RefundReceiver:          (common.Address{}).Hex(),
		Nonce:                   sequence,
		ContractTransactionHash: common.Hash(hash).Hex(),
		Sender:                  sender.Hex(),
		Signature:               hexutil.Encode(signature),
		Origin:                  proposalOrigin,
	}
	if err := cb.service.ProposeTransaction(ctx, cb.cfg.SafeAddress.Hex(), proposal); err != nil {
		var statusErr *safeservice.StatusError
		if errors.As(err, &statusErr) && statusErr.IsClientError() {
			return nil, fmt.Errorf("%w: coordination service refused proposal: %v", ErrSubmissionRejected, err)
		}
		return nil, fmt.Errorf("%w: failed to propose transaction: %v", ErrBackendUnreachable, err)
	}

	cb.trackedSequence = sequence
	cb.logger.Sugar().Infow("Staged transaction with coordination service",
		zap.String("destination", candidate.Destination.Hex()),
		zap.String("safeTxHash", common.Hash(hash).Hex()),
		zap.Uint64("sequence", sequence),
	)

	return &Result{
		Staged: &StagedProposal{
			SafeTxHash: common.Hash(hash).Hex(),
			Sequence:   sequence,
		},
	}, nil
}

// verifyTransactionHash recomputes the safe transaction hash locally and
// warns when the contract disagrees, which indicates the target contract is
// not hashing SafeTx parameters the way this session expects.
func (cb *CoordinatedBackend) verifyTransactionHash(ctx context.Context, hash [32]byte, candidate *Candidate, nonce *big.Int) {
	domainSeparator, err := cb.safe.DomainSeparator(&bind.CallOpts{Context: ctx})
	if err != nil {
		cb.logger.Sugar().Debugw("Skipping local transaction hash verification",
			zap.String("error", err.Error()),
		)
		return
	}

	local := ComputeSafeTransactionHash(
		domainSeparator,
		candidate.Destination,
		nil,
		candidate.Data,
		operationCall,
		nil,
		nil,
		nil,
		common.Address{},
		common.Address{},
		nonce,
	)
	if local != common.Hash(hash) {
		cb.logger.Sugar().Warnw("Locally computed transaction hash differs from contract",
			zap.String("contractHash", common.Hash(hash).Hex()),
			zap.String("localHash", local.Hex()),
		)
	}
}
