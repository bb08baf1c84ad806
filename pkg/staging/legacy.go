package staging

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// LegacyBackend stages transactions through an on-chain MultiSigWallet. The
// contract tracks proposals, confirmations, and execution itself, so the
// backend holds no session state and every query goes straight to the chain.
type LegacyBackend struct {
	cfg    *Config
	client ContractBackend
	wallet LegacyWalletContract
	signer txSigner.ITransactionSigner
	logger *zap.Logger
}

var _ Backend = (*LegacyBackend)(nil)

// NewLegacyBackend wraps the wallet contract without touching the network;
// the contract is only read once queries begin.
func NewLegacyBackend(
	cfg *Config,
	client ContractBackend,
	wallet LegacyWalletContract,
	signer txSigner.ITransactionSigner,
	logger *zap.Logger,
) (*LegacyBackend, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("multisig wallet contract is required")
	}

	return &LegacyBackend{
		cfg:    cfg,
		client: client,
		wallet: wallet,
		signer: signer,
		logger: logger,
	}, nil
}

func (lb *LegacyBackend) Kind() SignerKind {
	return KindLegacy
}

// ListPending scans the wallet's full transaction id range filtered to
// pending. The scan restarts from id zero on every call; volumes on these
// wallets are small enough that a low-water mark has not been worth caching.
func (lb *LegacyBackend) ListPending(ctx context.Context) ([]PendingTransaction, error) {
	callOpts := &bind.CallOpts{Context: ctx}

	count, err := lb.wallet.TransactionCount(callOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read transaction count: %v", ErrBackendUnreachable, err)
	}
	if count == nil || count.Sign() == 0 {
		return []PendingTransaction{}, nil
	}

	ids, err := lb.wallet.GetTransactionIds(callOpts, new(big.Int), count, true, false)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list transaction ids: %v", ErrBackendUnreachable, err)
	}

	// getTransactionIds pads its result to the requested width with zero
	// ids, so the same id can appear more than once when fewer than count
	// transactions are pending.
	seen := make(map[uint64]bool, len(ids))
	pending := make([]PendingTransaction, 0, len(ids))
	for _, id := range ids {
		if id == nil || seen[id.Uint64()] {
			continue
		}
		seen[id.Uint64()] = true

		tx, err := lb.wallet.Transactions(callOpts, id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read transaction %s: %v", ErrBackendUnreachable, id.String(), err)
		}
		if tx.Executed || tx.Destination == (common.Address{}) {
			continue
		}
		pending = append(pending, PendingTransaction{
			Destination: tx.Destination,
			Data:        tx.Data,
			Sequence:    id.Uint64(),
		})
	}
	return pending, nil
}

// IsDuplicate asks the wallet contract directly. The contract matches on
// destination and call data against its own pending set, so the supplied
// listing is not consulted and no sequence tie-break applies: the wallet
// keeps at most one active proposal per call signature.
func (lb *LegacyBackend) IsDuplicate(ctx context.Context, _ []PendingTransaction, destination common.Address, data []byte) (bool, error) {
	duplicate, err := lb.wallet.HasPendingTransaction(&bind.CallOpts{Context: ctx}, destination, data)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check for pending transaction: %v", ErrBackendUnreachable, err)
	}
	return duplicate, nil
}

// Submit proposes the candidate on chain. The wallet records the proposal
// and counts the sender's confirmation in the same transaction, so success
// means a mined receipt rather than an off-chain acknowledgement.
func (lb *LegacyBackend) Submit(ctx context.Context, candidate *Candidate) (*Result, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}

	opts, err := lb.signer.GetTransactOpts(ctx, lb.cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build transact opts: %v", ErrSignatureFailure, err)
	}

	tx, err := lb.wallet.SubmitTransaction(opts, candidate.Destination, new(big.Int), candidate.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to submit to multisig wallet: %v", ErrSubmissionRejected, err)
	}

	receipt, err := bind.WaitMined(ctx, lb.client, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed waiting for confirmation of %s: %v", ErrBackendUnreachable, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", ErrSubmissionRejected, tx.Hash().Hex())
	}

	lb.logConfirmation(receipt)
	return &Result{Receipt: receipt}, nil
}

func (lb *LegacyBackend) logConfirmation(receipt *types.Receipt) {
	var transactionId *big.Int
	for _, log := range receipt.Logs {
		submission, err := lb.wallet.ParseSubmission(*log)
		if err != nil {
			continue
		}
		transactionId = submission.TransactionId
		break
	}

	if transactionId != nil {
		lb.logger.Sugar().Infow("Transaction confirmed",
			zap.String("txHash", receipt.TxHash.Hex()),
			zap.Uint64("gasUsed", receipt.GasUsed),
			zap.String("transactionId", transactionId.String()),
		)
		return
	}
	lb.logger.Sugar().Infow("Transaction confirmed",
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
}
