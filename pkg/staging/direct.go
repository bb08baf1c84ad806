package staging

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// DirectBackend executes candidates immediately from a single-key wallet.
// There is no staging concept: nothing is ever pending and nothing
// deduplicates.
type DirectBackend struct {
	cfg    *Config
	client ContractBackend
	signer txSigner.ITransactionSigner
	logger *zap.Logger
}

var _ Backend = (*DirectBackend)(nil)

func NewDirectBackend(
	cfg *Config,
	client ContractBackend,
	signer txSigner.ITransactionSigner,
	logger *zap.Logger,
) (*DirectBackend, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &DirectBackend{
		cfg:    cfg,
		client: client,
		signer: signer,
		logger: logger,
	}, nil
}

func (db *DirectBackend) Kind() SignerKind {
	return KindDirect
}

func (db *DirectBackend) ListPending(ctx context.Context) ([]PendingTransaction, error) {
	return []PendingTransaction{}, nil
}

func (db *DirectBackend) IsDuplicate(ctx context.Context, pending []PendingTransaction, destination common.Address, data []byte) (bool, error) {
	return false, nil
}

func (db *DirectBackend) Submit(ctx context.Context, candidate *Candidate) (*Result, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	receipt, err := submitDirect(ctx, db.client, db.signer, db.cfg, candidate, db.logger)
	if err != nil {
		return nil, err
	}
	return &Result{Receipt: receipt}, nil
}

// submitDirect sends the candidate as a plain transaction from the signer's
// wallet and waits for it to mine. Also used by the coordinated backend in
// fork mode, where the coordination service must be bypassed. Gas price is
// converted from gwei when configured; gas limit is attached only when
// explicitly provided, otherwise estimation is left to the node.
func submitDirect(
	ctx context.Context,
	client ContractBackend,
	signer txSigner.ITransactionSigner,
	cfg *Config,
	candidate *Candidate,
	logger *zap.Logger,
) (*types.Receipt, error) {
	opts, err := signer.GetTransactOpts(ctx, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build transact opts: %v", ErrSignatureFailure, err)
	}
	opts.Value = new(big.Int)

	if cfg.GasPriceGwei != "" {
		gasPrice, err := util.GweiToWei(cfg.GasPriceGwei)
		if err != nil {
			return nil, fmt.Errorf("invalid gas price %q: %w", cfg.GasPriceGwei, err)
		}
		opts.GasPrice = gasPrice
	}
	if cfg.GasLimit > 0 {
		opts.GasLimit = cfg.GasLimit
	}

	contract := bind.NewBoundContract(candidate.Destination, abi.ABI{}, nil, client, nil)
	tx, err := contract.RawTransact(opts, candidate.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send transaction: %v", ErrSubmissionRejected, err)
	}

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed waiting for confirmation of %s: %v", ErrBackendUnreachable, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", ErrSubmissionRejected, tx.Hash().Hex())
	}

	logger.Sugar().Infow("Transaction confirmed",
		zap.String("destination", candidate.Destination.Hex()),
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return receipt, nil
}
