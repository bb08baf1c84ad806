// Package staging decides how ownership-transfer transactions reach the
// chain. A session picks one SignerKind at startup and every operation
// routes through that backend's protocol: Safe proposals queued with an
// off-chain coordination service, submissions to an on-chain MultiSigWallet,
// or direct execution from a single-key wallet.
package staging

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/multisig-stager-go/pkg/clients/safeservice"
	"github.com/Layr-Labs/multisig-stager-go/pkg/multisig-bindings/GnosisSafe"
	"github.com/Layr-Labs/multisig-stager-go/pkg/multisig-bindings/MultiSigWallet"
	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Backend is the protocol a session stages transactions through. Exactly one
// implementation is active per session. Implementations are not safe for
// concurrent submissions; callers serialize calls per backend.
type Backend interface {
	// Kind returns the SignerKind this backend implements.
	Kind() SignerKind

	// ListPending returns the staged-but-unexecuted transactions currently
	// known to the backend. The result is fetched fresh on every call
	// because other signers may stage or execute transactions between
	// calls.
	ListPending(ctx context.Context) ([]PendingTransaction, error)

	// IsDuplicate reports whether an equivalent transaction for the given
	// destination and call data is already staged, honoring the backend's
	// matching rules.
	IsDuplicate(ctx context.Context, pending []PendingTransaction, destination common.Address, data []byte) (bool, error)

	// Submit constructs, signs, and submits the candidate through the
	// backend's protocol. Failures are never retried internally.
	Submit(ctx context.Context, candidate *Candidate) (*Result, error)
}

// ContractBackend is the chain RPC surface the backends need: contract
// reads, transaction submission, and receipt retrieval.
type ContractBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// SafeContract is the read surface of the coordinating Safe contract.
// Satisfied by GnosisSafe.GnosisSafeCaller.
type SafeContract interface {
	Nonce(opts *bind.CallOpts) (*big.Int, error)
	DomainSeparator(opts *bind.CallOpts) ([32]byte, error)
	GetTransactionHash(opts *bind.CallOpts, to common.Address, value *big.Int, data []byte, operation uint8, safeTxGas *big.Int, baseGas *big.Int, gasPrice *big.Int, gasToken common.Address, refundReceiver common.Address, _nonce *big.Int) ([32]byte, error)
}

// LegacyWalletContract is the surface of the on-chain MultiSigWallet the
// legacy backend uses. Satisfied by MultiSigWallet.MultiSigWallet.
type LegacyWalletContract interface {
	TransactionCount(opts *bind.CallOpts) (*big.Int, error)
	GetTransactionIds(opts *bind.CallOpts, from *big.Int, to *big.Int, pending bool, executed bool) ([]*big.Int, error)
	Transactions(opts *bind.CallOpts, arg0 *big.Int) (struct {
		Destination common.Address
		Value       *big.Int
		Data        []byte
		Executed    bool
	}, error)
	HasPendingTransaction(opts *bind.CallOpts, destination common.Address, data []byte) (bool, error)
	SubmitTransaction(opts *bind.TransactOpts, destination common.Address, value *big.Int, data []byte) (*types.Transaction, error)
	ParseSubmission(log types.Log) (*MultiSigWallet.MultiSigWalletSubmission, error)
}

// Config carries the session parameters fixed at backend construction.
type Config struct {
	// Kind selects the backend variant.
	Kind SignerKind

	// ChainID identifies the target chain for transaction signing.
	ChainID *big.Int

	// SafeAddress is the coordinating Safe contract. Coordinated only.
	SafeAddress common.Address

	// WalletAddress is the legacy MultiSigWallet contract. Legacy only.
	WalletAddress common.Address

	// GasPriceGwei is an optional human-readable gas price applied to
	// direct submissions. Empty leaves gas pricing to the node.
	GasPriceGwei string

	// GasLimit is an optional explicit gas limit for direct submissions.
	// Zero leaves estimation to the node.
	GasLimit uint64

	// Fork indicates submission targets a local forked network. The
	// coordinated backend bypasses the coordination service and executes
	// directly in fork mode.
	Fork bool
}

func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.ChainID == nil {
		return fmt.Errorf("chain ID is required")
	}
	return nil
}

// NewBackend builds the backend for cfg.Kind. Unrecognized kinds fail with
// ErrUnsupportedSignerKind; no kind silently falls through to direct
// execution.
func NewBackend(
	ctx context.Context,
	cfg *Config,
	client ContractBackend,
	service safeservice.IClient,
	signer txSigner.ITransactionSigner,
	logger *zap.Logger,
) (Backend, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("contract backend is required")
	}
	if signer == nil {
		return nil, fmt.Errorf("transaction signer is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	switch cfg.Kind {
	case KindCoordinated:
		safe, err := GnosisSafe.NewGnosisSafeCaller(cfg.SafeAddress, client)
		if err != nil {
			return nil, fmt.Errorf("failed to create safe contract instance: %w", err)
		}
		return NewCoordinatedBackend(ctx, cfg, client, service, signer, safe, logger)
	case KindLegacy:
		wallet, err := MultiSigWallet.NewMultiSigWallet(cfg.WalletAddress, client)
		if err != nil {
			return nil, fmt.Errorf("failed to create multisig wallet contract instance: %w", err)
		}
		return NewLegacyBackend(cfg, client, wallet, signer, logger)
	case KindDirect:
		return NewDirectBackend(cfg, client, signer, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSignerKind, cfg.Kind)
	}
}
