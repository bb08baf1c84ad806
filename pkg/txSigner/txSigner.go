// Package txSigner provides Ethereum signing for staging sessions.
// This package defines interfaces and implementations for producing transaction
// options and raw hash signatures using either a local private key or an
// AWS KMS-held key.
package txSigner

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ITransactionSigner defines the interface for signing on behalf of the
// session wallet. Implementations provide transaction options for use with
// go-ethereum contract bindings as well as raw digest signing for
// coordination-service proposals.
type ITransactionSigner interface {
	// GetTransactOpts returns bind.TransactOpts configured for the signer.
	// The returned TransactOpts contains the necessary authentication and
	// signing configuration for submitting transactions to the specified chain.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - chainID: The chain ID for the target blockchain
	//
	// Returns:
	//   - *bind.TransactOpts: Configured transaction options for the signer
	//   - error: An error if transaction options cannot be created
	GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)

	// SignHash signs a 32-byte digest and returns a 65-byte [R || S || V]
	// signature with V in {27, 28}. This is the signature form expected by
	// Safe-style owner signature checks.
	SignHash(ctx context.Context, hash [32]byte) ([]byte, error)

	// GetAddress returns the Ethereum address associated with this signer.
	// This address will be used as the 'from' field in transactions and as
	// the proposal sender.
	GetAddress() (common.Address, error)
}

var (
	_ ITransactionSigner = (*PrivateKeySigner)(nil)
	_ ITransactionSigner = (*AWSKMSSigner)(nil)
)
