package safeservice

import (
	"context"
	"net/http"
)

// IClient defines the interface for interacting with a Safe Transaction
// Service. The interface abstracts the HTTP client implementation to allow
// for easier testing and potential alternative implementations.
type IClient interface {
	// SetHttpClient allows setting a custom HTTP client.
	// This is useful for testing or when custom HTTP client configuration is needed.
	SetHttpClient(client *http.Client)

	// GetPendingTransactions returns all not-yet-executed multisig transactions
	// queued for the Safe, following service pagination until exhausted.
	// Results are ordered by ascending nonce.
	GetPendingTransactions(ctx context.Context, safeAddress string) ([]MultisigTransaction, error)

	// GetMultisigTransaction fetches a single multisig transaction by its
	// Safe transaction hash.
	GetMultisigTransaction(ctx context.Context, safeTxHash string) (*MultisigTransaction, error)

	// ProposeTransaction submits a signed transaction proposal to the service
	// so that the remaining owners can confirm it. The proposal is queued
	// off-chain; nothing reaches the chain until the threshold is met and an
	// owner executes.
	ProposeTransaction(ctx context.Context, safeAddress string, proposal *TransactionProposal) error
}

// Compile-time check to ensure Client implements IClient
var _ IClient = (*Client)(nil)
