package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/Layr-Labs/multisig-stager-go/pkg/clients/safeservice"
)

// RecordedProposal captures one ProposeTransaction call.
type RecordedProposal struct {
	SafeAddress string
	Proposal    safeservice.TransactionProposal
}

// MockCoordinationService implements safeservice.IClient for testing. Queued
// transactions are seeded per safe address; accepted proposals are recorded
// and become visible to subsequent pending listings, the way the real
// service behaves.
type MockCoordinationService struct {
	mu sync.Mutex

	pending   map[string][]safeservice.MultisigTransaction
	proposals []RecordedProposal

	// ListErr fails GetPendingTransactions when set.
	ListErr error

	// ProposeErr fails ProposeTransaction when set.
	ProposeErr error
}

var _ safeservice.IClient = (*MockCoordinationService)(nil)

func NewMockCoordinationService() *MockCoordinationService {
	return &MockCoordinationService{
		pending: make(map[string][]safeservice.MultisigTransaction),
	}
}

func (m *MockCoordinationService) SetHttpClient(client *http.Client) {}

// AddPendingTransaction seeds a queued transaction for a safe.
func (m *MockCoordinationService) AddPendingTransaction(safeAddress string, tx safeservice.MultisigTransaction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(safeAddress)
	m.pending[key] = append(m.pending[key], tx)
}

func (m *MockCoordinationService) GetPendingTransactions(ctx context.Context, safeAddress string) ([]safeservice.MultisigTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]safeservice.MultisigTransaction{}, m.pending[strings.ToLower(safeAddress)]...), nil
}

func (m *MockCoordinationService) GetMultisigTransaction(ctx context.Context, safeTxHash string) (*safeservice.MultisigTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, queue := range m.pending {
		for _, tx := range queue {
			if strings.EqualFold(tx.SafeTxHash, safeTxHash) {
				found := tx
				return &found, nil
			}
		}
	}
	return nil, &safeservice.StatusError{StatusCode: http.StatusNotFound, Body: "Not found"}
}

func (m *MockCoordinationService) ProposeTransaction(ctx context.Context, safeAddress string, proposal *safeservice.TransactionProposal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ProposeErr != nil {
		return m.ProposeErr
	}

	m.proposals = append(m.proposals, RecordedProposal{
		SafeAddress: safeAddress,
		Proposal:    *proposal,
	})

	key := strings.ToLower(safeAddress)
	m.pending[key] = append(m.pending[key], safeservice.MultisigTransaction{
		Safe:       safeAddress,
		To:         proposal.To,
		Value:      proposal.Value,
		Data:       proposal.Data,
		Operation:  proposal.Operation,
		Nonce:      proposal.Nonce,
		SafeTxHash: proposal.ContractTransactionHash,
		Proposer:   proposal.Sender,
	})
	return nil
}

// Proposals returns the accepted proposals in submission order.
func (m *MockCoordinationService) Proposals() []RecordedProposal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedProposal{}, m.proposals...)
}
