package testutil

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MockContractBackend implements the go-ethereum bind backend interfaces
// (ContractBackend plus DeployBackend) without a chain. Sent transactions
// are recorded and immediately given a receipt, so bind.WaitMined returns on
// its first poll.
type MockContractBackend struct {
	mu sync.Mutex

	// PendingNonce is returned by PendingNonceAt.
	PendingNonce uint64

	// SuggestedGasPrice is returned by SuggestGasPrice.
	SuggestedGasPrice *big.Int

	// SuggestedGasTip is returned by SuggestGasTipCap.
	SuggestedGasTip *big.Int

	// BaseFee is set on headers returned by HeaderByNumber. Nil models a
	// pre-London chain, which steers bind toward legacy transactions.
	BaseFee *big.Int

	// EstimatedGas is returned by EstimateGas.
	EstimatedGas uint64

	// ReceiptStatus is the status given to receipts of sent transactions.
	ReceiptStatus uint64

	// SendErr fails SendTransaction when set.
	SendErr error

	// CallContractFn handles eth_call when set. Calls fail otherwise.
	CallContractFn func(call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

// NewMockContractBackend returns a backend with post-London defaults: a
// one gwei base fee and tip, pending nonce seven, and ninety thousand gas
// estimated per call.
func NewMockContractBackend() *MockContractBackend {
	return &MockContractBackend{
		PendingNonce:      7,
		SuggestedGasPrice: big.NewInt(2_000_000_000),
		SuggestedGasTip:   big.NewInt(1_000_000_000),
		BaseFee:           big.NewInt(1_000_000_000),
		EstimatedGas:      90_000,
		ReceiptStatus:     types.ReceiptStatusSuccessful,
		receipts:          make(map[common.Hash]*types.Receipt),
	}
}

func (m *MockContractBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (m *MockContractBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (m *MockContractBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	m.mu.Lock()
	fn := m.CallContractFn
	m.mu.Unlock()

	if fn == nil {
		return nil, fmt.Errorf("no call handler configured for %s", call.To.Hex())
	}
	return fn(call, blockNumber)
}

func (m *MockContractBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &types.Header{Number: big.NewInt(1), BaseFee: m.BaseFee}, nil
}

func (m *MockContractBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PendingNonce, nil
}

func (m *MockContractBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.SuggestedGasPrice), nil
}

func (m *MockContractBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.SuggestedGasTip), nil
}

func (m *MockContractBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.EstimatedGas, nil
}

// SendTransaction records the transaction and registers a receipt for it so
// a following TransactionReceipt lookup succeeds.
func (m *MockContractBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendErr != nil {
		return m.SendErr
	}

	m.sent = append(m.sent, tx)
	m.receipts[tx.Hash()] = &types.Receipt{
		Status:      m.ReceiptStatus,
		TxHash:      tx.Hash(),
		GasUsed:     tx.Gas(),
		BlockNumber: big.NewInt(1),
	}
	return nil
}

func (m *MockContractBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (m *MockContractBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, fmt.Errorf("log subscriptions are not supported by MockContractBackend")
}

func (m *MockContractBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	receipt, ok := m.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// RegisterReceipt installs a receipt for a transaction hash. Used by mocks
// that mint their own transactions instead of routing through
// SendTransaction.
func (m *MockContractBackend) RegisterReceipt(txHash common.Hash, receipt *types.Receipt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[txHash] = receipt
}

// SentTransactions returns the transactions passed to SendTransaction, in
// order.
func (m *MockContractBackend) SentTransactions() []*types.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*types.Transaction{}, m.sent...)
}

// LastSentTransaction returns the most recent transaction, or nil when
// nothing was sent.
func (m *MockContractBackend) LastSentTransaction() *types.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return nil
	}
	return m.sent[len(m.sent)-1]
}
