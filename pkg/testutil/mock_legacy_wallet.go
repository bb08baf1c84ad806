package testutil

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"

	"github.com/Layr-Labs/multisig-stager-go/pkg/multisig-bindings/MultiSigWallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// submissionEventID is the topic hash of the wallet's Submission(uint256)
// event.
var submissionEventID = common.HexToHash("0xc0ba8fe4b176c1714197d43b9cc6bcf797a4a7461c5fe8d0ef6e184ae7601e51")

type walletTransaction struct {
	Destination common.Address
	Value       *big.Int
	Data        []byte
	Executed    bool
}

// MockLegacyWallet mimics an on-chain MultiSigWallet for testing, including
// the contract's quirk of padding getTransactionIds results to the requested
// width with zero ids. Submitted transactions are signed through the
// caller's TransactOpts and given a mined receipt carrying a Submission
// event, registered with the paired MockContractBackend.
type MockLegacyWallet struct {
	mu sync.Mutex

	address common.Address
	backend *MockContractBackend
	txs     []walletTransaction

	// SubmitErr fails SubmitTransaction when set.
	SubmitErr error

	// FailReceipts marks receipts for submitted transactions as reverted.
	FailReceipts bool
}

func NewMockLegacyWallet(address common.Address, backend *MockContractBackend) *MockLegacyWallet {
	return &MockLegacyWallet{
		address: address,
		backend: backend,
	}
}

// AddTransaction seeds a stored transaction and returns its id.
func (m *MockLegacyWallet) AddTransaction(destination common.Address, value *big.Int, data []byte, executed bool) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if value == nil {
		value = new(big.Int)
	}
	m.txs = append(m.txs, walletTransaction{
		Destination: destination,
		Value:       new(big.Int).Set(value),
		Data:        append([]byte{}, data...),
		Executed:    executed,
	})
	return uint64(len(m.txs) - 1)
}

func (m *MockLegacyWallet) TransactionCount(opts *bind.CallOpts) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return big.NewInt(int64(len(m.txs))), nil
}

// GetTransactionIds filters stored ids by pending/executed flags, then
// copies them into a result of width to-from. Slots past the matched count
// stay zero, matching the contract.
func (m *MockLegacyWallet) GetTransactionIds(opts *bind.CallOpts, from *big.Int, to *big.Int, pending bool, executed bool) ([]*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]uint64, 0, len(m.txs))
	for i, tx := range m.txs {
		if (pending && !tx.Executed) || (executed && tx.Executed) {
			matched = append(matched, uint64(i))
		}
	}

	ids := make([]*big.Int, 0, to.Int64()-from.Int64())
	for i := from.Int64(); i < to.Int64(); i++ {
		var id uint64
		if i >= 0 && i < int64(len(matched)) {
			id = matched[i]
		}
		ids = append(ids, new(big.Int).SetUint64(id))
	}
	return ids, nil
}

// Transactions returns the stored transaction for an id. Unknown ids return
// the zero struct, matching Solidity mapping reads.
func (m *MockLegacyWallet) Transactions(opts *bind.CallOpts, arg0 *big.Int) (struct {
	Destination common.Address
	Value       *big.Int
	Data        []byte
	Executed    bool
}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := struct {
		Destination common.Address
		Value       *big.Int
		Data        []byte
		Executed    bool
	}{Value: new(big.Int)}

	id := arg0.Int64()
	if id >= 0 && id < int64(len(m.txs)) {
		tx := m.txs[id]
		out.Destination = tx.Destination
		out.Value = new(big.Int).Set(tx.Value)
		out.Data = append([]byte{}, tx.Data...)
		out.Executed = tx.Executed
	}
	return out, nil
}

func (m *MockLegacyWallet) HasPendingTransaction(opts *bind.CallOpts, destination common.Address, data []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tx := range m.txs {
		if !tx.Executed && tx.Destination == destination && bytes.Equal(tx.Data, data) {
			return true, nil
		}
	}
	return false, nil
}

// SubmitTransaction stores the proposal, signs a transaction through the
// supplied TransactOpts, and registers a successful receipt whose logs carry
// the Submission event for the new id.
func (m *MockLegacyWallet) SubmitTransaction(opts *bind.TransactOpts, destination common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	m.mu.Lock()
	if m.SubmitErr != nil {
		err := m.SubmitErr
		m.mu.Unlock()
		return nil, err
	}
	if value == nil {
		value = new(big.Int)
	}
	m.txs = append(m.txs, walletTransaction{
		Destination: destination,
		Value:       new(big.Int).Set(value),
		Data:        append([]byte{}, data...),
	})
	transactionId := uint64(len(m.txs) - 1)
	nonce := uint64(len(m.txs))
	m.mu.Unlock()

	rawTx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &m.address,
		Value:    new(big.Int),
		Gas:      100_000,
		GasPrice: big.NewInt(1_000_000_000),
		Data:     data,
	})

	signed := rawTx
	if opts != nil && opts.Signer != nil {
		var err error
		signed, err = opts.Signer(opts.From, rawTx)
		if err != nil {
			return nil, err
		}
	}

	status := types.ReceiptStatusSuccessful
	if m.FailReceipts {
		status = types.ReceiptStatusFailed
	}
	if m.backend != nil {
		m.backend.RegisterReceipt(signed.Hash(), &types.Receipt{
			Status:      status,
			TxHash:      signed.Hash(),
			GasUsed:     64_021,
			BlockNumber: big.NewInt(1),
			Logs: []*types.Log{
				{
					Address: m.address,
					Topics:  []common.Hash{submissionEventID, common.BigToHash(new(big.Int).SetUint64(transactionId))},
					TxHash:  signed.Hash(),
				},
			},
		})
	}
	return signed, nil
}

func (m *MockLegacyWallet) ParseSubmission(log types.Log) (*MultiSigWallet.MultiSigWalletSubmission, error) {
	if len(log.Topics) < 2 || log.Topics[0] != submissionEventID {
		return nil, fmt.Errorf("log is not a Submission event")
	}
	return &MultiSigWallet.MultiSigWalletSubmission{
		TransactionId: new(big.Int).SetBytes(log.Topics[1].Bytes()),
		Raw:           log,
	}, nil
}
