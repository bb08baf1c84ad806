package staging

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/Layr-Labs/multisig-stager-go/pkg/multisig-bindings/MultiSigWallet"
	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const (
	testChainID = 31337

	// Well-known anvil developer key, address
	// 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266.
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var (
	testTargetContract = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testNewOwner       = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testSafeAddress    = common.HexToAddress("0x4444444444444444444444444444444444444444")
	testWalletAddress  = common.HexToAddress("0x5555555555555555555555555555555555555555")

	ownerSelector     = []byte{0x8d, 0xa5, 0xcb, 0x5b}
	safeNonceSelector = []byte{0xaf, 0xfe, 0xd0, 0xe0}
)

// testDomainSeparator is keccak256("test domain").
func testDomainSeparator() [32]byte {
	return common.HexToHash("0x2c7d44d3fd76c549ea2c6fc53bfc6acc843d43ac4c8efc5b25a0ce2c4b45318e")
}

func newTestSigner(t *testing.T) *txSigner.PrivateKeySigner {
	t.Helper()
	signer, err := txSigner.NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)
	return signer
}

func transferCalldata(t *testing.T, newOwner common.Address) []byte {
	t.Helper()
	data, err := util.TransferOwnershipCalldata(newOwner)
	require.NoError(t, err)
	return data
}

func newCoordinatedConfig() *Config {
	return &Config{
		Kind:        KindCoordinated,
		ChainID:     big.NewInt(testChainID),
		SafeAddress: testSafeAddress,
	}
}

func newLegacyConfig() *Config {
	return &Config{
		Kind:          KindLegacy,
		ChainID:       big.NewInt(testChainID),
		WalletAddress: testWalletAddress,
	}
}

func newDirectConfig() *Config {
	return &Config{
		Kind:    KindDirect,
		ChainID: big.NewInt(testChainID),
	}
}

// mockSafeContract satisfies SafeContract with scripted responses. Hashes
// are computed with the same EIP-712 encoding a real safe uses.
type mockSafeContract struct {
	nonce           *big.Int
	nonceErr        error
	domainSeparator [32]byte
	dsErr           error
	hashErr         error

	// fixedHash, when set, is returned from GetTransactionHash instead of
	// the computed value.
	fixedHash *[32]byte
}

func newMockSafeContract(nonce uint64) *mockSafeContract {
	return &mockSafeContract{
		nonce:           new(big.Int).SetUint64(nonce),
		domainSeparator: testDomainSeparator(),
	}
}

func (m *mockSafeContract) Nonce(opts *bind.CallOpts) (*big.Int, error) {
	if m.nonceErr != nil {
		return nil, m.nonceErr
	}
	return m.nonce, nil
}

func (m *mockSafeContract) DomainSeparator(opts *bind.CallOpts) ([32]byte, error) {
	if m.dsErr != nil {
		return [32]byte{}, m.dsErr
	}
	return m.domainSeparator, nil
}

func (m *mockSafeContract) GetTransactionHash(
	opts *bind.CallOpts,
	to common.Address,
	value *big.Int,
	data []byte,
	operation uint8,
	safeTxGas *big.Int,
	baseGas *big.Int,
	gasPrice *big.Int,
	gasToken common.Address,
	refundReceiver common.Address,
	_nonce *big.Int,
) ([32]byte, error) {
	if m.hashErr != nil {
		return [32]byte{}, m.hashErr
	}
	if m.fixedHash != nil {
		return *m.fixedHash, nil
	}
	return ComputeSafeTransactionHash(m.domainSeparator, to, value, data, operation, safeTxGas, baseGas, gasPrice, gasToken, refundReceiver, _nonce), nil
}

// failingWallet satisfies LegacyWalletContract and errors on every call.
type failingWallet struct {
	err error
}

func (f *failingWallet) TransactionCount(opts *bind.CallOpts) (*big.Int, error) {
	return nil, f.err
}

func (f *failingWallet) GetTransactionIds(opts *bind.CallOpts, from *big.Int, to *big.Int, pending bool, executed bool) ([]*big.Int, error) {
	return nil, f.err
}

func (f *failingWallet) Transactions(opts *bind.CallOpts, arg0 *big.Int) (struct {
	Destination common.Address
	Value       *big.Int
	Data        []byte
	Executed    bool
}, error) {
	return struct {
		Destination common.Address
		Value       *big.Int
		Data        []byte
		Executed    bool
	}{}, f.err
}

func (f *failingWallet) HasPendingTransaction(opts *bind.CallOpts, destination common.Address, data []byte) (bool, error) {
	return false, f.err
}

func (f *failingWallet) SubmitTransaction(opts *bind.TransactOpts, destination common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	return nil, f.err
}

func (f *failingWallet) ParseSubmission(log types.Log) (*MultiSigWallet.MultiSigWalletSubmission, error) {
	return nil, f.err
}

// failingSigner errors on every operation.
type failingSigner struct{}

func (f *failingSigner) GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	return nil, fmt.Errorf("key handle revoked")
}

func (f *failingSigner) SignHash(ctx context.Context, hash [32]byte) ([]byte, error) {
	return nil, fmt.Errorf("key handle revoked")
}

func (f *failingSigner) GetAddress() (common.Address, error) {
	return common.Address{}, fmt.Errorf("key handle revoked")
}

// ownerCallHandler serves owner() reads from a fixed owner map and rejects
// every other call.
func ownerCallHandler(owners map[common.Address]common.Address) func(ethereum.CallMsg, *big.Int) ([]byte, error) {
	return func(call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		if len(call.Data) >= 4 && bytes.Equal(call.Data[:4], ownerSelector) {
			owner := owners[*call.To]
			return common.LeftPadBytes(owner.Bytes(), 32), nil
		}
		return nil, fmt.Errorf("unexpected call %x", call.Data)
	}
}

// safeNonceHandler serves nonce() reads for the safe contract binding.
func safeNonceHandler(nonce uint64) func(ethereum.CallMsg, *big.Int) ([]byte, error) {
	return func(call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		if len(call.Data) >= 4 && bytes.Equal(call.Data[:4], safeNonceSelector) {
			return uint256Word(new(big.Int).SetUint64(nonce)), nil
		}
		return nil, fmt.Errorf("unexpected call %x", call.Data)
	}
}
