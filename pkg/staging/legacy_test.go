package staging

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Layr-Labs/multisig-stager-go/pkg/testutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type legacyFixture struct {
	client  *testutil.MockContractBackend
	wallet  *testutil.MockLegacyWallet
	backend *LegacyBackend
}

func newLegacyFixture(t *testing.T) *legacyFixture {
	t.Helper()

	client := testutil.NewMockContractBackend()
	wallet := testutil.NewMockLegacyWallet(testWalletAddress, client)
	backend, err := NewLegacyBackend(newLegacyConfig(), client, wallet, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	return &legacyFixture{client: client, wallet: wallet, backend: backend}
}

// seedWallet stores five transactions of which two are pending: id 1 is a
// transfer to testNewOwner on testTargetContract and id 3 targets another
// contract.
func seedWallet(t *testing.T, wallet *testutil.MockLegacyWallet) {
	t.Helper()

	other := common.HexToAddress("0x9999999999999999999999999999999999999999")
	wallet.AddTransaction(testTargetContract, nil, transferCalldata(t, testSafeAddress), true)
	wallet.AddTransaction(testTargetContract, nil, transferCalldata(t, testNewOwner), false)
	wallet.AddTransaction(other, nil, transferCalldata(t, testSafeAddress), true)
	wallet.AddTransaction(other, nil, transferCalldata(t, testNewOwner), false)
	wallet.AddTransaction(testWalletAddress, nil, []byte{0x01}, true)
}

func TestLegacyListPending(t *testing.T) {
	t.Run("returns pending entries with their ids", func(t *testing.T) {
		f := newLegacyFixture(t)
		seedWallet(t, f.wallet)

		pending, err := f.backend.ListPending(context.Background())
		require.NoError(t, err)
		require.Len(t, pending, 2)

		assert.Equal(t, testTargetContract, pending[0].Destination)
		assert.Equal(t, transferCalldata(t, testNewOwner), pending[0].Data)
		assert.Equal(t, uint64(1), pending[0].Sequence)

		assert.Equal(t, uint64(3), pending[1].Sequence)
	})

	t.Run("empty wallet yields an empty set", func(t *testing.T) {
		f := newLegacyFixture(t)

		pending, err := f.backend.ListPending(context.Background())
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("padded zero ids do not leak executed entries", func(t *testing.T) {
		f := newLegacyFixture(t)
		f.wallet.AddTransaction(testTargetContract, nil, transferCalldata(t, testNewOwner), true)
		f.wallet.AddTransaction(testTargetContract, nil, transferCalldata(t, testSafeAddress), true)

		pending, err := f.backend.ListPending(context.Background())
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("classifies read failures", func(t *testing.T) {
		backend, err := NewLegacyBackend(
			newLegacyConfig(),
			testutil.NewMockContractBackend(),
			&failingWallet{err: errors.New("connection refused")},
			newTestSigner(t),
			zaptest.NewLogger(t),
		)
		require.NoError(t, err)

		_, err = backend.ListPending(context.Background())
		assert.ErrorIs(t, err, ErrBackendUnreachable)
	})
}

func TestLegacyIsDuplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates matching to the wallet contract", func(t *testing.T) {
		f := newLegacyFixture(t)
		seedWallet(t, f.wallet)

		duplicate, err := f.backend.IsDuplicate(ctx, nil, testTargetContract, transferCalldata(t, testNewOwner))
		require.NoError(t, err)
		assert.True(t, duplicate)

		duplicate, err = f.backend.IsDuplicate(ctx, nil, testTargetContract, transferCalldata(t, testWalletAddress))
		require.NoError(t, err)
		assert.False(t, duplicate)

		novel := common.HexToAddress("0x7777777777777777777777777777777777777777")
		duplicate, err = f.backend.IsDuplicate(ctx, nil, novel, transferCalldata(t, testNewOwner))
		require.NoError(t, err)
		assert.False(t, duplicate)
	})

	t.Run("ignores the supplied pending set", func(t *testing.T) {
		f := newLegacyFixture(t)

		// The listing claims a match but the contract has none; the
		// contract wins.
		pending := []PendingTransaction{{Destination: testTargetContract, Data: transferCalldata(t, testNewOwner), Sequence: 1}}
		duplicate, err := f.backend.IsDuplicate(ctx, pending, testTargetContract, transferCalldata(t, testNewOwner))
		require.NoError(t, err)
		assert.False(t, duplicate)
	})

	t.Run("classifies contract failures", func(t *testing.T) {
		backend, err := NewLegacyBackend(
			newLegacyConfig(),
			testutil.NewMockContractBackend(),
			&failingWallet{err: errors.New("connection refused")},
			newTestSigner(t),
			zaptest.NewLogger(t),
		)
		require.NoError(t, err)

		_, err = backend.IsDuplicate(ctx, nil, testTargetContract, transferCalldata(t, testNewOwner))
		assert.ErrorIs(t, err, ErrBackendUnreachable)
	})
}

func TestLegacySubmit(t *testing.T) {
	f := newLegacyFixture(t)
	seedWallet(t, f.wallet)
	ctx := context.Background()

	novel := common.HexToAddress("0x7777777777777777777777777777777777777777")
	calldata := transferCalldata(t, testNewOwner)

	result, err := f.backend.Submit(ctx, &Candidate{Destination: novel, Data: calldata})
	require.NoError(t, err)
	require.NotNil(t, result.Receipt)
	assert.Nil(t, result.Staged)
	assert.Equal(t, types.ReceiptStatusSuccessful, result.Receipt.Status)
	assert.NotZero(t, result.Receipt.GasUsed)

	// The wallet assigned the next id and now reports the proposal as
	// pending.
	require.NotEmpty(t, result.Receipt.Logs)
	submission, err := f.wallet.ParseSubmission(*result.Receipt.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(5), submission.TransactionId.Uint64())

	duplicate, err := f.backend.IsDuplicate(ctx, nil, novel, calldata)
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestLegacySubmitFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates wallet refusals", func(t *testing.T) {
		f := newLegacyFixture(t)
		f.wallet.SubmitErr = errors.New("execution reverted")

		_, err := f.backend.Submit(ctx, &Candidate{Destination: testTargetContract, Data: transferCalldata(t, testNewOwner)})
		assert.ErrorIs(t, err, ErrSubmissionRejected)
	})

	t.Run("rejects reverted transactions", func(t *testing.T) {
		f := newLegacyFixture(t)
		f.wallet.FailReceipts = true

		_, err := f.backend.Submit(ctx, &Candidate{Destination: testTargetContract, Data: transferCalldata(t, testNewOwner)})
		assert.ErrorIs(t, err, ErrSubmissionRejected)
	})

	t.Run("classifies signing failures", func(t *testing.T) {
		client := testutil.NewMockContractBackend()
		backend, err := NewLegacyBackend(
			newLegacyConfig(),
			client,
			testutil.NewMockLegacyWallet(testWalletAddress, client),
			&failingSigner{},
			zaptest.NewLogger(t),
		)
		require.NoError(t, err)

		_, err = backend.Submit(ctx, &Candidate{Destination: testTargetContract, Data: transferCalldata(t, testNewOwner)})
		assert.ErrorIs(t, err, ErrSignatureFailure)
	})

	t.Run("rejects a nil candidate", func(t *testing.T) {
		f := newLegacyFixture(t)
		_, err := f.backend.Submit(ctx, nil)
		require.Error(t, err)
	})
}
