package staging

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/Layr-Labs/multisig-stager-go/pkg/journal"
	"github.com/Layr-Labs/multisig-stager-go/pkg/journal/memory"
	"github.com/Layr-Labs/multisig-stager-go/pkg/testutil"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testNetwork = "sepolia"

var (
	sessionTargetA = common.HexToAddress("0xaaaa00000000000000000000000000000000aaaa")
	sessionTargetB = common.HexToAddress("0xbbbb00000000000000000000000000000000bbbb")
)

// findRecordByContract looks a journal record up by target contract. Records
// appended within the same second sort nondeterministically, so tests match
// on contract rather than position.
func findRecordByContract(t *testing.T, records []*journal.Record, contract common.Address) *journal.Record {
	t.Helper()
	for _, record := range records {
		if record.Contract == contract.Hex() {
			return record
		}
	}
	t.Fatalf("no journal record for contract %s", contract.Hex())
	return nil
}

type sessionFixture struct {
	client  *testutil.MockContractBackend
	journal *memory.MemoryJournal
	session *Session
}

// newDirectSessionFixture builds a session over a direct backend whose
// owner() reads report a third-party owner for every contract.
func newDirectSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	client := testutil.NewMockContractBackend()
	client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{
		sessionTargetA: testWalletAddress,
		sessionTargetB: testWalletAddress,
	})

	backend, err := NewDirectBackend(newDirectConfig(), client, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	jrnl := memory.NewMemoryJournal()
	t.Cleanup(func() { _ = jrnl.Close() })

	session, err := NewSession(backend, client, jrnl, testNetwork, zaptest.NewLogger(t))
	require.NoError(t, err)
	return &sessionFixture{client: client, journal: jrnl, session: session}
}

func TestSessionStagesBatch(t *testing.T) {
	f := newDirectSessionFixture(t)

	outcomes, err := f.session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA, sessionTargetB}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	for i, target := range []common.Address{sessionTargetA, sessionTargetB} {
		assert.Equal(t, target, outcomes[i].Contract)
		assert.Equal(t, journal.OutcomeSubmitted, outcomes[i].Outcome)
		require.NotNil(t, outcomes[i].Result)
		require.NotNil(t, outcomes[i].Result.Receipt)
		assert.NoError(t, outcomes[i].Err)
	}
	assert.Len(t, f.client.SentTransactions(), 2)

	records, err := f.journal.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, KindDirect.String(), record.SignerKind)
		assert.Equal(t, testNetwork, record.Network)
		assert.Equal(t, testNewOwner.Hex(), record.NewOwner)
		assert.Equal(t, journal.OutcomeSubmitted, record.Outcome)
		assert.NotEmpty(t, record.TxHash)
		assert.NotZero(t, record.GasUsed)
	}
}

func TestSessionSkipsAlreadyOwned(t *testing.T) {
	f := newDirectSessionFixture(t)
	f.client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{
		sessionTargetA: testNewOwner,
		sessionTargetB: testWalletAddress,
	})

	outcomes, err := f.session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA, sessionTargetB}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, journal.OutcomeSkippedOwned, outcomes[0].Outcome)
	assert.Nil(t, outcomes[0].Result)
	assert.Equal(t, journal.OutcomeSubmitted, outcomes[1].Outcome)

	// Only the second contract produced a transaction.
	assert.Len(t, f.client.SentTransactions(), 1)

	records, err := f.journal.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	skipped := findRecordByContract(t, records, sessionTargetA)
	assert.Equal(t, journal.OutcomeSkippedOwned, skipped.Outcome)
	assert.Empty(t, skipped.TxHash)
}

func TestSessionOwnerPrecheckIsAdvisory(t *testing.T) {
	f := newDirectSessionFixture(t)
	f.client.CallContractFn = func(call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		return nil, errors.New("execution reverted")
	}

	outcomes, err := f.session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, journal.OutcomeSubmitted, outcomes[0].Outcome)
}

func TestSessionSkipsDuplicates(t *testing.T) {
	client := testutil.NewMockContractBackend()
	client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{})

	wallet := testutil.NewMockLegacyWallet(testWalletAddress, client)
	backend, err := NewLegacyBackend(newLegacyConfig(), client, wallet, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	// An equivalent transfer for target B is already pending on the wallet.
	calldata := transferCalldata(t, testNewOwner)
	wallet.AddTransaction(sessionTargetB, nil, calldata, false)

	jrnl := memory.NewMemoryJournal()
	t.Cleanup(func() { _ = jrnl.Close() })
	session, err := NewSession(backend, client, jrnl, testNetwork, zaptest.NewLogger(t))
	require.NoError(t, err)

	outcomes, err := session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA, sessionTargetB}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, journal.OutcomeSubmitted, outcomes[0].Outcome)
	assert.Equal(t, journal.OutcomeSkippedDuplicate, outcomes[1].Outcome)

	records, err := jrnl.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, journal.OutcomeSkippedDuplicate, findRecordByContract(t, records, sessionTargetB).Outcome)
}

func TestSessionContinuesPastFailures(t *testing.T) {
	client := testutil.NewMockContractBackend()
	client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{})

	wallet := testutil.NewMockLegacyWallet(testWalletAddress, client)
	wallet.SubmitErr = fmt.Errorf("execution reverted: not an owner")

	// Target B is already staged, so it resolves without submitting even
	// though submissions fail.
	calldata := transferCalldata(t, testNewOwner)
	wallet.AddTransaction(sessionTargetB, nil, calldata, false)

	backend, err := NewLegacyBackend(newLegacyConfig(), client, wallet, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	jrnl := memory.NewMemoryJournal()
	t.Cleanup(func() { _ = jrnl.Close() })
	session, err := NewSession(backend, client, jrnl, testNetwork, zaptest.NewLogger(t))
	require.NoError(t, err)

	outcomes, err := session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA, sessionTargetB}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, journal.OutcomeFailed, outcomes[0].Outcome)
	require.Error(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[0].Err, ErrSubmissionRejected)

	assert.Equal(t, journal.OutcomeSkippedDuplicate, outcomes[1].Outcome)

	records, err := jrnl.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	failed := findRecordByContract(t, records, sessionTargetA)
	assert.Equal(t, journal.OutcomeFailed, failed.Outcome)
	assert.Contains(t, failed.Error, "execution reverted")
}

func TestSessionJournalsCoordinatedProposals(t *testing.T) {
	client := testutil.NewMockContractBackend()
	client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{})
	service := testutil.NewMockCoordinationService()

	backend, err := NewCoordinatedBackend(
		context.Background(), newCoordinatedConfig(), client, service, newTestSigner(t), newMockSafeContract(3), zaptest.NewLogger(t),
	)
	require.NoError(t, err)

	jrnl := memory.NewMemoryJournal()
	t.Cleanup(func() { _ = jrnl.Close() })
	session, err := NewSession(backend, client, jrnl, testNetwork, zaptest.NewLogger(t))
	require.NoError(t, err)

	outcomes, err := session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA}, testNewOwner)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, journal.OutcomeStaged, outcomes[0].Outcome)

	records, err := jrnl.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, KindCoordinated.String(), records[0].SignerKind)
	assert.Equal(t, journal.OutcomeStaged, records[0].Outcome)
	assert.Equal(t, uint64(4), records[0].Sequence)
	assert.NotEmpty(t, records[0].SafeTxHash)
	assert.Empty(t, records[0].TxHash)
}

func TestSessionWithoutJournal(t *testing.T) {
	client := testutil.NewMockContractBackend()
	client.CallContractFn = ownerCallHandler(map[common.Address]common.Address{})

	backend, err := NewDirectBackend(newDirectConfig(), client, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	session, err := NewSession(backend, client, nil, testNetwork, zaptest.NewLogger(t))
	require.NoError(t, err)

	outcomes, err := session.StageOwnershipTransfers(context.Background(), []common.Address{sessionTargetA}, testNewOwner)
	require.NoError(t, err)
	assert.Equal(t, journal.OutcomeSubmitted, outcomes[0].Outcome)
}

func TestNewSessionValidation(t *testing.T) {
	client := testutil.NewMockContractBackend()
	backend, err := NewDirectBackend(newDirectConfig(), client, newTestSigner(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = NewSession(nil, client, nil, testNetwork, zaptest.NewLogger(t))
	assert.Error(t, err)

	_, err = NewSession(backend, nil, nil, testNetwork, zaptest.NewLogger(t))
	assert.Error(t, err)

	_, err = NewSession(backend, client, nil, testNetwork, nil)
	assert.Error(t, err)
}
