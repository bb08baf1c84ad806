package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecordRoundTrip(t *testing.T) {
	record := &Record{
		Id:         "rec-1",
		StagedAt:   1700000000,
		SignerKind: "coordinated",
		Network:    "sepolia",
		Contract:   "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		NewOwner:   "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Outcome:    OutcomeStaged,
		SafeTxHash: "0xabc",
		Sequence:   4,
	}

	data, err := MarshalRecord(record)
	require.NoError(t, err)

	loaded, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestMarshalRecord_Nil(t *testing.T) {
	_, err := MarshalRecord(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil Record")
}

func TestUnmarshalRecord_Empty(t *testing.T) {
	_, err := UnmarshalRecord(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty data")
}

func TestUnmarshalRecord_Invalid(t *testing.T) {
	_, err := UnmarshalRecord([]byte("not json"))
	require.Error(t, err)
}

func TestPrepareRecord(t *testing.T) {
	t.Run("fills id and timestamp", func(t *testing.T) {
		record := &Record{Outcome: OutcomeSubmitted}

		stored, err := PrepareRecord(record)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.Id)
		assert.NotZero(t, stored.StagedAt)

		// Input is left untouched
		assert.Empty(t, record.Id)
		assert.Zero(t, record.StagedAt)
	})

	t.Run("keeps provided id and timestamp", func(t *testing.T) {
		record := &Record{Id: "rec-1", StagedAt: 42, Outcome: OutcomeFailed}

		stored, err := PrepareRecord(record)
		require.NoError(t, err)
		assert.Equal(t, "rec-1", stored.Id)
		assert.Equal(t, int64(42), stored.StagedAt)
	})

	t.Run("rejects nil and missing outcome", func(t *testing.T) {
		_, err := PrepareRecord(nil)
		require.Error(t, err)

		_, err = PrepareRecord(&Record{})
		require.Error(t, err)
	})
}
