package util

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressFromECDSAPrivateKeyString(t *testing.T) {
	// Well-known anvil account 0
	const anvilKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	addr, err := DeriveAddressFromECDSAPrivateKeyString(anvilKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), addr)

	// The 0x prefix is optional
	addr2, err := DeriveAddressFromECDSAPrivateKeyString(anvilKey[2:])
	require.NoError(t, err)
	assert.Equal(t, addr, addr2)

	_, err = DeriveAddressFromECDSAPrivateKeyString("not-a-key")
	require.Error(t, err)
}

func TestAreAddressesEqual(t *testing.T) {
	assert.True(t, AreAddressesEqual(
		"0xabcdef1234567890abcdef1234567890abcdef12",
		"0xABCDEF1234567890ABCDEF1234567890ABCDEF12",
	))
	assert.False(t, AreAddressesEqual(
		"0xabcdef1234567890abcdef1234567890abcdef12",
		"0x1234567890123456789012345678901234567890",
	))
}

func TestMap(t *testing.T) {
	addrs := Map([]string{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
	}, func(s string, _ uint64) common.Address {
		return common.HexToAddress(s)
	})

	require.Len(t, addrs, 2)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), addrs[0])
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), addrs[1])

	assert.Empty(t, Map([]string{}, func(s string, _ uint64) common.Address {
		return common.HexToAddress(s)
	}))
}

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)

	none := Filter([]int{1, 3, 5}, func(v int) bool { return v%2 == 0 })
	assert.Empty(t, none)
}
