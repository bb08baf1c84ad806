package util

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"
)

func FuzzTransferOwnershipCalldataRoundTrip(f *testing.F) {
	f.Add(make([]byte, 20))
	f.Add([]byte("01234567890123456789"))

	// ABI codec for a single address parameter.
	addressType, _ := abi.NewType("address", "", nil)
	args := abi.Arguments{{Type: addressType}}

	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) < 20 {
			return
		}
		owner := common.BytesToAddress(b[:20])

		data, err := TransferOwnershipCalldata(owner)
		require.NoError(t, err)

		// 4-byte selector plus one ABI word.
		require.Len(t, data, 4+32)

		// Round-trip decode the argument and compare.
		out, err := args.Unpack(data[4:])
		require.NoError(t, err)
		require.Len(t, out, 1)

		decoded, ok := out[0].(common.Address)
		require.True(t, ok)
		require.Equal(t, owner, decoded)
	})
}

func FuzzGweiToWeiIntegerAmounts(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(20))
	f.Add(uint64(1_000_000))

	f.Fuzz(func(t *testing.T, gwei uint64) {
		wei, err := GweiToWei(new(big.Int).SetUint64(gwei).String())
		require.NoError(t, err)

		expected := new(big.Int).Mul(new(big.Int).SetUint64(gwei), big.NewInt(params.GWei))
		require.Equal(t, 0, expected.Cmp(wei))
	})
}
