package util

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
)

// TransferOwnershipCalldata builds the calldata for transferOwnership(address).
func TransferOwnershipCalldata(newOwner common.Address) ([]byte, error) {
	// Define the ABI for a single address parameter
	addressType, _ := abi.NewType("address", "", nil)
	arguments := abi.Arguments{{Type: addressType}}

	encoded, err := arguments.Pack(newOwner)
	if err != nil {
		return nil, err
	}

	selector := crypto.Keccak256([]byte("transferOwnership(address)"))[:4]
	return append(selector, encoded...), nil
}

// GweiToWei converts a decimal gwei amount, given as a string, into wei.
// The amount must be non-negative and must not carry sub-wei precision.
func GweiToWei(gwei string) (*big.Int, error) {
	amount, ok := new(big.Rat).SetString(gwei)
	if !ok {
		return nil, fmt.Errorf("invalid gwei amount: %q", gwei)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("gwei amount cannot be negative: %q", gwei)
	}

	wei := new(big.Rat).Mul(amount, new(big.Rat).SetInt64(params.GWei))
	if !wei.IsInt() {
		return nil, fmt.Errorf("gwei amount %q has sub-wei precision", gwei)
	}
	return new(big.Int).Set(wei.Num()), nil
}
