package util

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Map applies a transformation function to each element of a slice and returns a new slice
// with the transformed values.
//
// Type Parameters:
//   - A: The type of elements in the input slice
//   - B: The type of elements in the output slice
//
// Parameters:
//   - coll: The input slice to transform
//   - mapper: Function that transforms each element and receives the element's index
//
// Returns:
//   - []B: A new slice containing the transformed elements
func Map[A any, B any](coll []A, mapper func(i A, index uint64) B) []B {
	out := make([]B, len(coll))
	for i, item := range coll {
		out[i] = mapper(item, uint64(i))
	}
	return out
}

// Filter returns a new slice containing only the elements that satisfy the criteria function.
func Filter[A any](coll []A, criteria func(i A) bool) []A {
	out := make([]A, 0)
	for _, item := range coll {
		if criteria(item) {
			out = append(out, item)
		}
	}
	return out
}

// StringToECDSAPrivateKey parses a hex-encoded secp256k1 private key.
// A leading 0x prefix is accepted and stripped.
func StringToECDSAPrivateKey(key string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(key, "0x")
	pk, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return pk, nil
}

// DeriveAddressFromECDSAPrivateKey returns the Ethereum address for a private key.
func DeriveAddressFromECDSAPrivateKey(pk *ecdsa.PrivateKey) (common.Address, error) {
	if pk == nil {
		return common.Address{}, fmt.Errorf("private key is nil")
	}
	return crypto.PubkeyToAddress(pk.PublicKey), nil
}

// DeriveAddressFromECDSAPrivateKeyString parses a hex private key and returns its address.
func DeriveAddressFromECDSAPrivateKeyString(key string) (common.Address, error) {
	pk, err := StringToECDSAPrivateKey(key)
	if err != nil {
		return common.Address{}, err
	}
	return DeriveAddressFromECDSAPrivateKey(pk)
}

// AreAddressesEqual compares two hex address strings case-insensitively.
func AreAddressesEqual(a string, b string) bool {
	return common.HexToAddress(a) == common.HexToAddress(b)
}
