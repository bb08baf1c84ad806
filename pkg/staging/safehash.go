package staging

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// safeTxTypehash is keccak256 of the SafeTx EIP-712 type string:
// "SafeTx(address to,uint256 value,bytes data,uint8 operation,uint256
// safeTxGas,uint256 baseGas,uint256 gasPrice,address gasToken,address
// refundReceiver,uint256 nonce)".
var safeTxTypehash = common.HexToHash("0xbb8310d486368db6bd6f849402fdd73ad53d316b5a4b2644ad6efe0f941286d8")

// ComputeSafeTransactionHash reproduces GnosisSafe.getTransactionHash off
// chain: keccak256(0x19 || 0x01 || domainSeparator || structHash) over the
// EIP-712 encoding of the transaction parameters. Nil big.Int arguments are
// treated as zero.
func ComputeSafeTransactionHash(
	domainSeparator [32]byte,
	to common.Address,
	value *big.Int,
	data []byte,
	operation uint8,
	safeTxGas *big.Int,
	baseGas *big.Int,
	gasPrice *big.Int,
	gasToken common.Address,
	refundReceiver common.Address,
	nonce *big.Int,
) common.Hash {
	encoded := make([]byte, 0, 11*32)
	encoded = append(encoded, safeTxTypehash.Bytes()...)
	encoded = append(encoded, addressWord(to)...)
	encoded = append(encoded, uint256Word(value)...)
	encoded = append(encoded, crypto.Keccak256(data)...)
	encoded = append(encoded, uint256Word(new(big.Int).SetUint64(uint64(operation)))...)
	encoded = append(encoded, uint256Word(safeTxGas)...)
	encoded = append(encoded, uint256Word(baseGas)...)
	encoded = append(encoded, uint256Word(gasPrice)...)
	encoded = append(encoded, addressWord(gasToken)...)
	encoded = append(encoded, addressWord(refundReceiver)...)
	encoded = append(encoded, uint256Word(nonce)...)
	structHash := crypto.Keccak256(encoded)

	return common.BytesToHash(crypto.Keccak256([]byte{0x19, 0x01}, domainSeparator[:], structHash))
}

func uint256Word(v *big.Int) []byte {
	word := make([]byte, 32)
	if v != nil {
		v.FillBytes(word)
	}
	return word
}

func addressWord(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}
