package staging

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSafeTransactionHash(t *testing.T) {
	zero := new(big.Int)

	t.Run("matches the reference encoding", func(t *testing.T) {
		hash := ComputeSafeTransactionHash(
			testDomainSeparator(),
			testTargetContract,
			zero,
			transferCalldata(t, testNewOwner),
			operationCall,
			zero,
			zero,
			zero,
			common.Address{},
			common.Address{},
			big.NewInt(4),
		)
		require.Equal(t, "0x346c7c3ab93aac53d4cf62c56f59142a5a91145329b10f52ce032d8e107a7cd6", hash.Hex())
	})

	t.Run("treats nil amounts as zero", func(t *testing.T) {
		data := transferCalldata(t, testNewOwner)
		explicit := ComputeSafeTransactionHash(
			testDomainSeparator(), testTargetContract, zero, data, operationCall,
			zero, zero, zero, common.Address{}, common.Address{}, big.NewInt(4),
		)
		implicit := ComputeSafeTransactionHash(
			testDomainSeparator(), testTargetContract, nil, data, operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(4),
		)
		assert.Equal(t, explicit, implicit)
	})

	t.Run("changes with every bound parameter", func(t *testing.T) {
		data := transferCalldata(t, testNewOwner)
		base := ComputeSafeTransactionHash(
			testDomainSeparator(), testTargetContract, nil, data, operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(4),
		)

		differentNonce := ComputeSafeTransactionHash(
			testDomainSeparator(), testTargetContract, nil, data, operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(5),
		)
		assert.NotEqual(t, base, differentNonce)

		differentData := ComputeSafeTransactionHash(
			testDomainSeparator(), testTargetContract, nil, transferCalldata(t, testSafeAddress), operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(4),
		)
		assert.NotEqual(t, base, differentData)

		differentDestination := ComputeSafeTransactionHash(
			testDomainSeparator(), testNewOwner, nil, data, operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(4),
		)
		assert.NotEqual(t, base, differentDestination)

		differentDomain := ComputeSafeTransactionHash(
			[32]byte{0x01}, testTargetContract, nil, data, operationCall,
			nil, nil, nil, common.Address{}, common.Address{}, big.NewInt(4),
		)
		assert.NotEqual(t, base, differentDomain)
	})
}
