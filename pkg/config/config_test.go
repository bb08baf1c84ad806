package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StagerConfig {
	return &StagerConfig{
		ChainID:    ChainId_EthereumSepolia,
		RpcUrl:     "http://localhost:8545",
		SignerKind: "direct",
		NewOwner:   "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Contracts:  []string{"0x5FbDB2315678afecb367f032d93F642f64180aa3"},
		PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	}
}

func TestStagerConfigValidate(t *testing.T) {
	t.Run("valid config passes and resolves chain name", func(t *testing.T) {
		c := validConfig()
		require.NoError(t, c.Validate())
		assert.Equal(t, ChainName_EthereumSepolia, c.ChainName)
	})

	t.Run("missing rpc url", func(t *testing.T) {
		c := validConfig()
		c.RpcUrl = ""
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rpcUrl")
	})

	t.Run("unsupported chain id", func(t *testing.T) {
		c := validConfig()
		c.ChainID = ChainId(99999)
		require.Error(t, c.Validate())
	})

	t.Run("bad new owner address", func(t *testing.T) {
		c := validConfig()
		c.NewOwner = "0x123"
		require.Error(t, c.Validate())
	})

	t.Run("empty contract batch", func(t *testing.T) {
		c := validConfig()
		c.Contracts = nil
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contracts")
	})

	t.Run("bad contract address reports index", func(t *testing.T) {
		c := validConfig()
		c.Contracts = append(c.Contracts, "not-an-address")
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contracts[1]")
	})

	t.Run("missing signing credentials", func(t *testing.T) {
		c := validConfig()
		c.PrivateKey = ""
		require.Error(t, c.Validate())
	})

	t.Run("conflicting signing credentials", func(t *testing.T) {
		c := validConfig()
		c.KMSKeyID = "alias/stager"
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}

func TestTransactionServiceUrl(t *testing.T) {
	c := validConfig()

	url, err := c.TransactionServiceUrl()
	require.NoError(t, err)
	assert.Equal(t, "https://safe-transaction-sepolia.safe.global", url)

	c.ServiceUrl = "http://localhost:8000"
	url, err = c.TransactionServiceUrl()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", url)

	c.ServiceUrl = ""
	c.ChainID = ChainId_EthereumAnvil
	_, err = c.TransactionServiceUrl()
	require.Error(t, err)
}
