package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for stager configuration
const (
	EnvStagerChainID        = "STAGER_CHAIN_ID"
	EnvStagerRPCURL         = "STAGER_RPC_URL"
	EnvStagerSignerKind     = "STAGER_SIGNER_KIND"
	EnvStagerSafeAddress    = "STAGER_SAFE_ADDRESS"
	EnvStagerWalletAddress  = "STAGER_WALLET_ADDRESS"
	EnvStagerNewOwner       = "STAGER_NEW_OWNER"
	EnvStagerContracts      = "STAGER_CONTRACTS"
	EnvStagerGasPriceGwei   = "STAGER_GAS_PRICE_GWEI"
	EnvStagerGasLimit       = "STAGER_GAS_LIMIT"
	EnvStagerFork           = "STAGER_FORK"
	EnvStagerPrivateKey     = "STAGER_PRIVATE_KEY"
	EnvStagerKMSKeyID       = "STAGER_KMS_KEY_ID"
	EnvStagerAWSRegion      = "STAGER_AWS_REGION"
	EnvStagerAWSProfile     = "STAGER_AWS_PROFILE"
	EnvStagerServiceURL     = "STAGER_SERVICE_URL"
	EnvStagerJournalBackend = "STAGER_JOURNAL_BACKEND"
	EnvStagerJournalDir     = "STAGER_JOURNAL_DIR"
	EnvStagerRedisURL       = "STAGER_REDIS_URL"
	EnvStagerVerbose        = "STAGER_VERBOSE"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_Gnosis          ChainId = 100
	ChainId_Base            ChainId = 8453
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_Gnosis          ChainName = "gnosis"
	ChainName_Base            ChainName = "base"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_Gnosis:          ChainName_Gnosis,
	ChainId_Base:            ChainName_Base,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_EthereumMainnet: ChainId_EthereumMainnet,
	ChainName_Gnosis:          ChainId_Gnosis,
	ChainName_Base:            ChainId_Base,
	ChainName_EthereumSepolia: ChainId_EthereumSepolia,
	ChainName_EthereumAnvil:   ChainId_EthereumAnvil,
}

// Safe Transaction Service base URLs by chain. Anvil has no hosted service;
// coordinated staging there needs an explicit URL override.
var transactionServiceUrls = map[ChainId]string{
	ChainId_EthereumMainnet: "https://safe-transaction-mainnet.safe.global",
	ChainId_Gnosis:          "https://safe-transaction-gnosis-chain.safe.global",
	ChainId_Base:            "https://safe-transaction-base.safe.global",
	ChainId_EthereumSepolia: "https://safe-transaction-sepolia.safe.global",
}

// GetTransactionServiceUrlForChainId returns the coordination service base URL for a chain
func GetTransactionServiceUrlForChainId(chainId ChainId) (string, error) {
	url, ok := transactionServiceUrls[chainId]
	if !ok {
		return "", fmt.Errorf("no transaction service for chain ID %d", chainId)
	}
	return url, nil
}

// GetReceiptTimeoutForChain returns how long to wait for a submitted
// transaction to mine before giving up on the receipt
func GetReceiptTimeoutForChain(chainId ChainId) time.Duration {
	switch chainId {
	case ChainId_EthereumMainnet:
		return 5 * time.Minute
	case ChainId_Gnosis, ChainId_Base, ChainId_EthereumSepolia:
		return 3 * time.Minute
	case ChainId_EthereumAnvil:
		// 2s blocks on local forks
		return 30 * time.Second
	default:
		return 5 * time.Minute
	}
}

// GetSupportedChainIDs returns all supported chain IDs
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_EthereumMainnet,
		ChainId_Gnosis,
		ChainId_Base,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (gnosis), %d (base), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_Gnosis, ChainId_Base, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}

// StagerConfig represents the complete configuration for a staging session
type StagerConfig struct {
	// Chain configuration
	ChainID   ChainId   `json:"chain_id"`
	ChainName ChainName `json:"chain_name"`
	RpcUrl    string    `json:"rpc_url"`

	// Backend selection
	SignerKind    string `json:"signer_kind"`    // coordinated, legacy or direct
	SafeAddress   string `json:"safe_address"`   // coordinated backend contract
	WalletAddress string `json:"wallet_address"` // legacy backend contract

	// Session inputs
	NewOwner  string   `json:"new_owner"`
	Contracts []string `json:"contracts"`

	// Gas overrides
	GasPriceGwei string `json:"gas_price_gwei,omitempty"`
	GasLimit     uint64 `json:"gas_limit,omitempty"`

	// Fork mode reroutes coordinated submissions straight to the chain
	Fork bool `json:"fork"`

	// Signing credentials (exactly one of the two)
	PrivateKey string `json:"private_key,omitempty"`
	KMSKeyID   string `json:"kms_key_id,omitempty"`
	AWSRegion  string `json:"aws_region,omitempty"`
	AWSProfile string `json:"aws_profile,omitempty"`

	// Coordination service override (defaults to the per-chain hosted service)
	ServiceUrl string `json:"service_url,omitempty"`

	// Journal settings
	JournalBackend string `json:"journal_backend,omitempty"` // memory, badger or redis
	JournalDir     string `json:"journal_dir,omitempty"`
	RedisUrl       string `json:"redis_url,omitempty"`

	// Operational settings
	Debug   bool `json:"debug"`
	Verbose bool `json:"verbose"`
}

// Validate validates the staging session configuration
func (c *StagerConfig) Validate() error {
	var allErrors field.ErrorList

	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpcUrl is required"))
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("chainId"), c.ChainID, []string{GetSupportedChainIDsString()}))
	} else {
		c.ChainName = chainName
	}

	if c.NewOwner == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("newOwner"), "newOwner is required"))
	} else if !common.IsHexAddress(c.NewOwner) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("newOwner"), c.NewOwner, "not a valid hex address"))
	}

	if len(c.Contracts) == 0 {
		allErrors = append(allErrors, field.Required(field.NewPath("contracts"), "at least one contract is required"))
	}
	for i, contract := range c.Contracts {
		if !common.IsHexAddress(contract) {
			allErrors = append(allErrors, field.Invalid(field.NewPath("contracts").Index(i), contract, "not a valid hex address"))
		}
	}

	if c.SafeAddress != "" && !common.IsHexAddress(c.SafeAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("safeAddress"), c.SafeAddress, "not a valid hex address"))
	}
	if c.WalletAddress != "" && !common.IsHexAddress(c.WalletAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("walletAddress"), c.WalletAddress, "not a valid hex address"))
	}

	if c.PrivateKey == "" && c.KMSKeyID == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "either privateKey or kmsKeyId is required"))
	}
	if c.PrivateKey != "" && c.KMSKeyID != "" {
		allErrors = append(allErrors, field.Forbidden(field.NewPath("kmsKeyId"), "privateKey and kmsKeyId are mutually exclusive"))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// TransactionServiceUrl resolves the coordination service base URL, preferring
// an explicit override from the configuration
func (c *StagerConfig) TransactionServiceUrl() (string, error) {
	if c.ServiceUrl != "" {
		return c.ServiceUrl, nil
	}
	return GetTransactionServiceUrlForChainId(c.ChainID)
}
