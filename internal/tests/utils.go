package tests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

func GetProjectRootPath() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	startingPath := ""
	iterations := 0
	for {
		if iterations > 10 {
			panic("Could not find project root path")
		}
		iterations++
		p, err := filepath.Abs(fmt.Sprintf("%s/%s", wd, startingPath))
		if err != nil {
			panic(err)
		}

		match := regexp.MustCompile(`\/multisig-stager-go([A-Za-z0-9_-]+)?\/?$`)
		if match.MatchString(p) {
			fmt.Printf("Found project root path: %s\n", p)
			return p
		}
		startingPath = startingPath + "/.."
	}
}

// ChainConfig holds the accounts and deployed-contract addresses the
// integration tests stage against. The deployer and owner accounts are the
// well-known anvil dev accounts; the contract addresses are only populated
// for fork runs and tests skip the backends whose address is empty.
type ChainConfig struct {
	DeployerAccountAddress string `json:"deployerAccountAddress"`
	DeployerAccountPk      string `json:"deployerAccountPk"`
	SafeOwnerAddress       string `json:"safeOwnerAddress"`
	SafeOwnerPk            string `json:"safeOwnerPk"`
	WalletOwnerAddress     string `json:"walletOwnerAddress"`
	WalletOwnerPk          string `json:"walletOwnerPk"`
	NewOwnerAddress        string `json:"newOwnerAddress"`
	TargetContractAddress  string `json:"targetContractAddress"`
	SafeAddress            string `json:"safeAddress"`
	WalletAddress          string `json:"walletAddress"`
	ForkBlock              string `json:"forkBlock"`
}

func ReadChainConfig(projectRoot string) (*ChainConfig, error) {
	filePath := fmt.Sprintf("%s/internal/testData/chain-config.json", projectRoot)

	// read the file into bytes
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cf *ChainConfig
	if err := json.Unmarshal(file, &cf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file: %w", err)
	}
	return cf, nil
}
