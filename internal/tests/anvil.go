package tests

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
)

const (
	// Fork runs need a Sepolia archive endpoint; override with this env var.
	EnvTestForkRpcUrl = "STAGER_TEST_FORK_RPC_URL"

	defaultForkRpcUrl = "https://ethereum-sepolia-rpc.publicnode.com"
)

type AnvilConfig struct {
	ForkUrl         string `json:"forkUrl"`
	ForkBlockNumber string `json:"forkBlockNumber"`
	BlockTime       string `json:"blockTime"`
	PortNumber      string `json:"portNumber"`
	ChainId         string `json:"chainId"`
}

// HasAnvil reports whether the anvil binary is on PATH. Integration tests
// skip rather than fail when it is missing.
func HasAnvil() bool {
	_, err := exec.LookPath("anvil")
	return err == nil
}

func StartAnvil(ctx context.Context, cfg *AnvilConfig) (*exec.Cmd, error) {
	// exec anvil command to start the anvil node
	args := []string{
		"--chain-id", cfg.ChainId,
		"--port", cfg.PortNumber,
	}
	if cfg.ForkUrl != "" {
		args = append(args, "--fork-url", cfg.ForkUrl)
	}
	if cfg.ForkBlockNumber != "" {
		args = append(args, "--fork-block-number", cfg.ForkBlockNumber)
	}
	// no --block-time means anvil mines on demand, which keeps receipt
	// waits instant
	if cfg.BlockTime != "" {
		args = append(args, "--block-time", cfg.BlockTime)
	}
	fmt.Printf("Starting anvil with args: %v\n", args)
	cmd := exec.CommandContext(ctx, "anvil", args...)
	cmd.Stderr = os.Stderr

	joinOutput := os.Getenv("JOIN_ANVIL_OUTPUT")
	if joinOutput == "true" {
		cmd.Stdout = os.Stdout
	}

	err := cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start anvil: %w", err)
	}

	rpcUrl := fmt.Sprintf("http://localhost:%s", cfg.PortNumber)

	for i := 1; i < 10; i++ {
		res, err := http.Post(rpcUrl, "application/json", nil)
		if err == nil && res.StatusCode == 200 {
			fmt.Println("Anvil is up and running")
			return cmd, nil
		}
		fmt.Printf("Anvil not ready yet, retrying... %d\n", i)
		time.Sleep(time.Second * time.Duration(i))
	}

	return nil, fmt.Errorf("failed to start anvil")
}

func WaitForAnvil(
	anvilWg *sync.WaitGroup,
	ctx context.Context,
	t *testing.T,
	ethereumClient ethereum.Client,
	errorsChan chan error,
) {
	defer anvilWg.Done()
	time.Sleep(2 * time.Second) // give anvil some time to start

	for {
		select {
		case <-ctx.Done():
			t.Logf("Failed to start anvil: %v", ctx.Err())
			errorsChan <- fmt.Errorf("failed to start anvil: %w", ctx.Err())
			return
		case <-time.After(2 * time.Second):
			t.Logf("Checking if anvil is up and running...")
			block, err := ethereumClient.GetLatestBlock(ctx)
			if err != nil {
				t.Logf("Failed to get latest block, will retry: %v", err)
				continue
			}
			t.Logf("Anvil is up and running, latest block: %v", block)
			return
		}
	}
}

func KillallAnvils() error {
	cmd := exec.Command("pkill", "-f", "anvil")
	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("failed to kill all anvils: %w", err)
	}
	fmt.Println("All anvil processes killed successfully")
	return nil
}

func KillAnvil(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return fmt.Errorf("anvil command is not running")
	}

	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("failed to kill anvil process: %w", err)
	}
	_ = cmd.Wait()

	fmt.Println("Anvil process killed successfully")
	return nil
}

// StartLocalAnvil starts a plain dev chain with the standard funded anvil
// accounts. Direct-backend tests run against this; nothing needs to be
// deployed first.
func StartLocalAnvil(ctx context.Context) (*exec.Cmd, error) {
	return StartAnvil(ctx, &AnvilConfig{
		PortNumber: "8545",
		ChainId:    "31337",
	})
}

// StartForkAnvil starts an anvil fork of Sepolia at the block pinned in the
// chain config. Coordinated and legacy backend tests use this so the Safe
// and MultiSigWallet contracts exist with real state.
func StartForkAnvil(projectRoot string, ctx context.Context) (*exec.Cmd, error) {
	chainConfig, err := ReadChainConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain config: %w", err)
	}

	forkUrl := os.Getenv(EnvTestForkRpcUrl)
	if forkUrl == "" {
		forkUrl = defaultForkRpcUrl
	}

	return StartAnvil(ctx, &AnvilConfig{
		ForkUrl:         forkUrl,
		ForkBlockNumber: chainConfig.ForkBlock,
		BlockTime:       "2",
		PortNumber:      "8545",
		ChainId:         "31337",
	})
}
