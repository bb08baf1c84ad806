package main

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/multisig-stager-go/internal/aws"
	"github.com/Layr-Labs/multisig-stager-go/pkg/clients/safeservice"
	"github.com/Layr-Labs/multisig-stager-go/pkg/config"
	"github.com/Layr-Labs/multisig-stager-go/pkg/journal"
	journalBadger "github.com/Layr-Labs/multisig-stager-go/pkg/journal/badger"
	journalMemory "github.com/Layr-Labs/multisig-stager-go/pkg/journal/memory"
	journalRedis "github.com/Layr-Labs/multisig-stager-go/pkg/journal/redis"
	"github.com/Layr-Labs/multisig-stager-go/pkg/logger"
	"github.com/Layr-Labs/multisig-stager-go/pkg/staging"
	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
)

func main() {
	app := &cli.App{
		Name:  "stager",
		Usage: "Stage contract ownership transfers through a Safe, a legacy multisig or a single key",
		Description: `A tool for staging transferOwnership transactions for batches of contracts.

Three signer kinds are supported:
- coordinated: proposes Safe transactions to the Safe Transaction Service for co-signing
- legacy: submits to an on-chain MultiSigWallet contract, which queues its own confirmations
- direct: signs with a single key and waits for the transaction to mine

Every staging action is journaled locally so past sessions can be audited.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rpc-url",
				Aliases: []string{"rpc"},
				Usage:   "Ethereum RPC endpoint URL",
				Value:   "http://localhost:8545",
				EnvVars: []string{config.EnvStagerRPCURL},
			},
			&cli.Uint64Flag{
				Name:    "chain-id",
				Aliases: []string{"chain"},
				Usage:   fmt.Sprintf("Ethereum chain ID: %s", config.GetSupportedChainIDsString()),
				EnvVars: []string{config.EnvStagerChainID},
			},
			&cli.StringFlag{
				Name:    "signer-kind",
				Aliases: []string{"signer"},
				Usage:   "Staging backend: coordinated, legacy or direct",
				Value:   "direct",
				EnvVars: []string{config.EnvStagerSignerKind},
			},
			&cli.StringFlag{
				Name:    "safe-address",
				Usage:   "Gnosis Safe contract address (coordinated backend)",
				EnvVars: []string{config.EnvStagerSafeAddress},
			},
			&cli.StringFlag{
				Name:    "wallet-address",
				Usage:   "MultiSigWallet contract address (legacy backend)",
				EnvVars: []string{config.EnvStagerWalletAddress},
			},
			&cli.StringFlag{
				Name:    "private-key",
				Usage:   "Hex-encoded ECDSA private key for signing",
				EnvVars: []string{config.EnvStagerPrivateKey},
			},
			&cli.StringFlag{
				Name:    "kms-key-id",
				Usage:   "AWS KMS key id or alias for signing",
				EnvVars: []string{config.EnvStagerKMSKeyID},
			},
			&cli.StringFlag{
				Name:    "aws-region",
				Usage:   "AWS region override for KMS signing",
				EnvVars: []string{config.EnvStagerAWSRegion},
			},
			&cli.StringFlag{
				Name:    "aws-profile",
				Usage:   "AWS shared config profile for KMS signing",
				EnvVars: []string{config.EnvStagerAWSProfile},
			},
			&cli.StringFlag{
				Name:    "service-url",
				Usage:   "Safe Transaction Service URL override",
				EnvVars: []string{config.EnvStagerServiceURL},
			},
			&cli.StringFlag{
				Name:    "gas-price-gwei",
				Usage:   "Gas price in gwei for direct submissions (default: node pricing)",
				EnvVars: []string{config.EnvStagerGasPriceGwei},
			},
			&cli.Uint64Flag{
				Name:    "gas-limit",
				Usage:   "Explicit gas limit for direct submissions (default: estimate)",
				EnvVars: []string{config.EnvStagerGasLimit},
			},
			&cli.BoolFlag{
				Name:    "fork",
				Usage:   "Execute coordinated submissions directly against a local fork",
				EnvVars: []string{config.EnvStagerFork},
			},
			&cli.StringFlag{
				Name:    "journal-backend",
				Usage:   "Journal store: badger, memory or redis",
				Value:   "badger",
				EnvVars: []string{config.EnvStagerJournalBackend},
			},
			&cli.StringFlag{
				Name:    "journal-dir",
				Usage:   "Directory for the badger journal (default: ~/.multisig-stager/journal)",
				EnvVars: []string{config.EnvStagerJournalDir},
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Redis URL for the redis journal",
				EnvVars: []string{config.EnvStagerRedisURL},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvStagerVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "transfer-ownership",
				Usage: "Stage transferOwnership calls for a batch of contracts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "new-owner",
						Aliases:  []string{"owner"},
						Usage:    "Address ownership transfers to",
						EnvVars:  []string{config.EnvStagerNewOwner},
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "contracts",
						Aliases:  []string{"contract"},
						Usage:    "Contract addresses to stage transfers for (repeatable)",
						EnvVars:  []string{config.EnvStagerContracts},
						Required: true,
					},
				},
				Action: transferOwnershipCommand,
			},
			{
				Name:   "pending",
				Usage:  "List transactions currently staged with the backend",
				Action: pendingCommand,
			},
			{
				Name:  "history",
				Usage: "Show journaled staging actions from past sessions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Show a single record by id",
					},
				},
				Action: historyCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// parseStagerConfig collects all flags into one config struct. Command-level
// flags that are absent on the running command read as zero values.
func parseStagerConfig(c *cli.Context) *config.StagerConfig {
	return &config.StagerConfig{
		ChainID:        config.ChainId(c.Uint64("chain-id")),
		RpcUrl:         c.String("rpc-url"),
		SignerKind:     c.String("signer-kind"),
		SafeAddress:    c.String("safe-address"),
		WalletAddress:  c.String("wallet-address"),
		NewOwner:       c.String("new-owner"),
		Contracts:      c.StringSlice("contracts"),
		GasPriceGwei:   c.String("gas-price-gwei"),
		GasLimit:       c.Uint64("gas-limit"),
		Fork:           c.Bool("fork"),
		PrivateKey:     c.String("private-key"),
		KMSKeyID:       c.String("kms-key-id"),
		AWSRegion:      c.String("aws-region"),
		AWSProfile:     c.String("aws-profile"),
		ServiceUrl:     c.String("service-url"),
		JournalBackend: c.String("journal-backend"),
		JournalDir:     c.String("journal-dir"),
		RedisUrl:       c.String("redis-url"),
		Debug:          c.Bool("verbose"),
		Verbose:        c.Bool("verbose"),
	}
}

// createEthClient dials the RPC endpoint and returns the bind-compatible
// contract caller
func createEthClient(cfg *config.StagerConfig, l *zap.Logger) (*ethclient.Client, error) {
	ethClient := ethereum.NewEthereumClient(&ethereum.EthereumClientConfig{
		BaseUrl:   cfg.RpcUrl,
		BlockType: ethereum.BlockType_Latest,
	}, l)

	client, err := ethClient.GetEthereumContractCaller()
	if err != nil {
		return nil, fmt.Errorf("failed to get Ethereum contract caller: %w", err)
	}
	return client, nil
}

// createSigner builds the transaction signer from either a local private key
// or an AWS KMS key
func createSigner(ctx context.Context, cfg *config.StagerConfig, l *zap.Logger) (txSigner.ITransactionSigner, error) {
	if cfg.KMSKeyID != "" {
		awsCfg, err := aws.LoadAWSConfig(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		return txSigner.NewAWSKMSSigner(ctx, awsCfg, cfg.KMSKeyID, l)
	}
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("no signing credentials configured, set %s or %s", config.EnvStagerPrivateKey, config.EnvStagerKMSKeyID)
	}
	return txSigner.NewPrivateKeySigner(cfg.PrivateKey)
}

// createBackend resolves the signer kind and wires up the matching staging
// backend, including the coordination service client for coordinated runs
func createBackend(ctx context.Context, cfg *config.StagerConfig, client *ethclient.Client, signer txSigner.ITransactionSigner, l *zap.Logger) (staging.Backend, error) {
	kind, err := staging.ParseSignerKind(cfg.SignerKind)
	if err != nil {
		return nil, err
	}

	var service safeservice.IClient
	switch kind {
	case staging.KindCoordinated:
		if cfg.SafeAddress == "" {
			return nil, fmt.Errorf("coordinated staging requires a safe address, set %s", config.EnvStagerSafeAddress)
		}
		serviceUrl, err := cfg.TransactionServiceUrl()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve coordination service: %w", err)
		}
		serviceClient, err := safeservice.NewClient(&safeservice.ClientConfig{
			BaseUrl: serviceUrl,
			Logger:  l,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create coordination service client: %w", err)
		}
		service = serviceClient
	case staging.KindLegacy:
		if cfg.WalletAddress == "" {
			return nil, fmt.Errorf("legacy staging requires a wallet address, set %s", config.EnvStagerWalletAddress)
		}
	}

	return staging.NewBackend(ctx, &staging.Config{
		Kind:          kind,
		ChainID:       new(big.Int).SetUint64(uint64(cfg.ChainID)),
		SafeAddress:   common.HexToAddress(cfg.SafeAddress),
		WalletAddress: common.HexToAddress(cfg.WalletAddress),
		GasPriceGwei:  cfg.GasPriceGwei,
		GasLimit:      cfg.GasLimit,
		Fork:          cfg.Fork,
	}, client, service, signer, l)
}

// createJournal opens the configured journal store. Badger is the default;
// the in-memory store is only useful for dry runs.
func createJournal(cfg *config.StagerConfig, l *zap.Logger) (journal.IJournal, error) {
	switch cfg.JournalBackend {
	case "", "badger":
		dir := cfg.JournalDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve home directory for journal: %w", err)
			}
			dir = filepath.Join(home, ".multisig-stager", "journal")
		}
		return journalBadger.NewBadgerJournal(dir, l)
	case "memory":
		l.Sugar().Warnw("Using in-memory journal, staging history will not survive this process")
		return journalMemory.NewMemoryJournal(), nil
	case "redis":
		if cfg.RedisUrl == "" {
			return nil, fmt.Errorf("redis journal requires %s", config.EnvStagerRedisURL)
		}
		opts, err := goredis.ParseURL(cfg.RedisUrl)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		return journalRedis.NewRedisJournal(&journalRedis.RedisConfig{
			Address:  opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}, l)
	default:
		return nil, fmt.Errorf("unsupported journal backend %q, expected memory, badger or redis", cfg.JournalBackend)
	}
}

// transferOwnershipCommand handles the transfer-ownership subcommand
func transferOwnershipCommand(c *cli.Context) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	stagerConfig := parseStagerConfig(c)
	if err := stagerConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	l.Sugar().Infow("Using chain", "name", stagerConfig.ChainName, "chain_id", stagerConfig.ChainID)

	// Allow one receipt wait per contract for the whole session
	timeout := config.GetReceiptTimeoutForChain(stagerConfig.ChainID) * time.Duration(len(stagerConfig.Contracts))
	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	client, err := createEthClient(stagerConfig, l)
	if err != nil {
		return err
	}

	signer, err := createSigner(ctx, stagerConfig, l)
	if err != nil {
		return fmt.Errorf("failed to create signer: %w", err)
	}
	sender, err := signer.GetAddress()
	if err != nil {
		return fmt.Errorf("failed to derive signer address: %w", err)
	}

	backend, err := createBackend(ctx, stagerConfig, client, signer, l)
	if err != nil {
		return err
	}

	jrnl, err := createJournal(stagerConfig, l)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = jrnl.Close() }()

	session, err := staging.NewSession(backend, client, jrnl, string(stagerConfig.ChainName), l)
	if err != nil {
		return fmt.Errorf("failed to create staging session: %w", err)
	}

	contracts := util.Map(stagerConfig.Contracts, func(contract string, _ uint64) common.Address {
		return common.HexToAddress(contract)
	})
	newOwner := common.HexToAddress(stagerConfig.NewOwner)

	fmt.Printf("🔏 Staging ownership transfers to %s for %d contract(s) via %s (signer %s)\n",
		newOwner.Hex(), len(contracts), backend.Kind(), sender.Hex())

	outcomes, err := session.StageOwnershipTransfers(ctx, contracts, newOwner)
	if err != nil {
		return fmt.Errorf("staging session failed: %w", err)
	}

	staged, skipped, failed := 0, 0, 0
	for _, outcome := range outcomes {
		switch outcome.Outcome {
		case journal.OutcomeStaged:
			staged++
			fmt.Printf("✅ %s: proposal staged at nonce %d (safeTxHash %s)\n",
				outcome.Contract.Hex(), outcome.Result.Staged.Sequence, outcome.Result.Staged.SafeTxHash)
		case journal.OutcomeSubmitted:
			staged++
			fmt.Printf("✅ %s: submitted on-chain (tx %s)\n",
				outcome.Contract.Hex(), outcome.Result.Receipt.TxHash.Hex())
		case journal.OutcomeSkippedDuplicate:
			skipped++
			fmt.Printf("⏭  %s: equivalent transfer already staged\n", outcome.Contract.Hex())
		case journal.OutcomeSkippedOwned:
			skipped++
			fmt.Printf("⏭  %s: already owned by %s\n", outcome.Contract.Hex(), newOwner.Hex())
		case journal.OutcomeFailed:
			failed++
			fmt.Printf("❌ %s: %v\n", outcome.Contract.Hex(), outcome.Err)
		}
	}
	fmt.Printf("\nDone: %d staged, %d skipped, %d failed\n", staged, skipped, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d transfers failed", failed, len(outcomes))
	}
	return nil
}

// pendingCommand handles the pending subcommand
func pendingCommand(c *cli.Context) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	stagerConfig := parseStagerConfig(c)
	if _, ok := config.ChainIdToName[stagerConfig.ChainID]; !ok {
		return fmt.Errorf("unsupported chain ID %d, supported: %s", stagerConfig.ChainID, config.GetSupportedChainIDsString())
	}

	ctx := c.Context

	client, err := createEthClient(stagerConfig, l)
	if err != nil {
		return err
	}

	signer, err := createSigner(ctx, stagerConfig, l)
	if err != nil {
		return fmt.Errorf("failed to create signer: %w", err)
	}

	backend, err := createBackend(ctx, stagerConfig, client, signer, l)
	if err != nil {
		return err
	}

	pending, err := backend.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending transactions: %w", err)
	}

	fmt.Printf("📋 %d pending transaction(s) on the %s backend\n", len(pending), backend.Kind())
	for _, tx := range pending {
		fmt.Printf("  #%-6d %s  data=%s", tx.Sequence, tx.Destination.Hex(), hexutil.Encode(tx.Data))
		if tx.SafeTxHash != "" {
			fmt.Printf("  safeTxHash=%s", tx.SafeTxHash)
		}
		fmt.Println()
	}
	return nil
}

// historyCommand handles the history subcommand
func historyCommand(c *cli.Context) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	stagerConfig := parseStagerConfig(c)
	jrnl, err := createJournal(stagerConfig, l)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = jrnl.Close() }()

	if id := c.String("id"); id != "" {
		record, err := jrnl.Get(id)
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}
		if record == nil {
			return fmt.Errorf("no record with id %s", id)
		}
		printRecord(record)
		return nil
	}

	records, err := jrnl.List()
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	fmt.Printf("📒 %d staging record(s)\n", len(records))
	for _, record := range records {
		printRecord(record)
	}
	return nil
}

func printRecord(record *journal.Record) {
	ts := time.Unix(record.StagedAt, 0).UTC().Format(time.RFC3339)
	fmt.Printf("  %s  %-21s %-12s %-8s %s -> %s", ts, record.Outcome, record.SignerKind, record.Network, record.Contract, record.NewOwner)
	if record.TxHash != "" {
		fmt.Printf("  tx=%s", record.TxHash)
	}
	if record.SafeTxHash != "" {
		fmt.Printf("  safeTxHash=%s nonce=%d", record.SafeTxHash, record.Sequence)
	}
	if record.Error != "" {
		fmt.Printf("  error=%q", record.Error)
	}
	fmt.Printf("  id=%s\n", record.Id)
}
