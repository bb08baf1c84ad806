package main

import (
	"context"
	"os"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/Layr-Labs/multisig-stager-go/internal/aws"
	"github.com/Layr-Labs/multisig-stager-go/pkg/logger"
	"github.com/Layr-Labs/multisig-stager-go/pkg/txSigner"
)

// Prints the Ethereum address a KMS key signs as, so the key can be added as
// a Safe or MultiSigWallet owner before its first staging session.
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	ctx := context.Background()

	awsCfg, err := aws.LoadAWSConfig(ctx, os.Getenv("AWS_REGION"), os.Getenv("AWS_PROFILE"))
	if err != nil {
		panic(err)
	}

	identity, err := aws.GetCallerIdentity(ctx, awsCfg)
	if err != nil {
		l.Sugar().Fatalw("failed to get caller identity", "error", err)
	}
	l.Sugar().Infow("AWS caller identity",
		"account", awssdk.ToString(identity.Account),
		"arn", awssdk.ToString(identity.Arn),
	)

	keyId := os.Getenv("KEY_ID")
	if keyId == "" {
		l.Sugar().Fatal("KEY_ID environment variable is not set")
	}

	signer, err := txSigner.NewAWSKMSSigner(ctx, awsCfg, keyId, l)
	if err != nil {
		l.Sugar().Fatalw("failed to create KMS signer", "error", err)
	}

	address, err := signer.GetAddress()
	if err != nil {
		l.Sugar().Fatalw("failed to derive signing address", "error", err)
	}

	l.Sugar().Infow("KMS signing key",
		"keyId", keyId,
		"address", address.Hex(),
	)
}
