package txSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AWSKMSSigner implements ITransactionSigner using an ECDSA secp256k1 key
// held in AWS KMS. The key material never leaves KMS; digests are signed
// remotely and the recovery id is reconstructed locally.
type AWSKMSSigner struct {
	logger    *zap.Logger
	kmsClient *kms.Client
	keyId     string
	publicKey *cryptoEcdsa.PublicKey
	address   common.Address
}

// NewAWSKMSSigner fetches the key's public material once and caches the
// derived Ethereum address for the life of the signer
func NewAWSKMSSigner(ctx context.Context, awsCfg aws.Config, keyId string, logger *zap.Logger) (*AWSKMSSigner, error) {
	kmsClient := kms.NewFromConfig(awsCfg)

	out, err := kmsClient.GetPublicKey(ctx, &kms.GetPublicKeyInput{
		KeyId: aws.String(keyId),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get public key for key %s", keyId)
	}

	publicKey, err := parseECDSAPublicKey(out.PublicKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse public key for key %s", keyId)
	}

	address := crypto.PubkeyToAddress(*publicKey)
	logger.Sugar().Infow("Resolved KMS signing key",
		"keyId", keyId,
		"address", address.Hex(),
	)

	return &AWSKMSSigner{
		logger:    logger,
		kmsClient: kmsClient,
		keyId:     keyId,
		publicKey: publicKey,
		address:   address,
	}, nil
}

// GetTransactOpts returns bind.TransactOpts whose signer function routes
// transaction hashes through KMS
func (a *AWSKMSSigner) GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if chainID == nil {
		return nil, bind.ErrNoChainID
	}
	signer := types.LatestSignerForChainID(chainID)

	return &bind.TransactOpts{
		From: a.address,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != a.address {
				return nil, bind.ErrNotAuthorized
			}
			signature, err := a.SignHash(ctx, signer.Hash(tx))
			if err != nil {
				return nil, err
			}
			// WithSignature expects the recovery id in the 0/1 range
			signature[64] -= 27
			return tx.WithSignature(signer, signature)
		},
		Context: ctx,
	}, nil
}

// SignHash signs the digest with KMS and normalizes the DER response into a
// 65-byte Ethereum signature with V in {27, 28}
func (a *AWSKMSSigner) SignHash(ctx context.Context, hash [32]byte) ([]byte, error) {
	signOutput, err := a.kmsClient.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(a.keyId),
		Message:          hash[:],
		SigningAlgorithm: kmstypes.SigningAlgorithmSpecEcdsaSha256,
		MessageType:      kmstypes.MessageTypeDigest,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "kms sign request failed for key %s", a.keyId)
	}

	signature, err := ethereumSignatureFromDER(signOutput.Signature, hash, a.publicKey)
	if err != nil {
		return nil, err
	}
	return signature, nil
}

// GetAddress returns the address derived from the KMS public key
func (a *AWSKMSSigner) GetAddress() (common.Address, error) {
	return a.address, nil
}

// ASN.1 structures for the DER encodings used by KMS
type asn1EcSig struct {
	R asn1.RawValue
	S asn1.RawValue
}

type asn1EcPublicKey struct {
	EcPublicKeyInfo asn1EcPublicKeyInfo
	PublicKey       asn1.BitString
}

type asn1EcPublicKeyInfo struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

// parseECDSAPublicKey parses the DER-encoded public key returned by KMS
func parseECDSAPublicKey(derBytes []byte) (*cryptoEcdsa.PublicKey, error) {
	var asn1pubk asn1EcPublicKey
	_, err := asn1.Unmarshal(derBytes, &asn1pubk)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 public key: %w", err)
	}

	return crypto.UnmarshalPubkey(asn1pubk.PublicKey.Bytes)
}

// ethereumSignatureFromDER converts a DER-encoded ECDSA signature into the
// 65-byte [R || S || V] form. S is canonicalized to the low half of the curve
// order and the recovery id is found by probing against the expected key.
func ethereumSignatureFromDER(derSig []byte, hash [32]byte, expectedPubKey *cryptoEcdsa.PublicKey) ([]byte, error) {
	var sigAsn1 asn1EcSig
	_, err := asn1.Unmarshal(derSig, &sigAsn1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 signature: %w", err)
	}

	r := new(big.Int).SetBytes(sigAsn1.R.Bytes)
	s := new(big.Int).SetBytes(sigAsn1.S.Bytes)

	// secp256k1 curve order for malleability protection
	curveOrder, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	halfOrder := new(big.Int).Rsh(curveOrder, 1)

	// Low-S canonicalization
	if s.Cmp(halfOrder) > 0 {
		s = new(big.Int).Sub(curveOrder, s)
	}

	rBytes := r.FillBytes(make([]byte, 32))
	sBytes := s.FillBytes(make([]byte, 32))

	// crypto.Ecrecover expects the recovery id in the 0-3 range
	for recoveryId := 0; recoveryId < 4; recoveryId++ {
		signature := make([]byte, 65)
		copy(signature[0:32], rBytes)
		copy(signature[32:64], sBytes)
		signature[64] = byte(recoveryId)

		recoveredPubKeyBytes, err := crypto.Ecrecover(hash[:], signature)
		if err != nil {
			continue
		}

		recoveredPubKey, err := crypto.UnmarshalPubkey(recoveredPubKeyBytes)
		if err != nil {
			continue
		}

		if recoveredPubKey.X.Cmp(expectedPubKey.X) == 0 && recoveredPubKey.Y.Cmp(expectedPubKey.Y) == 0 {
			signature[64] = byte(27 + recoveryId)
			return signature, nil
		}
	}

	return nil, fmt.Errorf("could not determine valid recovery ID - signature recovery failed")
}
