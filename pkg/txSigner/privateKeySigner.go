package txSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
)

// PrivateKeySigner implements ITransactionSigner using a raw private key
type PrivateKeySigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewPrivateKeySigner creates a new PrivateKeySigner from a hex-encoded private key
func NewPrivateKeySigner(privateKeyHex string) (*PrivateKeySigner, error) {
	privateKey, err := util.StringToECDSAPrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	address, err := util.DeriveAddressFromECDSAPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return &PrivateKeySigner{
		privateKey: privateKey,
		address:    address,
	}, nil
}

// GetTransactOpts returns bind.TransactOpts configured for the private key signer
func (p *PrivateKeySigner) GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(p.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	auth.Context = ctx

	return auth, nil
}

// SignHash signs the digest directly and shifts the recovery id into the
// 27/28 range used by Safe owner signatures
func (p *PrivateKeySigner) SignHash(ctx context.Context, hash [32]byte) ([]byte, error) {
	signature, err := crypto.Sign(hash[:], p.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign hash: %w", err)
	}

	signature[64] += 27
	return signature, nil
}

// GetAddress returns the address associated with this private key
func (p *PrivateKeySigner) GetAddress() (common.Address, error) {
	return p.address, nil
}
