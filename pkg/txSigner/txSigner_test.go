package txSigner

import (
	"context"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

const (
	// Well-known anvil development key, never used on a live network
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestPrivateKeySigner_SignHash(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)

	address, err := signer.GetAddress()
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), address)

	hash := crypto.Keccak256Hash([]byte("stage ownership transfer"))

	signature, err := signer.SignHash(context.Background(), hash)
	require.NoError(t, err)
	require.Len(t, signature, 65)
	require.Contains(t, []byte{27, 28}, signature[64])

	// The signature must recover to the signer's own address
	recoverable := make([]byte, 65)
	copy(recoverable, signature)
	recoverable[64] -= 27

	pubKeyBytes, err := crypto.Ecrecover(hash[:], recoverable)
	require.NoError(t, err)
	pubKey, err := crypto.UnmarshalPubkey(pubKeyBytes)
	require.NoError(t, err)
	require.Equal(t, address, crypto.PubkeyToAddress(*pubKey))
}

func TestPrivateKeySigner_GetTransactOpts(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)

	chainID := big.NewInt(31337)

	opts, err := signer.GetTransactOpts(context.Background(), chainID)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), opts.From)

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2_000_000_000),
		Gas:       100_000,
		To:        &to,
		Value:     big.NewInt(0),
	})

	t.Run("signs for the signer's own address", func(t *testing.T) {
		signedTx, err := opts.Signer(opts.From, tx)
		require.NoError(t, err)

		sender, err := types.Sender(types.LatestSignerForChainID(chainID), signedTx)
		require.NoError(t, err)
		require.Equal(t, opts.From, sender)
	})

	t.Run("rejects other addresses", func(t *testing.T) {
		_, err := opts.Signer(common.HexToAddress("0x0000000000000000000000000000000000000001"), tx)
		require.Error(t, err)
	})
}

func TestEthereumSignatureFromDER(t *testing.T) {
	privateKey, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("kms signature conversion"))

	reference, err := crypto.Sign(hash.Bytes(), privateKey)
	require.NoError(t, err)

	r := new(big.Int).SetBytes(reference[0:32])
	s := new(big.Int).SetBytes(reference[32:64])
	curveOrder, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	require.True(t, ok)

	t.Run("converts a low-S signature", func(t *testing.T) {
		derSig, err := asn1.Marshal(struct {
			R *big.Int
			S *big.Int
		}{R: r, S: s})
		require.NoError(t, err)

		signature, err := ethereumSignatureFromDER(derSig, hash, &privateKey.PublicKey)
		require.NoError(t, err)
		require.Len(t, signature, 65)
		require.Equal(t, reference[0:32], signature[0:32])
		require.Equal(t, reference[32:64], signature[32:64])
		require.Equal(t, reference[64]+27, signature[64])
	})

	t.Run("canonicalizes a high-S signature", func(t *testing.T) {
		highS := new(big.Int).Sub(curveOrder, s)
		derSig, err := asn1.Marshal(struct {
			R *big.Int
			S *big.Int
		}{R: r, S: highS})
		require.NoError(t, err)

		signature, err := ethereumSignatureFromDER(derSig, hash, &privateKey.PublicKey)
		require.NoError(t, err)
		require.Equal(t, reference[32:64], signature[32:64])
		require.Contains(t, []byte{27, 28}, signature[64])
	})

	t.Run("rejects a signature from another key", func(t *testing.T) {
		otherKey, err := crypto.GenerateKey()
		require.NoError(t, err)

		derSig, err := asn1.Marshal(struct {
			R *big.Int
			S *big.Int
		}{R: r, S: s})
		require.NoError(t, err)

		_, err = ethereumSignatureFromDER(derSig, hash, &otherKey.PublicKey)
		require.Error(t, err)
	})
}

func TestParseECDSAPublicKey(t *testing.T) {
	privateKey, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	uncompressed := crypto.FromECDSAPub(&privateKey.PublicKey)
	derBytes, err := asn1.Marshal(asn1EcPublicKey{
		EcPublicKeyInfo: asn1EcPublicKeyInfo{
			Algorithm:  asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1},
			Parameters: asn1.ObjectIdentifier{1, 3, 132, 0, 10},
		},
		PublicKey: asn1.BitString{Bytes: uncompressed, BitLength: len(uncompressed) * 8},
	})
	require.NoError(t, err)

	parsed, err := parseECDSAPublicKey(derBytes)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), crypto.PubkeyToAddress(*parsed))

	_, err = parseECDSAPublicKey([]byte{0x01, 0x02})
	require.Error(t, err)
}
