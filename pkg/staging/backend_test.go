package staging

import (
	"context"
	"testing"

	"github.com/Layr-Labs/multisig-stager-go/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Test_BackendImplementations verifies every variant satisfies Backend.
func Test_BackendImplementations(t *testing.T) {
	// These will fail at compile time if a variant loses a method.
	var _ Backend = (*CoordinatedBackend)(nil)
	var _ Backend = (*LegacyBackend)(nil)
	var _ Backend = (*DirectBackend)(nil)
}

func TestNewBackendRouting(t *testing.T) {
	ctx := context.Background()

	t.Run("coordinated connects through the safe binding", func(t *testing.T) {
		client := testutil.NewMockContractBackend()
		client.CallContractFn = safeNonceHandler(3)

		backend, err := NewBackend(ctx, newCoordinatedConfig(), client, testutil.NewMockCoordinationService(), newTestSigner(t), zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, KindCoordinated, backend.Kind())

		coordinated, ok := backend.(*CoordinatedBackend)
		require.True(t, ok)
		assert.Equal(t, uint64(3), coordinated.TrackedSequence())
	})

	t.Run("coordinated surfaces unusable sequence reads", func(t *testing.T) {
		client := testutil.NewMockContractBackend()
		client.CallContractFn = safeNonceHandler(0)

		_, err := NewBackend(ctx, newCoordinatedConfig(), client, testutil.NewMockCoordinationService(), newTestSigner(t), zaptest.NewLogger(t))
		assert.ErrorIs(t, err, ErrBackendUnreachable)
	})

	t.Run("legacy constructs lazily", func(t *testing.T) {
		// No call handler: construction must not touch the chain.
		backend, err := NewBackend(ctx, newLegacyConfig(), testutil.NewMockContractBackend(), nil, newTestSigner(t), zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, KindLegacy, backend.Kind())
	})

	t.Run("direct holds no backend state", func(t *testing.T) {
		backend, err := NewBackend(ctx, newDirectConfig(), testutil.NewMockContractBackend(), nil, newTestSigner(t), zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, KindDirect, backend.Kind())
	})

	t.Run("unrecognized kinds fail explicitly", func(t *testing.T) {
		cfg := newDirectConfig()
		cfg.Kind = SignerKind("hsm")

		_, err := NewBackend(ctx, cfg, testutil.NewMockContractBackend(), nil, newTestSigner(t), zaptest.NewLogger(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedSignerKind)
	})
}

func TestNewBackendValidation(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewMockContractBackend()
	logger := zaptest.NewLogger(t)

	t.Run("requires a config", func(t *testing.T) {
		_, err := NewBackend(ctx, nil, client, nil, newTestSigner(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config")
	})

	t.Run("requires a chain id", func(t *testing.T) {
		cfg := newDirectConfig()
		cfg.ChainID = nil
		_, err := NewBackend(ctx, cfg, client, nil, newTestSigner(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain ID")
	})

	t.Run("requires a contract backend", func(t *testing.T) {
		_, err := NewBackend(ctx, newDirectConfig(), nil, nil, newTestSigner(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract backend")
	})

	t.Run("requires a signer", func(t *testing.T) {
		_, err := NewBackend(ctx, newDirectConfig(), client, nil, nil, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signer")
	})

	t.Run("requires a logger", func(t *testing.T) {
		_, err := NewBackend(ctx, newDirectConfig(), client, nil, newTestSigner(t), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger")
	})
}
