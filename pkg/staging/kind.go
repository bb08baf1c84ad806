package staging

import (
	"fmt"
	"strings"
)

// SignerKind selects which backend protocol a session stages transactions
// through. It is fixed for the lifetime of a session.
type SignerKind string

const (
	// KindCoordinated stages through a Safe contract whose proposals are
	// tracked by an off-chain transaction service.
	KindCoordinated SignerKind = "coordinated"

	// KindLegacy stages through an on-chain MultiSigWallet contract that
	// tracks its own proposals.
	KindLegacy SignerKind = "legacy"

	// KindDirect executes immediately from a single-key wallet with no
	// multisig coordination.
	KindDirect SignerKind = "direct"
)

func (k SignerKind) String() string {
	return string(k)
}

// ParseSignerKind converts a user-supplied string into a SignerKind.
// Unrecognized values return ErrUnsupportedSignerKind rather than falling
// through to any variant's behavior.
func ParseSignerKind(value string) (SignerKind, error) {
	switch SignerKind(strings.ToLower(strings.TrimSpace(value))) {
	case KindCoordinated:
		return KindCoordinated, nil
	case KindLegacy:
		return KindLegacy, nil
	case KindDirect:
		return KindDirect, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSignerKind, value)
	}
}
