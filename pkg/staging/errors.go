package staging

import "errors"

var (
	// ErrUnsupportedSignerKind indicates a signer kind outside the three
	// defined variants. This is a configuration error and never retried.
	ErrUnsupportedSignerKind = errors.New("unsupported signer kind")

	// ErrBackendUnreachable indicates required backend state could not be
	// read at setup or query time. Fatal to the session, not retried.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrSignatureFailure indicates the signing step failed.
	ErrSignatureFailure = errors.New("signature failure")

	// ErrSubmissionRejected indicates the chain or coordination service
	// refused the transaction, for example on a nonce conflict or reverted
	// execution.
	ErrSubmissionRejected = errors.New("submission rejected")
)
