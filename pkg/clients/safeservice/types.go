package safeservice

import "fmt"

// MultisigTransaction mirrors the multisig transaction representation served
// by the Safe Transaction Service API. Numeric wei amounts arrive as decimal
// strings; nonces arrive as JSON numbers.
type MultisigTransaction struct {
	Safe                  string         `json:"safe"`
	To                    string         `json:"to"`
	Value                 string         `json:"value"`
	Data                  string         `json:"data"`
	Operation             int            `json:"operation"`
	GasToken              string         `json:"gasToken"`
	SafeTxGas             int64          `json:"safeTxGas"`
	BaseGas               int64          `json:"baseGas"`
	GasPrice              string         `json:"gasPrice"`
	RefundReceiver        string         `json:"refundReceiver"`
	Nonce                 uint64         `json:"nonce"`
	SubmissionDate        string         `json:"submissionDate"`
	SafeTxHash            string         `json:"safeTxHash"`
	Proposer              string         `json:"proposer"`
	TransactionHash       string         `json:"transactionHash"`
	IsExecuted            bool           `json:"isExecuted"`
	IsSuccessful          *bool          `json:"isSuccessful"`
	ConfirmationsRequired int64          `json:"confirmationsRequired"`
	Confirmations         []Confirmation `json:"confirmations"`
}

// Confirmation is a single owner signature attached to a queued transaction
type Confirmation struct {
	Owner          string `json:"owner"`
	SubmissionDate string `json:"submissionDate"`
	Signature      string `json:"signature"`
	SignatureType  string `json:"signatureType"`
}

// PaginatedMultisigTransactions is the service's list envelope
type PaginatedMultisigTransactions struct {
	Count    int64                 `json:"count"`
	Next     string                `json:"next"`
	Previous string                `json:"previous"`
	Results  []MultisigTransaction `json:"results"`
}

// TransactionProposal is the request body for queueing a new transaction.
// ContractTransactionHash must equal the Safe transaction hash computed by
// the contract for these exact parameters, and Signature must be the
// sender's 65-byte signature over that hash.
type TransactionProposal struct {
	To                      string `json:"to"`
	Value                   string `json:"value"`
	Data                    string `json:"data"`
	Operation               int    `json:"operation"`
	SafeTxGas               int64  `json:"safeTxGas"`
	BaseGas                 int64  `json:"baseGas"`
	GasPrice                string `json:"gasPrice"`
	GasToken                string `json:"gasToken"`
	RefundReceiver          string `json:"refundReceiver"`
	Nonce                   uint64 `json:"nonce"`
	ContractTransactionHash string `json:"contractTransactionHash"`
	Sender                  string `json:"sender"`
	Signature               string `json:"signature"`
	Origin                  string `json:"origin,omitempty"`
}

// StatusError is returned when the transaction service responds with a
// non-success status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transaction service returned status %d: %s", e.StatusCode, e.Body)
}

// IsClientError returns true when the service rejected the request rather
// than failing to serve it.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
