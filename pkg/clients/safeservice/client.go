package safeservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
)

// ClientConfig holds the configuration for the Safe Transaction Service client
type ClientConfig struct {
	// BaseUrl is the service root, e.g. https://safe-transaction-sepolia.safe.global
	BaseUrl string

	Logger *zap.Logger

	// RequestsPerSecond caps outbound request rate; the public service
	// instances throttle aggressively. Zero selects the default.
	RequestsPerSecond float64

	// Burst is the limiter bucket size. Zero selects the default.
	Burst int
}

// Client talks to a Safe Transaction Service instance over its REST API
type Client struct {
	baseUrl    string
	logger     *zap.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new transaction service client
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.BaseUrl == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if config.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	requestsPerSecond := config.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	burst := config.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		baseUrl: strings.TrimSuffix(config.BaseUrl, "/"),
		logger:  config.Logger,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}, nil
}

// SetHttpClient allows setting a custom HTTP client
func (c *Client) SetHttpClient(client *http.Client) {
	c.httpClient = client
}

// GetPendingTransactions returns all queued, not-yet-executed transactions
// for the Safe, walking every page the service returns
func (c *Client) GetPendingTransactions(ctx context.Context, safeAddress string) ([]MultisigTransaction, error) {
	url := fmt.Sprintf("%s/api/v1/safes/%s/multisig-transactions/?executed=false&ordering=nonce", c.baseUrl, safeAddress)

	var transactions []MultisigTransaction
	for url != "" {
		var page PaginatedMultisigTransactions
		if err := c.getJSON(ctx, url, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch pending transactions for safe %s: %w", safeAddress, err)
		}
		transactions = append(transactions, page.Results...)
		url = page.Next
	}

	c.logger.Sugar().Debugw("Fetched pending transactions from service",
		"safe", safeAddress,
		"count", len(transactions),
	)

	return transactions, nil
}

// GetMultisigTransaction fetches a single queued transaction by Safe tx hash
func (c *Client) GetMultisigTransaction(ctx context.Context, safeTxHash string) (*MultisigTransaction, error) {
	url := fmt.Sprintf("%s/api/v1/multisig-transactions/%s/", c.baseUrl, safeTxHash)

	var transaction MultisigTransaction
	if err := c.getJSON(ctx, url, &transaction); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", safeTxHash, err)
	}

	return &transaction, nil
}

// ProposeTransaction queues a signed proposal with the service
func (c *Client) ProposeTransaction(ctx context.Context, safeAddress string, proposal *TransactionProposal) error {
	if proposal == nil {
		return fmt.Errorf("proposal cannot be nil")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/safes/%s/multisig-transactions/", c.baseUrl, safeAddress)

	body, err := json.Marshal(proposal)
	if err != nil {
		return fmt.Errorf("failed to marshal proposal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("proposal request to %s failed: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		responseBody, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(responseBody)}
	}

	c.logger.Sugar().Infow("Proposed transaction to service",
		"safe", safeAddress,
		"nonce", proposal.Nonce,
		"safeTxHash", proposal.ContractTransactionHash,
	)

	return nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(responseBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}
