// Package jsonrpc implements a minimal Ethereum JSON-RPC 2.0 client over
// HTTP. It covers the read-only node queries the wallet tooling needs
// (chain id, block number, client version) and supports HTTP basic auth and
// proxy routing at the transport level.
package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/meridianwallet/walletcore/pkg/log"
)

const (
	// DefaultTimeout bounds a single HTTP round-trip.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryCount is the number of transport-level retries.
	DefaultRetryCount = 2
)

// Config contains the connection options for a JSON-RPC endpoint.
type Config struct {
	// URL is the full endpoint URL, e.g. "https://rpc.example.org".
	URL string
	// Username enables HTTP basic auth together with Password when non-empty.
	Username string
	Password string
	// ProxyURL routes requests through an HTTP proxy when set. Standard
	// HTTP_PROXY/HTTPS_PROXY environment variables apply when it is empty.
	ProxyURL string
	// Timeout bounds each round-trip; DefaultTimeout when zero.
	Timeout time.Duration
	// RetryCount overrides DefaultRetryCount when positive.
	RetryCount int
	// Logger receives per-call debug entries. Optional.
	Logger log.Logger
}

// Client is a JSON-RPC 2.0 client bound to a single endpoint. It is safe for
// concurrent use.
type Client struct {
	http *resty.Client
	lg   log.Logger
}

// NewClient builds a client for the configured endpoint.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("endpoint URL is required")
	}

	lg := cfg.Logger
	if lg == nil {
		lg = log.NewNoopLogger()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	retryCount := cfg.RetryCount
	if retryCount <= 0 {
		retryCount = DefaultRetryCount
	}

	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.Username != "" {
		httpClient.SetBasicAuth(cfg.Username, cfg.Password)
	}
	if cfg.ProxyURL != "" {
		httpClient.SetProxy(cfg.ProxyURL)
	}

	return &Client{http: httpClient, lg: lg.WithName("jsonrpc")}, nil
}

// request is a JSON-RPC 2.0 request envelope.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// response is a JSON-RPC 2.0 response envelope.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// Error is a JSON-RPC 2.0 error object returned by the server.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Call invokes a JSON-RPC method and decodes its result into out. Server-side
// errors surface as *Error; transport failures keep their wrapped cause.
// A nil out discards the result.
func (c *Client) Call(ctx context.Context, method string, params []any, out any) error {
	if params == nil {
		params = []any{}
	}
	req := request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	var res response
	httpRes, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&res).
		Post("")
	if err != nil {
		return errors.Wrapf(err, "call %s", method)
	}
	if httpRes.IsError() {
		return errors.Errorf("call %s: unexpected HTTP status %s", method, httpRes.Status())
	}
	if res.Error != nil {
		return errors.Wrapf(res.Error, "call %s", method)
	}
	if res.ID != req.ID {
		return errors.Errorf("call %s: response id %q does not match request id %q", method, res.ID, req.ID)
	}

	c.lg.Debug("rpc call completed", "method", method, "id", req.ID)
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Result, out); err != nil {
		return errors.Wrapf(err, "decode %s result", method)
	}
	return nil
}

// ChainID queries eth_chainId and returns the decoded chain id.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var raw string
	if err := c.Call(ctx, "eth_chainId", nil, &raw); err != nil {
		return nil, err
	}
	id, err := hexutil.DecodeBig(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode chain id")
	}
	return id, nil
}

// BlockNumber queries eth_blockNumber and returns the latest block height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var raw string
	if err := c.Call(ctx, "eth_blockNumber", nil, &raw); err != nil {
		return 0, err
	}
	height, err := hexutil.DecodeUint64(raw)
	if err != nil {
		return 0, errors.Wrap(err, "decode block number")
	}
	return height, nil
}

// ClientVersion queries web3_clientVersion.
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	var version string
	if err := c.Call(ctx, "web3_clientVersion", nil, &version); err != nil {
		return "", err
	}
	return version, nil
}
