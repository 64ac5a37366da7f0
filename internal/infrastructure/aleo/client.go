package aleo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
)

const defaultProgramCacheSize = 32

// Client talks JSON-RPC 2.0 to an Aleo node. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	rpcURL     string
	httpClient *http.Client
	programs   *lru.Cache
	cacheSize  int
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithProgramCacheSize bounds the number of program sources kept in memory.
func WithProgramCacheSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

func NewClient(rpcURL string, opts ...Option) *Client {
	c := &Client{
		rpcURL: rpcURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cacheSize: defaultProgramCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	// lru.New only fails for a non-positive size, which the option rules out.
	c.programs, _ = lru.New(c.cacheSize)

	return c
}

type JSONRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      string `json:"id"`
}

type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      string          `json:"id"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetMappingValue reads one value of a program mapping. The node may answer
// with a bare string or with {"value": ...}; a null answer is ErrNotFound.
func (c *Client) GetMappingValue(ctx context.Context, programID, mappingName, key string) (string, error) {
	params := map[string]any{
		"program_id":   programID,
		"mapping_name": mappingName,
		"key":          key,
	}

	result, err := c.Call(ctx, "getMappingValue", params)
	if err != nil {
		return "", err
	}

	value, ok, err := decodeMappingValue(result)
	if err != nil {
		return "", &domain.TransportError{Op: "getMappingValue", Err: err}
	}
	if !ok {
		return "", errors.Wrapf(domain.ErrNotFound, "mapping %q key %q", mappingName, key)
	}

	return value, nil
}

// ExecuteTransition submits a transition through the node
func (c *Client) ExecuteTransition(ctx context.Context, req domain.TransitionRequest) (*domain.TransitionResult, error) {
	params := map[string]any{
		"programId":    req.ProgramID,
		"functionName": req.FunctionName,
		"inputs":       req.Inputs,
	}

	result, err := c.Call(ctx, "executeTransition", params)
	if err != nil {
		return nil, err
	}

	var out domain.TransitionResult
	if isNull(result) {
		return &out, nil
	}
	if err := json.Unmarshal(result, &out); err != nil {
		return nil, &domain.TransportError{Op: "executeTransition", Err: errors.Wrap(err, "unmarshaling transition result")}
	}

	return &out, nil
}

// GetTransactionStatus returns the node-reported status of a transaction
func (c *Client) GetTransactionStatus(ctx context.Context, transactionID string) (string, error) {
	result, err := c.Call(ctx, "getTransactionStatus", map[string]any{"id": transactionID})
	if err != nil {
		return "", err
	}

	var status string
	if err := json.Unmarshal(result, &status); err == nil {
		return status, nil
	}

	var wrapped struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(result, &wrapped); err != nil {
		return "", &domain.TransportError{Op: "getTransactionStatus", Err: errors.Wrap(err, "unmarshaling status")}
	}

	return wrapped.Status, nil
}

// GetProgram returns the source of a deployed program. Deployed programs are
// immutable, so results are cached.
func (c *Client) GetProgram(ctx context.Context, programID string) (string, error) {
	if cached, ok := c.programs.Get(programID); ok {
		return cached.(string), nil
	}

	result, err := c.Call(ctx, "program", map[string]any{"id": programID})
	if err != nil {
		return "", err
	}

	var source string
	if err := json.Unmarshal(result, &source); err != nil {
		return "", &domain.TransportError{Op: "program", Err: errors.Wrap(err, "unmarshaling program")}
	}

	c.programs.Add(programID, source)
	return source, nil
}

// ProgramTransactions pages through transactions that called functionName
func (c *Client) ProgramTransactions(ctx context.Context, programID, functionName string, page, pageSize int) ([]domain.TransactionSummary, error) {
	params := map[string]any{
		"programId":       programID,
		"functionName":    functionName,
		"page":            page,
		"maxTransactions": pageSize,
	}

	result, err := c.Call(ctx, "aleoTransactionsForProgram", params)
	if err != nil {
		return nil, err
	}

	var txs []domain.TransactionSummary
	if isNull(result) {
		return txs, nil
	}
	if err := json.Unmarshal(result, &txs); err != nil {
		return nil, &domain.TransportError{Op: "aleoTransactionsForProgram", Err: errors.Wrap(err, "unmarshaling transactions")}
	}

	return txs, nil
}

// Call performs one JSON-RPC round trip and returns the raw result. There is
// no retry here; callers own their retry policy.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	reqBody := JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: method, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{Op: method, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: method, Err: errors.Wrap(err, "reading response")}
	}

	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, &domain.TransportError{Op: method, Err: errors.Wrap(err, "unmarshaling response")}
	}

	if rpcResp.Error != nil {
		return nil, errors.Wrapf(domain.ErrRejected, "%s: RPC error %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.ID != reqBody.ID {
		return nil, &domain.TransportError{Op: method, Err: errors.Errorf("response id %q does not match request id %q", rpcResp.ID, reqBody.ID)}
	}

	return rpcResp.Result, nil
}

func decodeMappingValue(raw json.RawMessage) (string, bool, error) {
	if isNull(raw) {
		return "", false, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true, nil
	}
	if trimmed := bytes.TrimSpace(raw); trimmed[0] != '{' {
		return string(trimmed), true, nil
	}

	var wrapped struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return "", false, errors.Wrap(err, "unmarshaling mapping value")
	}
	if isNull(wrapped.Value) {
		return "", false, nil
	}
	if err := json.Unmarshal(wrapped.Value, &s); err == nil {
		return s, true, nil
	}

	return string(wrapped.Value), true, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
