package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
)

const UpdateRewardPath = "/api/update-proposal-reward"

type authorizationKey struct{}

// WithAuthorization attaches an Authorization header value to ctx. The
// client forwards it in preference to its own token.
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authorizationKey{}, header)
}

// Client updates off-chain proposal metadata
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithBearerToken authenticates requests that carry no forwarded header
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) authorization(ctx context.Context) string {
	if header, ok := ctx.Value(authorizationKey{}).(string); ok {
		return header
	}
	if c.token != "" {
		return "Bearer " + c.token
	}
	return ""
}

// MarkRewardSent flags the proposal's reward as paid. Any non-2xx answer is
// reported as ErrMetadataUpdateFailed.
func (c *Client) MarkRewardSent(ctx context.Context, bountyID, proposalID uint64) error {
	body, err := json.Marshal(domain.RewardUpdate{
		BountyID:   bountyID,
		ProposalID: proposalID,
		RewardSent: true,
	})
	if err != nil {
		return errors.Wrap(err, "marshaling reward update")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+UpdateRewardPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := c.authorization(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(domain.ErrMetadataUpdateFailed, "sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(domain.ErrMetadataUpdateFailed, "unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
