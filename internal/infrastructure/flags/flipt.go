package flags

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	flipt "go.flipt.io/flipt-client"

	"github.com/zkontract/zkbounty/internal/domain"
)

// BestFitFlag switches private transfers to best-fit record selection.
const BestFitFlag = "best-fit-record-selection"

type evaluateFunc func(ctx context.Context, flagKey, entityID string) (bool, error)

// PolicyProvider resolves the record selection policy per wallet address.
// Evaluation failures fall back to the configured default.
type PolicyProvider struct {
	evaluate evaluateFunc
	fallback domain.SelectionPolicy
	close    func(ctx context.Context) error
}

func NewFliptPolicyProvider(ctx context.Context, url, namespace string, fallback domain.SelectionPolicy) (*PolicyProvider, error) {
	client, err := flipt.NewClient(ctx,
		flipt.WithURL(url),
		flipt.WithNamespace(namespace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating flipt client")
	}

	evaluate := func(ctx context.Context, flagKey, entityID string) (bool, error) {
		res, err := client.EvaluateBoolean(ctx, &flipt.EvaluationRequest{
			FlagKey:  flagKey,
			EntityID: entityID,
			Context:  map[string]string{"entity": entityID},
		})
		if err != nil {
			return false, err
		}
		return res.Enabled, nil
	}

	return &PolicyProvider{
		evaluate: evaluate,
		fallback: fallback,
		close:    client.Close,
	}, nil
}

// NewStaticPolicyProvider always answers policy.
func NewStaticPolicyProvider(policy domain.SelectionPolicy) *PolicyProvider {
	return &PolicyProvider{fallback: policy}
}

// SelectionPolicy answers best-fit when the flag is on for address and the
// configured policy otherwise.
func (p *PolicyProvider) SelectionPolicy(ctx context.Context, address string) domain.SelectionPolicy {
	if p.evaluate == nil {
		return p.fallback
	}

	enabled, err := p.evaluate(ctx, BestFitFlag, address)
	if err != nil {
		log.Warn().Err(err).Str("flag", BestFitFlag).Msg("flag evaluation failed, using default policy")
		return p.fallback
	}
	if enabled {
		return domain.BestFit
	}

	return p.fallback
}

func (p *PolicyProvider) Close(ctx context.Context) error {
	if p.close == nil {
		return nil
	}
	return p.close(ctx)
}
