package service

import (
	"context"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

// MappingReader reads the bounty program's mappings
type MappingReader struct {
	client    ChainClient
	programID string
}

func NewMappingReader(client ChainClient, programID string) *MappingReader {
	return &MappingReader{
		client:    client,
		programID: programID,
	}
}

// CompositeProposalID returns bountyID*1_000_000+proposalID in decimal.
// The result is only unique across bounties while proposalID < 1_000_000.
func CompositeProposalID(bountyID, proposalID uint64) string {
	id := new(big.Int).SetUint64(bountyID)
	id.Mul(id, big.NewInt(domain.ProposalIDSpace))
	id.Add(id, new(big.Int).SetUint64(proposalID))
	return id.String()
}

func (r *MappingReader) readU64Key(ctx context.Context, mappingName, key string) (string, error) {
	value, err := r.client.GetMappingValue(ctx, r.programID, mappingName, key+aleo.SuffixU64)
	if err != nil {
		log.Error().Err(err).Str("mapping", mappingName).Str("key", key).Msg("failed to fetch mapping")
		return "", err
	}
	return value, nil
}

// ReadBountyMappings returns the raw creator, payment and status literals
func (r *MappingReader) ReadBountyMappings(ctx context.Context, bountyID uint64) (*domain.BountyMappings, error) {
	key := strconv.FormatUint(bountyID, 10)

	creator, err := r.readU64Key(ctx, "bounty_creator", key)
	if err != nil {
		return nil, err
	}
	payment, err := r.readU64Key(ctx, "bounty_payment", key)
	if err != nil {
		return nil, err
	}
	status, err := r.readU64Key(ctx, "bounty_status", key)
	if err != nil {
		return nil, err
	}

	return &domain.BountyMappings{
		Creator: creator,
		Payment: payment,
		Status:  status,
	}, nil
}

// ReadParsedBounty reads and decodes the bounty mappings
func (r *MappingReader) ReadParsedBounty(ctx context.Context, bountyID uint64) (*domain.ParsedChainData, error) {
	raw, err := r.ReadBountyMappings(ctx, bountyID)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseBountyChainData(*raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// ReadProposalMappings reads the proposal mappings under the composite key
func (r *MappingReader) ReadProposalMappings(ctx context.Context, bountyID, proposalID uint64) (*domain.ProposalMappings, error) {
	key := CompositeProposalID(bountyID, proposalID)
	log.Debug().Str("composite_id", key).Msg("fetching proposal mappings")

	bounty, err := r.readU64Key(ctx, "proposal_bounty_id", key)
	if err != nil {
		return nil, errors.Wrap(err, "fetching proposal mappings")
	}
	proposer, err := r.readU64Key(ctx, "proposal_proposer", key)
	if err != nil {
		return nil, errors.Wrap(err, "fetching proposal mappings")
	}
	status, err := r.readU64Key(ctx, "proposal_status", key)
	if err != nil {
		return nil, errors.Wrap(err, "fetching proposal mappings")
	}

	return &domain.ProposalMappings{
		ProposalBountyID: bounty,
		ProposalProposer: proposer,
		ProposalStatus:   status,
	}, nil
}

// FetchBountyStatusAndReward tolerates missing values; they come back empty.
func (r *MappingReader) FetchBountyStatusAndReward(ctx context.Context, bountyID uint64) (*domain.BountyStatusReward, error) {
	key := aleo.U64(bountyID)

	status, err := r.optional(ctx, "bounty_status", key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chain data")
	}
	reward, err := r.optional(ctx, "bounty_reward", key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chain data")
	}

	return &domain.BountyStatusReward{
		Status: status,
		Reward: reward,
	}, nil
}

// ReadAddressMapping reads an address-keyed mapping ("<addr>.public")
func (r *MappingReader) ReadAddressMapping(ctx context.Context, mappingName, address string) (string, error) {
	value, err := r.client.GetMappingValue(ctx, r.programID, mappingName, aleo.Public(address))
	if err != nil {
		return "", errors.Wrapf(err, "fetching mapping %s for %s", mappingName, address)
	}
	return value, nil
}

func (r *MappingReader) optional(ctx context.Context, mappingName, key string) (string, error) {
	value, err := r.client.GetMappingValue(ctx, r.programID, mappingName, key)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	return value, err
}
