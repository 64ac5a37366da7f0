package gormdb

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zkontract/zkbounty/internal/domain"
)

// ErrProposalNotFound is returned when no metadata row exists for a proposal.
// It matches domain.ErrNotFound.
var ErrProposalNotFound = errors.Wrap(domain.ErrNotFound, "proposal")

// ProposalModel stores off-chain proposal metadata
type ProposalModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	BountyID        uint64 `gorm:"uniqueIndex:idx_bounty_proposal;not null"`
	ProposalID      uint64 `gorm:"uniqueIndex:idx_bounty_proposal;not null"`
	ProposerAddress string `gorm:"index;not null"`
	ProposalText    string
	FileName        string
	FileURL         string
	Status          string
	RewardSent      bool `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ProposalModel) TableName() string {
	return "proposals"
}

type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{
		db: db,
	}
}

func toDomainProposal(model *ProposalModel) *domain.Proposal {
	return &domain.Proposal{
		BountyID:        model.BountyID,
		ProposalID:      model.ProposalID,
		ProposerAddress: model.ProposerAddress,
		ProposalText:    model.ProposalText,
		FileName:        model.FileName,
		FileURL:         model.FileURL,
		Status:          model.Status,
		RewardSent:      model.RewardSent,
	}
}

// SaveProposal inserts or replaces the metadata of a proposal
func (r *ProposalRepository) SaveProposal(ctx context.Context, p *domain.Proposal) error {
	model := &ProposalModel{
		BountyID:        p.BountyID,
		ProposalID:      p.ProposalID,
		ProposerAddress: p.ProposerAddress,
		ProposalText:    p.ProposalText,
		FileName:        p.FileName,
		FileURL:         p.FileURL,
		Status:          p.Status,
		RewardSent:      p.RewardSent,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "bounty_id"}, {Name: "proposal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"proposer_address", "proposal_text", "file_name", "file_url", "status", "reward_sent", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("saving proposal: %w", err)
	}

	return nil
}

// GetProposal returns ErrProposalNotFound when no row matches
func (r *ProposalRepository) GetProposal(ctx context.Context, bountyID, proposalID uint64) (*domain.Proposal, error) {
	var model ProposalModel
	err := r.db.WithContext(ctx).
		Where("bounty_id = ? AND proposal_id = ?", bountyID, proposalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("getting proposal: %w", err)
	}
	return toDomainProposal(&model), nil
}

// ListProposals returns proposals of a bounty ordered by proposal id
func (r *ProposalRepository) ListProposals(ctx context.Context, bountyID uint64) ([]*domain.Proposal, error) {
	var models []ProposalModel
	if err := r.db.WithContext(ctx).
		Where("bounty_id = ?", bountyID).
		Order("proposal_id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}

	proposals := make([]*domain.Proposal, len(models))
	for i := range models {
		proposals[i] = toDomainProposal(&models[i])
	}
	return proposals, nil
}

// SetRewardSent updates the reward flag of an existing proposal
func (r *ProposalRepository) SetRewardSent(ctx context.Context, bountyID, proposalID uint64, sent bool) error {
	res := r.db.WithContext(ctx).Model(&ProposalModel{}).
		Where("bounty_id = ? AND proposal_id = ?", bountyID, proposalID).
		Update("reward_sent", sent)
	if res.Error != nil {
		return fmt.Errorf("updating reward flag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}
