package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zkontract/zkbounty/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := NewDB(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))

	require.NoError(t, repo.RecordSubmitted(ctx, "at1a", domain.BountyProgramID, "post_bounty"))
	require.NoError(t, repo.RecordSubmitted(ctx, "at1b", domain.CreditsProgramID, "transfer_public"))
	// duplicate is ignored
	require.NoError(t, repo.RecordSubmitted(ctx, "at1a", domain.BountyProgramID, "post_bounty"))

	txs, err := repo.ListTransactions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	require.NoError(t, repo.UpdateStatus(ctx, "at1a", domain.StatusFinalized, true))

	tx, err := repo.GetTransaction(ctx, "at1a")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, domain.StatusFinalized, tx.Status)
	assert.Equal(t, "post_bounty", tx.FunctionName)
	assert.False(t, tx.FinalizedAt.IsZero())

	missing, err := repo.GetTransaction(ctx, "at1zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, repo.UpdateStatus(ctx, "at1zzz", "Pending", false))
}

func TestProposalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalRepository(newTestDB(t))

	require.NoError(t, repo.SaveProposal(ctx, &domain.Proposal{
		BountyID:        7,
		ProposalID:      2,
		ProposerAddress: "aleo1p2",
		ProposalText:    "second",
	}))
	require.NoError(t, repo.SaveProposal(ctx, &domain.Proposal{
		BountyID:        7,
		ProposalID:      1,
		ProposerAddress: "aleo1p1",
		ProposalText:    "first",
	}))
	// upsert keeps a single row per (bounty, proposal)
	require.NoError(t, repo.SaveProposal(ctx, &domain.Proposal{
		BountyID:        7,
		ProposalID:      1,
		ProposerAddress: "aleo1p1",
		ProposalText:    "first, edited",
	}))

	list, err := repo.ListProposals(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].ProposalID)
	assert.Equal(t, "first, edited", list[0].ProposalText)

	require.NoError(t, repo.SetRewardSent(ctx, 7, 2, true))
	p, err := repo.GetProposal(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, p.RewardSent)

	assert.ErrorIs(t, repo.SetRewardSent(ctx, 8, 1, true), ErrProposalNotFound)

	_, err = repo.GetProposal(ctx, 8, 1)
	assert.ErrorIs(t, err, ErrProposalNotFound)
}
