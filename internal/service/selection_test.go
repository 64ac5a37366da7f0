package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkontract/zkbounty/internal/domain"
)

func rec(id, microcredits string, spent bool) domain.Record {
	return domain.Record{
		ID:    id,
		Data:  map[string]string{"microcredits": microcredits},
		Spent: spent,
	}
}

func TestSelectRecordFirstFit(t *testing.T) {
	records := []domain.Record{
		rec("a", "10u64.private", false),
		rec("b", "50u64.private", false),
		rec("c", "5u64.private", false),
	}

	for i := 0; i < 3; i++ {
		got, err := SelectRecord(records, 20, domain.FirstFit)
		require.NoError(t, err)
		assert.Equal(t, "b", got.ID)
	}
}

func TestSelectRecordFirstFitIgnoresSmallerLaterRecord(t *testing.T) {
	records := []domain.Record{
		rec("a", "100u64.private", false),
		rec("b", "30u64.private", false),
	}

	got, err := SelectRecord(records, 20, domain.FirstFit)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	got, err = SelectRecord(records, 20, domain.BestFit)
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
}

func TestSelectRecordBestFitTiesKeepOrder(t *testing.T) {
	records := []domain.Record{
		rec("a", "30u64.private", false),
		rec("b", "30u64.private", false),
	}

	got, err := SelectRecord(records, 30, domain.BestFit)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestSelectRecordFailures(t *testing.T) {
	_, err := SelectRecord(nil, 1, domain.FirstFit)
	assert.ErrorIs(t, err, domain.ErrNoRecords)

	_, err = SelectRecord([]domain.Record{
		rec("spent", "100u64.private", true),
		rec("public", "100u64.public", false),
		{ID: "nodata"},
	}, 1, domain.FirstFit)
	assert.ErrorIs(t, err, domain.ErrNoUnspentRecords)

	_, err = SelectRecord([]domain.Record{
		rec("a", "10u64.private", false),
		rec("b", "19u64.private", false),
	}, 20, domain.FirstFit)
	assert.ErrorIs(t, err, domain.ErrNoSufficientRecord)
}
