package service

import (
	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

// SelectRecord picks one unspent private record worth at least required
// microcredits. Records are never modified. FirstFit keeps wallet order;
// BestFit takes the smallest sufficient record, first one on ties.
func SelectRecord(records []domain.Record, required uint64, policy domain.SelectionPolicy) (domain.Record, error) {
	if len(records) == 0 {
		return domain.Record{}, domain.ErrNoRecords
	}

	unspent := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		mc, ok := rec.Microcredits()
		if !ok || !aleo.IsPrivateU64(mc) {
			continue
		}
		if rec.Spent {
			continue
		}
		unspent = append(unspent, rec)
	}
	if len(unspent) == 0 {
		return domain.Record{}, domain.ErrNoUnspentRecords
	}

	chosen := -1
	var chosenValue uint64
	for i, rec := range unspent {
		mc, _ := rec.Microcredits()
		value, _ := aleo.LeadingUint(mc)
		if value < required {
			continue
		}
		if chosen == -1 {
			chosen, chosenValue = i, value
			if policy != domain.BestFit {
				break
			}
			continue
		}
		if value < chosenValue {
			chosen, chosenValue = i, value
		}
	}
	if chosen == -1 {
		return domain.Record{}, domain.ErrNoSufficientRecord
	}

	return unspent[chosen], nil
}
