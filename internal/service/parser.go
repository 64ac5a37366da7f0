package service

import (
	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

// StatusLabel maps an on-chain status code to its label; unknown codes
// yield domain.StatusUnknown.
func StatusLabel(code uint64) string {
	if label, ok := domain.BountyStatusLabels[domain.BountyStatusCode(code)]; ok {
		return label
	}
	return domain.StatusUnknown
}

// ParseBountyChainData decodes raw bounty mapping literals such as "15u64"
// and "0u8". Only an unreadable payment is an error.
func ParseBountyChainData(raw domain.BountyMappings) (domain.ParsedChainData, error) {
	payment, ok := aleo.LeadingUint(raw.Payment)
	if !ok {
		return domain.ParsedChainData{}, errors.Errorf("invalid payment literal %q", raw.Payment)
	}

	status := domain.StatusUnknown
	if code, ok := aleo.LeadingUint(raw.Status); ok {
		status = StatusLabel(code)
	}

	return domain.ParsedChainData{
		Creator: raw.Creator,
		Payment: payment,
		Status:  status,
	}, nil
}
