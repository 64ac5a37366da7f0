package domain

const (
	BountyProgramID  = "zkontract.aleo"
	CreditsProgramID = "credits.aleo"

	// ProposalIDSpace is the multiplier of the composite proposal key.
	// Keys only stay unique while proposal ids are below it.
	ProposalIDSpace = 1_000_000
)

// BountyStatusCode is the on-chain u8 status of a bounty
type BountyStatusCode int

const (
	BountyStatusOpen BountyStatusCode = iota
	BountyStatusCompleted
)

// StatusUnknown is the label for any code missing from BountyStatusLabels.
const StatusUnknown = "Unknown"

var BountyStatusLabels = map[BountyStatusCode]string{
	BountyStatusOpen:      "Open",
	BountyStatusCompleted: "Completed",
}

// MappingKey addresses one value of a program mapping
type MappingKey struct {
	ProgramID   string
	MappingName string
	Key         string
}

// BountyMappings holds the raw, undecoded mapping values of a bounty
type BountyMappings struct {
	Creator string `json:"creator"`
	Payment string `json:"payment"`
	Status  string `json:"status"`
}

// ProposalMappings holds the raw mapping values of a proposal
type ProposalMappings struct {
	ProposalBountyID string `json:"proposalBountyId"`
	ProposalProposer string `json:"proposalProposer"`
	ProposalStatus   string `json:"proposalStatus"`
}

// BountyStatusReward is the null-coalesced status/reward pair.
// Empty fields mean the node returned no value.
type BountyStatusReward struct {
	Status string `json:"status"`
	Reward string `json:"reward"`
}

// ParsedChainData is the decoded view of BountyMappings
type ParsedChainData struct {
	Creator string `json:"creator"`
	Payment uint64 `json:"payment"`
	Status  string `json:"status"`
}

// BountyView is returned by the view_bounty_by_id flow
type BountyView struct {
	Payment uint64 `json:"payment"`
	Status  uint64 `json:"status"`
}

// Proposal is the off-chain metadata kept next to an on-chain proposal
type Proposal struct {
	BountyID        uint64 `json:"bountyId"`
	ProposalID      uint64 `json:"proposalId"`
	ProposerAddress string `json:"proposerAddress"`
	ProposalText    string `json:"proposalText,omitempty"`
	FileName        string `json:"fileName,omitempty"`
	FileURL         string `json:"fileUrl,omitempty"`
	Status          string `json:"status,omitempty"`
	RewardSent      bool   `json:"rewardSent"`
}

// RewardUpdate is the body of PATCH /api/update-proposal-reward
type RewardUpdate struct {
	BountyID   uint64 `json:"bountyId"`
	ProposalID uint64 `json:"proposalId"`
	RewardSent bool   `json:"rewardSent"`
}
