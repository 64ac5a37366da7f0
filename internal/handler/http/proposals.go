package http

import (
	"encoding/json"
	"net/http"

	"github.com/zkontract/zkbounty/internal/domain"
)

func (h *BountyHTTPHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	proposals, err := h.proposals.ListProposals(r.Context(), bountyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"proposals": proposals,
		"total":     len(proposals),
	})
}

func (h *BountyHTTPHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var p domain.Proposal
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if p.ProposerAddress == "" {
		http.Error(w, "proposerAddress is required", http.StatusBadRequest)
		return
	}

	if err := h.proposals.SaveProposal(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// UpdateProposalReward is the endpoint the transfer engine reports payouts to
func (h *BountyHTTPHandler) UpdateProposalReward(w http.ResponseWriter, r *http.Request) {
	var upd domain.RewardUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.proposals.SetRewardSent(r.Context(), upd.BountyID, upd.ProposalID, upd.RewardSent); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Proposal reward status updated",
	})
}
