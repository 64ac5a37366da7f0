package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/metadata"
	"github.com/zkontract/zkbounty/internal/service"
)

func (h *BountyHTTPHandler) GetBounty(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.chain.ReadParsedBounty(r.Context(), bountyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bountyId": bountyID,
		"creator":  data.Creator,
		"payment":  data.Payment,
		"status":   data.Status,
	})
}

func (h *BountyHTTPHandler) GetBountyStatus(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sr, err := h.chain.FetchBountyStatusAndReward(r.Context(), bountyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bountyId": bountyID,
		"status":   sr.Status,
		"reward":   sr.Reward,
	})
}

// GetProposal returns on-chain mappings merged with stored metadata when present
func (h *BountyHTTPHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	proposalID, err := pathUint(r, "proposalId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mappings, err := h.chain.ReadProposalMappings(r.Context(), bountyID, proposalID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := map[string]any{
		"bountyId":    bountyID,
		"proposalId":  proposalID,
		"compositeId": service.CompositeProposalID(bountyID, proposalID),
		"onChain":     mappings,
	}
	if meta, err := h.proposals.GetProposal(r.Context(), bountyID, proposalID); err == nil {
		response["metadata"] = meta
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *BountyHTTPHandler) GetFee(w http.ResponseWriter, r *http.Request) {
	function := mux.Vars(r)["function"]

	fee, err := h.fees.FeeFor(function)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"function":     function,
		"credits":      h.fees[function],
		"microcredits": fee,
	})
}

func (h *BountyHTTPHandler) GetProgramTransactions(w http.ResponseWriter, r *http.Request) {
	programID := mux.Vars(r)["programId"]
	function := r.URL.Query().Get("function")
	page := queryInt(r, "page", 1, 0)
	limit := queryInt(r, "limit", 50, 1000)

	txs, err := h.programs.GetProgramTransactions(r.Context(), programID, function, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": txs,
		"total":        len(txs),
		"page":         page,
		"limit":        limit,
	})
}

func (h *BountyHTTPHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50, 1000)
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	txs, err := h.journal.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": txs,
		"total":        len(txs),
		"limit":        limit,
		"offset":       offset,
	})
}

func (h *BountyHTTPHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txID := mux.Vars(r)["transactionId"]

	tx, err := h.journal.GetTransaction(r.Context(), txID)
	if err != nil {
		writeError(w, err)
		return
	}
	if tx == nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (h *BountyHTTPHandler) GetProgramSource(w http.ResponseWriter, r *http.Request) {
	programID := mux.Vars(r)["programId"]

	source, err := h.invoker.GetProgramSource(r.Context(), programID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"programId": programID,
		"source":    source,
	})
}

type sendRewardRequest struct {
	Recipient string `json:"recipient"`
	Reward    uint64 `json:"reward"`
	Private   bool   `json:"private"`
}

// SendReward pays an accepted proposal through the transfer engine and
// returns the progress messages alongside the result.
func (h *BountyHTTPHandler) SendReward(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	proposalID, err := pathUint(r, "proposalId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req sendRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Recipient == "" || req.Reward == 0 {
		http.Error(w, "recipient and reward are required", http.StatusBadRequest)
		return
	}

	transfer := service.RewardTransfer{
		Recipient:  req.Recipient,
		Reward:     req.Reward,
		BountyID:   bountyID,
		ProposalID: proposalID,
	}

	var progress []string
	observe := func(ev domain.TransferEvent) {
		progress = append(progress, ev.Message)
	}

	send := h.rewards.PublicTransfer
	if req.Private {
		send = h.rewards.PrivateTransfer
	}

	// the metadata PATCH may come back to this API; forward the caller's credentials
	ctx := metadata.WithAuthorization(r.Context(), r.Header.Get("Authorization"))

	res, err := send(ctx, transfer, observe)
	if err != nil {
		log.Error().Err(err).Uint64("bounty", bountyID).Uint64("proposal", proposalID).Msg("reward transfer failed")
		if res == nil {
			writeError(w, err)
			return
		}
		// the transaction exists on chain; report it with the failure
		writeJSON(w, http.StatusAccepted, map[string]any{
			"result":   res,
			"progress": progress,
			"error":    err.Error(),
		})
		return
	}

	if err := h.proposals.SetRewardSent(r.Context(), bountyID, proposalID, true); err != nil {
		log.Warn().Err(err).Uint64("bounty", bountyID).Uint64("proposal", proposalID).Msg("local reward flag not updated")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result":   res,
		"progress": progress,
	})
}
