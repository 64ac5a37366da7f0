package http

import (
	"net/http"
)

type postBountyRequest struct {
	Caller   string `json:"caller"`
	BountyID uint64 `json:"bountyId"`
	Reward   uint64 `json:"reward"`
}

type callerRequest struct {
	Caller string `json:"caller"`
}

type submitProposalRequest struct {
	Caller     string `json:"caller"`
	ProposalID uint64 `json:"proposalId"`
	Proposer   string `json:"proposer"`
}

type acceptProposalRequest struct {
	Caller  string `json:"caller"`
	Creator string `json:"creator"`
	Reward  uint64 `json:"reward"`
}

type transferRequest struct {
	Caller   string `json:"caller"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

type creditsTransferRequest struct {
	SenderRecord string `json:"senderRecord"`
	Recipient    string `json:"recipient"`
	Amount       uint64 `json:"amount"`
}

func writeTransaction(w http.ResponseWriter, txID string, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"transactionId": txID})
}

func (h *BountyHTTPHandler) PostBounty(w http.ResponseWriter, r *http.Request) {
	var req postBountyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" || req.Reward == 0 {
		http.Error(w, "caller and reward are required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.PostBounty(r.Context(), req.Caller, req.BountyID, req.Reward)
	writeTransaction(w, txID, err)
}

func (h *BountyHTTPHandler) DeleteBounty(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" {
		http.Error(w, "caller is required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.DeleteBounty(r.Context(), req.Caller, bountyID)
	writeTransaction(w, txID, err)
}

// ViewBounty runs view_bounty_by_id and returns the mirrored payment and status
func (h *BountyHTTPHandler) ViewBounty(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.invoker.ViewBountyByID(r.Context(), bountyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bountyId": bountyID,
		"payment":  view.Payment,
		"status":   view.Status,
	})
}

func (h *BountyHTTPHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	bountyID, err := pathUint(r, "bountyId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req submitProposalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" || req.Proposer == "" {
		http.Error(w, "caller and proposer are required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.SubmitProposal(r.Context(), req.Caller, bountyID, req.ProposalID, req.Proposer)
	writeTransaction(w, txID, err)
}

func (h *BountyHTTPHandler) AcceptProposal(w http.ResponseWriter, r *http.Request) {
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
	var req acceptProposalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" || req.Creator == "" || req.Reward == 0 {
		http.Error(w, "caller, creator and reward are required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.AcceptProposal(r.Context(), req.Caller, bountyID, proposalID, req.Creator, req.Reward)
	writeTransaction(w, txID, err)
}

func (h *BountyHTTPHandler) DenyProposal(w http.ResponseWriter, r *http.Request) {
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
	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" {
		http.Error(w, "caller is required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.DenyProposal(r.Context(), req.Caller, bountyID, proposalID)
	writeTransaction(w, txID, err)
}

// Transfer runs the bounty program's own transfer transition
func (h *BountyHTTPHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Caller == "" || req.Receiver == "" || req.Amount == 0 {
		http.Error(w, "caller, receiver and amount are required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.Transfer(r.Context(), req.Caller, req.Receiver, req.Amount)
	writeTransaction(w, txID, err)
}

func (h *BountyHTTPHandler) TransferPublic(w http.ResponseWriter, r *http.Request) {
	var req creditsTransferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Recipient == "" || req.Amount == 0 {
		http.Error(w, "recipient and amount are required", http.StatusBadRequest)
		return
	}

	txID, err := h.invoker.TransferPublic(r.Context(), req.Recipient, req.Amount)
	writeTransaction(w, txID, err)
}

func (h *BountyHTTPHandler) TransferPrivate(w http.ResponseWriter, r *http.Request) {
	var req creditsTransferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.SenderRecord == "" || req.Recipient == "" || req.Amount == 0 {
		http.Error(w, "senderRecord, recipient and amount are required", http.StatusBadRequest)
		return
	}

	out, err := h.invoker.TransferPrivate(r.Context(), req.SenderRecord, req.Recipient, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
