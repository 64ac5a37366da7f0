package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/service"
)

type ChainReader interface {
	ReadParsedBounty(ctx context.Context, bountyID uint64) (*domain.ParsedChainData, error)
	FetchBountyStatusAndReward(ctx context.Context, bountyID uint64) (*domain.BountyStatusReward, error)
	ReadProposalMappings(ctx context.Context, bountyID, proposalID uint64) (*domain.ProposalMappings, error)
}

type ProgramBrowser interface {
	GetProgramTransactions(ctx context.Context, programID, functionName string, page, pageSize int) ([]domain.TransactionSummary, error)
}

type RewardSender interface {
	PrivateTransfer(ctx context.Context, req service.RewardTransfer, observe service.Observer) (*domain.TransferResult, error)
	PublicTransfer(ctx context.Context, req service.RewardTransfer, observe service.Observer) (*domain.TransferResult, error)
}

type ProposalStore interface {
	SaveProposal(ctx context.Context, p *domain.Proposal) error
	GetProposal(ctx context.Context, bountyID, proposalID uint64) (*domain.Proposal, error)
	ListProposals(ctx context.Context, bountyID uint64) ([]*domain.Proposal, error)
	SetRewardSent(ctx context.Context, bountyID, proposalID uint64, sent bool) error
}

// TransitionInvoker runs bounty program transitions and credits transfers
type TransitionInvoker interface {
	PostBounty(ctx context.Context, caller string, bountyID, reward uint64) (string, error)
	DeleteBounty(ctx context.Context, caller string, bountyID uint64) (string, error)
	ViewBountyByID(ctx context.Context, bountyID uint64) (*domain.BountyView, error)
	SubmitProposal(ctx context.Context, caller string, bountyID, proposalID uint64, proposer string) (string, error)
	AcceptProposal(ctx context.Context, caller string, bountyID, proposalID uint64, creator string, reward uint64) (string, error)
	DenyProposal(ctx context.Context, caller string, bountyID, proposalID uint64) (string, error)
	Transfer(ctx context.Context, caller, receiver string, amount uint64) (string, error)
	TransferPublic(ctx context.Context, recipient string, amount uint64) (string, error)
	TransferPrivate(ctx context.Context, senderRecord, recipient string, amount uint64) (*domain.PrivateTransferOutputs, error)
	GetProgramSource(ctx context.Context, programID string) (string, error)
}

type TransactionJournal interface {
	ListTransactions(ctx context.Context, limit, offset int) ([]*domain.SubmittedTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.SubmittedTransaction, error)
}

// BountyHTTPHandler serves the bounty board REST API
type BountyHTTPHandler struct {
	chain     ChainReader
	programs  ProgramBrowser
	invoker   TransitionInvoker
	rewards   RewardSender
	proposals ProposalStore
	journal   TransactionJournal
	fees      service.FeeTable
}

func NewBountyHTTPHandler(
	chain ChainReader,
	programs ProgramBrowser,
	invoker TransitionInvoker,
	rewards RewardSender,
	proposals ProposalStore,
	journal TransactionJournal,
) *BountyHTTPHandler {
	return &BountyHTTPHandler{
		chain:     chain,
		programs:  programs,
		invoker:   invoker,
		rewards:   rewards,
		proposals: proposals,
		journal:   journal,
		fees:      service.DefaultFees,
	}
}

// RegisterRoutes mounts the API on r. Mutating routes are wrapped by auth.
func (h *BountyHTTPHandler) RegisterRoutes(r *mux.Router, auth mux.MiddlewareFunc) {
	if auth == nil {
		auth = func(next http.Handler) http.Handler { return next }
	}

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/bounties/{bountyId}", h.GetBounty).Methods(http.MethodGet)
	api.HandleFunc("/bounties/{bountyId}/status", h.GetBountyStatus).Methods(http.MethodGet)
	api.HandleFunc("/bounties/{bountyId}/proposals", h.ListProposals).Methods(http.MethodGet)
	api.HandleFunc("/bounties/{bountyId}/proposals/{proposalId}", h.GetProposal).Methods(http.MethodGet)
	api.HandleFunc("/fees/{function}", h.GetFee).Methods(http.MethodGet)
	api.HandleFunc("/programs/{programId}/transactions", h.GetProgramTransactions).Methods(http.MethodGet)
	api.HandleFunc("/programs/{programId}/source", h.GetProgramSource).Methods(http.MethodGet)
	api.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{transactionId}", h.GetTransaction).Methods(http.MethodGet)

	protected := func(path string, fn http.HandlerFunc, method string) {
		api.Handle(path, auth(fn)).Methods(method)
	}
	protected("/bounties", h.PostBounty, http.MethodPost)
	protected("/bounties/{bountyId}", h.DeleteBounty, http.MethodDelete)
	protected("/bounties/{bountyId}/view", h.ViewBounty, http.MethodPost)
	protected("/bounties/{bountyId}/proposals", h.SubmitProposal, http.MethodPost)
	protected("/bounties/{bountyId}/proposals/{proposalId}/accept", h.AcceptProposal, http.MethodPost)
	protected("/bounties/{bountyId}/proposals/{proposalId}/deny", h.DenyProposal, http.MethodPost)
	protected("/bounties/{bountyId}/proposals/{proposalId}/reward", h.SendReward, http.MethodPost)
	protected("/transfers", h.Transfer, http.MethodPost)
	protected("/credits/transfer_public", h.TransferPublic, http.MethodPost)
	protected("/credits/transfer_private", h.TransferPrivate, http.MethodPost)

	r.Handle("/api/proposals", auth(http.HandlerFunc(h.CreateProposal))).Methods(http.MethodPost)
	r.Handle("/api/update-proposal-reward", auth(http.HandlerFunc(h.UpdateProposalReward))).Methods(http.MethodPatch)
}

func (h *BountyHTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownFunction),
		errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrNoRecords),
		errors.Is(err, domain.ErrNoUnspentRecords),
		errors.Is(err, domain.ErrNoSufficientRecord):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransport),
		errors.Is(err, domain.ErrRejected),
		errors.Is(err, domain.ErrTransactionRejected):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrFinalizationTimeout):
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func pathUint(r *http.Request, name string) (uint64, error) {
	n, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, errors.Errorf("%s must be an unsigned integer", name)
	}
	return n, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func queryInt(r *http.Request, name string, def, max int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
