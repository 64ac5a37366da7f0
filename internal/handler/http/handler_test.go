package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/flags"
	"github.com/zkontract/zkbounty/internal/infrastructure/metadata"
	"github.com/zkontract/zkbounty/internal/infrastructure/storage/gormdb"
	"github.com/zkontract/zkbounty/internal/service"
	"github.com/zkontract/zkbounty/internal/service/mocks"
)

var testSecret = []byte("test-secret")

type apiFixture struct {
	client    *mocks.MockChainClient
	wallet    *mocks.MockWallet
	metadata  *mocks.MockMetadataNotifier
	proposals *gormdb.ProposalRepository
	journal   *gormdb.TransactionRepository
	router    *mux.Router
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormdb.NewDB(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func testAuth() mux.MiddlewareFunc {
	return RequireJWT(func(*jwt.Token) (any, error) {
		return testSecret, nil
	}, "HS256")
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db := openTestDB(t)
	ctrl := gomock.NewController(t)
	f := &apiFixture{
		client:    mocks.NewMockChainClient(ctrl),
		wallet:    mocks.NewMockWallet(ctrl),
		metadata:  mocks.NewMockMetadataNotifier(ctrl),
		proposals: gormdb.NewProposalRepository(db),
		journal:   gormdb.NewTransactionRepository(db),
	}

	bounties := service.NewBountyService(f.client, domain.BountyProgramID, service.WithJournal(f.journal))
	engine := service.NewTransferEngine(f.wallet, f.metadata, flags.NewStaticPolicyProvider(domain.FirstFit),
		service.EngineConfig{
			Address:      "aleo1owner",
			Network:      "testnetbeta",
			PollInterval: time.Millisecond,
			MaxAttempts:  5,
		},
		service.WithEngineJournal(f.journal),
	)

	handler := NewBountyHTTPHandler(bounties.Reader(), bounties, bounties, engine, f.proposals, f.journal)

	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router, testAuth())

	return f
}

func (f *apiFixture) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func signedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestGetBounty(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().GetMappingValue(gomock.Any(), domain.BountyProgramID, "bounty_creator", "7u64").Return("aleo1creator", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), domain.BountyProgramID, "bounty_payment", "7u64").Return("15u64", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), domain.BountyProgramID, "bounty_status", "7u64").Return("1u8", nil)

	rec := f.do(http.MethodGet, "/api/v1/bounties/7", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "aleo1creator", body["creator"])
	assert.Equal(t, float64(15), body["payment"])
	assert.Equal(t, "Completed", body["status"])
}

func TestGetBountyBadID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/bounties/seven", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBountyNotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "bounty_creator", "9u64").
		Return("", errors.Wrap(domain.ErrNotFound, "mapping"))

	rec := f.do(http.MethodGet, "/api/v1/bounties/9", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBountyStatusMissingValues(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "bounty_status", "3u64").Return("0u8", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "bounty_reward", "3u64").Return("", domain.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/v1/bounties/3/status", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "0u8", body["status"])
	assert.Equal(t, "", body["reward"])
}

func TestGetProposalMergesMetadata(t *testing.T) {
	f := newAPIFixture(t)
	require.NoError(t, f.proposals.SaveProposal(context.Background(), &domain.Proposal{
		BountyID: 2, ProposalID: 5, ProposerAddress: "aleo1p", ProposalText: "fix it",
	}))
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "proposal_bounty_id", "2000005u64").Return("2u64", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "proposal_proposer", "2000005u64").Return("aleo1p", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), gomock.Any(), "proposal_status", "2000005u64").Return("0u8", nil)

	rec := f.do(http.MethodGet, "/api/v1/bounties/2/proposals/5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "2000005", body["compositeId"])
	assert.Equal(t, "fix it", body["metadata"].(map[string]any)["proposalText"])
}

func TestGetFee(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/fees/transfer_private", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(44_060), decode(t, rec)["microcredits"])

	rec = f.do(http.MethodGet, "/api/v1/fees/mint", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetProgramTransactions(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().ProgramTransactions(gomock.Any(), "credits.aleo", "transfer_public", 2, 1000).
		Return([]domain.TransactionSummary{{TransactionID: "at1a"}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/programs/credits.aleo/transactions?function=transfer_public&page=2&limit=5000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])
}

func TestCreateAndListProposals(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/proposals", domain.Proposal{BountyID: 4, ProposalID: 1, ProposerAddress: "aleo1p"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := signedToken(t)
	rec = f.do(http.MethodPost, "/api/proposals", domain.Proposal{BountyID: 4, ProposalID: 1, ProposerAddress: "aleo1p"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/bounties/4/proposals", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])
}

func TestUpdateProposalReward(t *testing.T) {
	f := newAPIFixture(t)
	token := signedToken(t)
	ctx := context.Background()

	rec := f.do(http.MethodPatch, "/api/update-proposal-reward",
		domain.RewardUpdate{BountyID: 1, ProposalID: 1, RewardSent: true}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, f.proposals.SaveProposal(ctx, &domain.Proposal{BountyID: 1, ProposalID: 1, ProposerAddress: "aleo1p"}))

	rec = f.do(http.MethodPatch, "/api/update-proposal-reward",
		domain.RewardUpdate{BountyID: 1, ProposalID: 1, RewardSent: true}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := f.proposals.GetProposal(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, p.RewardSent)
}

func TestSendRewardPublic(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	require.NoError(t, f.proposals.SaveProposal(ctx, &domain.Proposal{BountyID: 7, ProposalID: 2, ProposerAddress: "aleo1p"}))

	f.wallet.EXPECT().RequestTransaction(gomock.Any(), gomock.Any()).Return("at1pub", nil)
	f.wallet.EXPECT().TransactionStatus(gomock.Any(), "at1pub").Return(domain.StatusFinalized, nil)
	f.metadata.EXPECT().MarkRewardSent(gomock.Any(), uint64(7), uint64(2)).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/bounties/7/proposals/2/reward",
		map[string]any{"recipient": "aleo1p", "reward": 5}, signedToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Contains(t, body["progress"], "Public transfer finalized.")

	p, err := f.proposals.GetProposal(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, p.RewardSent)

	tx, err := f.journal.GetTransaction(ctx, "at1pub")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, domain.StatusFinalized, tx.Status)
}

func TestSendRewardPrivateNoRecords(t *testing.T) {
	f := newAPIFixture(t)
	f.wallet.EXPECT().RequestRecords(gomock.Any(), domain.CreditsProgramID).Return(nil, nil)

	rec := f.do(http.MethodPost, "/api/v1/bounties/7/proposals/2/reward",
		map[string]any{"recipient": "aleo1p", "reward": 5, "private": true}, signedToken(t))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSendRewardTimeoutReportsTransaction(t *testing.T) {
	f := newAPIFixture(t)
	f.wallet.EXPECT().RequestTransaction(gomock.Any(), gomock.Any()).Return("at1slow", nil)
	f.wallet.EXPECT().TransactionStatus(gomock.Any(), "at1slow").Return("Pending", nil).Times(5)

	rec := f.do(http.MethodPost, "/api/v1/bounties/7/proposals/2/reward",
		map[string]any{"recipient": "aleo1p", "reward": 5}, signedToken(t))
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "at1slow", decode(t, rec)["result"].(map[string]any)["transactionId"])
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRequireJWTRejectsBadSignature(t *testing.T) {
	handler := RequireJWT(func(*jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	}, "HS256")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// rewardRoundTrip serves an auth-enabled router and points the transfer
// engine's metadata client back at it.
type rewardRoundTrip struct {
	server    *httptest.Server
	wallet    *mocks.MockWallet
	proposals *gormdb.ProposalRepository
	engine    func(opts ...metadata.Option) *service.TransferEngine
}

func newRewardRoundTrip(t *testing.T) *rewardRoundTrip {
	t.Helper()

	db := openTestDB(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockChainClient(ctrl)
	rt := &rewardRoundTrip{
		wallet:    mocks.NewMockWallet(ctrl),
		proposals: gormdb.NewProposalRepository(db),
	}
	journal := gormdb.NewTransactionRepository(db)

	router := mux.NewRouter()
	rt.server = httptest.NewServer(router)
	t.Cleanup(rt.server.Close)

	rt.engine = func(opts ...metadata.Option) *service.TransferEngine {
		return service.NewTransferEngine(rt.wallet, metadata.NewClient(rt.server.URL, time.Second, opts...),
			flags.NewStaticPolicyProvider(domain.FirstFit),
			service.EngineConfig{
				Address:      "aleo1owner",
				Network:      "testnetbeta",
				PollInterval: time.Millisecond,
				MaxAttempts:  5,
			},
		)
	}

	bounties := service.NewBountyService(client, domain.BountyProgramID)
	handler := NewBountyHTTPHandler(bounties.Reader(), bounties, bounties, rt.engine(), rt.proposals, journal)
	handler.RegisterRoutes(router, testAuth())

	require.NoError(t, rt.proposals.SaveProposal(context.Background(), &domain.Proposal{
		BountyID: 7, ProposalID: 2, ProposerAddress: "aleo1p",
	}))
	return rt
}

func (rt *rewardRoundTrip) expectFinalizedTransfer(txID string) {
	rt.wallet.EXPECT().RequestTransaction(gomock.Any(), gomock.Any()).Return(txID, nil)
	rt.wallet.EXPECT().TransactionStatus(gomock.Any(), txID).Return(domain.StatusFinalized, nil)
}

func TestSendRewardForwardsCallerTokenToMetadata(t *testing.T) {
	rt := newRewardRoundTrip(t)
	rt.expectFinalizedTransfer("at1fwd")

	body, err := json.Marshal(map[string]any{"recipient": "aleo1p", "reward": 5})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, rt.server.URL+"/api/v1/bounties/7/proposals/2/reward", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))

	resp, err := rt.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result domain.TransferResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Result.RewardUpdated)

	p, err := rt.proposals.GetProposal(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.True(t, p.RewardSent)
}

func TestMetadataUpdateAgainstAuthenticatedAPI(t *testing.T) {
	rt := newRewardRoundTrip(t)
	req := service.RewardTransfer{Recipient: "aleo1p", Reward: 5, BountyID: 7, ProposalID: 2}

	rt.expectFinalizedTransfer("at1anon")
	res, err := rt.engine().PublicTransfer(context.Background(), req, nil)
	assert.ErrorIs(t, err, domain.ErrMetadataUpdateFailed)
	require.NotNil(t, res)
	assert.False(t, res.RewardUpdated)

	rt.expectFinalizedTransfer("at1svc")
	res, err = rt.engine(metadata.WithBearerToken(signedToken(t))).PublicTransfer(context.Background(), req, nil)
	require.NoError(t, err)
	assert.True(t, res.RewardUpdated)

	p, err := rt.proposals.GetProposal(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.True(t, p.RewardSent)
}

func (f *apiFixture) expectTransition(programID, function string, inputs []string, res *domain.TransitionResult) {
	f.client.EXPECT().ExecuteTransition(gomock.Any(), domain.TransitionRequest{
		ProgramID:    programID,
		FunctionName: function,
		Inputs:       inputs,
	}).Return(res, nil)
}

func TestTransitionRoutesRequireAuth(t *testing.T) {
	f := newAPIFixture(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/bounties"},
		{http.MethodDelete, "/api/v1/bounties/7"},
		{http.MethodPost, "/api/v1/bounties/7/view"},
		{http.MethodPost, "/api/v1/bounties/7/proposals"},
		{http.MethodPost, "/api/v1/bounties/7/proposals/2/accept"},
		{http.MethodPost, "/api/v1/bounties/7/proposals/2/deny"},
		{http.MethodPost, "/api/v1/transfers"},
		{http.MethodPost, "/api/v1/credits/transfer_public"},
		{http.MethodPost, "/api/v1/credits/transfer_private"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := f.do(rt.method, rt.path, map[string]any{}, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPostBountyJournalsTransaction(t *testing.T) {
	f := newAPIFixture(t)
	token := signedToken(t)
	f.expectTransition(domain.BountyProgramID, "post_bounty",
		[]string{"aleo1c.private", "7.private", "aleo1c.private", "100.private"},
		&domain.TransitionResult{TransactionID: "at1post"})

	rec := f.do(http.MethodPost, "/api/v1/bounties",
		map[string]any{"caller": "aleo1c", "bountyId": 7, "reward": 100}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1post", decode(t, rec)["transactionId"])

	rec = f.do(http.MethodGet, "/api/v1/transactions/at1post", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "post_bounty", body["function_name"])
	assert.Equal(t, domain.BountyProgramID, body["program_id"])
}

func TestGetTransactionNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/transactions/at1missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostBountyValidation(t *testing.T) {
	f := newAPIFixture(t)
	token := signedToken(t)

	rec := f.do(http.MethodPost, "/api/v1/bounties", map[string]any{"bountyId": 7, "reward": 100}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/bounties", map[string]any{"caller": "aleo1c", "bountyId": 7}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteBounty(t *testing.T) {
	f := newAPIFixture(t)
	f.expectTransition(domain.BountyProgramID, "delete_bounty",
		[]string{"aleo1c.private", "7.private"}, &domain.TransitionResult{TransactionID: "at1del"})

	rec := f.do(http.MethodDelete, "/api/v1/bounties/7", map[string]any{"caller": "aleo1c"}, signedToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1del", decode(t, rec)["transactionId"])
}

func TestViewBounty(t *testing.T) {
	f := newAPIFixture(t)
	f.expectTransition(domain.BountyProgramID, "view_bounty_by_id",
		[]string{"7.private"}, &domain.TransitionResult{TransactionID: "at1view"})
	f.client.EXPECT().GetMappingValue(gomock.Any(), domain.BountyProgramID, "bounty_output_payment", "7.public").Return("100u64", nil)
	f.client.EXPECT().GetMappingValue(gomock.Any(), domain.BountyProgramID, "bounty_output_status", "7.public").Return("0u8", nil)

	rec := f.do(http.MethodPost, "/api/v1/bounties/7/view", nil, signedToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(100), body["payment"])
	assert.Equal(t, float64(0), body["status"])
}

func TestProposalTransitions(t *testing.T) {
	f := newAPIFixture(t)
	token := signedToken(t)

	f.expectTransition(domain.BountyProgramID, "submit_proposal",
		[]string{"aleo1p.private", "7.private", "2.private", "aleo1p.private"},
		&domain.TransitionResult{TransactionID: "at1sub"})
	rec := f.do(http.MethodPost, "/api/v1/bounties/7/proposals",
		map[string]any{"caller": "aleo1p", "proposalId": 2, "proposer": "aleo1p"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1sub", decode(t, rec)["transactionId"])

	f.expectTransition(domain.BountyProgramID, "accept_proposal",
		[]string{"aleo1c.private", "7.private", "2.private", "aleo1c.private", "100.private"},
		&domain.TransitionResult{TransactionID: "at1acc"})
	rec = f.do(http.MethodPost, "/api/v1/bounties/7/proposals/2/accept",
		map[string]any{"caller": "aleo1c", "creator": "aleo1c", "reward": 100}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1acc", decode(t, rec)["transactionId"])

	f.expectTransition(domain.BountyProgramID, "deny_proposal",
		[]string{"aleo1c.private", "7.private", "3.private"},
		&domain.TransitionResult{TransactionID: "at1deny"})
	rec = f.do(http.MethodPost, "/api/v1/bounties/7/proposals/3/deny",
		map[string]any{"caller": "aleo1c"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1deny", decode(t, rec)["transactionId"])
}

func TestTransitionRejectedByNode(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().ExecuteTransition(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(domain.ErrRejected, "bounty already exists"))

	rec := f.do(http.MethodPost, "/api/v1/bounties",
		map[string]any{"caller": "aleo1c", "bountyId": 7, "reward": 100}, signedToken(t))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreditsTransfers(t *testing.T) {
	f := newAPIFixture(t)
	token := signedToken(t)

	f.expectTransition(domain.BountyProgramID, "transfer",
		[]string{"aleo1c.private", "aleo1r.private", "5.private"},
		&domain.TransitionResult{TransactionID: "at1t"})
	rec := f.do(http.MethodPost, "/api/v1/transfers",
		map[string]any{"caller": "aleo1c", "receiver": "aleo1r", "amount": 5}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1t", decode(t, rec)["transactionId"])

	f.expectTransition(domain.CreditsProgramID, service.TransferPublicFunction,
		[]string{"aleo1r.public", "5u64"}, &domain.TransitionResult{TransactionID: "at1pub"})
	rec = f.do(http.MethodPost, "/api/v1/credits/transfer_public",
		map[string]any{"recipient": "aleo1r", "amount": 5}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "at1pub", decode(t, rec)["transactionId"])

	f.expectTransition(domain.CreditsProgramID, service.TransferPrivateFunction,
		[]string{"{record}", "aleo1r.private", "5u64.private"},
		&domain.TransitionResult{TransactionID: "at1priv", Outputs: []string{"r1", "r2"}})
	rec = f.do(http.MethodPost, "/api/v1/credits/transfer_private",
		map[string]any{"senderRecord": "{record}", "recipient": "aleo1r", "amount": 5}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "at1priv", body["transactionId"])
	assert.Equal(t, "r1", body["recipientRecord"])
	assert.Equal(t, "r2", body["senderRecord"])

	rec = f.do(http.MethodPost, "/api/v1/credits/transfer_private",
		map[string]any{"recipient": "aleo1r", "amount": 5}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProgramSource(t *testing.T) {
	f := newAPIFixture(t)
	f.client.EXPECT().GetProgram(gomock.Any(), "zkontract.aleo").Return("program zkontract.aleo;", nil)

	rec := f.do(http.MethodGet, "/api/v1/programs/zkontract.aleo/source", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "program zkontract.aleo;", decode(t, rec)["source"])
}
