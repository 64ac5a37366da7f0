package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

const (
	DefaultTransferPollInterval = 2 * time.Second
	DefaultTransferMaxAttempts  = 60
)

// Observer receives transfer progress. It is called synchronously from the
// transfer goroutine.
type Observer func(domain.TransferEvent)

// ChannelObserver forwards events to ch, giving up when ctx is done.
func ChannelObserver(ctx context.Context, ch chan<- domain.TransferEvent) Observer {
	return func(ev domain.TransferEvent) {
		select {
		case ch <- ev:
		case <-ctx.Done():
		}
	}
}

// EngineConfig configures the TransferEngine
type EngineConfig struct {
	// Address is the wallet's public key that signs transfers.
	Address      string
	Network      string
	PollInterval time.Duration
	MaxAttempts  int
	// FeePrivate pays the fee from a private record.
	FeePrivate bool
}

// RewardTransfer describes a reward payout for an accepted proposal
type RewardTransfer struct {
	Recipient  string
	Reward     uint64 // whole credits
	BountyID   uint64
	ProposalID uint64
}

// TransferEngine moves credits through the wallet and reports the payout
// to the metadata collaborator.
type TransferEngine struct {
	wallet   Wallet
	metadata MetadataNotifier
	policy   PolicySource
	fees     FeeTable
	journal  TransactionJournal
	cfg      EngineConfig
}

type EngineOption func(*TransferEngine)

func WithEngineJournal(j TransactionJournal) EngineOption {
	return func(e *TransferEngine) {
		e.journal = j
	}
}

func WithFeeTable(fees FeeTable) EngineOption {
	return func(e *TransferEngine) {
		e.fees = fees
	}
}

func NewTransferEngine(wallet Wallet, metadata MetadataNotifier, policy PolicySource, cfg EngineConfig, opts ...EngineOption) *TransferEngine {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultTransferPollInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultTransferMaxAttempts
	}

	e := &TransferEngine{
		wallet:   wallet,
		metadata: metadata,
		policy:   policy,
		fees:     DefaultFees,
		journal:  nopJournal{},
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// PrivateTransfer pays req.Reward from a single unspent private record
func (e *TransferEngine) PrivateTransfer(ctx context.Context, req RewardTransfer, observe Observer) (*domain.TransferResult, error) {
	observe = orNop(observe)
	amount, err := aleo.CreditsToMicrocredits(req.Reward)
	if err != nil {
		return nil, err
	}

	records, err := e.wallet.RequestRecords(ctx, domain.CreditsProgramID)
	if err != nil {
		return nil, errors.Wrap(err, "requesting records")
	}

	policy := domain.FirstFit
	if e.policy != nil {
		policy = e.policy.SelectionPolicy(ctx, e.cfg.Address)
	}

	record, err := SelectRecord(records, amount, policy)
	if err != nil {
		return nil, err
	}
	log.Info().Str("record", record.ID).Str("policy", string(policy)).Msg("chosen record")

	inputs := []any{
		record,
		aleo.Private(req.Recipient),
		aleo.U64Private(amount),
	}

	return e.execute(ctx, TransferPrivateFunction, inputs, req, "Private transfer", observe)
}

// PublicTransfer pays req.Reward from the public balance
func (e *TransferEngine) PublicTransfer(ctx context.Context, req RewardTransfer, observe Observer) (*domain.TransferResult, error) {
	observe = orNop(observe)
	amount, err := aleo.CreditsToMicrocredits(req.Reward)
	if err != nil {
		return nil, err
	}

	observe(domain.TransferEvent{
		Stage:   domain.StageSubmitted,
		Message: "Transferring reward to proposer (public transfer)...",
	})

	inputs := []any{
		req.Recipient,
		aleo.U64(amount),
	}

	return e.execute(ctx, TransferPublicFunction, inputs, req, "Public transfer", observe)
}

func (e *TransferEngine) execute(ctx context.Context, function string, inputs []any, req RewardTransfer, label string, observe Observer) (*domain.TransferResult, error) {
	fee, err := e.fees.FeeFor(function)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("function", function).Uint64("fee_microcredits", fee).Msg("calculated fee")

	tx := &domain.WalletTransaction{
		Address:    e.cfg.Address,
		Chain:      e.cfg.Network,
		ProgramID:  domain.CreditsProgramID,
		Function:   function,
		Inputs:     inputs,
		Fee:        fee,
		FeePrivate: e.cfg.FeePrivate,
	}

	txID, err := e.wallet.RequestTransaction(ctx, tx)
	if err != nil {
		return nil, errors.Wrapf(err, "submitting %s", function)
	}
	e.journalSubmitted(ctx, txID, function)

	result := &domain.TransferResult{TransactionID: txID}
	observe(domain.TransferEvent{
		Stage:         domain.StageSubmitted,
		TransactionID: txID,
		Message:       fmt.Sprintf("%s submitted: %s", label, txID),
	})

	if err := e.awaitFinalization(ctx, txID, observe); err != nil {
		if errors.Is(err, domain.ErrFinalizationTimeout) {
			e.journalStatus(ctx, txID, "Timeout", false)
			observe(domain.TransferEvent{
				Stage:         domain.StageTimedOut,
				TransactionID: txID,
				Message:       label + " not finalized in time.",
			})
		}
		return result, errors.Wrap(err, label)
	}

	result.Finalized = true
	e.journalStatus(ctx, txID, domain.StatusFinalized, true)
	observe(domain.TransferEvent{
		Stage:         domain.StageFinalized,
		TransactionID: txID,
		Status:        domain.StatusFinalized,
		Message:       label + " finalized.",
	})

	if err := e.metadata.MarkRewardSent(ctx, req.BountyID, req.ProposalID); err != nil {
		if !errors.Is(err, domain.ErrMetadataUpdateFailed) {
			err = errors.Wrap(domain.ErrMetadataUpdateFailed, err.Error())
		}
		return result, err
	}

	result.RewardUpdated = true
	observe(domain.TransferEvent{
		Stage:         domain.StageMetadataUpdate,
		TransactionID: txID,
		Message:       "Reward status updated.",
	})

	return result, nil
}

// awaitFinalization polls the wallet at a fixed interval until the status is
// exactly "Finalized", the attempts run out, or ctx ends.
func (e *TransferEngine) awaitFinalization(ctx context.Context, txID string, observe Observer) error {
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		status, err := e.wallet.TransactionStatus(ctx, txID)
		if err != nil {
			return errors.Wrapf(err, "polling transaction %s", txID)
		}

		observe(domain.TransferEvent{
			Stage:         domain.StagePolling,
			TransactionID: txID,
			Attempt:       attempt,
			Status:        status,
			Message:       fmt.Sprintf("Attempt %d: %s", attempt, status),
		})

		if status == domain.StatusFinalized {
			return nil
		}
		if attempt == e.cfg.MaxAttempts {
			break
		}

		if err := sleep(ctx, e.cfg.PollInterval); err != nil {
			return err
		}
	}

	return domain.ErrFinalizationTimeout
}

func (e *TransferEngine) journalSubmitted(ctx context.Context, txID, function string) {
	if err := e.journal.RecordSubmitted(ctx, txID, domain.CreditsProgramID, function); err != nil {
		log.Warn().Err(err).Str("tx", txID).Msg("failed to journal transaction")
	}
}

func (e *TransferEngine) journalStatus(ctx context.Context, txID, status string, finalized bool) {
	if err := e.journal.UpdateStatus(ctx, txID, status, finalized); err != nil {
		log.Warn().Err(err).Str("tx", txID).Msg("failed to update journal")
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func orNop(o Observer) Observer {
	if o == nil {
		return func(domain.TransferEvent) {}
	}
	return o
}
