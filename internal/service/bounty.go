package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

const (
	DefaultFinalizeAttempts = 30
	DefaultFinalizeInterval = time.Second
)

// BountyService invokes the bounty program's transitions through the node
type BountyService struct {
	client           ChainClient
	reader           *MappingReader
	journal          TransactionJournal
	programID        string
	finalizeAttempts int
	finalizeInterval time.Duration
}

type BountyOption func(*BountyService)

func WithJournal(j TransactionJournal) BountyOption {
	return func(s *BountyService) {
		s.journal = j
	}
}

// WithFinalizePolling overrides the standalone poller's budget
func WithFinalizePolling(attempts int, interval time.Duration) BountyOption {
	return func(s *BountyService) {
		if attempts > 0 {
			s.finalizeAttempts = attempts
		}
		if interval > 0 {
			s.finalizeInterval = interval
		}
	}
}

func NewBountyService(client ChainClient, programID string, opts ...BountyOption) *BountyService {
	s := &BountyService{
		client:           client,
		reader:           NewMappingReader(client, programID),
		journal:          nopJournal{},
		programID:        programID,
		finalizeAttempts: DefaultFinalizeAttempts,
		finalizeInterval: DefaultFinalizeInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reader exposes the mapping reader bound to the same program
func (s *BountyService) Reader() *MappingReader {
	return s.reader
}

func (s *BountyService) invoke(ctx context.Context, programID, function string, inputs ...string) (*domain.TransitionResult, error) {
	res, err := s.client.ExecuteTransition(ctx, domain.TransitionRequest{
		ProgramID:    programID,
		FunctionName: function,
		Inputs:       inputs,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "executing %s", function)
	}
	if res == nil || res.TransactionID == "" {
		return nil, errors.Wrap(domain.ErrTransactionRejected, function)
	}

	if err := s.journal.RecordSubmitted(ctx, res.TransactionID, programID, function); err != nil {
		log.Warn().Err(err).Str("tx", res.TransactionID).Msg("failed to journal transaction")
	}
	log.Info().Str("function", function).Str("tx", res.TransactionID).Msg("transition submitted")

	return res, nil
}

func (s *BountyService) invokeID(ctx context.Context, function string, inputs ...string) (string, error) {
	res, err := s.invoke(ctx, s.programID, function, inputs...)
	if err != nil {
		return "", err
	}
	return res.TransactionID, nil
}

// PostBounty creates bounty bountyID with the given reward
func (s *BountyService) PostBounty(ctx context.Context, caller string, bountyID, reward uint64) (string, error) {
	return s.invokeID(ctx, "post_bounty",
		aleo.Private(caller),
		aleo.PrivateUint(bountyID),
		aleo.Private(caller),
		aleo.PrivateUint(reward),
	)
}

// ViewBountyByID runs view_bounty_by_id, then reads the output mappings
// it populates.
func (s *BountyService) ViewBountyByID(ctx context.Context, bountyID uint64) (*domain.BountyView, error) {
	if _, err := s.invoke(ctx, s.programID, "view_bounty_by_id", aleo.PrivateUint(bountyID)); err != nil {
		return nil, err
	}

	key := aleo.Public(strconv.FormatUint(bountyID, 10))
	payment, err := s.readNumeric(ctx, "bounty_output_payment", key)
	if err != nil {
		return nil, err
	}
	status, err := s.readNumeric(ctx, "bounty_output_status", key)
	if err != nil {
		return nil, err
	}

	return &domain.BountyView{Payment: payment, Status: status}, nil
}

func (s *BountyService) SubmitProposal(ctx context.Context, caller string, bountyID, proposalID uint64, proposer string) (string, error) {
	return s.invokeID(ctx, "submit_proposal",
		aleo.Private(caller),
		aleo.PrivateUint(bountyID),
		aleo.PrivateUint(proposalID),
		aleo.Private(proposer),
	)
}

func (s *BountyService) AcceptProposal(ctx context.Context, caller string, bountyID, proposalID uint64, creator string, reward uint64) (string, error) {
	return s.invokeID(ctx, "accept_proposal",
		aleo.Private(caller),
		aleo.PrivateUint(bountyID),
		aleo.PrivateUint(proposalID),
		aleo.Private(creator),
		aleo.PrivateUint(reward),
	)
}

func (s *BountyService) DenyProposal(ctx context.Context, caller string, bountyID, proposalID uint64) (string, error) {
	return s.invokeID(ctx, "deny_proposal",
		aleo.Private(caller),
		aleo.PrivateUint(bountyID),
		aleo.PrivateUint(proposalID),
	)
}

func (s *BountyService) DeleteBounty(ctx context.Context, caller string, bountyID uint64) (string, error) {
	return s.invokeID(ctx, "delete_bounty",
		aleo.Private(caller),
		aleo.PrivateUint(bountyID),
	)
}

// Transfer calls the bounty program's own transfer function
func (s *BountyService) Transfer(ctx context.Context, caller, receiver string, amount uint64) (string, error) {
	return s.invokeID(ctx, "transfer",
		aleo.Private(caller),
		aleo.Private(receiver),
		aleo.PrivateUint(amount),
	)
}

// TransferPublic calls credits.aleo/transfer_public through the node
func (s *BountyService) TransferPublic(ctx context.Context, recipient string, amount uint64) (string, error) {
	res, err := s.invoke(ctx, domain.CreditsProgramID, TransferPublicFunction,
		aleo.Public(recipient),
		aleo.U64(amount),
	)
	if err != nil {
		return "", err
	}
	return res.TransactionID, nil
}

// TransferPrivate calls credits.aleo/transfer_private through the node. The
// first output is the recipient's record, the second the sender's change.
func (s *BountyService) TransferPrivate(ctx context.Context, senderRecord, recipient string, amount uint64) (*domain.PrivateTransferOutputs, error) {
	res, err := s.invoke(ctx, domain.CreditsProgramID, TransferPrivateFunction,
		senderRecord,
		aleo.Private(recipient),
		aleo.U64Private(amount),
	)
	if err != nil {
		return nil, err
	}

	out := &domain.PrivateTransferOutputs{TransactionID: res.TransactionID}
	if len(res.Outputs) > 0 {
		out.RecipientRecord = res.Outputs[0]
	}
	if len(res.Outputs) > 1 {
		out.SenderRecord = res.Outputs[1]
	}
	return out, nil
}

// GetProgramTransactions lists transactions of programID, defaulting to the
// bounty program
func (s *BountyService) GetProgramTransactions(ctx context.Context, programID, functionName string, page, pageSize int) ([]domain.TransactionSummary, error) {
	if programID == "" {
		programID = s.programID
	}
	return s.client.ProgramTransactions(ctx, programID, functionName, page, pageSize)
}

// GetProgramSource returns the deployed source of programID
func (s *BountyService) GetProgramSource(ctx context.Context, programID string) (string, error) {
	if programID == "" {
		programID = s.programID
	}
	return s.client.GetProgram(ctx, programID)
}

// WaitForTransactionToFinalize polls the node and reports whether the
// transaction finalized. Unlike the transfer engine it never fails: status
// errors are retried and running out of attempts yields false.
func (s *BountyService) WaitForTransactionToFinalize(ctx context.Context, transactionID string) bool {
	for retries := 0; retries < s.finalizeAttempts; retries++ {
		status, err := s.client.GetTransactionStatus(ctx, transactionID)
		if err != nil {
			log.Error().Err(err).Str("tx", transactionID).Msg("failed to get transaction status")
		} else if strings.EqualFold(status, domain.StatusFinalized) {
			if err := s.journal.UpdateStatus(ctx, transactionID, domain.StatusFinalized, true); err != nil {
				log.Warn().Err(err).Str("tx", transactionID).Msg("failed to update journal")
			}
			return true
		}

		if err := sleep(ctx, s.finalizeInterval); err != nil {
			return false
		}
	}

	return false
}

func (s *BountyService) readNumeric(ctx context.Context, mappingName, key string) (uint64, error) {
	raw, err := s.client.GetMappingValue(ctx, s.programID, mappingName, key)
	if err != nil {
		return 0, errors.Wrapf(err, "fetching mapping %s", mappingName)
	}

	n, ok := aleo.LeadingUint(raw)
	if !ok {
		return 0, errors.Errorf("mapping %s: invalid numeric literal %q", mappingName, raw)
	}
	return n, nil
}
