package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/zkontract/zkbounty/internal/service ChainClient,Wallet,MetadataNotifier,TransactionJournal,PolicySource

import (
	"context"

	"github.com/zkontract/zkbounty/internal/domain"
)

// ChainClient is the node RPC surface used by the services
type ChainClient interface {
	GetMappingValue(ctx context.Context, programID, mappingName, key string) (string, error)
	ExecuteTransition(ctx context.Context, req domain.TransitionRequest) (*domain.TransitionResult, error)
	GetTransactionStatus(ctx context.Context, transactionID string) (string, error)
	GetProgram(ctx context.Context, programID string) (string, error)
	ProgramTransactions(ctx context.Context, programID, functionName string, page, pageSize int) ([]domain.TransactionSummary, error)
}

// Wallet signs and submits transactions on behalf of the user
type Wallet interface {
	RequestRecords(ctx context.Context, programID string) ([]domain.Record, error)
	RequestTransaction(ctx context.Context, tx *domain.WalletTransaction) (string, error)
	TransactionStatus(ctx context.Context, transactionID string) (string, error)
}

// MetadataNotifier records off-chain that a proposal's reward was paid
type MetadataNotifier interface {
	MarkRewardSent(ctx context.Context, bountyID, proposalID uint64) error
}

// TransactionJournal keeps a local history of submitted transactions
type TransactionJournal interface {
	RecordSubmitted(ctx context.Context, transactionID, programID, functionName string) error
	UpdateStatus(ctx context.Context, transactionID, status string, finalized bool) error
}

// PolicySource picks the record selection policy for a wallet address
type PolicySource interface {
	SelectionPolicy(ctx context.Context, address string) domain.SelectionPolicy
}

type nopJournal struct{}

func (nopJournal) RecordSubmitted(context.Context, string, string, string) error { return nil }
func (nopJournal) UpdateStatus(context.Context, string, string, bool) error      { return nil }
