package domain

import (
	"time"
)

// StatusFinalized is the terminal status reported by wallets.
const StatusFinalized = "Finalized"

// TransitionRequest is one invocation of an on-chain program function.
// Inputs are typed literals in the exact order of the function signature.
type TransitionRequest struct {
	ProgramID    string   `json:"programId"`
	FunctionName string   `json:"functionName"`
	Inputs       []string `json:"inputs"`
}

// TransitionResult is what the node returns for executeTransition
type TransitionResult struct {
	TransactionID string   `json:"transactionId"`
	Outputs       []string `json:"outputs"`
}

// PrivateTransferOutputs are the two records produced by transfer_private
type PrivateTransferOutputs struct {
	TransactionID   string `json:"transactionId"`
	RecipientRecord string `json:"recipientRecord"`
	SenderRecord    string `json:"senderRecord"`
}

// TransactionHandle identifies a submitted transaction for status polling
type TransactionHandle struct {
	TransactionID string `json:"transactionId"`
}

// TransactionSummary is one entry of aleoTransactionsForProgram
type TransactionSummary struct {
	TransactionID string `json:"transactionId"`
	FunctionName  string `json:"functionName,omitempty"`
	BlockHeight   uint64 `json:"blockHeight,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	Status        string `json:"status,omitempty"`
	Inputs        []any  `json:"inputs,omitempty"`
}

// SubmittedTransaction is a journal entry for a transaction this client sent
type SubmittedTransaction struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProgramID     string    `json:"program_id"`
	FunctionName  string    `json:"function_name"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
	FinalizedAt   time.Time `json:"finalized_at,omitempty"`
}
