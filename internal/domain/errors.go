package domain

import (
	"github.com/pkg/errors"
)

var (
	// ErrTransport covers network, HTTP status and decode failures.
	ErrTransport = errors.New("transport failure")
	// ErrNotFound is returned when the node has no value for a mapping key.
	ErrNotFound = errors.New("not found")
	// ErrRejected is a node-level semantic failure (JSON-RPC error object).
	ErrRejected = errors.New("rejected by node")
	// ErrTransactionRejected is returned when a transition yields no transaction id.
	ErrTransactionRejected = errors.New("transaction failed: no transactionId returned")

	ErrNoRecords          = errors.New("no credits records found")
	ErrNoUnspentRecords   = errors.New("no unspent private records available")
	ErrNoSufficientRecord = errors.New("no single record can cover the required transfer amount")

	ErrFinalizationTimeout  = errors.New("transfer not finalized in time")
	ErrMetadataUpdateFailed = errors.New("failed to update reward status")
	ErrUnknownFunction      = errors.New("no fee value found for function")
	// ErrAmountOutOfRange is returned when a credit amount does not fit in u64 microcredits.
	ErrAmountOutOfRange = errors.New("amount exceeds u64 microcredits")
)

// TransportError keeps the underlying cause while matching ErrTransport.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
