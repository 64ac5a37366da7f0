package wallet

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

// RPCWallet forwards the wallet capability to a wallet bridge that speaks
// the same JSON-RPC dialect as the node. Signing happens on the bridge.
type RPCWallet struct {
	rpc     *aleo.Client
	address string
}

func NewRPCWallet(rpc *aleo.Client, address string) *RPCWallet {
	return &RPCWallet{
		rpc:     rpc,
		address: address,
	}
}

// Address is the public key the wallet signs with
func (w *RPCWallet) Address() string {
	return w.address
}

func (w *RPCWallet) RequestRecords(ctx context.Context, programID string) ([]domain.Record, error) {
	result, err := w.rpc.Call(ctx, "requestRecords", map[string]any{"program": programID})
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	if err := json.Unmarshal(result, &records); err != nil {
		var wrapped struct {
			Records []domain.Record `json:"records"`
		}
		if err := json.Unmarshal(result, &wrapped); err != nil {
			return nil, &domain.TransportError{Op: "requestRecords", Err: errors.Wrap(err, "unmarshaling records")}
		}
		records = wrapped.Records
	}

	return records, nil
}

func (w *RPCWallet) RequestTransaction(ctx context.Context, tx *domain.WalletTransaction) (string, error) {
	result, err := w.rpc.Call(ctx, "requestTransaction", map[string]any{"transaction": tx})
	if err != nil {
		return "", err
	}

	txID, err := decodeString(result, "transactionId")
	if err != nil {
		return "", &domain.TransportError{Op: "requestTransaction", Err: err}
	}
	if txID == "" {
		return "", domain.ErrTransactionRejected
	}

	return txID, nil
}

func (w *RPCWallet) TransactionStatus(ctx context.Context, transactionID string) (string, error) {
	result, err := w.rpc.Call(ctx, "transactionStatus", map[string]any{"transactionId": transactionID})
	if err != nil {
		return "", err
	}

	status, err := decodeString(result, "status")
	if err != nil {
		return "", &domain.TransportError{Op: "transactionStatus", Err: err}
	}

	return status, nil
}

// decodeString accepts either a bare JSON string or an object carrying field.
func decodeString(raw json.RawMessage, field string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", errors.Wrapf(err, "unmarshaling %s", field)
	}
	if v, ok := obj[field]; ok {
		if err := json.Unmarshal(v, &s); err != nil {
			return "", errors.Wrapf(err, "unmarshaling %s", field)
		}
	}

	return s, nil
}
