package domain

// Record is a wallet-held credits record. The wallet owns its state; this
// module only reads and selects records.
type Record struct {
	ID        string            `json:"id,omitempty"`
	Owner     string            `json:"owner,omitempty"`
	ProgramID string            `json:"program_id,omitempty"`
	Nonce     string            `json:"nonce,omitempty"`
	Data      map[string]string `json:"data"`
	Spent     bool              `json:"spent"`
	Plaintext string            `json:"plaintext,omitempty"`
}

// Microcredits returns the raw data.microcredits literal and whether it is set.
func (r Record) Microcredits() (string, bool) {
	v, ok := r.Data["microcredits"]
	return v, ok && v != ""
}

// WalletTransaction is handed to the wallet for signing and submission.
// Inputs may mix Record values and typed literal strings.
type WalletTransaction struct {
	Address    string `json:"address"`
	Chain      string `json:"chainId"`
	ProgramID  string `json:"program"`
	Function   string `json:"functionName"`
	Inputs     []any  `json:"inputs"`
	Fee        uint64 `json:"fee"`
	FeePrivate bool   `json:"feePrivate"`
}

// TransferStage marks where in the transfer flow an event was produced
type TransferStage string

const (
	StageSubmitted      TransferStage = "submitted"
	StagePolling        TransferStage = "polling"
	StageFinalized      TransferStage = "finalized"
	StageTimedOut       TransferStage = "timed_out"
	StageMetadataUpdate TransferStage = "metadata_updated"
)

// TransferEvent is a progress notification emitted by the transfer engine
type TransferEvent struct {
	Stage         TransferStage `json:"stage"`
	TransactionID string        `json:"transactionId,omitempty"`
	Attempt       int           `json:"attempt,omitempty"`
	Status        string        `json:"status,omitempty"`
	Message       string        `json:"message"`
}

// TransferResult is returned by the transfer engine. TransactionID is set
// whenever a transaction was submitted, even if a later step failed.
type TransferResult struct {
	TransactionID string `json:"transactionId"`
	Finalized     bool   `json:"finalized"`
	RewardUpdated bool   `json:"rewardUpdated"`
}

// SelectionPolicy decides which sufficient record pays for a private transfer
type SelectionPolicy string

const (
	// FirstFit takes the first sufficient record in wallet order.
	FirstFit SelectionPolicy = "first-fit"
	// BestFit takes the sufficient record with the smallest value.
	BestFit SelectionPolicy = "best-fit"
)
