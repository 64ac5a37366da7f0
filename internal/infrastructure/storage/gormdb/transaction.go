package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/zkontract/zkbounty/internal/domain"
)

// SubmittedTransactionModel is the journal row of a transaction sent by this client
type SubmittedTransactionModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"uniqueIndex;not null"`
	ProgramID     string    `gorm:"index;not null"`
	FunctionName  string    `gorm:"index;not null"`
	Status        string    `gorm:"index;not null"`
	SubmittedAt   time.Time `gorm:"index;not null"`
	FinalizedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for SubmittedTransactionModel
func (SubmittedTransactionModel) TableName() string {
	return "submitted_transactions"
}

// TransactionRepository journals submitted transactions
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func toDomainTransaction(model *SubmittedTransactionModel) *domain.SubmittedTransaction {
	tx := &domain.SubmittedTransaction{
		ID:            fmt.Sprintf("%d", model.ID),
		TransactionID: model.TransactionID,
		ProgramID:     model.ProgramID,
		FunctionName:  model.FunctionName,
		Status:        model.Status,
		SubmittedAt:   model.SubmittedAt,
	}
	if model.FinalizedAt != nil {
		tx.FinalizedAt = *model.FinalizedAt
	}
	return tx
}

// RecordSubmitted stores a freshly submitted transaction. Re-recording an
// existing transaction id is a no-op.
func (r *TransactionRepository) RecordSubmitted(ctx context.Context, transactionID, programID, functionName string) error {
	model := &SubmittedTransactionModel{
		TransactionID: transactionID,
		ProgramID:     programID,
		FunctionName:  functionName,
		Status:        "Submitted",
		SubmittedAt:   time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).
		Where(SubmittedTransactionModel{TransactionID: transactionID}).
		FirstOrCreate(model).Error
	if err != nil {
		return fmt.Errorf("recording transaction: %w", err)
	}

	return nil
}

// UpdateStatus sets the latest observed status; finalized stamps FinalizedAt.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, transactionID, status string, finalized bool) error {
	updates := map[string]any{"status": status}
	if finalized {
		updates["finalized_at"] = time.Now().UTC()
	}

	res := r.db.WithContext(ctx).Model(&SubmittedTransactionModel{}).
		Where("transaction_id = ?", transactionID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("updating transaction status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		log.Debug().Str("tx", transactionID).Msg("DB: status update for unknown transaction")
	}

	return nil
}

// GetTransaction retrieves a journal entry by transaction id
func (r *TransactionRepository) GetTransaction(ctx context.Context, transactionID string) (*domain.SubmittedTransaction, error) {
	var model SubmittedTransactionModel
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting transaction: %w", err)
	}
	return toDomainTransaction(&model), nil
}

// ListTransactions returns the newest journal entries first
func (r *TransactionRepository) ListTransactions(ctx context.Context, limit, offset int) ([]*domain.SubmittedTransaction, error) {
	var models []SubmittedTransactionModel
	query := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	txs := make([]*domain.SubmittedTransaction, len(models))
	for i := range models {
		txs[i] = toDomainTransaction(&models[i])
	}
	return txs, nil
}
