package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single recorded outlay. Records are immutable after creation;
// a correction is modeled as delete plus re-add.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// NewExpense builds an expense with a freshly generated id.
// A zero date defaults to the current time.
func NewExpense(amount float64, description, category string, date time.Time) Expense {
	if date.IsZero() {
		date = time.Now()
	}
	return Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}
}
