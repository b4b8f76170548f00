package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a wallet ledger entry. Sign is derived from the type; raw
// amounts are never stored negative.
type Type string

const (
	TypeDeposit       Type = "deposit"
	TypeWithdrawal    Type = "withdrawal"
	TypeManualExpense Type = "manual_expense"
)

// Transaction is a cash-equivalent ledger entry.
type Transaction struct {
	ID          string
	UserID      string
	Type        Type
	Amount      int64 // Amount in cents, always >= 0
	Description string
	Date        time.Time
}

// Signed returns the transaction's contribution to the balance.
// Unrecognized types contribute nothing.
func (t *Transaction) Signed() int64 {
	switch t.Type {
	case TypeDeposit:
		return t.Amount
	case TypeWithdrawal, TypeManualExpense:
		return -t.Amount
	}

	return 0
}

// Summary is the wallet cash-flow picture: the running balance over the full
// history plus the current calendar month's flows.
type Summary struct {
	Balance            int64
	MonthlyDeposits    int64
	MonthlyExpenses    int64 // withdrawals and manual expenses combined
	AverageCashExpense int64 // 0 when the month has no expense transactions
}

// Summarize computes the cash-flow summary. "Current month" is the calendar
// month of now.
func Summarize(txs []*Transaction, now time.Time) Summary {
	var s Summary

	var expenseCount int64

	for _, tx := range txs {
		s.Balance += tx.Signed()

		if tx.Date.Year() != now.Year() || tx.Date.Month() != now.Month() {
			continue
		}

		switch tx.Type {
		case TypeDeposit:
			s.MonthlyDeposits += tx.Amount
		case TypeWithdrawal, TypeManualExpense:
			s.MonthlyExpenses += tx.Amount
			expenseCount++
		}
	}

	if expenseCount > 0 {
		s.AverageCashExpense = decimal.NewFromInt(s.MonthlyExpenses).
			Div(decimal.NewFromInt(expenseCount)).
			Round(0).
			IntPart()
	}

	return s
}
