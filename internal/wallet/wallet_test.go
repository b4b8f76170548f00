package wallet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osamarizk/wizo-insights/internal/wallet"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)

	txs := []*wallet.Transaction{
		{Type: wallet.TypeDeposit, Amount: 50000, Date: thisMonth},
		{Type: wallet.TypeWithdrawal, Amount: 12000, Date: thisMonth},
		{Type: wallet.TypeManualExpense, Amount: 3000, Date: thisMonth},
		{Type: wallet.TypeDeposit, Amount: 20000, Date: lastMonth},
		{Type: wallet.TypeManualExpense, Amount: 5000, Date: lastMonth},
	}

	s := wallet.Summarize(txs, now)

	// Balance spans the full history: 500 + 200 - 120 - 30 - 50.
	assert.Equal(t, int64(50000), s.Balance)
	assert.Equal(t, int64(50000), s.MonthlyDeposits)
	assert.Equal(t, int64(15000), s.MonthlyExpenses)
	assert.Equal(t, int64(7500), s.AverageCashExpense)
}

func TestSummarize_DepositMinusWithdrawal(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	s := wallet.Summarize([]*wallet.Transaction{
		{Type: wallet.TypeDeposit, Amount: 10000, Date: now},
		{Type: wallet.TypeWithdrawal, Amount: 3000, Date: now},
	}, now)

	assert.Equal(t, int64(7000), s.Balance)
}

func TestSummarize_NoExpensesNoAverage(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	s := wallet.Summarize([]*wallet.Transaction{
		{Type: wallet.TypeDeposit, Amount: 10000, Date: now},
	}, now)

	assert.Equal(t, int64(0), s.MonthlyExpenses)
	assert.Equal(t, int64(0), s.AverageCashExpense)
}

func TestSummarize_Empty(t *testing.T) {
	s := wallet.Summarize(nil, time.Now())
	assert.Equal(t, wallet.Summary{}, s)
}

func TestTransaction_Signed_UnknownType(t *testing.T) {
	tx := &wallet.Transaction{Type: "refund", Amount: 500}
	assert.Equal(t, int64(0), tx.Signed())
}
