package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCheckBalance(t *testing.T) {
	svc := &FinanceService{}

	t.Run("balanced entry passes", func(t *testing.T) {
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1", Debit: dec("150000.50")},
			{AccountID: "a2", Credit: dec("150000.50")},
		})
		assert.NoError(t, err)
	})

	t.Run("unbalanced entry fails", func(t *testing.T) {
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1", Debit: dec("100")},
			{AccountID: "a2", Credit: dec("99.99")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not balance")
	})

	t.Run("line with both debit and credit fails", func(t *testing.T) {
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1", Debit: dec("50"), Credit: dec("50")},
			{AccountID: "a2"},
		})
		require.Error(t, err)
	})

	t.Run("negative amounts fail", func(t *testing.T) {
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1", Debit: dec("-10")},
			{AccountID: "a2", Credit: dec("-10")},
		})
		require.Error(t, err)
	})

	t.Run("zero movement fails", func(t *testing.T) {
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1"},
			{AccountID: "a2"},
		})
		require.Error(t, err)
	})

	t.Run("no float drift on cent amounts", func(t *testing.T) {
		// 0.1 + 0.2 style sums stay exact with decimals
		err := svc.checkBalance([]JournalLineInput{
			{AccountID: "a1", Debit: dec("0.10")},
			{AccountID: "a2", Debit: dec("0.20")},
			{AccountID: "a3", Credit: dec("0.30")},
		})
		assert.NoError(t, err)
	})
}
