package service

import (
	"testing"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedRoll() *entity.PaperStock {
	return &entity.PaperStock{
		ID:              "roll-1",
		QrCode:          "QR-0001",
		Name:            "Sublimation 100",
		PaperType:       "Sublimation",
		Gsm:             100,
		Width:           160,
		Length:          500,
		RemainingLength: 480,
		Approved:        true,
	}
}

func TestMatchPaperSpec_ExactMatch(t *testing.T) {
	result := MatchPaperSpec(approvedRoll(), "Sublimation", 100, 160, 500)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "roll-1", result.Stock.ID)
}

func TestMatchPaperSpec_GsmTolerance(t *testing.T) {
	roll := approvedRoll()

	// 104 vs 100 is inside the 5% band
	result := MatchPaperSpec(roll, "Sublimation", 104, 160, 500)
	assert.True(t, result.Valid)

	// 120 vs 100 is outside
	result = MatchPaperSpec(roll, "Sublimation", 120, 160, 500)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "GSM mismatch")
}

func TestMatchPaperSpec_ToleranceRelativeToStock(t *testing.T) {
	roll := approvedRoll()
	// band is 5% of the roll's value (100 -> ±5), so 105 passes and 106 fails
	assert.True(t, MatchPaperSpec(roll, "Sublimation", 105, 160, 500).Valid)
	assert.False(t, MatchPaperSpec(roll, "Sublimation", 106, 160, 500).Valid)
}

func TestMatchPaperSpec_TypeCaseInsensitive(t *testing.T) {
	result := MatchPaperSpec(approvedRoll(), "sublimation", 100, 160, 500)
	assert.True(t, result.Valid)
}

func TestMatchPaperSpec_TypeMismatch(t *testing.T) {
	result := MatchPaperSpec(approvedRoll(), "DTF Film", 100, 160, 500)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "Paper type mismatch")
}

func TestMatchPaperSpec_LengthRules(t *testing.T) {
	t.Run("longer roll passes", func(t *testing.T) {
		result := MatchPaperSpec(approvedRoll(), "Sublimation", 100, 160, 100)
		assert.True(t, result.Valid)
	})

	t.Run("slightly short roll passes within tolerance", func(t *testing.T) {
		// roll has 500, request 510: deficit 10 <= 25 (5% of 500)
		result := MatchPaperSpec(approvedRoll(), "Sublimation", 100, 160, 510)
		assert.True(t, result.Valid)
	})

	t.Run("much shorter roll fails", func(t *testing.T) {
		result := MatchPaperSpec(approvedRoll(), "Sublimation", 100, 160, 600)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "Length mismatch")
	})

	t.Run("untracked length always passes", func(t *testing.T) {
		roll := approvedRoll()
		roll.Length = 0
		result := MatchPaperSpec(roll, "Sublimation", 100, 160, 10000)
		assert.True(t, result.Valid)
	})
}

func TestMatchPaperSpec_UnapprovedRoll(t *testing.T) {
	roll := approvedRoll()
	roll.Approved = false
	result := MatchPaperSpec(roll, "Sublimation", 100, 160, 500)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Paper stock not available")
}

func TestMatchPaperSpec_ItemizedErrors(t *testing.T) {
	roll := approvedRoll()
	roll.Approved = false
	result := MatchPaperSpec(roll, "DTF Film", 200, 80, 2000)

	require.False(t, result.Valid)
	// every failed check reported, not just the first
	assert.Len(t, result.Errors, 5)
}
