package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"edukasiku_backend/internals/features/discounts/model"
)

var evalNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func activeCode() model.DiscountCodeModel {
	return model.DiscountCodeModel{
		DiscountCodeID:       "4f6b1a2c-0000-0000-0000-000000000001",
		DiscountCodeCode:     "BELAJAR10",
		DiscountCodeType:     model.DiscountTypePercent,
		DiscountCodeValue:    10,
		DiscountCodeIsActive: true,
	}
}

func TestEvaluatePercent(t *testing.T) {
	eval := Evaluate(activeCode(), 250000, "course", "p-1", evalNow)

	require.True(t, eval.Valid)
	require.Equal(t, 25000.0, eval.DiscountAmount)
	require.Equal(t, 225000.0, eval.FinalAmount)
	require.Equal(t, "BELAJAR10", eval.DiscountCode)
	require.Empty(t, eval.Message)
}

func TestEvaluateFixed(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeType = model.DiscountTypeFixed
	dc.DiscountCodeValue = 50000

	eval := Evaluate(dc, 200000, "course", "p-1", evalNow)

	require.True(t, eval.Valid)
	require.Equal(t, 50000.0, eval.DiscountAmount)
	require.Equal(t, 150000.0, eval.FinalAmount)
}

func TestEvaluateFixedClampedToAmount(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeType = model.DiscountTypeFixed
	dc.DiscountCodeValue = 50000

	eval := Evaluate(dc, 30000, "course", "p-1", evalNow)

	require.True(t, eval.Valid)
	require.Equal(t, 30000.0, eval.DiscountAmount)
	require.Equal(t, 0.0, eval.FinalAmount)
}

func TestEvaluatePercentRounding(t *testing.T) {
	eval := Evaluate(activeCode(), 99.99, "course", "p-1", evalNow)

	require.True(t, eval.Valid)
	require.Equal(t, 10.0, eval.DiscountAmount)
	require.Equal(t, 89.99, eval.FinalAmount)
}

func TestEvaluateInactive(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeIsActive = false

	eval := Evaluate(dc, 100000, "course", "p-1", evalNow)

	require.False(t, eval.Valid)
	require.Equal(t, 0.0, eval.DiscountAmount)
	require.Equal(t, 100000.0, eval.FinalAmount)
	require.NotEmpty(t, eval.Message)
}

func TestEvaluateNotStartedYet(t *testing.T) {
	dc := activeCode()
	starts := evalNow.Add(24 * time.Hour)
	dc.DiscountCodeStartsAt = &starts

	eval := Evaluate(dc, 100000, "course", "p-1", evalNow)
	require.False(t, eval.Valid)
}

func TestEvaluateExpired(t *testing.T) {
	dc := activeCode()
	expires := evalNow.Add(-time.Hour)
	dc.DiscountCodeExpiresAt = &expires

	eval := Evaluate(dc, 100000, "course", "p-1", evalNow)
	require.False(t, eval.Valid)
}

func TestEvaluateQuotaExhausted(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeMaxUses = 5
	dc.DiscountCodeUsedCount = 5

	eval := Evaluate(dc, 100000, "course", "p-1", evalNow)
	require.False(t, eval.Valid)

	// 0 = tanpa batas
	dc.DiscountCodeMaxUses = 0
	dc.DiscountCodeUsedCount = 9999
	require.True(t, Evaluate(dc, 100000, "course", "p-1", evalNow).Valid)
}

func TestEvaluateBelowMinAmount(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeMinAmount = 150000

	require.False(t, Evaluate(dc, 100000, "course", "p-1", evalNow).Valid)
	require.True(t, Evaluate(dc, 150000, "course", "p-1", evalNow).Valid)
}

func TestEvaluateProductTypeScope(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeProductTypes = []string{"course", "bootcamp"}

	require.True(t, Evaluate(dc, 100000, "course", "p-1", evalNow).Valid)
	require.True(t, Evaluate(dc, 100000, "bootcamp", "p-1", evalNow).Valid)
	require.False(t, Evaluate(dc, 100000, "webinar", "p-1", evalNow).Valid)
}

func TestEvaluateProductIDScope(t *testing.T) {
	dc := activeCode()
	target := "c7d8e9f0-0000-0000-0000-000000000002"
	dc.DiscountCodeProductID = &target

	require.True(t, Evaluate(dc, 100000, "course", target, evalNow).Valid)
	require.False(t, Evaluate(dc, 100000, "course", "lain", evalNow).Valid)
}

func TestEvaluateUnknownType(t *testing.T) {
	dc := activeCode()
	dc.DiscountCodeType = "bogo"

	require.False(t, Evaluate(dc, 100000, "course", "p-1", evalNow).Valid)
}
