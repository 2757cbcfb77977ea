package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belegplan/internal/catalog"
)

func TestNewPlaceholder(t *testing.T) {
	definedKeys := func(r *ValueRecord) map[string]bool {
		return map[string]bool{
			"gross_value":  r.GrossValue != nil,
			"net_value":    r.NetValue != nil,
			"amount":       r.Amount != nil,
			"year":         r.Year != nil,
			"month":        r.Month != nil,
			"is_monthly":   r.IsMonthly != nil,
			"is_recurring": r.IsRecurring != nil,
			"laufzeit":     r.Laufzeit != nil,
		}
	}

	t.Run("gross income shape", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryGrossIncome)
		keys := definedKeys(r)
		assert.True(t, keys["gross_value"])
		assert.True(t, keys["year"])
		assert.True(t, keys["month"])
		assert.True(t, keys["is_monthly"])
		assert.False(t, keys["net_value"])
		assert.False(t, keys["amount"])
		assert.False(t, keys["laufzeit"])
	})

	t.Run("net income shape", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryNetIncome)
		keys := definedKeys(r)
		assert.True(t, keys["net_value"])
		assert.False(t, keys["gross_value"])
	})

	t.Run("obligation shape", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryObligation)
		keys := definedKeys(r)
		assert.True(t, keys["amount"])
		assert.True(t, keys["is_recurring"])
		assert.True(t, keys["laufzeit"])
		assert.False(t, keys["gross_value"])
		assert.False(t, keys["net_value"])
	})

	t.Run("calendar shape", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryCalendar)
		keys := definedKeys(r)
		assert.True(t, keys["year"])
		for name, defined := range keys {
			if name != "year" {
				assert.Falsef(t, defined, "key %s", name)
			}
		}
	})

	t.Run("generic shape defines everything", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryGeneric)
		for name, defined := range definedKeys(r) {
			assert.Truef(t, defined, "key %s", name)
		}
	})

	t.Run("confidence is always defined", func(t *testing.T) {
		for _, cat := range []catalog.FieldCategory{
			catalog.CategoryGrossIncome, catalog.CategoryNetIncome,
			catalog.CategoryObligation, catalog.CategoryCalendar, catalog.CategoryGeneric,
		} {
			r := NewPlaceholder(cat)
			require.NotNil(t, r.Confidence)
			assert.Zero(t, *r.Confidence)
			assert.Equal(t, cat, r.Category)
		}
	})
}

func TestApplyExtracted(t *testing.T) {
	t.Run("fills only defined keys", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryNetIncome)
		confidence, method := r.ApplyExtracted(map[string]any{
			"net_value":   "2400.50",
			"gross_value": "3600.00",
			"year":        2025.0,
			"is_monthly":  true,
			"confidence":  0.93,
			"method_used": "document_ai",
		})

		require.NotNil(t, r.NetValue)
		assert.Equal(t, "2400.50", *r.NetValue)
		assert.Equal(t, "2025", *r.Year)
		assert.True(t, *r.IsMonthly)
		assert.Nil(t, r.GrossValue, "undefined key must stay undefined")

		assert.InDelta(t, 0.93, confidence, 1e-9)
		assert.InDelta(t, 0.93, *r.Confidence, 1e-9)
		assert.Equal(t, "document_ai", method)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryCalendar)
		_, _ = r.ApplyExtracted(map[string]any{
			"year":          "2025",
			"invented_key":  "value",
			"another_field": 42,
		})
		assert.Equal(t, "2025", *r.Year)
		assert.Nil(t, r.Amount)
	})

	t.Run("null values clear a defined key", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryObligation)
		*r.Amount = "350"
		_, _ = r.ApplyExtracted(map[string]any{"amount": nil})
		assert.Equal(t, "", *r.Amount)
	})

	t.Run("string confidence is parsed", func(t *testing.T) {
		r := NewPlaceholder(catalog.CategoryGeneric)
		confidence, _ := r.ApplyExtracted(map[string]any{"confidence": "0.75"})
		assert.InDelta(t, 0.75, confidence, 1e-9)
	})
}
