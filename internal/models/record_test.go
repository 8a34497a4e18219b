package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPartialRecord_Merge(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	defaults := DefaultRecord(now)

	t.Run("empty partial keeps defaults", func(t *testing.T) {
		rec := PartialRecord{}.Merge(defaults)
		assert.Equal(t, defaults, rec)
		assert.True(t, rec.Amount.IsZero())
		assert.Equal(t, now, rec.Date)
	})

	t.Run("present fields win", func(t *testing.T) {
		date := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
		amount := decimal.RequireFromString("12.5")
		p := PartialRecord{
			Date:        &date,
			FromAccount: strPtr("cash"),
			Amount:      &amount,
			Details:     strPtr("Lunch "),
		}
		rec := p.Merge(defaults)
		assert.Equal(t, date, rec.Date)
		assert.Equal(t, "cash", rec.FromAccount)
		assert.Equal(t, "", rec.ToAccount)
		assert.Equal(t, "12.5", rec.Amount.String())
		assert.Equal(t, "", rec.Tag)
		assert.Equal(t, "Lunch ", rec.Details)
	})

	t.Run("present empty string still wins", func(t *testing.T) {
		base := defaults
		base.Tag = "food"
		rec := PartialRecord{Tag: strPtr("")}.Merge(base)
		assert.Equal(t, "", rec.Tag)
	})
}

func TestPartialRecord_IsEmpty(t *testing.T) {
	assert.True(t, PartialRecord{}.IsEmpty())
	assert.False(t, PartialRecord{Tag: strPtr("x")}.IsEmpty())
}

func TestOptionDictionary(t *testing.T) {
	d := OptionDictionary{
		{ID: "[[a.md]]", Label: "a"},
		{ID: "[[b.md]]", Label: "b"},
	}
	assert.Equal(t, map[string]string{"[[a.md]]": "a", "[[b.md]]": "b"}, d.Map())
	assert.Equal(t, []string{"a", "b"}, d.Labels())
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "cash", BaseName("finance/accounts/cash.md"))
	assert.Equal(t, "budget entry", BaseName("finance/template/budget entry.md"))
	assert.Equal(t, "noext", BaseName("noext"))
	assert.Equal(t, "archive.tar", BaseName("x/archive.tar.gz"))
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("finance/budget/2023/07/03-lunch1.md")
	assert.Equal(t, "finance/budget/2023/07/03-lunch1.md", doc.Path)
	assert.Equal(t, "03-lunch1", doc.Name)
}

func TestEntryKind_String(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "document", KindDocument.String())
	assert.Equal(t, "container", KindContainer.String())
}
