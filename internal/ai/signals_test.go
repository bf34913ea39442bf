package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smarttodos/internal/model"
)

func TestExtractSignalsCountsEachKeywordOnce(t *testing.T) {
	lx := DefaultLexicon()

	sig := lx.ExtractSignals("urgent urgent urgent", "", nil)
	assert.Equal(t, 1, sig.UrgentHits)

	sig = lx.ExtractSignals("urgent asap", "", nil)
	assert.Equal(t, 2, sig.UrgentHits)
}

func TestExtractSignalsTextAndFlags(t *testing.T) {
	lx := DefaultLexicon()

	sig := lx.ExtractSignals("  Refactor the Auth Module  ", "needs research first", nil)
	assert.Equal(t, "refactor the auth module   needs research first", sig.Text)
	assert.True(t, sig.IsComplex, "refactor and research are complexity signals")
	assert.False(t, sig.IsQuick)
	assert.False(t, sig.HasContext)

	sig = lx.ExtractSignals("quick call with the team", "", nil)
	assert.True(t, sig.IsQuick)
	assert.False(t, sig.IsComplex)
}

func TestExtractSignalsContextTruncation(t *testing.T) {
	lx := DefaultLexicon()

	contexts := []model.ContextEntry{
		{UrgencyScore: 1.0, ExtractedKeywords: []string{"alpha"}},
		{UrgencyScore: 0.5, ExtractedKeywords: []string{"beta"}},
		{UrgencyScore: 0.3, ExtractedKeywords: []string{"gamma"}},
		{UrgencyScore: 0.0, ExtractedKeywords: []string{"ignored"}},
	}

	sig := lx.ExtractSignals("write summary", "", contexts)
	assert.True(t, sig.HasContext)
	assert.InDelta(t, 0.6, sig.ContextUrgencyAvg, 1e-9)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, sig.ContextKeywords)
}

func TestExtractSignalsKeywordMatchesTotal(t *testing.T) {
	lx := DefaultLexicon()

	// "urgent" (urgency), "bug" and "production" (Work), no complexity/quick.
	sig := lx.ExtractSignals("Urgent: fix production bug", "", nil)
	assert.Equal(t, 1, sig.UrgentHits)
	assert.Equal(t, 2, sig.CategoryHits["Work"])
	assert.Equal(t, 3, sig.KeywordMatches)
}
