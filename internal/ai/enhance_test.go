package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"smarttodos/internal/model"
)

func TestSynthesizeTagsWorkedExample(t *testing.T) {
	lx := DefaultLexicon()

	sig := lx.ExtractSignals("Urgent: fix production bug", "", nil)
	tags := lx.SynthesizeTags(sig)

	assert.Contains(t, tags, "urgent")
	assert.Contains(t, tags, "bugfix")
	assert.Contains(t, tags, "work")
	assert.LessOrEqual(t, len(tags), MaxTags)
}

func TestSynthesizeTagsDedupesAndFilters(t *testing.T) {
	lx := DefaultLexicon()

	sig := lx.ExtractSignals("urgent urgent meeting about the project deadline review", "", nil)
	tags := lx.SynthesizeTags(sig)

	seen := make(map[string]int)
	for _, tag := range tags {
		seen[tag]++
		assert.GreaterOrEqual(t, len(tag), minTagLength, "tag %q too short", tag)
		assert.Less(t, len(tag), maxTagLength, "tag %q too long", tag)
	}
	for tag, n := range seen {
		assert.Equal(t, 1, n, "tag %q duplicated", tag)
	}
	assert.Equal(t, MaxTags, len(tags), "rich input fills the tag budget")
	assert.Equal(t, "urgent", tags[0], "rule tags come first in synthesis order")
}

func TestSynthesizeTagsContextKeywords(t *testing.T) {
	lx := DefaultLexicon()

	contexts := []model.ContextEntry{
		{ExtractedKeywords: []string{"migration", "rollout", "postmortem"}},
	}
	sig := lx.ExtractSignals("misc chore", "", contexts)
	tags := lx.SynthesizeTags(sig)

	assert.Contains(t, tags, "migration")
	assert.Contains(t, tags, "rollout")
	assert.NotContains(t, tags, "postmortem", "only the first two context keywords carry over")
}

func TestEnhanceDescriptionPassthrough(t *testing.T) {
	long := strings.Repeat("detailed explanation ", 5)
	got := EnhanceDescription("title", long, "Work", model.PriorityHigh, Signals{})
	assert.Equal(t, strings.TrimSpace(long), got)
}

func TestEnhanceDescriptionSynthesized(t *testing.T) {
	lx := DefaultLexicon()

	sig := lx.ExtractSignals("Refactor billing", "", nil)
	got := EnhanceDescription("Refactor billing", "", "Work", model.PriorityUrgent, sig)

	assert.True(t, strings.HasPrefix(got, "Complete the task: Refactor billing."), got)
	assert.Contains(t, got, "prompt attention")
	assert.Contains(t, got, "Coordinate with the people involved")
	assert.Contains(t, got, "smaller subtasks", "refactor is a complexity signal")
	assert.True(t, strings.HasSuffix(got, "Prepare any resources you need in advance."), got)
	assert.GreaterOrEqual(t, len(got), minDescriptionLength)
}
