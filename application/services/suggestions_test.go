package services

import (
	"testing"

	"narad-backend/domain/chat"
	"narad-backend/domain/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_IntentBaseSets(t *testing.T) {
	t.Run("horror intent", func(t *testing.T) {
		got := Suggest(chat.IntentHorrorInquiry, nil)
		require.Len(t, got, 4)
		assert.Equal(t, "What's the historical background of this ghost story?", got[0])
	})

	t.Run("unmapped intent falls back to defaults", func(t *testing.T) {
		got := Suggest(chat.IntentLocationInquiry, nil)
		assert.Equal(t, defaultSuggestions, got)
	})

	t.Run("monument greeting has its own set", func(t *testing.T) {
		got := Suggest(chat.IntentMonumentGreeting, nil)
		assert.Equal(t, monumentGreetingSuggestions, got)
	})
}

func TestSuggest_MonumentInterpolation(t *testing.T) {
	cctx := &chat.CulturalContext{
		Monument: &knowledge.Monument{ID: "hampi", Name: "Hampi"},
	}

	got := Suggest(chat.IntentHistoryInquiry, cctx)

	// Four base entries plus three interpolations, capped at six.
	require.Len(t, got, 6)
	assert.Contains(t, got, "What else should I know about Hampi?")
	assert.Contains(t, got, "How does Hampi connect to Indian history?")
	assert.NotContains(t, got, "Any hidden gems or secrets about Hampi?")
}

func TestSuggest_Dedup(t *testing.T) {
	// The greeting base set already holds the shortcut entries; dedup keeps
	// first occurrences only.
	got := Suggest(chat.IntentGreeting, nil)

	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, s)
	}
}

func TestGreetingSuggestions(t *testing.T) {
	got := GreetingSuggestions()
	require.Len(t, got, 3)

	// Callers get a copy, not the backing array.
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", GreetingSuggestions()[0])
}
