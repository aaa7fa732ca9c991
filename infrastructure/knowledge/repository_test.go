package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"narad-backend/domain/chat"
	domain "narad-backend/domain/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetMonument(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	t.Run("exact id", func(t *testing.T) {
		m := repo.GetMonument("taj_mahal")
		require.NotNil(t, m)
		assert.Equal(t, "Taj Mahal", m.Name)
	})

	t.Run("case-insensitive name substring", func(t *testing.T) {
		m := repo.GetMonument("red FORT")
		require.NotNil(t, m)
		assert.Equal(t, "red_fort", m.ID)
	})

	t.Run("partial name", func(t *testing.T) {
		m := repo.GetMonument("kedar")
		require.NotNil(t, m)
		assert.Equal(t, "kedarnath", m.ID)
	})

	t.Run("miss resolves to nil", func(t *testing.T) {
		assert.Nil(t, repo.GetMonument("atlantis"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, repo.GetMonument("  "))
	})
}

func TestSearchStories_Scoring(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	t.Run("text and intent match scores higher", func(t *testing.T) {
		matches := repo.SearchStories("bhangarh", chat.IntentHorrorInquiry)
		require.NotEmpty(t, matches)
		assert.Equal(t, "bhangarh_fort_horror", matches[0].ID)
		assert.Equal(t, 0.8, matches[0].Score)
	})

	t.Run("intent-only match scores lower", func(t *testing.T) {
		matches := repo.SearchStories("zzz nothing matches", chat.IntentHorrorInquiry)
		require.NotEmpty(t, matches)
		for _, m := range matches {
			assert.Equal(t, 0.6, m.Score)
		}
	})

	t.Run("capped at three", func(t *testing.T) {
		matches := repo.SearchStories("story", chat.IntentGeneralInquiry)
		assert.LessOrEqual(t, len(matches), 3)
	})

	t.Run("ties keep seed order", func(t *testing.T) {
		// All horror/mystery stories align with the intent and none match
		// the query text, so the top results follow insertion order.
		matches := repo.SearchStories("xyzzy", chat.IntentHorrorInquiry)
		require.Len(t, matches, 3)
		assert.Equal(t, "red_fort_mysteries", matches[0].ID)
		assert.Equal(t, "bhangarh_fort_horror", matches[1].ID)
		assert.Equal(t, "taj_mahal_ghost", matches[2].ID)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, repo.SearchStories("xyzzy", chat.IntentLocationInquiry))
	})
}

func TestRelatedMonuments(t *testing.T) {
	t.Run("period and architecture without region scores 0.7", func(t *testing.T) {
		repo := newRepository([]*domain.Monument{
			{ID: "a", Name: "A", Location: "Agra, Uttar Pradesh", Period: "Mughal", Architecture: "Indo-Islamic"},
			{ID: "b", Name: "B", Location: "Aurangabad, Maharashtra", Period: "Mughal", Architecture: "Indo-Islamic"},
		}, nil, zap.NewNop())

		related := repo.RelatedMonuments("a")
		require.Len(t, related, 1)
		assert.Equal(t, "b", related[0].ID)
		assert.InDelta(t, 0.7, related[0].Score, 1e-9)
	})

	t.Run("no shared signal scores zero and is excluded", func(t *testing.T) {
		repo := newRepository([]*domain.Monument{
			{ID: "a", Name: "A", Location: "Agra, Uttar Pradesh", Period: "Mughal", Architecture: "Indo-Islamic"},
			{ID: "b", Name: "B", Location: "Hampi, Karnataka", Period: "Vijayanagara", Architecture: "Dravidian"},
		}, nil, zap.NewNop())

		assert.Empty(t, repo.RelatedMonuments("a"))
	})

	t.Run("region-only match meets the threshold", func(t *testing.T) {
		repo := newRepository([]*domain.Monument{
			{ID: "a", Name: "A", Location: "Rudraprayag, Uttarakhand", Period: "Ancient", Architecture: "Nagara"},
			{ID: "b", Name: "B", Location: "Chamoli, Uttarakhand", Period: "Medieval", Architecture: "Dravidian"},
		}, nil, zap.NewNop())

		related := repo.RelatedMonuments("a")
		require.Len(t, related, 1)
		assert.InDelta(t, 0.3, related[0].Score, 1e-9)
	})

	t.Run("architecture alone misses the threshold", func(t *testing.T) {
		repo := newRepository([]*domain.Monument{
			{ID: "a", Name: "A", Location: "Agra, Uttar Pradesh", Period: "Mughal", Architecture: "Nagara"},
			{ID: "b", Name: "B", Location: "Hampi, Karnataka", Period: "Ancient", Architecture: "Nagara"},
		}, nil, zap.NewNop())

		assert.Empty(t, repo.RelatedMonuments("a"))
	})

	t.Run("sorted descending and capped at five", func(t *testing.T) {
		monuments := []*domain.Monument{
			{ID: "base", Name: "Base", Location: "X, Region", Period: "P", Architecture: "A"},
		}
		for _, id := range []string{"m1", "m2", "m3", "m4", "m5", "m6"} {
			monuments = append(monuments, &domain.Monument{
				ID: id, Name: id, Location: "Y, Region", Period: "P", Architecture: "A",
			})
		}
		repo := newRepository(monuments, nil, zap.NewNop())

		related := repo.RelatedMonuments("base")
		assert.Len(t, related, 5)
		for i := 1; i < len(related); i++ {
			assert.GreaterOrEqual(t, related[i-1].Score, related[i].Score)
		}
	})

	t.Run("unknown monument yields nil", func(t *testing.T) {
		repo := NewRepository(zap.NewNop())
		assert.Nil(t, repo.RelatedMonuments("atlantis"))
	})
}

func TestIntentKnowledge(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	t.Run("mapped intent", func(t *testing.T) {
		k := repo.IntentKnowledge(chat.IntentHorrorInquiry)
		assert.Equal(t, "mysterious tales and legends", k.Focus)
	})

	t.Run("unmapped intent falls back to general", func(t *testing.T) {
		k := repo.IntentKnowledge(chat.IntentVersionInquiry)
		assert.Equal(t, "general cultural information", k.Focus)
	})
}

func TestStoryVersions(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	t.Run("known story", func(t *testing.T) {
		v := repo.StoryVersions("bhangarh_fort_horror")
		require.NotNil(t, v)
		assert.Equal(t, "The Cursed Fort of Bhangarh", v.Title)
		assert.Contains(t, v.Versions, "folk_version")
	})

	t.Run("unknown story", func(t *testing.T) {
		assert.Nil(t, repo.StoryVersions("nope"))
	})
}

func TestHorrorStoriesAndSummary(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	horror := repo.HorrorStories()
	require.NotEmpty(t, horror)
	for _, s := range horror {
		assert.Contains(t, []string{"horror", "mystery"}, s.Type)
	}

	summary := repo.Summary()
	assert.Equal(t, 5, summary.Monuments)
	assert.Equal(t, 10, summary.Stories)
}

func TestNewRepositoryFromFile(t *testing.T) {
	t.Run("valid seed", func(t *testing.T) {
		seed := `
monuments:
  - id: qutub_minar
    name: Qutub Minar
    location: Delhi
    period: Delhi Sultanate
    built_year: 1193
    architecture: Indo-Islamic
stories:
  - id: iron_pillar
    title: The Rustless Iron Pillar
    type: mystery
    monument: qutub_minar
    content: A pillar that has resisted rust for over 1600 years.
    themes: [mystery, metallurgy]
`
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

		repo, err := NewRepositoryFromFile(path, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, repo.GetMonument("qutub_minar"))
		assert.Equal(t, 1, repo.Summary().Stories)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewRepositoryFromFile("/does/not/exist.yaml", zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("empty seed rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("monuments: []"), 0o644))

		_, err := NewRepositoryFromFile(path, zap.NewNop())
		assert.Error(t, err)
	})
}
