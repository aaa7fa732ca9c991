// Package knowledge provides the in-process knowledge store: monument and
// story reference data plus the scoring queries the retriever exposes.
package knowledge

import (
	"os"
	"sort"
	"strings"

	"narad-backend/domain/chat"
	domain "narad-backend/domain/knowledge"
	apperrors "narad-backend/pkg/errors"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Relatedness scoring constants. These are fixed design values, not
// configurable per call.
const (
	periodWeight       = 0.5
	regionWeight       = 0.3
	architectureWeight = 0.2
	relatedThreshold   = 0.3

	maxRelatedMonuments = 5
	maxStoryResults     = 3

	// Story search scores: both text match and intent alignment, or one of
	// the two.
	storyScoreBoth   = 0.8
	storyScoreSingle = 0.6
)

// Repository is a read-only, process-lifetime knowledge store. Insertion
// order of the seed data is preserved and used as the tie-break for equal
// scores.
type Repository struct {
	monuments []*domain.Monument
	stories   []*domain.Story
	byID      map[string]*domain.Monument
	storyByID map[string]*domain.Story
	logger    *zap.Logger
}

// seedFile is the YAML shape of an external knowledge seed.
type seedFile struct {
	Monuments []*domain.Monument `yaml:"monuments"`
	Stories   []*domain.Story    `yaml:"stories"`
}

// NewRepository creates a repository from the built-in seed data.
func NewRepository(logger *zap.Logger) *Repository {
	return newRepository(seedMonuments(), seedStories(), logger)
}

// NewRepositoryFromFile creates a repository from a YAML seed file, allowing
// deployments to ship their own monument and story datasets.
func NewRepositoryFromFile(path string, logger *zap.Logger) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInternal("read knowledge seed "+path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, apperrors.NewInternal("parse knowledge seed "+path, err)
	}
	if len(seed.Monuments) == 0 {
		return nil, apperrors.NewValidation("knowledge seed " + path + " contains no monuments")
	}

	return newRepository(seed.Monuments, seed.Stories, logger), nil
}

func newRepository(monuments []*domain.Monument, stories []*domain.Story, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Repository{
		monuments: monuments,
		stories:   stories,
		byID:      make(map[string]*domain.Monument, len(monuments)),
		storyByID: make(map[string]*domain.Story, len(stories)),
		logger:    logger,
	}
	for _, m := range monuments {
		r.byID[m.ID] = m
	}
	for _, s := range stories {
		r.storyByID[s.ID] = s
	}

	logger.Info("knowledge repository initialized",
		zap.Int("monuments", len(monuments)),
		zap.Int("stories", len(stories)),
	)
	return r
}

// GetMonument resolves a monument by exact id first, then by
// case-insensitive substring match against known names. A miss returns nil.
func (r *Repository) GetMonument(idOrName string) *domain.Monument {
	if m, ok := r.byID[idOrName]; ok {
		return m
	}

	needle := strings.ToLower(strings.TrimSpace(idOrName))
	if needle == "" {
		return nil
	}
	for _, m := range r.monuments {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			return m
		}
	}
	return nil
}

// ListMonuments returns all monuments in seed order.
func (r *Repository) ListMonuments() []*domain.Monument {
	out := make([]*domain.Monument, len(r.monuments))
	copy(out, r.monuments)
	return out
}

// SearchStories returns up to three stories ranked for the query and intent.
// A story qualifies when the query text appears in its title, content or
// themes, or when its type aligns with the intent; it scores 0.8 when both
// conditions hold and 0.6 otherwise. Ties keep seed order.
func (r *Repository) SearchStories(query string, intent chat.Intent) []domain.StoryMatch {
	queryLower := strings.ToLower(query)

	var matches []domain.StoryMatch
	for _, s := range r.stories {
		textMatch := storyMatchesQuery(s, queryLower)
		intentMatch := storyAlignsWithIntent(s, intent)
		if !textMatch && !intentMatch {
			continue
		}

		score := storyScoreSingle
		if textMatch && intentMatch {
			score = storyScoreBoth
		}
		matches = append(matches, domain.StoryMatch{
			ID:    s.ID,
			Title: s.Title,
			Type:  s.Type,
			Score: score,
		})
	}

	// Stable sort keeps insertion order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxStoryResults {
		matches = matches[:maxStoryResults]
	}
	return matches
}

// RelatedMonuments scores every other monument against the given one by
// summing three independent signals: same historical period (+0.5), same
// top-level region (+0.3), same architectural style (+0.2). Results below
// the 0.3 threshold are dropped; up to five are returned, highest first.
func (r *Repository) RelatedMonuments(monumentID string) []domain.RelatedMonument {
	current := r.GetMonument(monumentID)
	if current == nil {
		return nil
	}

	var related []domain.RelatedMonument
	for _, m := range r.monuments {
		if m.ID == current.ID {
			continue
		}

		score := 0.0
		if m.Period != "" && m.Period == current.Period {
			score += periodWeight
		}
		if m.Region() != "" && m.Region() == current.Region() {
			score += regionWeight
		}
		if m.Architecture != "" && m.Architecture == current.Architecture {
			score += architectureWeight
		}

		if score >= relatedThreshold {
			related = append(related, domain.RelatedMonument{
				ID:       m.ID,
				Name:     m.Name,
				Location: m.Location,
				Score:    score,
			})
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Score > related[j].Score
	})
	if len(related) > maxRelatedMonuments {
		related = related[:maxRelatedMonuments]
	}
	return related
}

// IntentKnowledge returns framing hints for the given intent, falling back
// to a general entry for unmapped intents.
func (r *Repository) IntentKnowledge(intent chat.Intent) domain.IntentKnowledge {
	if k, ok := intentKnowledgeTable[intent]; ok {
		return k
	}
	return domain.IntentKnowledge{
		Focus:   "general cultural information",
		Sources: "multiple cultural sources",
		Style:   "informative and engaging",
	}
}

// LocationCulture returns a coarse cultural sketch for a free-form location.
func (r *Repository) LocationCulture(location string) *domain.LocationCulture {
	if strings.TrimSpace(location) == "" {
		return nil
	}
	return &domain.LocationCulture{
		Region:           location,
		CulturalAspects:  []string{"local traditions", "historical significance", "architectural styles"},
		CulturalPractice: []string{"festivals", "customs", "arts"},
	}
}

// StoryVersions returns the alternative tellings of a story, or nil when the
// story is unknown.
func (r *Repository) StoryVersions(storyID string) *domain.StoryVersions {
	s, ok := r.storyByID[storyID]
	if !ok {
		return nil
	}
	return &domain.StoryVersions{
		Title:       s.Title,
		MainContent: s.Content,
		Type:        s.Type,
		Versions:    s.Versions,
	}
}

// HorrorStories lists all horror and mystery stories in seed order.
func (r *Repository) HorrorStories() []*domain.Story {
	var out []*domain.Story
	for _, s := range r.stories {
		if s.Type == "horror" || s.Type == "mystery" {
			out = append(out, s)
		}
	}
	return out
}

// Summary counts the store contents.
func (r *Repository) Summary() domain.Summary {
	return domain.Summary{Monuments: len(r.monuments), Stories: len(r.stories)}
}

func storyMatchesQuery(s *domain.Story, queryLower string) bool {
	if queryLower == "" {
		return false
	}
	if strings.Contains(strings.ToLower(s.Title), queryLower) ||
		strings.Contains(strings.ToLower(s.Content), queryLower) {
		return true
	}
	for _, theme := range s.Themes {
		if strings.Contains(queryLower, strings.ToLower(theme)) {
			return true
		}
	}
	return false
}

// storyAlignsWithIntent implements the fixed alignment table:
// mythology_inquiry↔mythology, history_inquiry↔historical*,
// horror_inquiry↔{mystery,horror}; general_inquiry aligns with everything.
func storyAlignsWithIntent(s *domain.Story, intent chat.Intent) bool {
	switch intent {
	case chat.IntentMythologyInquiry:
		return s.Type == "mythology"
	case chat.IntentHistoryInquiry:
		return strings.Contains(s.Type, "historical")
	case chat.IntentHorrorInquiry:
		return s.Type == "mystery" || s.Type == "horror"
	case chat.IntentGeneralInquiry:
		return true
	default:
		return false
	}
}

var intentKnowledgeTable = map[chat.Intent]domain.IntentKnowledge{
	chat.IntentHistoryInquiry: {
		Focus:   "historical facts and timeline",
		Sources: "verified historical records",
		Style:   "factual and chronological",
	},
	chat.IntentMythologyInquiry: {
		Focus:   "mythological stories and significance",
		Sources: "ancient texts and oral traditions",
		Style:   "narrative and symbolic",
	},
	chat.IntentFolkloreInquiry: {
		Focus:   "local traditions and beliefs",
		Sources: "community knowledge and practices",
		Style:   "cultural and experiential",
	},
	chat.IntentHorrorInquiry: {
		Focus:   "mysterious tales and legends",
		Sources: "folklore and unexplained phenomena",
		Style:   "atmospheric and intriguing",
	},
}
