// Package knowledge defines the read-only reference records the retriever
// serves: monuments, stories and the per-intent knowledge hints used when
// building prompts.
package knowledge

import "strings"

// Monument is a single heritage-site record. Monuments are owned by the
// knowledge store and read-only from the core's perspective.
type Monument struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Location       string   `yaml:"location"`
	Period         string   `yaml:"period"`
	BuiltYear      int      `yaml:"built_year"`
	Significance   string   `yaml:"significance"`
	Architecture   string   `yaml:"architecture"`
	StoryIDs       []string `yaml:"stories"`
	MythIDs        []string `yaml:"myths"`
	RelatedFigures []string `yaml:"related_figures"`
}

// Region returns the top-level region component of the monument location,
// e.g. "Uttar Pradesh" for "Agra, Uttar Pradesh".
func (m *Monument) Region() string {
	loc := m.Location
	if i := strings.LastIndex(loc, ","); i >= 0 {
		loc = loc[i+1:]
	}
	return strings.TrimSpace(loc)
}

// Story is a narrative record, optionally tied to a monument. Versions hold
// alternative tellings (folk, historical, supernatural) keyed by variant.
type Story struct {
	ID         string            `yaml:"id"`
	Title      string            `yaml:"title"`
	Type       string            `yaml:"type"`
	MonumentID string            `yaml:"monument"`
	Content    string            `yaml:"content"`
	Themes     []string          `yaml:"themes"`
	Versions   map[string]string `yaml:"versions"`
}

// StoryMatch is a scored search hit.
type StoryMatch struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Type  string  `json:"type"`
	Score float64 `json:"relevance_score"`
}

// RelatedMonument is a scored relatedness hit.
type RelatedMonument struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Score    float64 `json:"relatedness_score"`
}

// StoryVersions exposes the alternative tellings of a story.
type StoryVersions struct {
	Title       string            `json:"title"`
	MainContent string            `json:"main_content"`
	Type        string            `json:"type"`
	Versions    map[string]string `json:"versions"`
}

// IntentKnowledge describes how knowledge should be framed for an intent
// when building a generation prompt.
type IntentKnowledge struct {
	Focus   string `json:"focus"`
	Sources string `json:"sources"`
	Style   string `json:"style"`
}

// LocationCulture is the coarse cultural sketch returned for a free-form
// location string.
type LocationCulture struct {
	Region           string   `json:"region"`
	CulturalAspects  []string `json:"cultural_aspects"`
	CulturalPractice []string `json:"cultural_practices"`
}

// Summary counts the knowledge store contents.
type Summary struct {
	Monuments int `json:"monuments"`
	Stories   int `json:"stories"`
}
