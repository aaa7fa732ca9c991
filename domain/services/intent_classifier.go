package services

import (
	"strings"

	"narad-backend/domain/chat"
	"narad-backend/domain/knowledge"
)

// intentPattern is one row of the ordered classification table. A row
// matches when any of its keywords is a substring of the lower-cased
// message, or the whole message equals one of its exact words; the first
// matching row wins, so more specific intents must be declared before
// generic ones (horror_inquiry before informational).
type intentPattern struct {
	intent   chat.Intent
	keywords []string
	exact    []string
}

var intentTable = []intentPattern{
	{chat.IntentGreeting, []string{"hello", "namaste", "good morning", "good afternoon", "good evening"}, []string{"hi", "hey"}},
	{chat.IntentHorrorInquiry, []string{"ghost", "haunted", "scary", "horror", "paranormal", "spirit", "curse"}, nil},
	{chat.IntentStoryRequest, []string{"tell me", "story", "legend", "tale", "narrative", "yes please", "yes sure", "go ahead"}, []string{"sure"}},
	{chat.IntentHistoryInquiry, []string{"history", "historical", "when built", "ancient", "past", "when constructed"}, nil},
	{chat.IntentMythologyInquiry, []string{"mythology", "myth", "god", "goddess", "divine"}, nil},
	{chat.IntentFolkloreInquiry, []string{"folklore", "folk tale", "tradition", "custom", "belief"}, nil},
	{chat.IntentLocationInquiry, []string{"where", "location", "how to reach", "directions", "address"}, nil},
	{chat.IntentCulturalInquiry, []string{"culture", "cultural", "heritage", "festival", "celebration"}, nil},
	{chat.IntentSummarization, []string{"summarize", "summary", "recap", "so far"}, nil},
	{chat.IntentVersionInquiry, []string{"version", "who are you", "who made you", "what can you do"}, nil},
	{chat.IntentInformational, []string{"what", "which", "who", "when", "how", "why", "information"}, nil},
}

// simplifiedTable is the smaller table used when classifying for suggestion
// and summary purposes. It keeps the relative order of the full table so the
// two classifiers agree on overlapping categories.
var simplifiedTable = []intentPattern{
	{chat.IntentGreeting, []string{"hello", "namaste"}, []string{"hi", "hey"}},
	{chat.IntentHorrorInquiry, []string{"ghost", "haunted", "scary", "horror"}, nil},
	{chat.IntentStoryRequest, []string{"tell me", "story", "legend", "tale"}, nil},
	{chat.IntentHistoryInquiry, []string{"history", "ancient", "when built"}, nil},
	{chat.IntentMythologyInquiry, []string{"mythology", "myth", "god"}, nil},
	{chat.IntentLocationInquiry, []string{"where", "location"}, nil},
}

// IntentClassifier maps an utterance (plus recent AI turns) to one intent.
// Classification is pure given (message, history); the only session-scoped
// state it consults is the history passed in.
type IntentClassifier struct {
	greetings []knowledge.MonumentGreeting
}

// NewIntentClassifier creates a classifier using the given monument greeting
// registry for the greeting-override phase.
func NewIntentClassifier(greetings []knowledge.MonumentGreeting) *IntentClassifier {
	return &IntentClassifier{greetings: greetings}
}

// Classify resolves the intent for a message. Phase one checks for the
// monument-greeting override; phase two walks the ordered pattern table.
func (c *IntentClassifier) Classify(message string, history []chat.Message) chat.Intent {
	normalized := strings.ToLower(strings.TrimSpace(message))

	if c.isMonumentGreeting(normalized, history) {
		return chat.IntentMonumentGreeting
	}

	return classifyByTable(normalized, intentTable)
}

// ClassifySimplified omits the monument-greeting phase and uses the smaller
// table. Used for suggestion generation and conversation summaries.
func (c *IntentClassifier) ClassifySimplified(message string) chat.Intent {
	normalized := strings.ToLower(strings.TrimSpace(message))
	return classifyByTable(normalized, simplifiedTable)
}

// isMonumentGreeting reports whether the message is exactly a known monument
// name (or "about X" / "tell me about X") and no prior AI turn already
// issued that monument's greeting. Once a greeting has been given in a
// session the same name falls through to ordinary classification.
func (c *IntentClassifier) isMonumentGreeting(normalized string, history []chat.Message) bool {
	if c.greetingAlreadyGiven(history) {
		return false
	}
	for _, g := range c.greetings {
		if normalized == g.NameKey ||
			normalized == "about "+g.NameKey ||
			normalized == "tell me about "+g.NameKey {
			return true
		}
	}
	return false
}

// greetingAlreadyGiven scans all prior AI messages for any monument greeting
// signature, including the bare "jai <name>" form.
func (c *IntentClassifier) greetingAlreadyGiven(history []chat.Message) bool {
	for _, msg := range history {
		if msg.Role != chat.RoleAI {
			continue
		}
		content := strings.ToLower(msg.Content)
		for _, g := range c.greetings {
			if strings.Contains(content, g.Phrase) || strings.Contains(content, "jai "+g.NameKey) {
				return true
			}
		}
	}
	return false
}

func classifyByTable(normalized string, table []intentPattern) chat.Intent {
	for _, row := range table {
		for _, kw := range row.keywords {
			if strings.Contains(normalized, kw) {
				return row.intent
			}
		}
		for _, word := range row.exact {
			if normalized == word {
				return row.intent
			}
		}
	}
	return chat.IntentGeneralInquiry
}
