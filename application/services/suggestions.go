package services

import (
	"fmt"

	"narad-backend/domain/chat"
)

// maxSuggestions caps the returned list.
const maxSuggestions = 6

// monumentGreetingSuggestions follow a monument greeting.
var monumentGreetingSuggestions = []string{
	"Tell me the mythology behind this place",
	"What's the history of this sacred site?",
	"Describe the journey to reach this place",
	"Share local folklore or legends",
}

// greetingShortcutSuggestions back the first-message greeting shortcut.
var greetingShortcutSuggestions = []string{
	"Tell me about a famous monument in India",
	"Share an interesting myth or legend",
	"What are some ghost stories from Indian history?",
}

var intentSuggestions = map[chat.Intent][]string{
	chat.IntentGreeting: {
		"Tell me about a famous monument in India",
		"Share an interesting myth or legend",
		"What are some ghost stories from Indian history?",
		"Plan a cultural journey for me",
	},
	chat.IntentStoryRequest: {
		"Tell me more stories about this place",
		"What's the historical significance of this monument?",
		"Are there any mysteries or legends associated with this place?",
		"Show me related cultural experiences",
	},
	chat.IntentHistoryInquiry: {
		"Share related myths and legends",
		"Tell me ghost stories from this location",
		"What are the architectural features of this monument?",
		"How can I visit this place and what should I know?",
	},
	chat.IntentMythologyInquiry: {
		"Tell me the historical context of this myth",
		"Are there any festivals related to this story?",
		"What moral or spiritual lessons does this teach?",
		"Are there similar stories from other regions?",
	},
	chat.IntentHorrorInquiry: {
		"What's the historical background of this ghost story?",
		"Are there any similar tales from this region?",
		"Is this place actually haunted or just folklore?",
		"What cultural beliefs are associated with this story?",
	},
}

// defaultSuggestions back any intent with no dedicated table entry.
var defaultSuggestions = []string{
	"Tell me about the history of this place",
	"Share a myth or legend related to this",
	"What cultural traditions are associated with this?",
	"Are there any ghost stories or mysteries here?",
}

// Suggest produces the follow-up prompts for one response: the per-intent
// base set, plus up to three monument-name interpolations when the context
// resolved a monument, deduplicated preserving first-seen order and capped
// at six.
func Suggest(intent chat.Intent, cctx *chat.CulturalContext) []string {
	if intent == chat.IntentMonumentGreeting {
		return dedupCap(monumentGreetingSuggestions)
	}

	base, ok := intentSuggestions[intent]
	if !ok {
		base = defaultSuggestions
	}

	out := make([]string, 0, len(base)+3)
	out = append(out, base...)

	if cctx != nil && cctx.Monument != nil {
		name := cctx.Monument.Name
		out = append(out,
			fmt.Sprintf("What else should I know about %s?", name),
			fmt.Sprintf("How does %s connect to Indian history?", name),
			fmt.Sprintf("Any hidden gems or secrets about %s?", name),
		)
	}

	return dedupCap(out)
}

// GreetingSuggestions returns the fixed set used by the first-message
// greeting shortcut.
func GreetingSuggestions() []string {
	out := make([]string, len(greetingShortcutSuggestions))
	copy(out, greetingShortcutSuggestions)
	return out
}

func dedupCap(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
