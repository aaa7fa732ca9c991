package services

import (
	"testing"

	"narad-backend/domain/chat"
	"narad-backend/domain/knowledge"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *IntentClassifier {
	return NewIntentClassifier(knowledge.MonumentGreetings())
}

func TestClassify_Table(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		message string
		want    chat.Intent
	}{
		{"greeting keyword", "hello there", chat.IntentGreeting},
		{"greeting exact word", "hi", chat.IntentGreeting},
		{"hi is exact only, not a substring", "this painting is nice", chat.IntentGeneralInquiry},
		{"story request", "tell me a story", chat.IntentStoryRequest},
		{"story confirmation", "sure", chat.IntentStoryRequest},
		{"history", "ancient temples of india", chat.IntentHistoryInquiry},
		{"mythology", "what is the myth of hanuman", chat.IntentMythologyInquiry},
		{"folklore", "what are the local customs here", chat.IntentFolkloreInquiry},
		{"horror", "is the fort haunted", chat.IntentHorrorInquiry},
		{"location", "where is hampi", chat.IntentLocationInquiry},
		{"cultural row reached after story keywords", "heritage walks in the city", chat.IntentCulturalInquiry},
		{"summarization", "summarize our chat so far", chat.IntentSummarization},
		{"version", "who are you", chat.IntentVersionInquiry},
		{"informational", "why is the sky blue", chat.IntentInformational},
		{"default", "asdfgh", chat.IntentGeneralInquiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message, nil))
		})
	}
}

func TestClassify_HorrorBeatsInformational(t *testing.T) {
	c := newTestClassifier()

	// A message carrying both a horror keyword and an informational keyword
	// must resolve to the earlier table row.
	got := c.Classify("what ghost stories do you know", nil)
	assert.Equal(t, chat.IntentHorrorInquiry, got)
}

func TestClassify_MonumentGreeting(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		message string
		want    chat.Intent
	}{
		{"bare monument name", "kedarnath", chat.IntentMonumentGreeting},
		{"about form", "about taj mahal", chat.IntentMonumentGreeting},
		{"tell me about form", "tell me about hampi", chat.IntentMonumentGreeting},
		{"case and whitespace normalized", "  Kedarnath  ", chat.IntentMonumentGreeting},
		{"monument name inside longer question is not a greeting", "what is the height of kedarnath temple", chat.IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message, nil))
		})
	}
}

func TestClassify_GreetingSuppression(t *testing.T) {
	c := newTestClassifier()

	// An AI turn already containing the canonical greeting suppresses a
	// repeat for the rest of the session.
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "kedarnath"},
		{Role: chat.RoleAI, Content: "Jai Kedarnath! 🙏 What a magnificent place you've asked about!"},
	}

	got := c.Classify("Kedarnath", history)
	assert.NotEqual(t, chat.IntentMonumentGreeting, got)
}

func TestClassify_SuppressionIgnoresUserTurns(t *testing.T) {
	c := newTestClassifier()

	// Greeting text in a user turn does not count as given.
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "jai kedarnath"},
	}

	got := c.Classify("kedarnath", history)
	assert.Equal(t, chat.IntentMonumentGreeting, got)
}

func TestClassify_SuppressionIsPerSignature(t *testing.T) {
	c := newTestClassifier()

	// Any prior monument greeting suppresses the override phase.
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "taj mahal"},
		{Role: chat.RoleAI, Content: "Namaste at the Taj! 🙏 What a magnificent monument you've asked about!"},
	}

	got := c.Classify("taj mahal", history)
	assert.NotEqual(t, chat.IntentMonumentGreeting, got)
}

func TestClassifySimplified(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		message string
		want    chat.Intent
	}{
		{"hello", chat.IntentGreeting},
		{"any ghost around", chat.IntentHorrorInquiry},
		{"tell me a legend", chat.IntentStoryRequest},
		{"when built was this", chat.IntentHistoryInquiry},
		{"where is it", chat.IntentLocationInquiry},
		{"random text", chat.IntentGeneralInquiry},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ClassifySimplified(tt.message))
		})
	}
}

func TestClassifySimplified_NoGreetingPhase(t *testing.T) {
	c := newTestClassifier()

	// The simplified variant never returns monument_greeting.
	assert.Equal(t, chat.IntentGeneralInquiry, c.ClassifySimplified("kedarnath"))
}
