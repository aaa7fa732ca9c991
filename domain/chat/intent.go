package chat

// Intent is the discrete classification of what a user utterance asks for.
// Classification is total: every message resolves to exactly one intent,
// defaulting to IntentGeneralInquiry.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentMonumentGreeting Intent = "monument_greeting"
	IntentStoryRequest     Intent = "story_request"
	IntentHistoryInquiry   Intent = "history_inquiry"
	IntentMythologyInquiry Intent = "mythology_inquiry"
	IntentFolkloreInquiry  Intent = "folklore_inquiry"
	IntentHorrorInquiry    Intent = "horror_inquiry"
	IntentLocationInquiry  Intent = "location_inquiry"
	IntentCulturalInquiry  Intent = "cultural_inquiry"
	IntentSummarization    Intent = "summarization_request"
	IntentInformational    Intent = "informational"
	IntentVersionInquiry   Intent = "version_inquiry"
	IntentGeneralInquiry   Intent = "general_inquiry"
	IntentError            Intent = "error"
)

// String returns the wire form of the intent.
func (i Intent) String() string { return string(i) }
