package services

import (
	"fmt"
	"strings"

	"narad-backend/domain/chat"
	domainservices "narad-backend/domain/services"
)

// historyPairsInPrompt bounds how many trailing turn pairs are rendered into
// the prompt.
const historyPairsInPrompt = 3

// personaPreamble is the role preamble sent ahead of every generation
// request.
const personaPreamble = `You are Narad, an AI-powered cultural guide and storyteller specializing in Indian heritage, mythology, and traditions. You are wise, enthusiastic, and have deep knowledge of Indian culture, history, architecture, folklore, and spiritual traditions.

Your personality:
- Warm and welcoming, like a knowledgeable friend
- Storyteller who brings history and myths to life
- Patient and educational, adapting to the user's knowledge level
- Culturally sensitive and respectful
- Speak naturally and conversationally, not like a textbook
- Reference previous parts of the conversation when relevant
- Avoid repeating information already provided unless asked`

// intentInstructions tunes the preamble per classified intent. Unmapped
// intents get no extra instruction.
var intentInstructions = map[chat.Intent]string{
	chat.IntentGreeting:         "Warmly welcome the user and introduce yourself as their cultural guide. Encourage them to ask about monuments, stories, or myths.",
	chat.IntentMonumentGreeting: "Greet the user with the specific greeting for the monument they mentioned, then provide an engaging introduction to that place.",
	chat.IntentStoryRequest:     "Share engaging stories, myths, or legends related to the context. Provide rich details and make the stories come alive with vivid descriptions.",
	chat.IntentHistoryInquiry:   "Provide accurate historical information in an engaging manner. Include architectural details, historical significance, and interesting facts.",
	chat.IntentMythologyInquiry: "Share fascinating mythological stories and their significance. Explain the cultural and spiritual importance of these stories.",
	chat.IntentFolkloreInquiry:  "Tell captivating folklore and traditions. Include local customs and beliefs that make these stories special.",
	chat.IntentHorrorInquiry:    "Tell captivating ghost stories or mysterious tales responsibly. Make them atmospheric and intriguing without being too frightening.",
}

// BuildPrompt assembles the full generation prompt: persona preamble,
// request context, the last three formatted turn pairs and the current
// message.
func BuildPrompt(message string, intent chat.Intent, cctx *chat.CulturalContext, history []chat.Message, lang domainservices.LanguageTag) string {
	var b strings.Builder
	b.WriteString(personaPreamble)

	b.WriteString("\n\nCurrent context:")
	fmt.Fprintf(&b, "\n- User intent: %s", intent)
	fmt.Fprintf(&b, "\n- Conversation language: %s", lang.DisplayName())
	if cctx != nil {
		if cctx.Monument != nil {
			fmt.Fprintf(&b, "\n- Current monument: %s", cctx.Monument.Name)
			fmt.Fprintf(&b, "\n- Location: %s", cctx.Monument.Location)
		}
		if cctx.IntentKnowledge.Focus != "" {
			fmt.Fprintf(&b, "\n- Knowledge focus: %s", cctx.IntentKnowledge.Focus)
			fmt.Fprintf(&b, "\n- Response style: %s", cctx.IntentKnowledge.Style)
		}
	}

	if instruction, ok := intentInstructions[intent]; ok {
		fmt.Fprintf(&b, "\n\nSpecific instruction: %s", instruction)
	}

	pairs := chat.LastPairs(history, historyPairsInPrompt)
	if len(pairs) > 0 {
		b.WriteString("\n\nPrevious conversation (use this context to maintain continuity and avoid repetition):")
		for _, p := range pairs {
			fmt.Fprintf(&b, "\nUser: %s", p.User.Content)
			fmt.Fprintf(&b, "\nNarad: %s", p.AI.Content)
		}
	}

	fmt.Fprintf(&b, "\n\nCurrent User Question: %s", message)
	b.WriteString("\n\nPlease provide a response that continues the conversation naturally, referencing previous messages when relevant, and avoid repeating information already provided.")
	return b.String()
}
