// Package chat defines the core conversational types shared by the
// classifier, the response generator and the orchestrating service.
package chat

import "time"

// Role identifies who produced a message in a conversation.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is a single conversational turn. Messages are immutable once
// appended to a session; insertion order defines turn order.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnPair is one user message and the AI reply that followed it.
type TurnPair struct {
	User Message
	AI   Message
}

// PairTurns groups a history into user/ai turn pairs, most-recent-last.
// Unpaired trailing messages are dropped.
func PairTurns(history []Message) []TurnPair {
	var pairs []TurnPair
	for i := 0; i+1 < len(history); i++ {
		if history[i].Role == RoleUser && history[i+1].Role == RoleAI {
			pairs = append(pairs, TurnPair{User: history[i], AI: history[i+1]})
			i++
		}
	}
	return pairs
}

// LastPairs returns at most n trailing turn pairs from the history.
func LastPairs(history []Message, n int) []TurnPair {
	pairs := PairTurns(history)
	if len(pairs) > n {
		pairs = pairs[len(pairs)-n:]
	}
	return pairs
}

// LastMessages returns at most n trailing messages from the history.
func LastMessages(history []Message, n int) []Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return history
}
