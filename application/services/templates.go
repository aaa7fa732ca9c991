package services

import (
	"fmt"
	"strings"

	"narad-backend/domain/chat"
	domainservices "narad-backend/domain/services"
)

// greetingWords are the exact messages that trigger the first-message
// greeting shortcut.
var greetingWords = map[string]bool{
	"hello":   true,
	"hi":      true,
	"hey":     true,
	"namaste": true,
}

// languageGreetings is the per-language canned greeting used by the
// first-message shortcut. Unlisted tags fall back to English.
var languageGreetings = map[domainservices.LanguageTag]string{
	domainservices.LangEnglish: "Namaste! 🙏 I'm Narad, your cultural guide to India's incredible heritage. I can tell you about magnificent monuments, share ancient myths and legends, or even whisper a ghost story or two. What would you like to explore today?",
	domainservices.LangHindi:   "नमस्ते! 🙏 मैं नारद हूँ, भारत की समृद्ध सांस्कृतिक विरासत का आपका मार्गदर्शक। मैं आपको भव्य स्मारकों, प्राचीन कथाओं और रहस्यमयी किस्सों के बारे में बता सकता हूँ। आज आप क्या जानना चाहेंगे?",
	domainservices.LangMarathi: "नमस्कार! 🙏 मी नारद, भारताच्या सांस्कृतिक वारशाचा तुमचा मार्गदर्शक. मी तुम्हाला भव्य स्मारके, प्राचीन कथा आणि दंतकथांबद्दल सांगू शकतो. आज तुम्हाला काय जाणून घ्यायला आवडेल?",
	domainservices.LangBengali: "নমস্কার! 🙏 আমি নারদ, ভারতের সাংস্কৃতিক ঐতিহ্যের আপনার গাইড। আমি আপনাকে স্মৃতিস্তম্ভ, পুরাণ এবং লোককথার গল্প বলতে পারি। আজ আপনি কী জানতে চান?",
	domainservices.LangTamil:   "வணக்கம்! 🙏 நான் நாரதர், இந்தியாவின் கலாச்சார பாரம்பரியத்திற்கான உங்கள் வழிகாட்டி. நினைவுச்சின்னங்கள், புராணங்கள் மற்றும் கதைகளைப் பற்றி நான் உங்களுக்குச் சொல்ல முடியும். இன்று நீங்கள் எதை அறிய விரும்புகிறீர்கள்?",
	domainservices.LangTelugu:  "నమస్కారం! 🙏 నేను నారదుడిని, భారతదేశ సాంస్కృతిక వారసత్వానికి మీ మార్గదర్శి. స్మారక కట్టడాలు, పురాణాలు మరియు కథల గురించి నేను మీకు చెప్పగలను. ఈ రోజు మీరు ఏమి తెలుసుకోవాలనుకుంటున్నారు?",
}

// GreetingForLanguage returns the canned first-message greeting for a tag.
func GreetingForLanguage(tag domainservices.LanguageTag) string {
	if g, ok := languageGreetings[tag]; ok {
		return g
	}
	return languageGreetings[domainservices.LangEnglish]
}

// IsGreetingWord reports whether the normalized message is exactly one of
// the greeting words that trigger the first-message shortcut.
func IsGreetingWord(normalized string) bool {
	return greetingWords[normalized]
}

// genericFallback is the topic-agnostic last-resort template. Tier 1 output
// equal to this text is classified as generic, which is what permits the
// external-generation enhancement to run.
const genericFallback = "I'm here to help you discover India's incredible cultural heritage. What would you like to explore?"

// plainFallbacks is the legacy minimal answer set kept as a guard for the
// case where no contextual template applies at all.
var plainFallbacks = map[chat.Intent]string{
	chat.IntentGreeting:       "Namaste! I'm Narad, your cultural guide. How can I help you explore India's rich heritage today?",
	chat.IntentStoryRequest:   "I'd love to share fascinating stories with you! Could you tell me which monument or region interests you?",
	chat.IntentGeneralInquiry: genericFallback,
}

// PlainFallback returns the minimal per-intent answer, defaulting to the
// generic text for unmapped intents.
func PlainFallback(intent chat.Intent) string {
	if text, ok := plainFallbacks[intent]; ok {
		return text
	}
	return plainFallbacks[chat.IntentGeneralInquiry]
}

// IsGeneric reports whether a Tier 1 result carries the generic-fallback
// signature.
func IsGeneric(text string) bool {
	return strings.TrimSpace(text) == genericFallback
}

// topic identifies the subject a message is about, resolved from message
// keywords. The empty topic means no recognizable subject.
type topic string

const (
	topicNone      topic = ""
	topicTajMahal  topic = "taj_mahal"
	topicRedFort   topic = "red_fort"
	topicHampi     topic = "hampi"
	topicKedarnath topic = "kedarnath"
	topicBadrinath topic = "badrinath"
	topicBhangarh  topic = "bhangarh"
	topicDelhi     topic = "delhi"
)

// topicKeywords is ordered: more specific subjects first so "red fort in
// delhi" resolves to the fort, not the city.
var topicKeywords = []struct {
	topic    topic
	keywords []string
}{
	{topicBhangarh, []string{"bhangarh"}},
	{topicTajMahal, []string{"taj mahal", "taj"}},
	{topicRedFort, []string{"red fort", "lal qila"}},
	{topicHampi, []string{"hampi", "vijayanagara"}},
	{topicKedarnath, []string{"kedarnath"}},
	{topicBadrinath, []string{"badrinath"}},
	{topicDelhi, []string{"delhi"}},
}

func topicForMessage(normalized string) topic {
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(normalized, kw) {
				return tk.topic
			}
		}
	}
	return topicNone
}

// contextualResponse is the Tier 1 generator: a deterministic function of
// the message keywords and detected topic. It always returns a non-empty
// answer; the topic-agnostic generic text is its own last resort.
func contextualResponse(message string, intent chat.Intent, cctx *chat.CulturalContext) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	t := topicForMessage(normalized)
	if t == topicNone && cctx != nil && cctx.Monument != nil {
		t = topicForMessage(strings.ToLower(cctx.Monument.Name))
	}

	switch intent {
	case chat.IntentHorrorInquiry:
		return horrorTemplate(t)
	case chat.IntentHistoryInquiry:
		return historyTemplate(t, cctx)
	case chat.IntentMythologyInquiry:
		return mythologyTemplate(t)
	case chat.IntentStoryRequest:
		return storyTemplate(t, cctx)
	case chat.IntentGreeting:
		return languageGreetings[domainservices.LangEnglish]
	case chat.IntentVersionInquiry:
		return "I'm Narad, your AI cultural guide! I specialize in Indian heritage, mythology, and traditions. Ask me about monuments like the Taj Mahal or Hampi, request a legend or ghost story, or let me help you plan a cultural journey."
	case chat.IntentLocationInquiry:
		if cctx != nil && cctx.Monument != nil {
			return fmt.Sprintf("%s stands in %s. Reaching it is a journey worth making: the region around it carries its own traditions, festivals and flavors that reward a slower visit. Would you like to know the best way to get there, or what else to see nearby?", cctx.Monument.Name, cctx.Monument.Location)
		}
	case chat.IntentCulturalInquiry:
		if cctx != nil && cctx.Monument != nil {
			return fmt.Sprintf("The culture around %s runs far deeper than its stones. %s Local festivals, crafts and oral traditions have grown around this place for generations. Would you like to hear about the traditions, the festivals, or the stories locals still tell?", cctx.Monument.Name, cctx.Monument.Significance)
		}
	}

	return genericFallback
}

func horrorTemplate(t topic) string {
	switch t {
	case topicBhangarh:
		return "Ah, Bhangarh! 👻 You've asked about India's most haunted place. Legend tells of Princess Ratnavati, whose beauty caught the eye of a tantric skilled in dark magic. When she refused his advances, he cursed the fort, dooming it to destruction. The entire population perished mysteriously, and their spirits are said to still roam the ruins. Even today, the Archaeological Survey of India prohibits entry after sunset. Locals speak of strange sounds, moving shadows, and an overwhelming sense of dread after dark. Would you like to hear the historical version of Bhangarh's fall, or more tales from its cursed walls?"
	case topicTajMahal:
		return "Here's something few visitors know about the Taj Mahal... 👻 Late at night, guards report hearing the sound of a woman weeping near the mausoleum. Some believe it's the spirit of Mumtaz Mahal herself, eternally mourning her separation from the world. Others say it's just the wind through the marble lattices. Which explanation do you believe? Would you like more mysterious tales from Agra?"
	case topicDelhi:
		return "Delhi hides dark stories beneath its bustle... 👻 The Delhi Ridge forest carries the weight of 1857, when many were hanged from its trees during the revolt. Locals avoid the forest after sunset, claiming to see hanging figures that vanish when approached. Would you like to hear more haunted tales from the capital?"
	default:
		return "You want a ghost story? 👻 India's monuments hold many. From the cursed fort of Bhangarh where entry is forbidden after sunset, to the weeping spirit said to haunt the Taj Mahal at night, every region has its tales of the unexplained. Which one calls to you: the cursed fort, the weeping ghost, or the haunted forests of Delhi?"
	}
}

func historyTemplate(t topic, cctx *chat.CulturalContext) string {
	if cctx != nil && cctx.Monument != nil {
		m := cctx.Monument
		return fmt.Sprintf("Let me take you back in time. %s was completed around %d, in the %s period. %s Its %s architecture still draws scholars and travelers from around the world. Would you like to hear about the people who built it, or the events it has witnessed since?", m.Name, m.BuiltYear, m.Period, m.Significance, m.Architecture)
	}
	switch t {
	case topicTajMahal:
		return "Let me take you back to 1653, when the Taj Mahal was completed. Emperor Shah Jahan raised this white marble mausoleum for his beloved Mumtaz Mahal, who died giving birth to their fourteenth child. Twenty thousand artisans worked for over two decades under Ustad Ahmad Lahori. Would you like to hear about the love story behind it, or the legend of the never-built Black Taj?"
	case topicRedFort:
		return "The Red Fort rose in 1648 as the seat of Mughal power in Shah Jahan's new capital, Shahjahanabad. Its red sandstone walls have witnessed coronations, invasions, and finally the birth of a nation: every Independence Day the Prime Minister unfurls the flag from its ramparts. Would you like to hear about its hidden passages and vanished treasures?"
	case topicHampi:
		return "Hampi was once the capital of the Vijayanagara Empire, founded in 1336 and for two centuries among the richest cities in the world. Persian and Portuguese travelers wrote of its markets selling diamonds by the kilo. Would you like to hear how it rose, or the story of its fall?"
	}
	return genericFallback
}

func mythologyTemplate(t topic) string {
	switch t {
	case topicKedarnath:
		return "The mythology of Kedarnath begins after the great war of the Mahabharata. The Pandavas, seeking Lord Shiva's forgiveness, followed him into the Himalayas. Shiva, unwilling to absolve them easily, took the form of a bull; when Bhima tried to seize him, the bull vanished into the earth, leaving its hump behind at Kedarnath. That hump is worshipped here to this day. Shall I tell you where the other parts of the bull appeared?"
	case topicBadrinath:
		return "Badrinath's legend is one of devotion and shelter. Lord Vishnu sat in deep meditation here for ages, unaware of the harsh Himalayan cold. Goddess Lakshmi took the form of a badri tree, shielding him from snow and sun. Moved by her devotion, Vishnu named the place after her form: Badrika Ashram. Would you like to hear how Adi Shankaracharya revived the shrine?"
	case topicHampi:
		return "Hampi's hills are woven into the Ramayana itself. This is Kishkindha, the monkey kingdom, and legend holds that Anjana gave birth to Hanuman on a hill overlooking the Tungabhadra. Rama and Lakshmana passed through here searching for Sita. Would you like the story of Rama's meeting with Sugriva, or the legend of the magical boulders?"
	}
	return genericFallback
}

func storyTemplate(t topic, cctx *chat.CulturalContext) string {
	switch t {
	case topicTajMahal:
		return "Then let me tell you the story the Taj Mahal was built to tell. When Mumtaz Mahal died in 1631, Shah Jahan's hair is said to have turned white with grief in a single night. He poured his empire's wealth into a monument to her memory, perfect in symmetry, inscribed with her favorite verses. Some say he planned a twin in black marble across the river for himself. Would you like the love story in full, or the legend of the Black Taj?"
	case topicBhangarh:
		return horrorTemplate(topicBhangarh)
	}
	if cctx != nil && len(cctx.RelatedStories) > 0 {
		s := cctx.RelatedStories[0]
		return fmt.Sprintf("I have just the tale for you: \"%s\". It's a %s story that locals still tell. Shall I begin, or would you like to pick from the other stories I know about this place?", s.Title, strings.ReplaceAll(s.Type, "_", " "))
	}
	return genericFallback
}
