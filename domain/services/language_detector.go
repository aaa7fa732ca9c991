// Package services holds the stateless domain services of the chatbot core:
// language detection and intent classification.
package services

import "strings"

// LanguageTag is a short language/script tag ("hi", "bn", "en", ...).
type LanguageTag string

const (
	LangHindi     LanguageTag = "hi"
	LangMarathi   LanguageTag = "mr"
	LangBengali   LanguageTag = "bn"
	LangTamil     LanguageTag = "ta"
	LangTelugu    LanguageTag = "te"
	LangKannada   LanguageTag = "kn"
	LangMalayalam LanguageTag = "ml"
	LangPunjabi   LanguageTag = "pa"
	LangGujarati  LanguageTag = "gu"
	LangOdia      LanguageTag = "or"
	LangEnglish   LanguageTag = "en"
)

// scriptRange is one entry of the ordered detection checklist. The first
// range containing any rune of the input wins.
type scriptRange struct {
	tag  LanguageTag
	lo   rune
	hi   rune
}

// Checklist order matters: Devanagari is tested first, so the Marathi
// upgrade below only applies when no more specific script already matched.
var scriptRanges = []scriptRange{
	{LangHindi, 0x0900, 0x097F},     // Devanagari
	{LangBengali, 0x0980, 0x09FF},   // Bengali
	{LangTamil, 0x0B80, 0x0BFF},     // Tamil
	{LangTelugu, 0x0C00, 0x0C7F},    // Telugu
	{LangKannada, 0x0C80, 0x0CFF},   // Kannada
	{LangMalayalam, 0x0D00, 0x0D7F}, // Malayalam
	{LangPunjabi, 0x0A00, 0x0A7F},   // Gurmukhi
	{LangGujarati, 0x0A80, 0x0AFF},  // Gujarati
	{LangOdia, 0x0B00, 0x0B7F},      // Odia
}

// marathiMarkers upgrade a Devanagari match to the Marathi tag when the
// message names the language or the state explicitly.
var marathiMarkers = []string{"marathi", "maharashtra", "मराठी", "महाराष्ट्र"}

// DetectLanguage classifies text into a language tag using character-range
// heuristics. It is a pure function: identical input always yields the same
// tag. Text with no recognized Indic script defaults to English.
func DetectLanguage(text string) LanguageTag {
	for _, sr := range scriptRanges {
		if containsRuneInRange(text, sr.lo, sr.hi) {
			if sr.tag == LangHindi && hasMarathiMarker(text) {
				return LangMarathi
			}
			return sr.tag
		}
	}
	return LangEnglish
}

// ResolveLanguage combines a detected tag with the caller's declared
// preference: the detected tag wins whenever it is non-default, i.e. message
// content beats stated preference for any non-English script.
func ResolveLanguage(detected LanguageTag, preference string) LanguageTag {
	if detected != LangEnglish {
		return detected
	}
	if preference == "" {
		return LangEnglish
	}
	return LanguageTag(strings.ToLower(preference))
}

// DisplayName returns a human-readable label for prompt context.
func (t LanguageTag) DisplayName() string {
	switch t {
	case LangHindi:
		return "Hindi"
	case LangMarathi:
		return "Marathi"
	case LangBengali:
		return "Bengali"
	case LangTamil:
		return "Tamil"
	case LangTelugu:
		return "Telugu"
	case LangKannada:
		return "Kannada"
	case LangMalayalam:
		return "Malayalam"
	case LangPunjabi:
		return "Punjabi"
	case LangGujarati:
		return "Gujarati"
	case LangOdia:
		return "Odia"
	default:
		return "English"
	}
}

func containsRuneInRange(text string, lo, hi rune) bool {
	for _, r := range text {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

func hasMarathiMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range marathiMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
