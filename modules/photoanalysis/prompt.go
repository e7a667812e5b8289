package photoanalysis

import (
	"fmt"
	"strings"
)

const coachPromptTemplate = `You are a warm, encouraging cosmetic coach specializing in melanin-rich skin.
Look at this face photo and describe what you see: apparent skin type, visible strengths, and areas that could use attention (texture, tone evenness, hydration, shine).
Give practical, gentle care advice the person can apply at home. Do not make medical diagnoses.
Respond in %s.`

// BuildPrompt returns the caller's prompt verbatim when non-empty, otherwise
// the built-in cosmetic coach template in the requested language.
func BuildPrompt(userPrompt, lang string) string {
	if strings.TrimSpace(userPrompt) != "" {
		return userPrompt
	}

	languageName := "English"
	if lang == "fr" {
		languageName = "French"
	}

	return fmt.Sprintf(coachPromptTemplate, languageName)
}
