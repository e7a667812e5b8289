package skinanalysis

import "strings"

// System prompts pin the exact output shape. JSON keys stay in English for
// both languages; only the values change with the target language.
const systemPromptEN = `You are an expert dermatology assistant specializing in melanin-rich skin.
Analyze the skin profile below and respond with ONLY a valid JSON object, no other text, using exactly this structure:
{
  "skinType": "the identified skin type",
  "concerns": ["list of identified concerns"],
  "overallScore": 75,
  "summary": "a short overall assessment",
  "recommendations": [{"title": "Gentle cleansing", "description": "why and how", "priority": "high"}],
  "morningRoutine": [{"step": 1, "product": "Cleanser", "instructions": "how to apply", "timing": "first thing"}],
  "eveningRoutine": [{"step": 1, "product": "Cleanser", "instructions": "how to apply", "timing": "before bed"}],
  "ingredients": [{"name": "Niacinamide", "benefit": "evens skin tone", "safeForMelaninRich": true, "caution": "optional warning"}]
}
"overallScore" is an integer from 0 to 100. "priority" is one of "high", "medium" or "low".
Keep every JSON key exactly as shown, in English.`

const systemPromptFR = `Tu es un assistant dermatologique expert, spécialisé dans les peaux riches en mélanine.
Analyse le profil de peau ci-dessous et réponds UNIQUEMENT avec un objet JSON valide, sans aucun autre texte, avec exactement cette structure:
{
  "skinType": "le type de peau identifié",
  "concerns": ["liste des préoccupations identifiées"],
  "overallScore": 75,
  "summary": "une courte évaluation globale",
  "recommendations": [{"title": "Nettoyage doux", "description": "pourquoi et comment", "priority": "high"}],
  "morningRoutine": [{"step": 1, "product": "Nettoyant", "instructions": "comment l'appliquer", "timing": "au réveil"}],
  "eveningRoutine": [{"step": 1, "product": "Nettoyant", "instructions": "comment l'appliquer", "timing": "avant le coucher"}],
  "ingredients": [{"name": "Niacinamide", "benefit": "unifie le teint", "safeForMelaninRich": true, "caution": "avertissement optionnel"}]
}
"overallScore" est un entier de 0 à 100. "priority" vaut "high", "medium" ou "low".
Garde chaque clé JSON exactement comme indiqué, en anglais. Rédige toutes les valeurs en français.`

// promptText holds the per-language strings of the user prompt.
type promptText struct {
	header         string
	skinType       string
	concerns       string
	ageRange       string
	sunExposure    string
	currentRoutine string
	notSpecified   string
	photoNotice    string
}

var promptTextEN = promptText{
	header:         "Analyze this skin profile:",
	skinType:       "Skin type",
	concerns:       "Main concerns",
	ageRange:       "Age range",
	sunExposure:    "Sun exposure",
	currentRoutine: "Current routine",
	notSpecified:   "not specified",
	photoNotice:    "A face photo is attached. Use it to refine the analysis.",
}

var promptTextFR = promptText{
	header:         "Analyse ce profil de peau:",
	skinType:       "Type de peau",
	concerns:       "Préoccupations principales",
	ageRange:       "Tranche d'âge",
	sunExposure:    "Exposition au soleil",
	currentRoutine: "Routine actuelle",
	notSpecified:   "non précisé",
	photoNotice:    "Une photo du visage est jointe. Utilise-la pour affiner l'analyse.",
}

// BuildPrompts renders the system and user prompt for the given profile.
// "fr" selects French; every other language value falls through to English.
func BuildPrompts(profile *ProfileInput, language string, hasPhoto bool) (string, string) {
	system := systemPromptEN
	text := promptTextEN
	if language == "fr" {
		system = systemPromptFR
		text = promptTextFR
	}

	if profile == nil {
		profile = &ProfileInput{}
	}

	concerns := text.notSpecified
	if len(profile.Concerns) > 0 {
		concerns = strings.Join(profile.Concerns, ", ")
	}

	lines := []string{
		text.header,
		"- " + text.skinType + ": " + orPlaceholder(profile.SkinType, text.notSpecified),
		"- " + text.concerns + ": " + concerns,
		"- " + text.ageRange + ": " + orPlaceholder(profile.AgeRange, text.notSpecified),
		"- " + text.sunExposure + ": " + orPlaceholder(profile.SunExposure, text.notSpecified),
		"- " + text.currentRoutine + ": " + orPlaceholder(profile.CurrentRoutine, text.notSpecified),
	}

	if hasPhoto {
		lines = append(lines, "", text.photoNotice)
	}

	return system, strings.Join(lines, "\n")
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
