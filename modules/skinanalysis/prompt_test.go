package skinanalysis

import (
	"strings"
	"testing"
)

func TestBuildPromptsPlaceholders(t *testing.T) {
	tests := []struct {
		name        string
		language    string
		placeholder string
	}{
		{"english placeholders", "en", "not specified"},
		{"french placeholders", "fr", "non précisé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, user := BuildPrompts(&ProfileInput{}, tt.language, false)

			if count := strings.Count(user, tt.placeholder); count != 5 {
				t.Errorf("placeholder %q appears %d times, want 5\nprompt:\n%s", tt.placeholder, count, user)
			}
		})
	}
}

func TestBuildPromptsProfileValues(t *testing.T) {
	profile := &ProfileInput{
		SkinType:       "combination",
		Concerns:       []string{"hyperpigmentation", "dryness"},
		AgeRange:       "25-34",
		SunExposure:    "daily",
		CurrentRoutine: "cleanser and moisturizer",
	}

	_, user := BuildPrompts(profile, "en", false)

	for _, want := range []string{
		"combination",
		"hyperpigmentation, dryness",
		"25-34",
		"daily",
		"cleanser and moisturizer",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, user)
		}
	}
	if strings.Contains(user, "not specified") {
		t.Errorf("full profile should not leave placeholders\nprompt:\n%s", user)
	}
}

func TestBuildPromptsPhotoNotice(t *testing.T) {
	_, withPhoto := BuildPrompts(&ProfileInput{}, "en", true)
	_, withoutPhoto := BuildPrompts(&ProfileInput{}, "en", false)

	notice := "A face photo is attached"
	if !strings.Contains(withPhoto, notice) {
		t.Errorf("photo notice missing when hasPhoto is true")
	}
	if strings.Contains(withoutPhoto, notice) {
		t.Errorf("photo notice present when hasPhoto is false")
	}

	_, frPhoto := BuildPrompts(&ProfileInput{}, "fr", true)
	if !strings.Contains(frPhoto, "Une photo du visage est jointe") {
		t.Errorf("french photo notice missing")
	}
}

func TestBuildPromptsUnknownLanguageFallsBackToEnglish(t *testing.T) {
	systemDE, userDE := BuildPrompts(&ProfileInput{SkinType: "oily"}, "de", false)
	systemEN, userEN := BuildPrompts(&ProfileInput{SkinType: "oily"}, "en", false)

	if systemDE != systemEN || userDE != userEN {
		t.Errorf("unknown language should render identically to english")
	}
}

func TestBuildPromptsNilProfile(t *testing.T) {
	_, user := BuildPrompts(nil, "en", false)
	if !strings.Contains(user, "not specified") {
		t.Errorf("nil profile should render placeholders\nprompt:\n%s", user)
	}
}

func TestSystemPromptKeysStayEnglish(t *testing.T) {
	for _, system := range []string{systemPromptEN, systemPromptFR} {
		for _, key := range []string{`"skinType"`, `"concerns"`, `"overallScore"`, `"summary"`, `"recommendations"`, `"morningRoutine"`, `"eveningRoutine"`, `"ingredients"`} {
			if !strings.Contains(system, key) {
				t.Errorf("system prompt missing key %s", key)
			}
		}
	}
}
