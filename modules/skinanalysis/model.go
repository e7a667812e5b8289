package skinanalysis

// ProfileInput carries the user-submitted skin profile. Every field is
// optional; absent fields are rendered as "not specified" in the prompt.
type ProfileInput struct {
	SkinType       string   `json:"skinType,omitempty"`
	Concerns       []string `json:"concerns,omitempty"`
	AgeRange       string   `json:"ageRange,omitempty"`
	SunExposure    string   `json:"sunExposure,omitempty"`
	CurrentRoutine string   `json:"currentRoutine,omitempty"`
}

// AnalysisRequest is the /skinAnalysis request body.
type AnalysisRequest struct {
	Profile   *ProfileInput `json:"profile"`
	Language  string        `json:"language,omitempty"`
	PhotoData string        `json:"photoData,omitempty"`
}

// AnalysisResult documents the JSON shape the model is instructed to return.
// The server relays the decoded object verbatim and never validates it
// against this shape; consumers must tolerate missing or extra fields.
type AnalysisResult struct {
	SkinType        string           `json:"skinType"`
	Concerns        []string         `json:"concerns"`
	OverallScore    int              `json:"overallScore"`
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	MorningRoutine  []RoutineStep    `json:"morningRoutine"`
	EveningRoutine  []RoutineStep    `json:"eveningRoutine"`
	Ingredients     []Ingredient     `json:"ingredients"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high | medium | low
}

type RoutineStep struct {
	Step         int    `json:"step"`
	Product      string `json:"product"`
	Instructions string `json:"instructions"`
	Timing       string `json:"timing"`
}

type Ingredient struct {
	Name               string `json:"name"`
	Benefit            string `json:"benefit"`
	SafeForMelaninRich bool   `json:"safeForMelaninRich"`
	Caution            string `json:"caution,omitempty"`
}
