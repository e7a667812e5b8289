package photoanalysis

// maxImageBase64Length caps the encoded photo size. Requests above it are
// rejected with 413 before any model call.
const maxImageBase64Length = 8_000_000

// PhotoAnalysisRequest is the /analyzePhoto request body. ImageBase64 accepts
// either a data-URL or a bare base64 string.
type PhotoAnalysisRequest struct {
	ImageBase64 string `json:"imageBase64"`
	Prompt      string `json:"prompt,omitempty"`
	Lang        string `json:"lang,omitempty"`
}

// PhotoAnalysisResult wraps the model's free-text output.
type PhotoAnalysisResult struct {
	OK           bool   `json:"ok"`
	AnalysisText string `json:"analysisText"`
}
