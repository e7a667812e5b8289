package client

import (
	"context"
	"errors"
	"log"

	"skin-coach-server/modules/common/fallback"
	"skin-coach-server/modules/skinanalysis"
)

const (
	defaultCheckInScore   = 75
	defaultCheckInSummary = "Analysis complete."
)

// CheckInPhotos holds the photos captured during a daily check-in. Any of the
// three angles may be empty.
type CheckInPhotos struct {
	Front        string `json:"front"`
	LeftProfile  string `json:"left_profile"`
	RightProfile string `json:"right_profile"`
}

// CheckInAnalysis is the condensed check-in record derived from a full
// analysis response.
type CheckInAnalysis struct {
	OverallScore    int             `json:"overall_score"`
	Summary         string          `json:"summary"`
	DerivedFeatures DerivedFeatures `json:"derived_features"`
}

type DerivedFeatures struct {
	DetectedConcerns []string `json:"detected_concerns"`
	AINotes          string   `json:"ai_notes"`
}

// AnalyzeCheckInPhoto runs a check-in analysis on the best available photo,
// preferring front over left over right profile. It fails without touching
// the network when no photo was captured.
func (c *Client) AnalyzeCheckInPhoto(ctx context.Context, photos CheckInPhotos) (*CheckInAnalysis, error) {
	photo := photos.Front
	if photo == "" {
		photo = photos.LeftProfile
	}
	if photo == "" {
		photo = photos.RightProfile
	}
	if photo == "" {
		return nil, errors.New("No photo available for analysis")
	}

	result, err := c.AnalyzeSkin(ctx, &skinanalysis.AnalysisRequest{
		Profile:   &skinanalysis.ProfileInput{},
		PhotoData: photo,
	})
	if err != nil {
		return nil, err
	}

	summary := fallback.SafeString(result["summary"], defaultCheckInSummary)

	analysis := &CheckInAnalysis{
		OverallScore: fallback.SafeInt(result["overallScore"], defaultCheckInScore),
		Summary:      summary,
		DerivedFeatures: DerivedFeatures{
			DetectedConcerns: fallback.SafeStringSlice(result["concerns"]),
			AINotes:          summary,
		},
	}

	log.Printf("✅ [Client] Check-in analysis complete (score: %d, concerns: %d)", analysis.OverallScore, len(analysis.DerivedFeatures.DetectedConcerns))
	return analysis, nil
}
