package domain

// NarrativeSections holds the generated text blocks of the weekly report.
// Each field is a free-form blob, typically bullet lines separated by
// newlines; the structure is not validated beyond being non-empty.
type NarrativeSections struct {
	ExecutiveSummary string `json:"executiveSummary"`
	VendorFollowUps  string `json:"vendorFollowUps"`
	RisksAndIssues   string `json:"risksAndIssues"`
	ActionItems      string `json:"actionItems"`
	Conclusion       string `json:"conclusion"`
}

// NarrativeSource tags a narrative result as genuine model output or the
// canned fallback, so callers can tell degraded output apart by shape.
type NarrativeSource string

const (
	SourceGenerated NarrativeSource = "generated"
	SourceFallback  NarrativeSource = "fallback"
)

// NarrativeResult is the tagged outcome of a generation attempt. Reason is
// set only for fallback results.
type NarrativeResult struct {
	Sections NarrativeSections `json:"sections"`
	Source   NarrativeSource   `json:"source"`
	Reason   string            `json:"reason,omitempty"`
}

// Complete reports whether all five sections carry text.
func (s NarrativeSections) Complete() bool {
	return s.ExecutiveSummary != "" &&
		s.VendorFollowUps != "" &&
		s.RisksAndIssues != "" &&
		s.ActionItems != "" &&
		s.Conclusion != ""
}

// FallbackNarrative is the canned payload substituted when generation fails.
func FallbackNarrative(reason string) NarrativeResult {
	return NarrativeResult{
		Sections: NarrativeSections{
			ExecutiveSummary: "• Unable to generate summary at this time.\n• Please check API configuration.",
			VendorFollowUps:  "• Review delayed POs manually.",
			RisksAndIssues:   "• Data processing error encountered.",
			ActionItems:      "• Retry report generation.",
			Conclusion:       "System maintenance required.",
		},
		Source: SourceFallback,
		Reason: reason,
	}
}
