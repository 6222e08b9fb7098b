// Package usajobs implements the USAJobs Search API client, response parsing,
// and result merging for the extraction stage of the pipeline.
package usajobs

// SearchResponse is the top-level JSON document returned by the Search endpoint
type SearchResponse struct {
	SearchResult SearchResult `json:"SearchResult"`
}

// SearchResult holds one page of matched positions plus the total match count
type SearchResult struct {
	SearchResultCount    int                `json:"SearchResultCount"`
	SearchResultCountAll int                `json:"SearchResultCountAll"`
	SearchResultItems    []SearchResultItem `json:"SearchResultItems"`
}

// SearchResultItem wraps a single matched position descriptor
type SearchResultItem struct {
	MatchedObjectDescriptor MatchedObjectDescriptor `json:"MatchedObjectDescriptor"`
}

// MatchedObjectDescriptor carries the position fields the pipeline extracts
type MatchedObjectDescriptor struct {
	PositionID           string         `json:"PositionID"`
	PositionTitle        string         `json:"PositionTitle"`
	OrganizationName     string         `json:"OrganizationName"`
	PositionRemuneration []Remuneration `json:"PositionRemuneration"`
	ApplicationCloseDate string         `json:"ApplicationCloseDate"`
	UserArea             UserArea       `json:"UserArea"`
}

// Remuneration is one salary range entry; the pipeline uses the first entry only
type Remuneration struct {
	MinimumRange     string `json:"MinimumRange"`
	MaximumRange     string `json:"MaximumRange"`
	RateIntervalCode string `json:"RateIntervalCode"`
}

// UserArea nests agency-specific details
type UserArea struct {
	Details Details `json:"Details"`
}

// Details nests the eligibility category
type Details struct {
	WhoMayApply WhoMayApply `json:"WhoMayApply"`
}

// WhoMayApply names the eligibility category for a position
type WhoMayApply struct {
	Name string `json:"Name"`
}

// Position is a flattened job posting, keyed by PositionID. It is the only
// entity the pipeline persists.
type Position struct {
	PositionID           string
	Title                string
	OrganizationName     string
	RemunerationMin      float64
	RemunerationMax      float64
	RemunerationRate     string
	WhoMayApply          string
	ApplicationCloseDate string
}
