package model

// SearchQuery describes a search across every step log of a job.
type SearchQuery struct {
	Pattern       string
	IsRegex       bool
	CaseSensitive bool
	FailedOnly    bool // only steps whose result is an error
}

type SearchMatch struct {
	StepID   string
	StepName string
	Line     int // 1-based
	Content  string
}

type SearchResults struct {
	Query      SearchQuery
	Matches    []SearchMatch
	StepCounts map[string]int
	TotalCount int
}
