package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Search scans the logs of every step in job, in job order. Step names are
// taken from plan when it knows the step.
func (e *Engine) Search(plan model.Plan, job *model.Job, query model.SearchQuery) (*model.SearchResults, error) {
	results := &model.SearchResults{
		Query:      query,
		StepCounts: make(map[string]int),
	}
	if job == nil || query.Pattern == "" {
		return results, nil
	}

	matcher, err := buildMatcher(query)
	if err != nil {
		return results, err
	}

	for _, id := range job.Steps {
		res := job.Result(id)
		if query.FailedOnly && res.Status != model.ResultError {
			continue
		}
		content := res.Logs
		if content == "" {
			content = res.Message
		}
		if content == "" {
			continue
		}

		name := id
		if s := plan.StepByID(id); s != nil {
			name = s.Name
		}
		for i, line := range strings.Split(content, "\n") {
			if matcher(line) {
				results.Matches = append(results.Matches, model.SearchMatch{
					StepID:   id,
					StepName: name,
					Line:     i + 1,
					Content:  line,
				})
				results.StepCounts[id]++
				results.TotalCount++
			}
		}
	}

	return results, nil
}

func buildMatcher(query model.SearchQuery) (func(string) bool, error) {
	if query.IsRegex {
		flags := ""
		if !query.CaseSensitive {
			flags = "(?i)"
		}
		re, err := regexp.Compile(flags + query.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		return func(line string) bool { return re.MatchString(line) }, nil
	}

	pattern := query.Pattern
	if !query.CaseSensitive {
		pattern = strings.ToLower(pattern)
	}
	return func(line string) bool {
		if !query.CaseSensitive {
			line = strings.ToLower(line)
		}
		return strings.Contains(line, pattern)
	}, nil
}

// ParseQuery turns search input into a query. Input wrapped in slashes is a
// regex, a leading "!" limits the search to failed steps, and any uppercase
// letter makes the search case sensitive.
func ParseQuery(input string) model.SearchQuery {
	var q model.SearchQuery
	if strings.HasPrefix(input, "!") {
		q.FailedOnly = true
		input = input[1:]
	}
	if len(input) >= 2 && strings.HasPrefix(input, "/") && strings.HasSuffix(input, "/") {
		q.IsRegex = true
		input = input[1 : len(input)-1]
	}
	q.Pattern = input
	q.CaseSensitive = strings.ToLower(input) != input
	return q
}
