package search

import (
	"testing"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

func testJob() (model.Plan, *model.Job) {
	plan := model.Plan{
		ID: "plan-1",
		Steps: []model.Step{
			{ID: "s1", Name: "Install base package"},
			{ID: "s2", Name: "Deploy metadata"},
			{ID: "s3", Name: "Load sample data"},
		},
	}
	job := &model.Job{
		ID:    "job-1",
		Steps: []string{"s1", "s2", "s3"},
		Results: map[string]model.StepResult{
			"s1": {Status: model.ResultOK, Logs: "line 1: installing\nline 2: error: retrying\nline 3: done"},
			"s2": {Status: model.ResultError, Logs: "line 1: deploying\nline 2: Error: INVALID_FIELD\nline 3: aborted"},
			"s3": {Status: model.ResultSkip, Message: "skipped: prior error"},
		},
	}
	return plan, job
}

func TestSearchPlainText(t *testing.T) {
	plan, job := testJob()
	results, err := New().Search(plan, job, model.SearchQuery{Pattern: "error", CaseSensitive: true})
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", results.TotalCount)
	}
	if len(results.StepCounts) != 2 {
		t.Errorf("matched %d steps, want 2", len(results.StepCounts))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	plan, job := testJob()
	results, err := New().Search(plan, job, model.SearchQuery{Pattern: "error"})
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", results.TotalCount)
	}
}

func TestSearchKeepsJobOrderAndNames(t *testing.T) {
	plan, job := testJob()
	results, _ := New().Search(plan, job, model.SearchQuery{Pattern: "line 1"})
	if len(results.Matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(results.Matches))
	}
	first := results.Matches[0]
	if first.StepID != "s1" || first.StepName != "Install base package" || first.Line != 1 {
		t.Errorf("first match = %+v", first)
	}
	if results.Matches[1].StepID != "s2" {
		t.Errorf("second match step = %q, want s2", results.Matches[1].StepID)
	}
}

func TestSearchRegex(t *testing.T) {
	plan, job := testJob()
	results, err := New().Search(plan, job, model.SearchQuery{
		Pattern:       `[Ee]rror:\s+[A-Z_]+`,
		IsRegex:       true,
		CaseSensitive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", results.TotalCount)
	}
}

func TestSearchInvalidRegex(t *testing.T) {
	plan, job := testJob()
	if _, err := New().Search(plan, job, model.SearchQuery{Pattern: "(", IsRegex: true}); err == nil {
		t.Error("expected error for invalid regex")
	}
}

func TestSearchFailedOnly(t *testing.T) {
	plan, job := testJob()
	results, _ := New().Search(plan, job, model.SearchQuery{Pattern: "line", FailedOnly: true})
	if results.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", results.TotalCount)
	}
	if _, ok := results.StepCounts["s1"]; ok {
		t.Error("should not have matched non-failed step s1")
	}
}

func TestSearchFallsBackToMessage(t *testing.T) {
	plan, job := testJob()
	results, _ := New().Search(plan, job, model.SearchQuery{Pattern: "skipped"})
	if results.StepCounts["s3"] != 1 {
		t.Errorf("StepCounts = %v, want s3 matched once", results.StepCounts)
	}
}

func TestSearchNilJob(t *testing.T) {
	results, err := New().Search(model.Plan{}, nil, model.SearchQuery{Pattern: "x"})
	if err != nil || results.TotalCount != 0 {
		t.Errorf("got %+v, %v", results, err)
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		input string
		want  model.SearchQuery
	}{
		{"error", model.SearchQuery{Pattern: "error"}},
		{"Error", model.SearchQuery{Pattern: "Error", CaseSensitive: true}},
		{"/err(or)?/", model.SearchQuery{Pattern: "err(or)?", IsRegex: true}},
		{"!timeout", model.SearchQuery{Pattern: "timeout", FailedOnly: true}},
		{"/", model.SearchQuery{Pattern: "/"}},
	}
	for _, tt := range tests {
		if got := ParseQuery(tt.input); got != tt.want {
			t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}
