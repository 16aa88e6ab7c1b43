package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

func job(status model.JobStatus, ids []string, results map[string]model.StepResult) *model.Job {
	return &model.Job{ID: "job-1", Status: status, Steps: ids, Results: results}
}

func TestActiveStep(t *testing.T) {
	tests := []struct {
		name   string
		job    *model.Job
		want   string
		wantOK bool
	}{
		{name: "no job", job: nil},
		{
			name: "not running",
			job:  job(model.JobStatusComplete, []string{"s1", "s2"}, nil),
		},
		{
			name:   "first unreported step",
			job:    job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}}),
			want:   "s2",
			wantOK: true,
		},
		{
			name:   "missing results read as unfinished",
			job:    job(model.JobStatusStarted, []string{"s1", "s2"}, nil),
			want:   "s1",
			wantOK: true,
		},
		{
			name:   "result without status is unfinished",
			job:    job(model.JobStatusStarted, []string{"s1"}, map[string]model.StepResult{"s1": {Logs: "working"}}),
			want:   "s1",
			wantOK: true,
		},
		{
			name: "all reported",
			job: job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{
				"s1": {Status: model.ResultOK},
				"s2": {Status: model.ResultError},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActiveStep(tt.job)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasLogs(t *testing.T) {
	assert.False(t, HasLogs(nil))
	assert.False(t, HasLogs(job(model.JobStatusStarted, []string{"s1"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})))
	assert.True(t, HasLogs(job(model.JobStatusComplete, []string{"s1", "s2"}, map[string]model.StepResult{
		"s2": {Status: model.ResultOK, Logs: "Deploying..."},
	})))
}

func TestWithoutJobNothingHappens(t *testing.T) {
	e := New()

	_, ok := ActiveStep(nil)
	assert.False(t, ok)
	assert.False(t, HasLogs(nil))

	for _, hide := range []bool{true, false} {
		got, changed := e.ToggleAllLogs(hide, nil)
		assert.False(t, changed)
		assert.Equal(t, e, got)
	}

	got, changed := e.OnJobUpdate(job(model.JobStatusStarted, []string{"s1"}, nil), nil)
	assert.False(t, changed)
	assert.Equal(t, e, got)
}

func TestOnJobUpdateSameJobIsNoop(t *testing.T) {
	j := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})
	states := []Expansion{
		New(),
		{ShowLogs: true, Expanded: NewPanelSet("s2")},
		{ShowLogs: false, Expanded: NewPanelSet("s1", "s2")},
	}
	for _, e := range states {
		got, changed := e.OnJobUpdate(j, j)
		assert.False(t, changed)
		assert.True(t, got.equal(e))
	}
}

func TestOnJobUpdateMovesPanelToActiveStep(t *testing.T) {
	prev := job(model.JobStatusStarted, []string{"s1", "s2"}, nil)
	curr := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})
	e := Expansion{ShowLogs: true, Expanded: NewPanelSet("s1")}

	got, changed := e.OnJobUpdate(prev, curr)

	require.True(t, changed)
	assert.Equal(t, []string{"s2"}, got.Expanded.IDs())
	assert.True(t, got.ShowLogs)
	// the receiver is left untouched
	assert.Equal(t, []string{"s1"}, e.Expanded.IDs())
}

func TestOnJobUpdateStatusChangeDisablesShowLogs(t *testing.T) {
	prev := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})
	curr := job(model.JobStatusComplete, []string{"s1", "s2"}, map[string]model.StepResult{
		"s1": {Status: model.ResultOK},
		"s2": {Status: model.ResultOK},
	})
	e := Expansion{ShowLogs: true, Expanded: NewPanelSet("s2")}

	got, changed := e.OnJobUpdate(prev, curr)

	require.True(t, changed)
	assert.False(t, got.ShowLogs)
	// the running step went away in the same update, so its panel collapses
	assert.Equal(t, 0, got.Expanded.Len())
}

func TestOnJobUpdateFirstArrivalStillExpands(t *testing.T) {
	// prev is absent, so the status counts as changed and ShowLogs is
	// cleared, yet the panel adjustment still uses the earlier ShowLogs.
	curr := job(model.JobStatusStarted, []string{"s1", "s2"}, nil)
	e := Expansion{ShowLogs: true, Expanded: NewPanelSet()}

	got, changed := e.OnJobUpdate(nil, curr)

	require.True(t, changed)
	assert.False(t, got.ShowLogs)
	assert.Equal(t, []string{"s1"}, got.Expanded.IDs())
}

func TestOnJobUpdateIgnoresActiveChangeWithoutShowLogs(t *testing.T) {
	prev := job(model.JobStatusStarted, []string{"s1", "s2"}, nil)
	curr := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})
	e := Expansion{Expanded: NewPanelSet("s1")}

	got, changed := e.OnJobUpdate(prev, curr)

	assert.False(t, changed)
	assert.Equal(t, []string{"s1"}, got.Expanded.IDs())
}

func TestTogglePanel(t *testing.T) {
	running := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})

	t.Run("collapsing the active step disables auto-expand", func(t *testing.T) {
		e := Expansion{ShowLogs: true, Expanded: NewPanelSet("s2")}
		got, changed := e.TogglePanel("s2", running)
		require.True(t, changed)
		assert.False(t, got.Expanded.Has("s2"))
		assert.False(t, got.ShowLogs)
	})

	t.Run("collapsing another step keeps auto-expand", func(t *testing.T) {
		e := Expansion{ShowLogs: true, Expanded: NewPanelSet("s1", "s2")}
		got, changed := e.TogglePanel("s1", running)
		require.True(t, changed)
		assert.Equal(t, []string{"s2"}, got.Expanded.IDs())
		assert.True(t, got.ShowLogs)
	})

	t.Run("expanding leaves ShowLogs alone", func(t *testing.T) {
		e := Expansion{ShowLogs: true, Expanded: NewPanelSet()}
		got, changed := e.TogglePanel("s1", running)
		require.True(t, changed)
		assert.True(t, got.Expanded.Has("s1"))
		assert.True(t, got.ShowLogs)
	})

	t.Run("works without a job", func(t *testing.T) {
		got, changed := New().TogglePanel("s1", nil)
		require.True(t, changed)
		assert.True(t, got.Expanded.Has("s1"))
	})
}

func TestToggleAllLogs(t *testing.T) {
	t.Run("hide clears everything", func(t *testing.T) {
		states := []Expansion{
			New(),
			{ShowLogs: true, Expanded: NewPanelSet("s1")},
			{Expanded: NewPanelSet("s1", "s2", "s3")},
		}
		j := job(model.JobStatusComplete, []string{"s1", "s2", "s3"}, nil)
		for _, e := range states {
			got, _ := e.ToggleAllLogs(true, j)
			assert.Equal(t, 0, got.Expanded.Len())
			assert.False(t, got.ShowLogs)
		}
	})

	t.Run("running job follows the active step", func(t *testing.T) {
		j := job(model.JobStatusStarted, []string{"s1", "s2"}, map[string]model.StepResult{"s1": {Status: model.ResultOK}})
		e := Expansion{Expanded: NewPanelSet("s1")}
		got, changed := e.ToggleAllLogs(false, j)
		require.True(t, changed)
		assert.True(t, got.ShowLogs)
		assert.Equal(t, []string{"s1", "s2"}, got.Expanded.IDs())
	})

	t.Run("finished job expands every step", func(t *testing.T) {
		j := job(model.JobStatusComplete, []string{"s1", "s2", "s3"}, nil)
		got, changed := New().ToggleAllLogs(false, j)
		require.True(t, changed)
		assert.Equal(t, []string{"s1", "s2", "s3"}, got.Expanded.IDs())
		assert.False(t, got.ShowLogs)
	})
}

func TestPanelSetCopyOnWrite(t *testing.T) {
	var zero PanelSet
	assert.False(t, zero.Has("s1"))
	assert.Equal(t, 0, zero.Len())

	a := NewPanelSet("s1")
	b := a.With("s2")
	c := b.Without("s1")

	assert.Equal(t, []string{"s1"}, a.IDs())
	assert.Equal(t, []string{"s1", "s2"}, b.IDs())
	assert.Equal(t, []string{"s2"}, c.IDs())
	assert.True(t, NewPanelSet("x", "y").Equal(NewPanelSet("y", "x")))
	assert.False(t, a.Equal(b))
}
