package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/api"
	"github.com/sfdo-tooling/metadeploy-tui/internal/config"
	"github.com/sfdo-tooling/metadeploy-tui/internal/logging"
	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/search"
	"github.com/sfdo-tooling/metadeploy-tui/internal/steps"
	"github.com/sfdo-tooling/metadeploy-tui/internal/store"
	"github.com/sfdo-tooling/metadeploy-tui/internal/tui/confirm"
	"github.com/sfdo-tooling/metadeploy-tui/internal/tui/logview"
	"github.com/sfdo-tooling/metadeploy-tui/internal/tui/searchview"
	"github.com/sfdo-tooling/metadeploy-tui/internal/tui/stepstable"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
	"github.com/sfdo-tooling/metadeploy-tui/internal/watch"
)

const requestTimeout = 20 * time.Second

type App struct {
	cfg    config.Config
	client *api.Client    // nil when offline
	feed   *watch.JobFile // nil unless following a job file
	store  *store.Store
	logger *logging.Logger

	// Views
	table         stepstable.Model
	logView       logview.Model
	confirmDialog confirm.Model
	searchView    searchview.Model
	engine        *search.Engine

	// Install selection; seeded from the plan until the user changes it.
	selected         model.SelectedSteps
	selectionTouched bool

	// At most one poll tick per resource is in flight.
	jobPollPending       bool
	preflightPollPending bool

	jobID    string
	width    int
	height   int
	status   string
	isError  bool
	showHelp bool
	showLog  bool
}

func NewApp(cfg config.Config, client *api.Client, feed *watch.JobFile, st *store.Store, logger *logging.Logger) App {
	if st == nil {
		st = store.New()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	if feed != nil {
		st.Dispatch(store.SocketConnected{})
	}
	return App{
		cfg:        cfg,
		client:     client,
		feed:       feed,
		store:      st,
		logger:     logger,
		table:      stepstable.New(),
		logView:    logview.New(),
		searchView: searchview.New(),
		engine:     search.New(),
		selected:   model.SelectedSteps{},
		jobID:      cfg.JobID,
		status:     "Loading plan...",
	}
}

func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.client != nil {
		cmds = append(cmds, a.fetchUser(), a.fetchProducts(), a.fetchPlan(), a.fetchOrg())
		if a.jobID != "" {
			cmds = append(cmds, a.fetchJob(a.jobID))
		}
	}
	if a.feed != nil {
		cmds = append(cmds, a.readJobFile(), a.waitForFeed())
	}
	return tea.Batch(cmds...)
}

// --- Data fetching commands ---

func (a App) fetchUser() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := client.GetUser(ctx)
		return ui.UserLoadedMsg{User: u, Err: err}
	}
}

func (a App) fetchProducts() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		products, err := client.ListProducts(ctx)
		return ui.ProductsLoadedMsg{Products: products, Err: err}
	}
}

func (a App) fetchPlan() tea.Cmd {
	client, planID := a.client, a.cfg.PlanID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := client.GetPlan(ctx, planID)
		return ui.PlanLoadedMsg{Plan: p, Err: err}
	}
}

func (a App) fetchPreflight(planID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		pf, err := client.GetPreflight(ctx, planID)
		return ui.PreflightLoadedMsg{PlanID: planID, Preflight: pf, Err: err}
	}
}

func (a App) fetchOrg() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		o, err := client.GetOrg(ctx)
		return ui.OrgLoadedMsg{Org: o, Err: err}
	}
}

func (a App) fetchJob(jobID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		j, err := client.GetJob(ctx, jobID)
		return ui.JobUpdatedMsg{Job: j, Err: err}
	}
}

// scheduleJobRefresh arms the job poll unless a tick is already pending.
func (a *App) scheduleJobRefresh(jobID string) tea.Cmd {
	if a.jobPollPending {
		return nil
	}
	a.jobPollPending = true
	return tea.Tick(a.cfg.PollInterval, func(time.Time) tea.Msg {
		return ui.JobTickMsg{JobID: jobID}
	})
}

func (a *App) schedulePreflightRefresh(planID string) tea.Cmd {
	if a.preflightPollPending {
		return nil
	}
	a.preflightPollPending = true
	return tea.Tick(a.cfg.PollInterval, func(time.Time) tea.Msg {
		return ui.PreflightTickMsg{PlanID: planID}
	})
}

func (a App) readJobFile() tea.Cmd {
	path := a.feed.Path()
	return func() tea.Msg {
		j, err := watch.ReadJob(path)
		return ui.JobUpdatedMsg{Job: j, Err: err}
	}
}

// waitForFeed blocks on the next watcher event. It is re-issued after each
// delivery so the feed keeps flowing into Update.
func (a App) waitForFeed() tea.Cmd {
	events := a.feed.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return ui.FeedClosedMsg{}
		}
		if ev.Err != nil {
			return ui.FeedClosedMsg{Err: ev.Err}
		}
		return ui.JobUpdatedMsg{Job: ev.Job, Feed: true}
	}
}

// --- Action commands ---

func (a App) doCreateJob(planID string, stepIDs []string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		j, err := client.CreateJob(ctx, planID, stepIDs)
		return ui.JobCreatedMsg{Job: j, Err: err}
	}
}

func (a App) doStartPreflight(planID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		pf, err := client.StartPreflight(ctx, planID)
		return ui.PreflightStartedMsg{Preflight: pf, Err: err}
	}
}

func (a App) doSearch(input string) tea.Cmd {
	engine, job := a.engine, a.table.Job()
	plan, _ := a.currentPlan()
	return func() tea.Msg {
		results, err := engine.Search(plan, job, search.ParseQuery(input))
		return ui.SearchDoneMsg{Results: results, Err: err}
	}
}

// --- Store plumbing ---

func (a *App) fail(what string, err error) {
	a.logger.Warn(what, "error", err)
	msg := fmt.Sprintf("%s: %v", what, err)
	a.store.Dispatch(store.ErrorAdded{Message: msg})
	a.status = msg
	a.isError = true
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isError = false
}

func (a App) currentPlan() (model.Plan, bool) {
	return a.store.State().Plan(a.cfg.PlanID)
}

// syncTable pushes the store's current view of the plan into the table.
func (a *App) syncTable() {
	st := a.store.State()
	plan, ok := st.Plan(a.cfg.PlanID)
	if !ok {
		return
	}
	pf := st.Preflight(plan.ID)
	if !a.selectionTouched {
		a.selected = steps.DefaultSelection(plan, pf)
	}
	a.table.SetProps(steps.TableProps{
		User:      st.User,
		Plan:      plan,
		Preflight: pf,
		Selected:  a.selected,
	})
}

// applyJob records a job snapshot and feeds the stored (newest) copy to the
// table and the log view.
func (a *App) applyJob(j *model.Job) tea.Cmd {
	prevStatus := model.JobStatus("")
	if prev := a.table.Job(); prev != nil {
		prevStatus = prev.Status
	}
	st := a.store.Dispatch(store.JobUpdated{Job: j})
	cur := st.Job(j.ID)
	if cur != j {
		a.logger.Debug("dropped stale job snapshot", "job_id", j.ID)
		return nil
	}
	a.jobID = cur.ID
	if _, ok := a.currentPlan(); !ok && a.client == nil {
		a.store.Dispatch(store.PlanLoaded{Plan: planFromJob(a.cfg.PlanID, cur)})
		a.syncTable()
	}
	if cur.Status != prevStatus {
		a.logger.Info("job status", "job_id", cur.ID, "status", cur.Status)
	}
	a.table.SetJob(cur)

	if a.logView.IsOpen() {
		active, _ := steps.ActiveStep(cur)
		id := a.logView.StepID()
		a.logView.Refresh(cur.Result(id), active == id)
	}

	if cur.IsRunning() {
		if active, ok := steps.ActiveStep(cur); ok {
			if s := a.stepByID(active); s != nil {
				a.setStatus(fmt.Sprintf("Running: %s", s.Name))
			}
		} else {
			a.setStatus("Running...")
		}
		if a.client != nil && a.feed == nil {
			return a.scheduleJobRefresh(cur.ID)
		}
		return nil
	}
	if d := cur.Duration(); d > 0 {
		a.setStatus(fmt.Sprintf("Job %s in %s", cur.Status, d.Round(time.Second)))
	} else {
		a.setStatus(fmt.Sprintf("Job %s", cur.Status))
	}
	return nil
}

// planFromJob stands in for the plan when there is no server to ask. Steps
// are named by their IDs.
func planFromJob(planID string, j *model.Job) model.Plan {
	p := model.Plan{ID: planID, Title: planID}
	for _, id := range j.Steps {
		p.Steps = append(p.Steps, model.Step{ID: id, Name: id})
	}
	return p
}

func (a App) stepByID(id string) *model.Step {
	plan, ok := a.currentPlan()
	if !ok {
		return nil
	}
	return plan.StepByID(id)
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle confirm dialog result (arrives after the dialog closes itself)
	if result, ok := msg.(confirm.ResultMsg); ok {
		if result.Confirmed && a.client != nil {
			switch result.Action {
			case confirm.ActionInstall:
				a.setStatus("Starting installation...")
				cmds = append(cmds, a.doCreateJob(result.PlanID, result.StepIDs))
			case confirm.ActionPreflight:
				a.setStatus("Starting preflight...")
				cmds = append(cmds, a.doStartPreflight(result.PlanID))
			}
		}
		return a, tea.Batch(cmds...)
	}

	if a.confirmDialog.IsActive() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			a.confirmDialog, cmd = a.confirmDialog.Update(msg)
			return a, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return a, nil

	case ui.UserLoadedMsg:
		if msg.Err != nil {
			a.fail("Load user", msg.Err)
			return a, nil
		}
		if msg.User == nil {
			a.store.Dispatch(store.UserLoggedOut{})
		} else {
			a.store.Dispatch(store.UserLoaded{User: msg.User})
		}
		a.syncTable()

	case ui.ProductsLoadedMsg:
		if msg.Err != nil {
			a.fail("Load products", msg.Err)
			return a, nil
		}
		a.store.Dispatch(store.ProductsLoaded{Products: msg.Products})

	case ui.PlanLoadedMsg:
		if msg.Err != nil {
			a.fail("Load plan", msg.Err)
			return a, nil
		}
		a.store.Dispatch(store.PlanLoaded{Plan: *msg.Plan})
		a.syncTable()
		a.setStatus(fmt.Sprintf("%d steps", len(msg.Plan.Steps)))
		if msg.Plan.RequiresPreflight && a.client != nil {
			cmds = append(cmds, a.fetchPreflight(msg.Plan.ID))
		}

	case ui.PreflightLoadedMsg:
		if msg.Err != nil {
			a.fail("Load preflight", msg.Err)
			return a, nil
		}
		a.store.Dispatch(store.PreflightLoaded{PlanID: msg.PlanID, Preflight: msg.Preflight})
		a.syncTable()
		if msg.Preflight != nil && msg.Preflight.Status == model.PreflightStarted {
			a.setStatus("Preflight running...")
			cmds = append(cmds, a.schedulePreflightRefresh(msg.PlanID))
		} else if msg.Preflight != nil && msg.Preflight.IsReady {
			a.setStatus("Preflight complete, ready to install")
		}

	case ui.PreflightTickMsg:
		a.preflightPollPending = false
		if a.client != nil {
			cmds = append(cmds, a.fetchPreflight(msg.PlanID))
		}

	case ui.PreflightStartedMsg:
		if msg.Err != nil {
			a.fail("Start preflight", msg.Err)
			return a, nil
		}
		a.store.Dispatch(store.PreflightLoaded{PlanID: msg.Preflight.Plan, Preflight: msg.Preflight})
		a.syncTable()
		cmds = append(cmds, a.schedulePreflightRefresh(msg.Preflight.Plan))

	case ui.OrgLoadedMsg:
		if msg.Err != nil {
			a.fail("Load org", msg.Err)
			return a, nil
		}
		a.store.Dispatch(store.OrgLoaded{Org: msg.Org})
		// follow a job already running against the org
		if a.jobID == "" && a.feed == nil && msg.Org != nil && msg.Org.CurrentJob != "" {
			a.jobID = msg.Org.CurrentJob
			cmds = append(cmds, a.fetchJob(a.jobID))
		}

	case ui.JobTickMsg:
		a.jobPollPending = false
		// the tick may predate a newly created job; poll whatever is current
		if a.client != nil && a.jobID != "" {
			cmds = append(cmds, a.fetchJob(a.jobID))
		}

	case ui.JobUpdatedMsg:
		if msg.Err != nil {
			a.fail("Load job", msg.Err)
			if a.jobID != "" && a.client != nil {
				cmds = append(cmds, a.scheduleJobRefresh(a.jobID))
			}
		} else if msg.Job != nil {
			cmds = append(cmds, a.applyJob(msg.Job))
		}
		if msg.Feed {
			if !a.store.State().Socket {
				a.store.Dispatch(store.SocketConnected{})
			}
			cmds = append(cmds, a.waitForFeed())
		}

	case ui.FeedClosedMsg:
		a.store.Dispatch(store.SocketDisconnected{})
		if msg.Err != nil {
			a.fail("Job feed", msg.Err)
			// a watcher error does not end the feed
			cmds = append(cmds, a.waitForFeed())
		} else {
			a.setStatus("Job feed closed")
		}

	case ui.JobCreatedMsg:
		if msg.Err != nil {
			a.fail("Start installation", msg.Err)
			return a, nil
		}
		a.logger.Info("job created", "job_id", msg.Job.ID, "steps", len(msg.Job.Steps))
		cmds = append(cmds, a.applyJob(msg.Job))

	case ui.StepsChangedMsg:
		a.selectionTouched = true
		next := make(model.SelectedSteps, len(a.selected)+1)
		for id, on := range a.selected {
			next[id] = on
		}
		next[msg.StepID] = msg.Selected
		a.selected = next
		a.syncTable()

	case searchview.SubmitMsg:
		cmds = append(cmds, a.doSearch(msg.Input))

	case ui.SearchDoneMsg:
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil && msg.Results != nil {
			a.setStatus(fmt.Sprintf("%d matches", msg.Results.TotalCount))
		}

	case searchview.OpenMatchMsg:
		job := a.table.Job()
		s := a.stepByID(msg.Match.StepID)
		if job == nil || s == nil {
			return a, nil
		}
		active, _ := steps.ActiveStep(job)
		a.logView.Open(*s, job.Result(s.ID), active == s.ID)
		a.logView.ShowMatch(msg.Query, msg.Match.Line)
		a.showLog = true

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if key.Matches(msg, ui.Keys.Quit) && a.showLog && !a.logView.IsSearching() {
		return a, tea.Quit
	}
	if key.Matches(msg, ui.Keys.Quit) && !a.showLog && !a.searchView.IsActive() {
		return a, tea.Quit
	}

	if a.showLog {
		if key.Matches(msg, ui.Keys.Back) && !a.logView.IsSearching() {
			a.showLog = false
			a.logView.Close()
			return a, nil
		}
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd
	}

	if a.searchView.IsActive() {
		if key.Matches(msg, ui.Keys.Quit) && !a.searchView.IsInputMode() {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, ui.Keys.ViewLog):
		job := a.table.Job()
		s := a.table.SelectedStep()
		if job == nil || s == nil {
			return a, nil
		}
		active, _ := steps.ActiveStep(job)
		a.logView.Open(*s, job.Result(s.ID), active == s.ID)
		a.showLog = true
		return a, nil

	case key.Matches(msg, ui.Keys.Search):
		if a.table.Job() == nil {
			return a, nil
		}
		a.searchView.Activate()
		return a, textinput.Blink

	case key.Matches(msg, ui.Keys.Install):
		return a, a.confirmInstall()

	case key.Matches(msg, ui.Keys.Preflight):
		plan, ok := a.currentPlan()
		if ok && plan.RequiresPreflight && a.client != nil && a.table.Job() == nil {
			a.confirmDialog = confirm.NewPreflight(plan.Title, plan.ID, plan.PreflightMessage)
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Refresh):
		if a.client == nil {
			if a.feed == nil {
				return a, nil
			}
			return a, a.readJobFile()
		}
		cmds := []tea.Cmd{a.fetchUser(), a.fetchProducts(), a.fetchPlan(), a.fetchOrg()}
		if a.jobID != "" {
			cmds = append(cmds, a.fetchJob(a.jobID))
		}
		a.store.Dispatch(store.ErrorsCleared{})
		a.setStatus("Refreshing...")
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a *App) confirmInstall() tea.Cmd {
	plan, ok := a.currentPlan()
	if !ok || a.client == nil || a.table.Job() != nil {
		return nil
	}
	if !a.table.Layout().SelectionEnabled {
		a.setStatus("Log in and run preflight before installing")
		return nil
	}
	install := model.SelectedSteps{}
	var names []string
	for _, s := range plan.Steps {
		if steps.IsSelected(s, a.store.State().Preflight(plan.ID), a.selected) {
			install[s.ID] = true
			names = append(names, s.Name)
		}
	}
	ids := install.IDs()
	if len(ids) == 0 {
		a.setStatus("No steps selected")
		return nil
	}
	org := ""
	if u := a.store.State().User; u.HasValidToken() {
		org = *u.ValidTokenFor
	}
	a.confirmDialog = confirm.NewInstall(plan.Title, plan.ID, names, ids, org)
	return nil
}

func (a *App) propagateSize() {
	// header(1) + status(1) + pane border(2)
	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}
	w := a.width - 4
	if w < 1 {
		w = 1
	}
	a.table, _ = a.table.Update(tea.WindowSizeMsg{Width: w, Height: contentH})
	a.logView, _ = a.logView.Update(tea.WindowSizeMsg{Width: w, Height: contentH})
	a.searchView, _ = a.searchView.Update(tea.WindowSizeMsg{Width: w, Height: contentH})
}

// --- View ---

func (a App) feedState() string {
	switch {
	case a.feed == nil && a.table.Job().IsRunning():
		return fmt.Sprintf("polling every %s", a.cfg.PollInterval)
	case a.feed == nil:
		return ""
	case a.store.State().Socket:
		return "watching " + a.feed.Path()
	default:
		return "waiting for " + a.feed.Path()
	}
}

func (a App) View() string {
	st := a.store.State()
	title := a.cfg.PlanID
	if plan, ok := st.Plan(a.cfg.PlanID); ok && plan.Title != "" {
		title = plan.Title
	}
	if prod := st.ProductOf(a.cfg.PlanID); prod != nil {
		title = prod.Title + " / " + title
	}
	header := RenderHeader(title, st.User, a.feedState(), a.width)

	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}
	pane := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)

	var content string
	switch {
	case a.showHelp:
		content = pane.Render(a.renderHelp())
	case a.confirmDialog.IsActive():
		content = a.confirmDialog.View()
	case a.showLog:
		content = pane.Render(a.logView.View())
	case a.searchView.IsActive():
		content = pane.Render(a.searchView.View())
	default:
		content = pane.Render(a.table.View())
	}

	statusBar := RenderStatusBar(a.status, a.isError, a.contextHints(), a.width)

	// header(1) + statusbar(1)
	if maxLines := a.height - 2; maxLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxLines {
			content = strings.Join(lines[:maxLines], "\n")
		}
	}
	return header + "\n" + content + "\n" + statusBar
}

func (a App) contextHints() string {
	if a.showLog {
		return "esc:back  /:search  q:quit"
	}
	if a.searchView.IsActive() {
		return "enter:open  esc:close"
	}
	var parts []string
	for _, b := range a.table.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	parts = append(parts, "?:help", "q:quit")
	return strings.Join(parts, "  ")
}

func (a App) renderHelp() string {
	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("r", "Refresh"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Job") + "\n\n")
	b.WriteString(row("enter", "Expand / collapse step log"))
	b.WriteString(row("l", "Show logs (follow running step) / hide all"))
	b.WriteString(row("v", "Open step log full screen"))
	b.WriteString(row("/", "Search all step logs"))

	b.WriteString("\n" + bold.Render("  Install") + "\n\n")
	b.WriteString(row("space / x", "Select step for install"))
	b.WriteString(row("P", "Run preflight"))
	b.WriteString(row("I", "Install selected steps"))

	b.WriteString("\n" + bold.Render("  Log Viewer") + "\n\n")
	b.WriteString(row("/", "Search in log"))
	b.WriteString(row("n / N", "Next / previous match"))
	b.WriteString(row("g / G", "Go to top / bottom"))
	b.WriteString(row("esc", "Exit log view"))

	b.WriteString("\n" + ui.StyleMuted.Render("  Press any key to close") + "\n")
	return b.String()
}
