package store

import "github.com/sfdo-tooling/metadeploy-tui/internal/model"

// maxErrors bounds the error list kept for the status bar.
const maxErrors = 20

// Reduce applies an action to every slice of the state.
func Reduce(s State, a Action) State {
	return State{
		User:       reduceUser(s.User, a),
		Products:   reduceProducts(s.Products, a),
		Preflights: reducePreflights(s.Preflights, a),
		Jobs:       reduceJobs(s.Jobs, a),
		Org:        reduceOrg(s.Org, a),
		Socket:     reduceSocket(s.Socket, a),
		Errors:     reduceErrors(s.Errors, a),
	}
}

func reduceUser(u *model.User, a Action) *model.User {
	switch a := a.(type) {
	case UserLoaded:
		return a.User
	case UserLoggedOut:
		return nil
	}
	return u
}

func reduceProducts(p ProductsState, a Action) ProductsState {
	if p.Plans == nil {
		p.Plans = map[string]model.Plan{}
	}
	switch a := a.(type) {
	case ProductsLoaded:
		plans := make(map[string]model.Plan, len(p.Plans))
		for k, v := range p.Plans {
			plans[k] = v
		}
		// a plan fetched on its own is the fuller record; keep it
		for _, prod := range a.Products {
			for _, plan := range prod.Plans {
				if _, ok := plans[plan.ID]; !ok {
					plans[plan.ID] = plan
				}
			}
		}
		return ProductsState{Products: a.Products, Plans: plans}
	case PlanLoaded:
		plans := make(map[string]model.Plan, len(p.Plans)+1)
		for k, v := range p.Plans {
			plans[k] = v
		}
		plans[a.Plan.ID] = a.Plan
		return ProductsState{Products: p.Products, Plans: plans}
	}
	return p
}

func reducePreflights(p map[string]*model.Preflight, a Action) map[string]*model.Preflight {
	if p == nil {
		p = map[string]*model.Preflight{}
	}
	switch a := a.(type) {
	case PreflightLoaded:
		next := make(map[string]*model.Preflight, len(p)+1)
		for k, v := range p {
			next[k] = v
		}
		next[a.PlanID] = a.Preflight
		return next
	case UserLoggedOut:
		return map[string]*model.Preflight{}
	}
	return p
}

func reduceJobs(j map[string]*model.Job, a Action) map[string]*model.Job {
	if j == nil {
		j = map[string]*model.Job{}
	}
	act, ok := a.(JobUpdated)
	if !ok || act.Job == nil {
		return j
	}
	// Snapshots arrive from pollers and watchers; never step backwards.
	if cur := j[act.Job.ID]; cur != nil && !act.Job.EditedAt.IsZero() && act.Job.EditedAt.Before(cur.EditedAt) {
		return j
	}
	next := make(map[string]*model.Job, len(j)+1)
	for k, v := range j {
		next[k] = v
	}
	next[act.Job.ID] = act.Job
	return next
}

func reduceOrg(o *model.Org, a Action) *model.Org {
	switch a := a.(type) {
	case OrgLoaded:
		return a.Org
	case UserLoggedOut:
		return nil
	}
	return o
}

func reduceSocket(connected bool, a Action) bool {
	switch a.(type) {
	case SocketConnected:
		return true
	case SocketDisconnected:
		return false
	}
	return connected
}

func reduceErrors(errs []string, a Action) []string {
	if errs == nil {
		errs = []string{}
	}
	switch a := a.(type) {
	case ErrorAdded:
		next := append(append([]string{}, errs...), a.Message)
		if len(next) > maxErrors {
			next = next[len(next)-maxErrors:]
		}
		return next
	case ErrorsCleared:
		return []string{}
	}
	return errs
}
