// Package store holds the combined application state. Each top-level key is
// owned by one slice reducer; Reduce fans an action out to all of them.
package store

import (
	"sync"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

// Top-level state keys, in declaration order.
const (
	KeyUser       = "user"
	KeyProducts   = "products"
	KeyPreflights = "preflights"
	KeyJobs       = "jobs"
	KeyOrg        = "org"
	KeySocket     = "socket"
	KeyErrors     = "errors"
)

var keys = []string{KeyUser, KeyProducts, KeyPreflights, KeyJobs, KeyOrg, KeySocket, KeyErrors}

// Keys returns the top-level state keys in order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

type ProductsState struct {
	Products []model.Product
	Plans    map[string]model.Plan
}

type State struct {
	User       *model.User
	Products   ProductsState
	Preflights map[string]*model.Preflight // keyed by plan ID
	Jobs       map[string]*model.Job
	Org        *model.Org
	Socket     bool
	Errors     []string
}

// Init returns the state every reducer starts from.
func Init() State {
	return Reduce(State{}, nil)
}

// Slices returns the state as a map from top-level key to slice value.
func (s State) Slices() map[string]any {
	return map[string]any{
		KeyUser:       s.User,
		KeyProducts:   s.Products,
		KeyPreflights: s.Preflights,
		KeyJobs:       s.Jobs,
		KeyOrg:        s.Org,
		KeySocket:     s.Socket,
		KeyErrors:     s.Errors,
	}
}

// Plan returns a loaded plan by ID.
func (s State) Plan(id string) (model.Plan, bool) {
	p, ok := s.Products.Plans[id]
	return p, ok
}

// ProductOf returns the loaded product that lists the plan, or nil.
func (s State) ProductOf(planID string) *model.Product {
	for i := range s.Products.Products {
		for _, p := range s.Products.Products[i].Plans {
			if p.ID == planID {
				return &s.Products.Products[i]
			}
		}
	}
	return nil
}

func (s State) Job(id string) *model.Job {
	return s.Jobs[id]
}

func (s State) Preflight(planID string) *model.Preflight {
	return s.Preflights[planID]
}

// LastError returns the most recent error message, if any.
func (s State) LastError() string {
	if len(s.Errors) == 0 {
		return ""
	}
	return s.Errors[len(s.Errors)-1]
}

// Store wraps State for use from bubbletea commands, which may run on
// their own goroutines.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

func New() *Store {
	return &Store{state: Init()}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces the action into the state and notifies subscribers.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	st := s.state
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
	return st
}

// Subscribe registers fn to be called after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
