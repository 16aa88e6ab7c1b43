package store

import "github.com/sfdo-tooling/metadeploy-tui/internal/model"

// Action is anything Reduce understands. Unknown actions leave state as is.
type Action interface{}

type UserLoaded struct{ User *model.User }

type UserLoggedOut struct{}

type ProductsLoaded struct{ Products []model.Product }

type PlanLoaded struct{ Plan model.Plan }

type PreflightLoaded struct {
	PlanID    string
	Preflight *model.Preflight
}

type JobUpdated struct{ Job *model.Job }

type OrgLoaded struct{ Org *model.Org }

type SocketConnected struct{}

type SocketDisconnected struct{}

type ErrorAdded struct{ Message string }

type ErrorsCleared struct{}
