package model

import "sort"

// User is the signed-in viewer. ValidTokenFor is nil when the user has no
// valid org token.
type User struct {
	Username      string  `json:"username"`
	ValidTokenFor *string `json:"valid_token_for"`
	OrgName       string  `json:"org_name"`
	OrgType       string  `json:"org_type"`
}

func (u *User) HasValidToken() bool {
	return u != nil && u.ValidTokenFor != nil
}

// Org describes the org the user's token is valid for, including any job or
// preflight currently running against it.
type Org struct {
	OrgID            string `json:"org_id"`
	CurrentJob       string `json:"current_job"`
	CurrentPreflight string `json:"current_preflight"`
}

// SelectedSteps is the set of step IDs chosen for install.
type SelectedSteps map[string]bool

func (s SelectedSteps) IDs() []string {
	ids := make([]string, 0, len(s))
	for id, on := range s {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
