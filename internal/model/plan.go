package model

type Step struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	IsRequired    bool   `json:"is_required"`
	IsRecommended bool   `json:"is_recommended"`
	Description   string `json:"description"`
}

type Plan struct {
	ID                string `json:"id"`
	Slug              string `json:"slug"`
	Title             string `json:"title"`
	RequiresPreflight bool   `json:"requires_preflight"`
	PreflightMessage  string `json:"preflight_message"`
	Steps             []Step `json:"steps"`
}

// StepByID returns the plan step with the given ID, or nil.
func (p Plan) StepByID(id string) *Step {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return &p.Steps[i]
		}
	}
	return nil
}

type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Plans       []Plan `json:"plans"`
}

type ProductsResponse struct {
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}
