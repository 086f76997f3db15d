package project

import (
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

// SortFields are the accepted sortBy keys and their storage columns.
var SortFields = query.SortFields{
	"createdAt":            "created_at",
	"updatedAt":            "updated_at",
	"name":                 "name",
	"priority":             "priority",
	"status":               "status",
	"targetDate":           "target_date",
	"completionPercentage": "completion_percentage",
}

const defaultSort = "createdAt"

// Filter narrows a project listing. Empty fields do not constrain.
type Filter struct {
	Statuses     []Status
	Priorities   []domain.Priority
	Visibilities []Visibility
	OwnerID      *int64
	TeamID       *int64
	Search       string
}

// Query is a normalized project listing request.
type Query struct {
	Filter Filter
	// VisibleTo restricts results to projects the user owns, public projects
	// and projects of teams the user belongs to. Nil means unrestricted.
	VisibleTo *int64
	Page      query.Page
	Sort      query.Sort
}

// ResolveQuery normalizes raw list options. Unknown keys and out-of-set enum
// values are dropped.
func ResolveQuery(raw query.Raw) Query {
	q := Query{
		Filter: Filter{
			OwnerID: raw.ID("ownerId"),
			TeamID:  raw.ID("teamId"),
		},
		Page: query.ResolvePage(raw),
		Sort: query.ResolveSort(raw, SortFields, defaultSort),
	}
	if s, ok := raw.First("search"); ok {
		q.Filter.Search = s
	}
	for _, v := range raw.Values("status") {
		if s := Status(v); s.IsValid() {
			q.Filter.Statuses = append(q.Filter.Statuses, s)
		}
	}
	for _, v := range raw.Values("priority") {
		if p := domain.Priority(v); p.IsValid() {
			q.Filter.Priorities = append(q.Filter.Priorities, p)
		}
	}
	for _, v := range raw.Values("visibility") {
		if vis := Visibility(v); vis.IsValid() {
			q.Filter.Visibilities = append(q.Filter.Visibilities, vis)
		}
	}
	return q
}

// GroupField is a column projects can be counted by.
type GroupField string

const (
	GroupByStatus   GroupField = "status"
	GroupByPriority GroupField = "priority"
)
