package task

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

// SortFields are the accepted sortBy keys and their storage columns.
var SortFields = query.SortFields{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"status":    "status",
	"title":     "title",
}

const defaultSort = "createdAt"

// Filter narrows a task listing. Empty fields do not constrain.
type Filter struct {
	Statuses   []Status
	Priorities []domain.Priority
	ProjectID  *int64
	AssigneeID *int64
	DueFrom    *time.Time
	DueTo      *time.Time
	// Tags matches tasks carrying any of the tags, compared lowercased.
	Tags   []string
	Search string
}

// Query is a normalized task listing request.
type Query struct {
	Filter Filter
	// VisibleTo restricts results to tasks the user created, is assigned to,
	// or whose project the user owns. Nil means unrestricted.
	VisibleTo *int64
	Page      query.Page
	Sort      query.Sort
}

// ResolveQuery normalizes raw list options. Unknown keys and out-of-set enum
// values are dropped.
func ResolveQuery(raw query.Raw) Query {
	q := Query{
		Filter: Filter{
			ProjectID:  raw.ID("projectId"),
			AssigneeID: raw.ID("assigneeId"),
			DueFrom:    raw.Time("dueDate.from"),
			DueTo:      raw.Time("dueDate.to"),
		},
		Page: query.ResolvePage(raw),
		Sort: query.ResolveSort(raw, SortFields, defaultSort),
	}
	if s, ok := raw.First("search"); ok {
		q.Filter.Search = s
	}
	for _, v := range raw.Values("tags") {
		q.Filter.Tags = append(q.Filter.Tags, strings.ToLower(v))
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
	return q
}

// GroupField is a column tasks can be counted by.
type GroupField string

const (
	GroupByStatus   GroupField = "status"
	GroupByPriority GroupField = "priority"
)
