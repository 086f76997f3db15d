// Package query normalizes raw list options (page, limit, sort, filters)
// into bounded values and computes pagination metadata. Entity packages
// build their own typed queries on top of these primitives.
package query

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MinLimit     = 1
	MaxLimit     = 100
	// MaxPage keeps (Page-1)*Limit within int for any accepted limit.
	MaxPage = math.MaxInt / MaxLimit
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// IsValid returns true if the order is one of the defined constants.
func (o Order) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// String implements fmt.Stringer.
func (o Order) String() string {
	return string(o)
}

// Raw holds unparsed list options keyed by option name, typically the
// request's URL query values. Unrecognized keys are ignored.
type Raw map[string][]string

// First returns the first non-empty value for key.
func (r Raw) First(key string) (string, bool) {
	for _, v := range r[key] {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// Values returns every value for key, splitting comma-separated entries,
// trimming whitespace and dropping empties and duplicates.
func (r Raw) Values(key string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range r[key] {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

// ID parses a positive integer id option. Anything else is treated as unset.
func (r Raw) ID(key string) *int64 {
	v, ok := r.First(key)
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// Bool parses a boolean option. Anything unparseable is treated as unset.
func (r Raw) Bool(key string) *bool {
	v, ok := r.First(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// Time parses an RFC 3339 timestamp or a 2006-01-02 date. Anything else is
// treated as unset.
func (r Raw) Time(key string) *time.Time {
	v, ok := r.First(key)
	if !ok {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// Page is a normalized page request.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ClampLimit bounds a requested limit to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	switch {
	case limit < MinLimit:
		return MinLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// ResolvePage reads "page" and "limit". Missing or non-numeric values fall
// back to the defaults; numeric values are clamped to [1, MaxPage] and
// [MinLimit, MaxLimit], never rejected.
func ResolvePage(raw Raw) Page {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}
	if v, ok := raw.First("page"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			p.Page = min(max(n, DefaultPage), MaxPage)
		}
	}
	if v, ok := raw.First("limit"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			p.Limit = ClampLimit(n)
		}
	}
	return p
}

// Sort is a normalized sort request.
type Sort struct {
	By    string
	Order Order
}

// SortFields maps public sort keys to storage columns.
type SortFields map[string]string

// Column returns the storage column for the sort key.
func (f SortFields) Column(by string) string {
	return f[by]
}

// ResolveSort reads "sortBy" and "sortOrder". Unknown sort keys fall back to
// def; the order defaults to descending.
func ResolveSort(raw Raw, allowed SortFields, def string) Sort {
	s := Sort{By: def, Order: OrderDesc}
	if v, ok := raw.First("sortBy"); ok {
		if _, known := allowed[v]; known {
			s.By = v
		}
	}
	if v, ok := raw.First("sortOrder"); ok {
		if o := Order(strings.ToLower(v)); o.IsValid() {
			s.Order = o
		}
	}
	return s
}

// Meta describes where a page sits in the full result set.
type Meta struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewMeta computes pagination metadata for a page of a result set of size total.
func NewMeta(p Page, total int64) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// Result is one page of entities plus its metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// NewResult builds a Result, normalizing a nil slice to empty.
func NewResult[T any](items []T, p Page, total int64) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{Items: items, Meta: NewMeta(p, total)}
}
