package dto

import (
	"net/url"
	"strconv"
)

// ListParams carries the common query filters accepted by list endpoints.
// Zero values are omitted from the query string.
type ListParams struct {
	Role      string // filter users by role
	StudentID string
	ClassID   string
	SectionID string
	SubjectID string
	Status    string
	Search    string
	DateFrom  string // YYYY-MM-DD
	DateTo    string
	Page      int
	PageSize  int
}

// Values encodes the params as URL query values.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("role", p.Role)
	set("student_id", p.StudentID)
	set("class_id", p.ClassID)
	set("section_id", p.SectionID)
	set("subject_id", p.SubjectID)
	set("status", p.Status)
	set("search", p.Search)
	set("date_from", p.DateFrom)
	set("date_to", p.DateTo)
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return v
}

// Encode returns the params as a raw query string.
func (p ListParams) Encode() string {
	return p.Values().Encode()
}

// Page is the envelope paginated endpoints wrap their results in. Most list
// endpoints return plain arrays; the high-volume ones (audit logs) paginate.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether another page exists.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}
