package models

import "math"

// ListQuery is the normalized form of the list parameters accepted by
// every list endpoint.
type ListQuery struct {
	Search string
	Column string
	Sort   string
	Page   int
	Limit  int
}

// Descending reports whether results are ordered high to low.
func (q ListQuery) Descending() bool {
	return q.Sort == SortDesc
}

// Offset is the number of rows skipped before the requested page. It
// saturates at math.MaxInt for pages too far out to address, which
// yields an empty page.
func (q ListQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type ListResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
