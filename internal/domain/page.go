package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one window of a list ordered by the repo.
// Number starts at 1.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest builds a PageRequest from optional ?page= and ?limit= values.
// Absent or non-positive values take the defaults; Size is clamped to MaxPageSize.
func NewPageRequest(number, size *int) PageRequest {
	p := PageRequest{Number: 1, Size: DefaultPageSize}
	if number != nil && *number > 0 {
		p.Number = *number
	}
	if size != nil && *size > 0 {
		p.Size = min(*size, MaxPageSize)
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}
