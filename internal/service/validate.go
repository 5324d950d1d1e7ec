package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/family-trips/internal/domain"
)

// trimmed returns the trimmed value of s, or "" when s is nil.
func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// patchText applies an optional text field: nil keeps current, blank clears,
// anything else is stored trimmed. Pass current=nil on create.
func patchText(current, in *string) *string {
	if in == nil {
		return current
	}
	v := strings.TrimSpace(*in)
	if v == "" {
		return nil
	}
	return &v
}

// patchRequired applies a required text field on update: nil keeps current,
// blank is rejected.
func patchRequired(current string, in *string, field string) (string, error) {
	if in == nil {
		return current, nil
	}
	v := strings.TrimSpace(*in)
	if v == "" {
		return "", domain.Invalidf("%s is required", field)
	}
	return v, nil
}

// orDefault dereferences v, falling back to def only when v is nil.
// A present zero value is kept.
func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string. The field name appears in the error.
func parseDate(field, s string) (openapi_types.Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return openapi_types.Date{}, domain.Invalidf("%s must be a date in YYYY-MM-DD format", field)
	}
	return openapi_types.Date{Time: t}, nil
}

// patchDate applies an optional date field: nil keeps current, blank clears.
func patchDate(current *openapi_types.Date, in *string, field string) (*openapi_types.Date, error) {
	if in == nil {
		return current, nil
	}
	if strings.TrimSpace(*in) == "" {
		return nil, nil
	}
	d, err := parseDate(field, *in)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const clockLayout = "15:04"

// patchClock applies an optional HH:MM field, normalizing to zero-padded form.
func patchClock(current, in *string, field string) (*string, error) {
	v := patchText(current, in)
	if v == nil || in == nil {
		return v, nil
	}
	t, err := time.Parse(clockLayout, *v)
	if err != nil {
		return nil, domain.Invalidf("%s must be a time in HH:MM format", field)
	}
	s := t.Format(clockLayout)
	return &s, nil
}

// numeric describes a NUMERIC(precision, scale) column.
type numeric struct {
	precision, scale int
}

var (
	cardMoney       = numeric{10, 2} // annual_fee, value, used_amount
	settlementMoney = numeric{12, 2}
	centsPerPoint   = numeric{8, 4}
)

// max is the largest value the column can hold.
func (n numeric) max() float64 {
	return math.Pow10(n.precision-n.scale) - math.Pow10(-n.scale)
}

// round rounds v half away from zero to the column's scale.
func (n numeric) round(v float64) float64 {
	p := math.Pow10(n.scale)
	return math.Round(v*p) / p
}

// decimal rounds v to the column's scale, rejecting negatives and values
// the column cannot hold. The returned value is what will be stored.
func decimal(field string, v float64, col numeric) (float64, error) {
	if v < 0 {
		return 0, domain.Invalidf("%s must not be negative", field)
	}
	r := col.round(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || r > col.max() {
		return 0, domain.Invalidf("%s must be at most %s", field, strconv.FormatFloat(col.max(), 'f', col.scale, 64))
	}
	return r, nil
}

// loadOwned loads a nested row and checks that it belongs to parentID.
// A missing row and a row owned by another parent produce the same
// not-found error, so callers cannot probe for ids under other parents.
func loadOwned[T any](
	ctx context.Context,
	get func(context.Context, uuid.UUID) (T, error),
	id, parentID uuid.UUID,
	parentOf func(T) uuid.UUID,
	message string,
) (T, error) {
	var zero T
	v, err := get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return zero, domain.Missing(message)
	}
	if err != nil {
		return zero, err
	}
	if parentOf(v) != parentID {
		return zero, domain.Missing(message)
	}
	return v, nil
}

// mapNotFound replaces a repo-level domain.ErrNotFound with a typed error
// carrying message; other errors pass through.
func mapNotFound(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Missing(message)
	}
	return err
}

// emptyIfNil makes list results encode as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
