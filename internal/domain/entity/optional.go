package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The stored procedures treat NULL as "not provided". Callers historically send 0,
// negative ids or empty strings for the same meaning; these helpers fold all of
// them into nil before anything is bound.

// PositiveID returns nil for nil, zero or negative ids.
func PositiveID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}

// IDOrNil returns nil for zero or negative ids.
func IDOrNil(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// NonEmpty returns nil for nil or blank strings.
func NonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// StringOrNil returns nil for blank strings.
func StringOrNil(s string) *string {
	return NonEmpty(&s)
}

// PositiveDecimal returns nil for nil, zero or negative amounts.
func PositiveDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil || !d.IsPositive() {
		return nil
	}
	v := *d
	return &v
}

// PositiveInt32 returns nil for nil, zero or negative values.
func PositiveInt32(n *int32) *int32 {
	if n == nil || *n <= 0 {
		return nil
	}
	v := *n
	return &v
}
