package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	YearMonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD string as a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

// ParseOptionalDate parses s when it is set.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseYearMonth parses a YYYY-MM string into the first day of that month.
func ParseYearMonth(s string) (time.Time, error) {
	t, err := time.Parse(YearMonthLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", apperrors.ErrValidation, s)
	}
	return t, nil
}

// ParseOptionalYearMonth parses s when it is set.
func ParseOptionalYearMonth(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseYearMonth(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseAmount parses a money amount. It must be non-negative with at most two decimals.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: amount %q has more than 2 decimal places", apperrors.ErrValidation, s)
	}
	return amount, nil
}

// ParsePositiveAmount parses an amount that must be greater than zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return amount, nil
}
