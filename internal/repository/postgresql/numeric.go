package postgresql

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NUMERIC columns travel as text so decimal values keep their exact scale.

func decimalFromText(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("parse numeric %q: %w", *s, err)
	}
	return &d, nil
}

func decimalToText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
