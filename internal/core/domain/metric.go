package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Metric is a derived metric value that may be undefined. A metric is
// undefined exactly when its denominator is zero (e.g. CPC with zero
// clicks). Undefined metrics are represented explicitly instead of
// NaN/Inf so that ranking and classification can special-case them.
type Metric struct {
	Value decimal.Decimal
	Valid bool
}

// DefinedMetric wraps a value in a defined Metric.
func DefinedMetric(v decimal.Decimal) Metric {
	return Metric{Value: v, Valid: true}
}

// UndefinedMetric returns the undefined marker.
func UndefinedMetric() Metric {
	return Metric{}
}

// Rounded returns the presentation value, rounded to two decimal places
// with banker's rounding. Callers compare and sort on Value; Rounded is
// for output boundaries only.
func (m Metric) Rounded() decimal.Decimal {
	return m.Value.RoundBank(2)
}

var jsonNull = []byte("null")

// MarshalJSON renders the rounded value, or null when undefined.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return jsonNull, nil
	}
	return m.Rounded().MarshalJSON()
}

// UnmarshalJSON accepts a JSON number or null.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*m = Metric{}
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Metric{Value: v, Valid: true}
	return nil
}
