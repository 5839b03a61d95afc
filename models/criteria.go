// models/criteria.go
package models

import (
	"strings"
)

// StringFilter holds the supported operators for a text column.
type StringFilter struct {
	Equals   *string
	Contains *string
	In       []string
}

func (f StringFilter) IsZero() bool {
	return f.Equals == nil && f.Contains == nil && len(f.In) == 0
}

func (f StringFilter) Matches(v string) bool {
	if f.Equals != nil && v != *f.Equals {
		return false
	}
	if f.Contains != nil && !strings.Contains(strings.ToLower(v), strings.ToLower(*f.Contains)) {
		return false
	}
	if len(f.In) > 0 && !containsString(f.In, v) {
		return false
	}
	return true
}

// IntFilter holds the supported operators for a numeric column.
type IntFilter struct {
	Equals             *int64
	GreaterThan        *int64
	LessThan           *int64
	GreaterThanOrEqual *int64
	LessThanOrEqual    *int64
	In                 []int64
}

func (f IntFilter) IsZero() bool {
	return f.Equals == nil && f.GreaterThan == nil && f.LessThan == nil &&
		f.GreaterThanOrEqual == nil && f.LessThanOrEqual == nil && len(f.In) == 0
}

func (f IntFilter) Matches(v int64) bool {
	switch {
	case f.Equals != nil && v != *f.Equals:
		return false
	case f.GreaterThan != nil && v <= *f.GreaterThan:
		return false
	case f.LessThan != nil && v >= *f.LessThan:
		return false
	case f.GreaterThanOrEqual != nil && v < *f.GreaterThanOrEqual:
		return false
	case f.LessThanOrEqual != nil && v > *f.LessThanOrEqual:
		return false
	case len(f.In) > 0 && !containsInt(f.In, v):
		return false
	}
	return true
}

// PartidaCriteria is the fixed set of filters accepted by list and count.
// All non-empty filters are combined with AND.
type PartidaCriteria struct {
	ID               IntFilter
	Ganador          StringFilter
	Perdedor         StringFilter
	PuntosDelGanador IntFilter
}

func (c PartidaCriteria) Matches(p Partida) bool {
	return c.ID.Matches(p.ID) &&
		c.Ganador.Matches(p.Ganador) &&
		c.Perdedor.Matches(p.Perdedor) &&
		c.PuntosDelGanador.Matches(int64(p.PuntosDelGanador))
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int64, v int64) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
