// models/partida.go
package models

import (
	"fmt"
	"math"
)

// Partida records a finished match: who won, who lost and the winner's score.
type Partida struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Ganador          string `gorm:"column:ganador;not null" json:"ganador"`
	Perdedor         string `gorm:"column:perdedor;not null" json:"perdedor"`
	PuntosDelGanador int    `gorm:"column:puntos_del_ganador;type:integer;not null;check:puntos_del_ganador >= 0" json:"puntosDelGanador"`
}

func (Partida) TableName() string {
	return "partida"
}

func (p *Partida) WithID(id int64) *Partida {
	p.ID = id
	return p
}

func (p *Partida) WithGanador(ganador string) *Partida {
	p.Ganador = ganador
	return p
}

func (p *Partida) WithPerdedor(perdedor string) *Partida {
	p.Perdedor = perdedor
	return p
}

func (p *Partida) WithPuntosDelGanador(puntos int) *Partida {
	p.PuntosDelGanador = puntos
	return p
}

// Equal compares by identity. Unsaved partidas (ID 0) are never equal.
func (p Partida) Equal(other Partida) bool {
	return p.ID != 0 && p.ID == other.ID
}

func (p Partida) String() string {
	return fmt.Sprintf("Partida{id=%d, ganador='%s', perdedor='%s', puntosDelGanador=%d}",
		p.ID, p.Ganador, p.Perdedor, p.PuntosDelGanador)
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PartidaPayload is the request body shape. Pointers keep "absent" apart from
// zero values, which create/update/patch all depend on.
type PartidaPayload struct {
	ID               *int64  `json:"id"`
	Ganador          *string `json:"ganador"`
	Perdedor         *string `json:"perdedor"`
	PuntosDelGanador *int    `json:"puntosDelGanador"`
}

// Validate checks the payload as a complete record (create and full update).
func (p PartidaPayload) Validate() []FieldError {
	var errs []FieldError
	if p.Ganador == nil {
		errs = append(errs, FieldError{Field: "ganador", Message: "must not be null"})
	}
	if p.Perdedor == nil {
		errs = append(errs, FieldError{Field: "perdedor", Message: "must not be null"})
	}
	if p.PuntosDelGanador == nil {
		errs = append(errs, FieldError{Field: "puntosDelGanador", Message: "must not be null"})
	} else if fe, ok := checkPuntos(*p.PuntosDelGanador); !ok {
		errs = append(errs, fe)
	}
	return errs
}

// ToPartida builds a record from a payload; absent fields stay zero.
func (p PartidaPayload) ToPartida() Partida {
	var out Partida
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Ganador != nil {
		out.Ganador = *p.Ganador
	}
	if p.Perdedor != nil {
		out.Perdedor = *p.Perdedor
	}
	if p.PuntosDelGanador != nil {
		out.PuntosDelGanador = *p.PuntosDelGanador
	}
	return out
}

// MergeInto copies every non-null field onto existing (merge-patch semantics).
func (p PartidaPayload) MergeInto(existing *Partida) {
	if p.Ganador != nil {
		existing.Ganador = *p.Ganador
	}
	if p.Perdedor != nil {
		existing.Perdedor = *p.Perdedor
	}
	if p.PuntosDelGanador != nil {
		existing.PuntosDelGanador = *p.PuntosDelGanador
	}
}

// Validate checks a stored/merged record.
func (p Partida) Validate() []FieldError {
	if fe, ok := checkPuntos(p.PuntosDelGanador); !ok {
		return []FieldError{fe}
	}
	return nil
}

// puntos_del_ganador is a 32-bit integer column.
func checkPuntos(n int) (FieldError, bool) {
	switch {
	case n < 0:
		return FieldError{Field: "puntosDelGanador", Message: "must be greater than or equal to 0"}, false
	case n > math.MaxInt32:
		return FieldError{Field: "puntosDelGanador", Message: fmt.Sprintf("must be less than or equal to %d", math.MaxInt32)}, false
	}
	return FieldError{}, true
}
