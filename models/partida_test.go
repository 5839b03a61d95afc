package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPartidaEqual(t *testing.T) {
	a := Partida{ID: 1, Ganador: "A"}
	b := Partida{ID: 1, Ganador: "B"}
	c := Partida{ID: 2, Ganador: "A"}

	assert.True(t, a.Equal(b), "same identity")
	assert.False(t, a.Equal(c))

	var unsaved Partida
	assert.False(t, unsaved.Equal(unsaved), "unsaved partidas are never equal")
	assert.False(t, unsaved.Equal(Partida{}))
}

func TestPartidaFluentSetters(t *testing.T) {
	p := new(Partida).WithID(7).WithGanador("A").WithPerdedor("B").WithPuntosDelGanador(10)

	assert.Equal(t, Partida{ID: 7, Ganador: "A", Perdedor: "B", PuntosDelGanador: 10}, *p)
	assert.Equal(t, "Partida{id=7, ganador='A', perdedor='B', puntosDelGanador=10}", p.String())
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     PartidaPayload
		fields []string
	}{
		{"complete", PartidaPayload{Ganador: ptr("A"), Perdedor: ptr("B"), PuntosDelGanador: ptr(0)}, nil},
		{"missing everything", PartidaPayload{}, []string{"ganador", "perdedor", "puntosDelGanador"}},
		{"negative score", PartidaPayload{Ganador: ptr("A"), Perdedor: ptr("B"), PuntosDelGanador: ptr(-1)}, []string{"puntosDelGanador"}},
		{"score above int32", PartidaPayload{Ganador: ptr("A"), Perdedor: ptr("B"), PuntosDelGanador: ptr(math.MaxInt32 + 1)}, []string{"puntosDelGanador"}},
		{"max int32 score", PartidaPayload{Ganador: ptr("A"), Perdedor: ptr("B"), PuntosDelGanador: ptr(math.MaxInt32)}, nil},
		{"empty names are present", PartidaPayload{Ganador: ptr(""), Perdedor: ptr(""), PuntosDelGanador: ptr(3)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, fe := range tt.in.Validate() {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestPayloadMergeInto(t *testing.T) {
	existing := Partida{ID: 3, Ganador: "A", Perdedor: "B", PuntosDelGanador: 10}

	PartidaPayload{ID: ptr(int64(3)), PuntosDelGanador: ptr(25)}.MergeInto(&existing)

	assert.Equal(t, Partida{ID: 3, Ganador: "A", Perdedor: "B", PuntosDelGanador: 25}, existing)
}

func TestPayloadToPartida(t *testing.T) {
	p := PartidaPayload{Ganador: ptr("A"), Perdedor: ptr("B"), PuntosDelGanador: ptr(10)}.ToPartida()
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, "A", p.Ganador)
	assert.Equal(t, "B", p.Perdedor)
	assert.Equal(t, 10, p.PuntosDelGanador)
}

func TestCriteriaMatches(t *testing.T) {
	p := Partida{ID: 4, Ganador: "Lucía", Perdedor: "Mateo", PuntosDelGanador: 15}

	tests := []struct {
		name string
		c    PartidaCriteria
		want bool
	}{
		{"empty criteria", PartidaCriteria{}, true},
		{"ganador equals", PartidaCriteria{Ganador: StringFilter{Equals: ptr("Lucía")}}, true},
		{"ganador equals is case sensitive", PartidaCriteria{Ganador: StringFilter{Equals: ptr("lucía")}}, false},
		{"perdedor contains ignores case", PartidaCriteria{Perdedor: StringFilter{Contains: ptr("ATE")}}, true},
		{"ganador in", PartidaCriteria{Ganador: StringFilter{In: []string{"Ana", "Lucía"}}}, true},
		{"ganador not in", PartidaCriteria{Ganador: StringFilter{In: []string{"Ana"}}}, false},
		{"puntos greater than", PartidaCriteria{PuntosDelGanador: IntFilter{GreaterThan: ptr(int64(14))}}, true},
		{"puntos greater than is strict", PartidaCriteria{PuntosDelGanador: IntFilter{GreaterThan: ptr(int64(15))}}, false},
		{"puntos range", PartidaCriteria{PuntosDelGanador: IntFilter{GreaterThanOrEqual: ptr(int64(15)), LessThanOrEqual: ptr(int64(15))}}, true},
		{"puntos less than", PartidaCriteria{PuntosDelGanador: IntFilter{LessThan: ptr(int64(15))}}, false},
		{"id in", PartidaCriteria{ID: IntFilter{In: []int64{1, 4}}}, true},
		{"filters are ANDed", PartidaCriteria{Ganador: StringFilter{Equals: ptr("Lucía")}, ID: IntFilter{Equals: ptr(int64(5))}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Matches(p))
		})
	}
}

func TestPageNavigation(t *testing.T) {
	page := Page{Number: 0, Size: 2, TotalElements: 5}
	require.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrevious())

	last := Page{Number: 2, Size: 2, TotalElements: 5}
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	empty := Page{Number: 0, Size: 20}
	assert.Equal(t, 1, empty.TotalPages())
	assert.False(t, empty.HasNext())

	far := Page{Number: math.MaxInt, Size: 1, TotalElements: 1}
	assert.False(t, far.HasNext())
}
