package repository

import (
	"context"
	"testing"

	"partidas-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryPartidaRepository, partidas ...models.Partida) []models.Partida {
	t.Helper()
	out := make([]models.Partida, 0, len(partidas))
	for _, p := range partidas {
		p := p
		require.NoError(t, r.Save(context.Background(), &p))
		out = append(out, p)
	}
	return out
}

func TestMemorySaveAssignsIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()

	saved := seed(t, r,
		models.Partida{Ganador: "A", Perdedor: "B", PuntosDelGanador: 10},
		models.Partida{Ganador: "C", Perdedor: "D", PuntosDelGanador: 3},
	)
	assert.Equal(t, int64(1), saved[0].ID)
	assert.Equal(t, int64(2), saved[1].ID)

	got, err := r.FindByID(ctx, saved[0].ID)
	require.NoError(t, err)
	assert.Equal(t, saved[0], got)

	exists, err := r.Exists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemorySaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()
	saved := seed(t, r, models.Partida{Ganador: "A", Perdedor: "B", PuntosDelGanador: 10})

	replacement := models.Partida{ID: saved[0].ID, Ganador: "X", Perdedor: "Y", PuntosDelGanador: 1}
	require.NoError(t, r.Save(ctx, &replacement))

	got, err := r.FindByID(ctx, saved[0].ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	n, err := r.Count(ctx, models.PartidaCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()
	saved := seed(t, r, models.Partida{Ganador: "A", Perdedor: "B"})

	require.NoError(t, r.DeleteByID(ctx, saved[0].ID))
	_, err := r.FindByID(ctx, saved[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, r.DeleteByID(ctx, saved[0].ID))
}

func TestMemoryFindAllPagingAndSort(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()
	seed(t, r,
		models.Partida{Ganador: "Carla", Perdedor: "x", PuntosDelGanador: 5},
		models.Partida{Ganador: "Ana", Perdedor: "x", PuntosDelGanador: 9},
		models.Partida{Ganador: "Bruno", Perdedor: "y", PuntosDelGanador: 7},
	)

	page, err := r.FindAll(ctx, models.PartidaCriteria{}, models.Pageable{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(1), page.Content[0].ID, "default order is id ascending")
	assert.True(t, page.HasNext())

	page, err = r.FindAll(ctx, models.PartidaCriteria{}, models.Pageable{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(3), page.Content[0].ID)

	page, err = r.FindAll(ctx, models.PartidaCriteria{}, models.Pageable{Size: 10,
		Sort: []models.SortOrder{{Field: "puntosDelGanador", Desc: true}}})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"},
		[]string{page.Content[0].Ganador, page.Content[1].Ganador, page.Content[2].Ganador})

	page, err = r.FindAll(ctx, models.PartidaCriteria{}, models.Pageable{Page: 5, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestMemoryFindAllCriteria(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()
	seed(t, r,
		models.Partida{Ganador: "Carla", Perdedor: "x", PuntosDelGanador: 5},
		models.Partida{Ganador: "Ana", Perdedor: "x", PuntosDelGanador: 9},
		models.Partida{Ganador: "Bruno", Perdedor: "y", PuntosDelGanador: 7},
	)
	perdedor := "x"
	min := int64(6)
	crit := models.PartidaCriteria{
		Perdedor:         models.StringFilter{Equals: &perdedor},
		PuntosDelGanador: models.IntFilter{GreaterThanOrEqual: &min},
	}

	page, err := r.FindAll(ctx, crit, models.Pageable{Size: 20})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Ana", page.Content[0].Ganador)

	n, err := r.Count(ctx, crit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryFindAllRejectsUnknownSort(t *testing.T) {
	r := NewMemoryPartidaRepository()
	_, err := r.FindAll(context.Background(), models.PartidaCriteria{},
		models.Pageable{Size: 20, Sort: []models.SortOrder{{Field: "secret"}}})
	assert.Error(t, err)
}

func TestMemoryFindByIDsOrderByGanador(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryPartidaRepository()
	saved := seed(t, r,
		models.Partida{Ganador: "Beto", Perdedor: "x"},
		models.Partida{Ganador: "Ángel", Perdedor: "x"},
		models.Partida{Ganador: "alberto", Perdedor: "x"},
		models.Partida{Ganador: "Zoe", Perdedor: "x"},
	)

	got, err := r.FindByIDsOrderByGanador(ctx, []int64{saved[0].ID, saved[1].ID, saved[2].ID, 99, saved[0].ID})
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Ganador)
	}
	assert.Equal(t, []string{"alberto", "Ángel", "Beto"}, names)

	none, err := r.FindByIDsOrderByGanador(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
