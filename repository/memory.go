// repository/memory.go
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"partidas-service/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MemoryPartidaRepository keeps partidas in a map. Used for local runs
// (STORAGE=memory) and tests.
type MemoryPartidaRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.Partida
	nextID int64
}

func NewMemoryPartidaRepository() *MemoryPartidaRepository {
	return &MemoryPartidaRepository{
		byID:   make(map[int64]models.Partida),
		nextID: 1,
	}
}

func (r *MemoryPartidaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *MemoryPartidaRepository) FindByID(ctx context.Context, id int64) (models.Partida, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return models.Partida{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryPartidaRepository) Save(ctx context.Context, p *models.Partida) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	} else if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *MemoryPartidaRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *MemoryPartidaRepository) FindAll(ctx context.Context, criteria models.PartidaCriteria, pageable models.Pageable) (models.Page, error) {
	r.mu.RLock()
	matched := make([]models.Partida, 0, len(r.byID))
	for _, p := range r.byID {
		if criteria.Matches(p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	less, err := sortFunc(pageable.Sort)
	if err != nil {
		return models.Page{}, err
	}
	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })

	content := []models.Partida{}
	start := pageable.Offset()
	if start >= 0 && start < len(matched) {
		end := start + pageable.Size
		if end > len(matched) {
			end = len(matched)
		}
		content = matched[start:end]
	}

	return models.Page{
		Content:       content,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: int64(len(matched)),
	}, nil
}

func (r *MemoryPartidaRepository) Count(ctx context.Context, criteria models.PartidaCriteria) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, p := range r.byID {
		if criteria.Matches(p) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryPartidaRepository) FindByIDsOrderByGanador(ctx context.Context, ids []int64) ([]models.Partida, error) {
	r.mu.RLock()
	out := make([]models.Partida, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	less, _ := sortFunc([]models.SortOrder{{Field: "ganador"}})
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

// sortFunc builds a comparator for the requested orders, falling back to id
// ascending. Text columns use Spanish collation so accented names sort the
// way the database orders them.
func sortFunc(orders []models.SortOrder) (func(a, b models.Partida) bool, error) {
	col := collate.New(language.Spanish, collate.IgnoreCase)

	cmps := make([]func(a, b models.Partida) int, 0, len(orders)+1)
	for _, o := range orders {
		var cmp func(a, b models.Partida) int
		switch o.Field {
		case "id":
			cmp = func(a, b models.Partida) int { return compareInt(a.ID, b.ID) }
		case "ganador":
			cmp = func(a, b models.Partida) int { return col.CompareString(a.Ganador, b.Ganador) }
		case "perdedor":
			cmp = func(a, b models.Partida) int { return col.CompareString(a.Perdedor, b.Perdedor) }
		case "puntosDelGanador":
			cmp = func(a, b models.Partida) int {
				return compareInt(int64(a.PuntosDelGanador), int64(b.PuntosDelGanador))
			}
		default:
			return nil, fmt.Errorf("unsupported sort field %q", strings.TrimSpace(o.Field))
		}
		if o.Desc {
			asc := cmp
			cmp = func(a, b models.Partida) int { return -asc(a, b) }
		}
		cmps = append(cmps, cmp)
	}
	cmps = append(cmps, func(a, b models.Partida) int { return compareInt(a.ID, b.ID) })

	return func(a, b models.Partida) bool {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c < 0
			}
		}
		return false
	}, nil
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
