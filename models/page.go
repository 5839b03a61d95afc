// models/page.go
package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// SortOrder is one `sort=field,dir` entry. Field holds the JSON property name.
type SortOrder struct {
	Field string
	Desc  bool
}

// Pageable is a zero-based page request.
type Pageable struct {
	Page int
	Size int
	Sort []SortOrder
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set.
type Page struct {
	Content       []Partida
	Number        int
	Size          int
	TotalElements int64
}

func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	pages := int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
	if pages == 0 {
		return 1
	}
	return pages
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages()-1
}

func (p Page) HasPrevious() bool {
	return p.Number > 0
}

// SortableFields maps JSON property names to table columns.
var SortableFields = map[string]string{
	"id":               "id",
	"ganador":          "ganador",
	"perdedor":         "perdedor",
	"puntosDelGanador": "puntos_del_ganador",
}
