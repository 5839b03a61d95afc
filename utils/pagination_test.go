package utils

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationLinksMiddlePage(t *testing.T) {
	got := PaginationLinks("/api/partidas", url.Values{}, 1, 10, 3)

	assert.Equal(t,
		`</api/partidas?page=2&size=10>; rel="next",`+
			`</api/partidas?page=0&size=10>; rel="prev",`+
			`</api/partidas?page=2&size=10>; rel="last",`+
			`</api/partidas?page=0&size=10>; rel="first"`,
		got)
}

func TestPaginationLinksKeepsFilters(t *testing.T) {
	query := url.Values{
		"ganador.equals": {"Ana"},
		"page":           {"0"},
		"size":           {"5"},
	}

	got := PaginationLinks("/api/partidas", query, 0, 5, 1)

	assert.Equal(t,
		`</api/partidas?ganador.equals=Ana&page=0&size=5>; rel="last",`+
			`</api/partidas?ganador.equals=Ana&page=0&size=5>; rel="first"`,
		got)
	// caller's values are untouched
	assert.Equal(t, "5", query.Get("size"))
}

func TestPaginationLinksEmptyResult(t *testing.T) {
	got := PaginationLinks("/api/partidas", nil, 0, 20, 0)

	assert.NotContains(t, got, `rel="next"`)
	assert.NotContains(t, got, `rel="prev"`)
	assert.Contains(t, got, `</api/partidas?page=0&size=20>; rel="last"`)
}

func TestPaginationLinksLastPossiblePage(t *testing.T) {
	got := PaginationLinks("/api/partidas", nil, math.MaxInt, 1, 1)

	assert.NotContains(t, got, `rel="next"`)
	assert.Contains(t, got, `rel="prev"`)
}
