// utils/pagination.go
package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const TotalCountHeader = "X-Total-Count"

// PaginationLinks builds an RFC 5988 Link header value for a paged listing.
// path and query describe the current request; page and size are rewritten
// for each relation, every other parameter is kept.
func PaginationLinks(path string, query url.Values, number, size, totalPages int) string {
	var links []string
	if number < totalPages-1 {
		links = append(links, pageLink(path, query, number+1, size, "next"))
	}
	if number > 0 {
		links = append(links, pageLink(path, query, number-1, size, "prev"))
	}
	last := totalPages - 1
	if last < 0 {
		last = 0
	}
	links = append(links, pageLink(path, query, last, size, "last"))
	links = append(links, pageLink(path, query, 0, size, "first"))
	return strings.Join(links, ",")
}

func pageLink(path string, query url.Values, page, size int, rel string) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return fmt.Sprintf(`<%s?%s>; rel="%s"`, path, q.Encode(), rel)
}
