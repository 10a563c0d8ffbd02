package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// TotalCountHeader carries the total number of records in the
// collection, independent of the requested page size.
const TotalCountHeader = "X-Total-Count"

// SetPaginationHeaders writes the pagination headers for one page of a
// collection: X-Total-Count plus an RFC 8288 Link header with first,
// last, and (where they exist) prev and next page links.
//
// page is zero-based; totalPages is derived by the caller from the
// total count and page size.
func SetPaginationHeaders(h http.Header, baseURL string, page, size, totalPages int, totalCount int64) {
	h.Set(TotalCountHeader, strconv.FormatInt(totalCount, 10))

	var links []string

	if page+1 < totalPages {
		links = append(links, pageLink(baseURL, page+1, size, "next"))
	}
	if page > 0 {
		links = append(links, pageLink(baseURL, page-1, size, "prev"))
	}

	lastPage := totalPages - 1
	if lastPage < 0 {
		lastPage = 0
	}
	links = append(links,
		pageLink(baseURL, lastPage, size, "last"),
		pageLink(baseURL, 0, size, "first"),
	)

	h.Set("Link", strings.Join(links, ","))
}

func pageLink(baseURL string, page, size int, rel string) string {
	return fmt.Sprintf("<%s?page=%d&size=%d>; rel=\"%s\"", baseURL, page, size, rel)
}
