package handler

import (
	"net/http"
	"strconv"
)

// pageParams applies the same defaults the dashboards used: page 1, 10 rows,
// capped at 100.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}
