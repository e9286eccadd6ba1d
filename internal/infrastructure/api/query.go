package api

import (
	"net/url"
	"strconv"

	"github.com/volunteerbridge/matching-client/internal/core/ports"
)

// Filter encoding: only fields the caller actually set become query keys.
// An unset field is omitted entirely, never serialized as an empty or
// placeholder value. Pages encode as decimal integers, 1-based.

func encodeRequestFilter(f ports.RequestFilter) url.Values {
	q := url.Values{}
	setInt64(q, "category_id", f.CategoryID)
	setString(q, "status", f.Status)
	setString(q, "urgency", f.Urgency)
	setString(q, "start_date", f.StartDate)
	setString(q, "end_date", f.EndDate)
	setString(q, "location", f.Location)
	setString(q, "search", f.Search)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}

func encodeMatchFilter(f ports.MatchFilter) url.Values {
	q := url.Values{}
	setInt64(q, "csr_rep_id", f.ResponderID)
	setInt64(q, "pin_id", f.RequesterID)
	setInt64(q, "category_id", f.CategoryID)
	setString(q, "status", f.Status)
	setString(q, "start_date", f.StartDate)
	setString(q, "end_date", f.EndDate)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setInt64(q url.Values, key string, v int64) {
	if v > 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}
