package httpapi

import (
	"net/url"
	"strconv"
	"strings"

	"cms_backend/internal/domain"
)

func queryString(q url.Values, name string) string {
	return strings.TrimSpace(q.Get(name))
}

func queryInt(q url.Values, name string) (*int, error) {
	raw := queryString(q, name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.InvalidInteger(name)
	}
	return &v, nil
}

func queryInt64(q url.Values, name string) (*int64, error) {
	raw := queryString(q, name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.InvalidInteger(name)
	}
	return &v, nil
}

// pageParams reads page and page_size; absent values are left to pagination defaults.
func pageParams(q url.Values) (int, int, error) {
	page, err := queryInt(q, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt(q, "page_size")
	if err != nil {
		return 0, 0, err
	}

	p, s := 1, 0
	if page != nil {
		p = *page
	}
	if size != nil {
		s = *size
	}
	return p, s, nil
}

func pathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.InvalidInteger("id")
	}
	return id, nil
}
