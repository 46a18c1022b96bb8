package utils

import (
	"net/url"
	"strconv"
	"strings"

	"medequip-system/pkg/types"
)

// ParseFilterFromQuery turns list query parameters into a types.Filter.
// Supported: search=..., type=<equipment type id>, filter[field]=...,
// sort=[-]field, limit/offset/page, withPagination=true.
func ParseFilterFromQuery(query url.Values) types.Filter {
	filter := types.Filter{
		Sort:   map[string]string{},
		Filter: map[string]interface{}{},
		Limit:  20,
		Page:   1,
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			filter.Filter[filterKey] = values[0]
		}
	}

	if search := query.Get("search"); search != "" {
		filter.Search = search
	}

	// "type" is the public name for the equipment type filter.
	if typeID := query.Get("type"); typeID != "" {
		filter.Filter["type_id"] = typeID
	}

	if sort := query.Get("sort"); sort != "" {
		if strings.HasPrefix(sort, "-") {
			filter.Sort[sort[1:]] = "desc"
		} else {
			filter.Sort[sort] = "asc"
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
			if filter.Limit > 0 {
				filter.Page = o/filter.Limit + 1
			}
		}
	}
	if pageStr := query.Get("page"); pageStr != "" && filter.Offset == 0 {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = p
			filter.Offset = (p - 1) * filter.Limit
		}
	}

	if query.Get("withPagination") == "true" {
		filter.WithPagination = true
	}

	return filter
}
