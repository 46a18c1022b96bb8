package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Equal(t, 1, filter.Page)
	assert.False(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("search", "wheelchair")
	query.Set("type", "3")
	query.Set("filter[sector]", "north")
	query.Set("sort", "-created_at")
	query.Set("limit", "10")
	query.Set("page", "3")
	query.Set("withPagination", "true")

	filter := ParseFilterFromQuery(query)

	assert.Equal(t, "wheelchair", filter.Search)
	assert.Equal(t, "3", filter.Filter["type_id"])
	assert.Equal(t, "north", filter.Filter["sector"])
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset, "page 3 with limit 10 starts at offset 20")
	assert.Equal(t, 3, filter.Page)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterFromQueryOffsetWinsOverPage(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "10")
	query.Set("offset", "35")
	query.Set("page", "2")

	filter := ParseFilterFromQuery(query)

	assert.Equal(t, 35, filter.Offset)
	assert.Equal(t, 4, filter.Page, "page is derived from the explicit offset")
}

func TestParseFilterFromQueryIgnoresBadNumbers(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "abc")
	query.Set("offset", "-5")

	filter := ParseFilterFromQuery(query)

	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
}
