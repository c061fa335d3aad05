package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilterBuildsOrOfLikes(t *testing.T) {
	filter := SearchFilter("fin", []string{"name", "code"})
	require.NotNil(t, filter)

	or, ok := filter[OrKey].(Or)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, Filter{"name": Like{Value: "fin"}}, or[0])
	assert.Equal(t, Filter{"code": Like{Value: "fin"}}, or[1])
}

func TestSearchFilterEmptyTermYieldsNil(t *testing.T) {
	assert.Nil(t, SearchFilter("", []string{"name"}))
	assert.Nil(t, SearchFilter("fin", nil))
}

func TestTextContainsRelaxesNamedStringFields(t *testing.T) {
	rewrite := TextContains("name")
	out := rewrite(Filter{"name": "Fin", "is_active": true, "code": "USD"})

	assert.Equal(t, Like{Value: "Fin"}, out["name"])
	assert.Equal(t, true, out["is_active"])
	assert.Equal(t, "USD", out["code"])
}

func TestTextContainsLeavesOperatorsAlone(t *testing.T) {
	rewrite := TextContains("name")
	out := rewrite(Filter{"name": In{Values: []any{"a", "b"}}})
	assert.Equal(t, In{Values: []any{"a", "b"}}, out["name"])
}

func TestMergeFilters(t *testing.T) {
	merged := MergeFilters(
		Filter{"type": "category"},
		nil,
		Filter{"is_active": true, "type": "industry"},
	)
	assert.Equal(t, Filter{"type": "industry", "is_active": true}, merged)

	assert.Equal(t, Filter{}, MergeFilters(nil, nil))
}

func TestQueryOptionsWantsPopulate(t *testing.T) {
	var opts *QueryOptions
	assert.False(t, opts.WantsPopulate("language"))

	opts = &QueryOptions{Populate: []string{"language"}}
	assert.True(t, opts.WantsPopulate("language"))
	assert.False(t, opts.WantsPopulate("currency"))
}
