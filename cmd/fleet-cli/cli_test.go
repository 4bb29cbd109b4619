package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"PingStatus=Online", "AgentVersion=3.1,3.2"})
	require.NoError(t, err)
	require.Len(t, filters, 2)

	assert.Equal(t, "PingStatus", *filters[0].Name)
	require.Len(t, filters[0].Values, 1)
	assert.Equal(t, "Online", *filters[0].Values[0])

	assert.Equal(t, "AgentVersion", *filters[1].Name)
	require.Len(t, filters[1].Values, 2)
	assert.Equal(t, "3.1", *filters[1].Values[0])
	assert.Equal(t, "3.2", *filters[1].Values[1])
}

func TestParseFiltersEmpty(t *testing.T) {
	filters, err := parseFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, filters, "no flags means no filter list at all")
}

func TestParseFiltersInvalid(t *testing.T) {
	_, err := parseFilters([]string{"missing-equals"})
	require.Error(t, err)

	_, err = parseFilters([]string{"=value"})
	require.Error(t, err)
}

func TestOptString(t *testing.T) {
	assert.Nil(t, optString(""))
	v := optString("x")
	require.NotNil(t, v)
	assert.Equal(t, "x", *v)
}

func TestSplitIDs(t *testing.T) {
	assert.Nil(t, splitIDs(""))
	assert.Equal(t, []string{"a", "b"}, splitIDs("a, b,"))
}
