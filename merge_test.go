package areamap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDeduplicates(t *testing.T) {
	m := NewAreaMap()
	m.Add("SE", "10Y1001A1001A46L")
	m.Add("SE", "10Y1001A1001A46L")
	m.Add("SE", "10Y1001A1001A44P")

	assert.Equal(t, []string{"10Y1001A1001A46L", "10Y1001A1001A44P"}, m["SE"])
}

func TestAddIgnoresEmptyValues(t *testing.T) {
	m := NewAreaMap()
	m.Add("", "10Y1001A1001A46L")
	m.Add("SE", "")

	assert.Empty(t, m)
}

func TestMergeJSON(t *testing.T) {
	m := NewAreaMap()
	m.Add("DE", "B")

	err := m.MergeJSON([]byte(`{"DE": ["A"], "se": ["S1"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, m["DE"])
	assert.Equal(t, []string{"S1"}, m["SE"], "keys are normalized before merging")
}

func TestMergeJSONIdempotent(t *testing.T) {
	doc := []byte(`{"DE": ["A", "B"], "FR": ["C"]}`)

	m := NewAreaMap()
	require.NoError(t, m.MergeJSON(doc))
	require.NoError(t, m.MergeJSON(doc))

	assert.Equal(t, []string{"A", "B"}, m["DE"])
	assert.Equal(t, []string{"C"}, m["FR"])
}

func TestMergeJSONSkipsInvalidEntries(t *testing.T) {
	m := NewAreaMap()
	err := m.MergeJSON([]byte(`{
		"DEU": ["skipped, key too long"],
		"": ["skipped, empty key"],
		"AT": "skipped, not a list",
		"NL": 7,
		"SE": ["S1", "", 42, null, "S2"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, AreaMap{"SE": {"S1", "S2"}}, m)
}

func TestMergeJSONMalformed(t *testing.T) {
	m := NewAreaMap()
	m.Add("DE", "A")

	err := m.MergeJSON([]byte(`{"DE": ["A"`))
	require.Error(t, err)
	assert.Equal(t, AreaMap{"DE": {"A"}}, m, "a malformed document leaves the map untouched")
}

func TestClassify(t *testing.T) {
	m := NewAreaMap()

	assert.True(t, m.Classify(Area{EIC: "10Y1001A1001A46L", Name: "SE3 (Sweden)"}, ""))
	assert.True(t, m.Classify(Area{EIC: "46Y000000000007M", Name: "Exchange Border"}, "XX"))
	assert.False(t, m.Classify(Area{EIC: "46Y000000000008K", Name: "Exchange Border"}, ""))

	assert.Equal(t, AreaMap{
		"SE": {"10Y1001A1001A46L"},
		"XX": {"46Y000000000007M"},
	}, m)
}

func TestFinalizeSortsBuckets(t *testing.T) {
	m := AreaMap{"DE": {"C", "A", "B"}}
	m.Finalize()
	assert.Equal(t, []string{"A", "B", "C"}, m["DE"])
}

func TestMarshalSortedDeterministic(t *testing.T) {
	m := AreaMap{
		"SE": {"S2", "S1"},
		"DE": {"D1"},
		"AT": {"A1"},
	}
	m.Finalize()

	first, err := m.MarshalSorted()
	require.NoError(t, err)
	second, err := m.MarshalSorted()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "{\n  \"AT\": [\n    \"A1\"\n  ],\n  \"DE\": [\n    \"D1\"\n  ],\n  \"SE\": [\n    \"S1\",\n    \"S2\"\n  ]\n}\n", string(first))
}
