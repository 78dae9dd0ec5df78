package patentsview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenScalarOnlyRecord(t *testing.T) {
	rec := Record{
		"patent_id":    "7861317",
		"patent_title": "Multi-scale cantilever structures",
		"patent_year":  float64(2010),
	}
	rows := flattenRecord(rec)
	require.Len(t, rows, 1)
	assert.Equal(t, FlatRow(rec), rows[0])
}

func TestFlattenUnevenNestedCollections(t *testing.T) {
	rec := Record{
		"patent_id": "1",
		"inventors": []any{
			map[string]any{"inventor_last_name": "Curie"},
			map[string]any{"inventor_last_name": "Meitner"},
		},
		"applications": []any{
			map[string]any{"app_number": "a"},
			map[string]any{"app_number": "b"},
			map[string]any{"app_number": "c"},
		},
	}
	rows := flattenRecord(rec)
	require.Len(t, rows, 3)

	// Every row repeats the scalar field.
	for _, row := range rows {
		assert.Equal(t, "1", row["patent_id"])
	}
	assert.Equal(t, "Curie", rows[0]["inventor_last_name"])
	assert.Equal(t, "Meitner", rows[1]["inventor_last_name"])
	assert.Equal(t, "a", rows[0]["app_number"])
	assert.Equal(t, "b", rows[1]["app_number"])
	assert.Equal(t, "c", rows[2]["app_number"])

	// The shorter collection is exhausted after two rows.
	_, present := rows[2]["inventor_last_name"]
	assert.False(t, present)
}

func TestFlattenAllNestedCollectionsEmpty(t *testing.T) {
	rec := Record{
		"patent_id": "2",
		"inventors": []any{},
	}
	rows := flattenRecord(rec)
	require.Len(t, rows, 1)
	assert.Equal(t, FlatRow{"patent_id": "2"}, rows[0])
}

func TestFlattenScalarListIsNotANestedCollection(t *testing.T) {
	rec := Record{
		"patent_id": "3",
		"cpc_ids":   []any{"A01", "B02"},
	}
	rows := flattenRecord(rec)
	require.Len(t, rows, 1)
	assert.Equal(t, []any{"A01", "B02"}, rows[0]["cpc_ids"])
}

func TestFlattenPreservesRecordOrder(t *testing.T) {
	res := &QueryResult{
		Entity: "patents",
		Records: []Record{
			{
				"patent_id": "1",
				"inventors": []any{
					map[string]any{"inventor_last_name": "Curie"},
					map[string]any{"inventor_last_name": "Meitner"},
				},
			},
			{"patent_id": "2"},
		},
		Count:         2,
		TotalCount:    2,
		TotalCountKey: "total_patent_count",
	}
	rows := Flatten(res)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0]["patent_id"])
	assert.Equal(t, "1", rows[1]["patent_id"])
	assert.Equal(t, "2", rows[2]["patent_id"])
}

func TestFlattenEmptyResult(t *testing.T) {
	rows := Flatten(&QueryResult{Entity: "patents"})
	assert.Empty(t, rows)
}
