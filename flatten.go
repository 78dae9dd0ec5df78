package patentsview

import (
	"github.com/go-patentsview/lib/internal/utils"
)

// FlatRow is a single record with its nested sub-collections expanded into
// tabular form: scalar fields plus the fields of one element per nested
// collection.
type FlatRow map[string]any

// Flatten expands every record of a result into FlatRows. A record with no
// nested collections maps to exactly one row. A record with nested
// collections maps to N rows, where N is the size of its largest nested
// collection (minimum 1): row i carries every scalar field plus the fields
// of each collection's i-th element, or no fields for collections shorter
// than N.
//
// Elements of different nested collections are paired purely by position,
// mirroring a left outer join keyed by index. The pairing carries no
// meaning: inventor i of a patent does not correspond to application i, and
// callers must not read a correspondence into rows that happen to carry
// elements of both.
func Flatten(res *QueryResult) []FlatRow {
	var rows []FlatRow
	for _, rec := range res.Records {
		rows = append(rows, flattenRecord(rec)...)
	}
	return rows
}

func flattenRecord(rec Record) []FlatRow {
	scalars := FlatRow{}
	nested := make(map[string][]map[string]any)
	n := 0
	for key, val := range rec {
		if elems, ok := utils.MappingSequence(val); ok {
			nested[key] = elems
			if len(elems) > n {
				n = len(elems)
			}
			continue
		}
		scalars[key] = val
	}
	if len(nested) == 0 {
		return []FlatRow{scalars}
	}
	if n == 0 {
		// All nested collections are empty: a single row of scalars.
		n = 1
	}
	rows := make([]FlatRow, n)
	for i := range rows {
		row := make(FlatRow, len(scalars))
		for k, v := range scalars {
			row[k] = v
		}
		// Sub-record field names carry their entity prefix on the wire
		// (inventor_first_name, app_date, ...), so merging them at the top
		// level cannot shadow scalar fields.
		for _, elems := range nested {
			if i < len(elems) {
				for k, v := range elems[i] {
					row[k] = v
				}
			}
		}
		rows[i] = row
	}
	return rows
}
