package apimodel

import (
	"encoding/json"
	"testing"

	"github.com/go-patentsview/lib/isodate"
)

func TestFilterMarshalsToWireFormat(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{
			name:   "eq shorthand",
			filter: Eq("assignee_organization", "university of maryland"),
			want:   `{"assignee_organization":"university of maryland"}`,
		},
		{
			name:   "neq",
			filter: Neq("patent_type", "reissue"),
			want:   `{"_neq":{"patent_type":"reissue"}}`,
		},
		{
			name:   "gte with date string",
			filter: Gte("patent_date", "2007-01-04"),
			want:   `{"_gte":{"patent_date":"2007-01-04"}}`,
		},
		{
			name:   "lt with number",
			filter: Lt("patent_year", 2010),
			want:   `{"_lt":{"patent_year":2010}}`,
		},
		{
			name:   "begins",
			filter: Begins("assignee_organization", "univ"),
			want:   `{"_begins":{"assignee_organization":"univ"}}`,
		},
		{
			name:   "contains",
			filter: Contains("patent_title", "laser"),
			want:   `{"_contains":{"patent_title":"laser"}}`,
		},
		{
			name:   "text any",
			filter: TextAny("patent_title", "software algorithm"),
			want:   `{"_text_any":{"patent_title":"software algorithm"}}`,
		},
		{
			name:   "text phrase",
			filter: TextPhrase("patent_abstract", "neural network"),
			want:   `{"_text_phrase":{"patent_abstract":"neural network"}}`,
		},
		{
			name: "and",
			filter: And(
				Eq("patent_type", "utility"),
				Gt("patent_year", 2005),
			),
			want: `{"_and":[{"patent_type":"utility"},{"_gt":{"patent_year":2005}}]}`,
		},
		{
			name: "or",
			filter: Or(
				Eq("inventor_last_name", "Curie"),
				Eq("inventor_last_name", "Meitner"),
			),
			want: `{"_or":[{"inventor_last_name":"Curie"},{"inventor_last_name":"Meitner"}]}`,
		},
		{
			name:   "not",
			filter: Not(Eq("patent_type", "reissue")),
			want:   `{"_not":{"patent_type":"reissue"}}`,
		},
		{
			name: "date range",
			filter: DateRange(
				"patent_date",
				isodate.New(2007, 1, 1),
				isodate.New(2007, 12, 31),
			),
			want: `{"_and":[{"_gte":{"patent_date":"2007-01-01"}},{"_lte":{"patent_date":"2007-12-31"}}]}`,
		},
		{
			name: "nested composition",
			filter: And(
				Or(
					Eq("assignee_state", "MD"),
					Eq("assignee_state", "VA"),
				),
				Gte("patent_date", "2010-01-01"),
			),
			want: `{"_and":[{"_or":[{"assignee_state":"MD"},{"assignee_state":"VA"}]},{"_gte":{"patent_date":"2010-01-01"}}]}`,
		},
	}
	for _, test := range tests {
		t.Run(
			test.name, func(t *testing.T) {
				got, err := json.Marshal(test.filter)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(got) != test.want {
					t.Errorf("got %s, want %s", got, test.want)
				}
			},
		)
	}
}

func TestFilterRoundTripsThroughJSON(t *testing.T) {
	original := And(
		Eq("assignee_organization", "university of maryland"),
		Gte("patent_date", "2007-01-04"),
	)
	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Filter
	if err = json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reencoded, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(encoded) != string(reencoded) {
		t.Errorf("round trip changed the filter: %s != %s", encoded, reencoded)
	}
}
