package patentsview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/scylladb/go-set/strset"
)

// knownFields holds the commonly requested field names per entity endpoint.
// The lists are advisory: the server remains authoritative, and queries with
// unknown fields are still sent (the server answers with status 400).
var knownFields = map[Endpoint]*strset.Set{
	EndpointPatents: strset.New(
		"patent_id",
		"patent_number",
		"patent_title",
		"patent_abstract",
		"patent_date",
		"patent_year",
		"patent_type",
		"patent_kind",
		"patent_num_cited_by_us_patents",
		"patent_num_claims",
		"assignee_id",
		"assignee_organization",
		"assignee_first_name",
		"assignee_last_name",
		"assignee_country",
		"assignee_state",
		"inventor_id",
		"inventor_first_name",
		"inventor_last_name",
		"inventor_city",
		"inventor_state",
		"inventor_country",
		"app_date",
		"app_number",
		"app_type",
		"app_country",
		"cpc_section_id",
		"cpc_subsection_id",
		"cpc_subsection_title",
		"cpc_group_id",
		"uspc_mainclass_id",
		"uspc_mainclass_title",
	),
	EndpointInventors: strset.New(
		"inventor_id",
		"inventor_first_name",
		"inventor_last_name",
		"inventor_city",
		"inventor_state",
		"inventor_country",
		"inventor_total_num_patents",
		"inventor_first_seen_date",
		"inventor_last_seen_date",
		"patent_id",
		"patent_number",
		"patent_title",
		"patent_date",
	),
	EndpointAssignees: strset.New(
		"assignee_id",
		"assignee_organization",
		"assignee_first_name",
		"assignee_last_name",
		"assignee_country",
		"assignee_state",
		"assignee_city",
		"assignee_type",
		"assignee_total_num_patents",
		"assignee_first_seen_date",
		"assignee_last_seen_date",
		"patent_id",
		"patent_number",
		"patent_title",
		"patent_date",
	),
}

// KnownFields returns the sorted advisory field list for an endpoint, or nil
// when no list is maintained for it.
func KnownFields(e Endpoint) []string {
	set := knownFields[e]
	if set == nil {
		return nil
	}
	fields := set.List()
	sort.Strings(fields)
	return fields
}

// UnknownFieldsError reports requested field names that are not in the
// advisory field list of an endpoint, with a close known name per field
// where one exists.
type UnknownFieldsError struct {
	Endpoint    Endpoint
	Fields      []string
	Suggestions map[string]string
}

// Error implements the error interface
func (e UnknownFieldsError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if s, ok := e.Suggestions[f]; ok {
			parts[i] = fmt.Sprintf("%s (did you mean %q?)", f, s)
		} else {
			parts[i] = f
		}
	}
	return fmt.Sprintf("unknown fields for %s: %s", e.Endpoint, strings.Join(parts, ", "))
}

// ValidateFields checks requested field names against the endpoint's
// advisory field list and returns an *UnknownFieldsError naming the unknown
// ones. It returns nil when every field is known or when no list is
// maintained for the endpoint. Validation is advisory; Query does not call
// it.
func (c *Client) ValidateFields(fields []string) error {
	set := knownFields[c.Endpoint]
	if set == nil {
		return nil
	}
	var unknown []string
	suggestions := make(map[string]string)
	for _, f := range fields {
		if set.Has(f) {
			continue
		}
		unknown = append(unknown, f)
		if best, ok := closestField(f, set.List()); ok {
			suggestions[f] = best
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return &UnknownFieldsError{
		Endpoint:    c.Endpoint,
		Fields:      unknown,
		Suggestions: suggestions,
	}
}

const maxSuggestionDistance = 3

func closestField(name string, candidates []string) (string, bool) {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, cand := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), cand)
		if d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best, bestDist <= maxSuggestionDistance
}
