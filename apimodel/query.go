package apimodel

import (
	"encoding/json"
	"net/url"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

// Query describes a single request against an entity endpoint: which records
// to match, which fields to return, how to sort them, and the request
// options. A Query is immutable by convention; its lifecycle is a single
// request.
type Query struct {
	Filter  Filter
	Fields  []string
	Sort    []SortField
	Options *Options
}

// Options is the option mapping sent as the o parameter.
type Options struct {
	Page                        int  `json:"page,omitempty"`
	PerPage                     int  `json:"per_page,omitempty"`
	MatchedSubentitiesOnly      bool `json:"matched_subentities_only,omitempty"`
	IncludeSubentityTotalCounts bool `json:"include_subentity_total_counts,omitempty"`
}

// SortField maps a single field name to its sort direction.
type SortField map[string]string

// Asc sorts by the given field in ascending order.
func Asc(field string) SortField {
	return SortField{field: "asc"}
}

// Desc sorts by the given field in descending order.
func Desc(field string) SortField {
	return SortField{field: "desc"}
}

// Params is the wire-level form of a Query: each parameter carries the JSON
// encoding the API expects in the query string.
type Params struct {
	Q string `url:"q"`
	F string `url:"f,omitempty"`
	S string `url:"s,omitempty"`
	O string `url:"o,omitempty"`
}

// Encode serializes the query into its wire parameters. It is a pure
// function of the query and does not touch shared state.
func (q Query) Encode() (Params, error) {
	if len(q.Filter) == 0 {
		return Params{}, errors.New("query filter must not be empty")
	}
	var p Params
	qJSON, err := json.Marshal(q.Filter)
	if err != nil {
		return Params{}, errors.Wrap(err, "error while encoding query filter")
	}
	p.Q = string(qJSON)
	if len(q.Fields) > 0 {
		fJSON, err := json.Marshal(q.Fields)
		if err != nil {
			return Params{}, errors.Wrap(err, "error while encoding field list")
		}
		p.F = string(fJSON)
	}
	if len(q.Sort) > 0 {
		sJSON, err := json.Marshal(q.Sort)
		if err != nil {
			return Params{}, errors.Wrap(err, "error while encoding sort")
		}
		p.S = string(sJSON)
	}
	if q.Options != nil {
		oJSON, err := json.Marshal(q.Options)
		if err != nil {
			return Params{}, errors.Wrap(err, "error while encoding options")
		}
		p.O = string(oJSON)
	}
	return p, nil
}

// Values converts the wire parameters to url.Values.
func (p Params) Values() (url.Values, error) {
	vals, err := query.Values(p)
	return vals, errors.WithStack(err)
}
