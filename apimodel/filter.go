package apimodel

import (
	"github.com/go-patentsview/lib/isodate"
)

// Operators of the API's query language.
const (
	opAnd        = "_and"
	opOr         = "_or"
	opNot        = "_not"
	opNeq        = "_neq"
	opGt         = "_gt"
	opGte        = "_gte"
	opLt         = "_lt"
	opLte        = "_lte"
	opBegins     = "_begins"
	opContains   = "_contains"
	opTextAny    = "_text_any"
	opTextAll    = "_text_all"
	opTextPhrase = "_text_phrase"
)

// Filter is a JSON-encodable predicate tree selecting which remote records
// match a query. It marshals to the JSON string sent as the q parameter.
// Construct filters with the builder functions; an empty Filter is not a
// valid query predicate.
type Filter map[string]any

// Eq matches records whose field equals value, using the API's shorthand
// form {"field": value}.
func Eq(field string, value any) Filter {
	return Filter{field: value}
}

func comparison(op, field string, value any) Filter {
	return Filter{op: Filter{field: value}}
}

// Neq matches records whose field does not equal value.
func Neq(field string, value any) Filter {
	return comparison(opNeq, field, value)
}

// Gt matches records whose field is greater than value.
func Gt(field string, value any) Filter {
	return comparison(opGt, field, value)
}

// Gte matches records whose field is greater than or equal to value.
func Gte(field string, value any) Filter {
	return comparison(opGte, field, value)
}

// Lt matches records whose field is less than value.
func Lt(field string, value any) Filter {
	return comparison(opLt, field, value)
}

// Lte matches records whose field is less than or equal to value.
func Lte(field string, value any) Filter {
	return comparison(opLte, field, value)
}

// Begins matches records whose field starts with the given prefix.
func Begins(field, prefix string) Filter {
	return comparison(opBegins, field, prefix)
}

// Contains matches records whose field contains the given substring.
func Contains(field, substring string) Filter {
	return comparison(opContains, field, substring)
}

// TextAny matches records whose full-text field contains any of the
// whitespace-separated words.
func TextAny(field, words string) Filter {
	return comparison(opTextAny, field, words)
}

// TextAll matches records whose full-text field contains all of the
// whitespace-separated words.
func TextAll(field, words string) Filter {
	return comparison(opTextAll, field, words)
}

// TextPhrase matches records whose full-text field contains the exact
// phrase.
func TextPhrase(field, phrase string) Filter {
	return comparison(opTextPhrase, field, phrase)
}

// And matches records that satisfy all of the given filters.
func And(filters ...Filter) Filter {
	return Filter{opAnd: filters}
}

// Or matches records that satisfy at least one of the given filters.
func Or(filters ...Filter) Filter {
	return Filter{opOr: filters}
}

// Not matches records that do not satisfy the given filter.
func Not(filter Filter) Filter {
	return Filter{opNot: filter}
}

// DateRange matches records whose date field lies in [from, to], inclusive
// on both ends.
func DateRange(field string, from, to isodate.Date) Filter {
	return And(
		comparison(opGte, field, from),
		comparison(opLte, field, to),
	)
}
