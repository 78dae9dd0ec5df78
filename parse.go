package patentsview

import (
	"encoding/json"
	"mime"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/go-patentsview/lib/internal"
)

// Record is a single result record as returned by the API: a mapping from
// field name to a scalar value or a nested sequence of sub-records.
type Record map[string]any

// QueryResult is the parsed body of a successful query response.
type QueryResult struct {
	// Entity is the name of the record array key, e.g. "patents".
	Entity  string
	Records []Record
	// Count is the number of records the server returned in this response.
	Count int
	// TotalCount is the total number of records matching the query on the
	// server, across all pages.
	TotalCount int
	// TotalCountKey is the name the server used for the total count, e.g.
	// "total_patent_count".
	TotalCountKey string
}

// decodeBody converts the raw response bytes to text using the character
// encoding declared in the Content-Type header, defaulting to UTF-8 when
// none is declared.
func decodeBody(body []byte, contentType string) (string, error) {
	charset := ""
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil {
			charset = params["charset"]
		}
	}
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		if !utf8.Valid(body) {
			return "", &DecodeError{Charset: "utf-8", Detail: "body is not valid UTF-8"}
		}
		return string(body), nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return "", &DecodeError{Charset: charset, Detail: "unsupported character encoding"}
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", &DecodeError{Charset: charset, Detail: err.Error()}
	}
	return string(decoded), nil
}

var totalCountKeyPattern = regexp.MustCompile(`^total_[a-z_]+_count$`)

// ParseResponse parses a response body and validates its top-level shape:
// exactly one record array named after the queried entity, an integer
// "count", and an integer total count named "total_<entity>_count". Any
// other shape yields a MalformedResponseError, even when the body arrived
// with status 200.
func ParseResponse(text string) (*QueryResult, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, &MalformedResponseError{Detail: "body is not a JSON object"}
	}
	if len(top) != 3 {
		return nil, &MalformedResponseError{
			Detail: "expected exactly 3 top-level keys, got " + keysString(top),
		}
	}
	res := &QueryResult{}
	countSeen := false
	for key, raw := range top {
		switch {
		case key == "count":
			if err := json.Unmarshal(raw, &res.Count); err != nil {
				return nil, &MalformedResponseError{Detail: "count is not an integer"}
			}
			countSeen = true
		case totalCountKeyPattern.MatchString(key):
			if err := json.Unmarshal(raw, &res.TotalCount); err != nil {
				return nil, &MalformedResponseError{Detail: key + " is not an integer"}
			}
			res.TotalCountKey = key
		default:
			// The server sends null instead of an empty array when nothing
			// matched.
			if string(raw) != "null" {
				if err := json.Unmarshal(raw, &res.Records); err != nil {
					return nil, &MalformedResponseError{
						Detail: key + " is not an array of records",
					}
				}
			}
			res.Entity = key
		}
	}
	if !countSeen {
		return nil, &MalformedResponseError{Detail: "missing count"}
	}
	if res.TotalCountKey == "" {
		return nil, &MalformedResponseError{Detail: "missing total count"}
	}
	if res.Entity == "" {
		return nil, &MalformedResponseError{Detail: "missing record array"}
	}
	if res.Count != len(res.Records) {
		internal.Warnf(
			"server reported count %d but returned %d records", res.Count, len(res.Records),
		)
	}
	return res, nil
}

func keysString(top map[string]json.RawMessage) string {
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "[" + strings.Join(keys, ", ") + "]"
}
