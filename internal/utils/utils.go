package utils

// MappingSequence reports whether v is a decoded JSON array whose elements
// are all JSON objects, returning the converted elements. An empty array
// qualifies.
func MappingSequence(v any) ([]map[string]any, bool) {
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	elems := make([]map[string]any, 0, len(seq))
	for _, el := range seq {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, false
		}
		elems = append(elems, m)
	}
	return elems, true
}
