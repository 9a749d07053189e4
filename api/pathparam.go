package api

import "strings"

// PathParam maps path template placeholder names to substitution values.
// It is built per invocation and read immutably during path rendering.
type PathParam map[string]string

// QueryParam maps query parameter names to values.
type QueryParam map[string]string

// Params builds a PathParam from alternating key/value pairs:
//
//	api.Params("id", "3", "rev", "latest")
//
// It panics when given an odd number of arguments; the mistake is always a
// programming error at the call site.
func Params(pairs ...string) PathParam {
	if len(pairs)%2 != 0 {
		panic("api: Params requires an even number of arguments")
	}
	params := make(PathParam, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return params
}

// Query builds a QueryParam from alternating key/value pairs, with the
// same panic rule as Params.
func Query(pairs ...string) QueryParam {
	if len(pairs)%2 != 0 {
		panic("api: Query requires an even number of arguments")
	}
	query := make(QueryParam, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		query[pairs[i]] = pairs[i+1]
	}
	return query
}

// ExpandPath substitutes every {name} placeholder in template with the
// matching value from params. Placeholders without a value fail with a
// templating error naming the placeholder; keys without a placeholder are
// ignored; repeated placeholders all receive the same value. Values are
// inserted literally; escaping, if any, happens at URL construction.
func ExpandPath(template string, params PathParam) (string, error) {
	var b strings.Builder
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			b.WriteString(template)
			return b.String(), nil
		}
		closing := strings.IndexByte(template[open:], '}')
		if closing < 0 {
			// Unmatched brace: keep the remainder as a literal.
			b.WriteString(template)
			return b.String(), nil
		}
		b.WriteString(template[:open])
		name := template[open+1 : open+closing]
		value, ok := params[name]
		if !ok {
			return "", NewTemplatingError(name)
		}
		b.WriteString(value)
		template = template[open+closing+1:]
	}
}
