package transforms

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Placeholders printed in place of absent values.
const (
	Missing = "---"
	None    = "(none)"
)

// Result is the outcome of a transform: either a printable cell or the
// signal that the column must be omitted for the current row.
type Result struct {
	Text   string
	Hidden bool
}

// Show returns a printable result.
func Show(text string) Result {
	return Result{Text: text}
}

// Hide returns the omit-column result.
func Hide() Result {
	return Result{Hidden: true}
}

// String returns the cell text, or an empty string for hidden results.
func (r Result) String() string {
	if r.Hidden {
		return ""
	}
	return r.Text
}

// Display returns the string form of a value: strings raw, numbers and
// booleans as written, null as "", objects and arrays as compact JSON.
func Display(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.JSON:
		return string(pretty.Ugly([]byte(v.Raw)))
	default:
		return v.String()
	}
}

// absent reports whether v is missing or JSON null.
func absent(v gjson.Result) bool {
	return v.Type == gjson.Null
}

// empty reports whether v is absent or a zero-length array or object.
func empty(v gjson.Result) bool {
	if absent(v) {
		return true
	}
	switch {
	case v.IsObject(), v.IsArray():
		n := 0
		v.ForEach(func(_, _ gjson.Result) bool {
			n++
			return false
		})
		return n == 0
	case v.Type == gjson.String:
		return v.Str == ""
	}
	return false
}

// field looks up key on an object without interpreting path syntax, so keys
// containing dots or wildcards are matched literally. The first occurrence
// wins for duplicated keys.
func field(obj gjson.Result, key string) (gjson.Result, bool) {
	var (
		found gjson.Result
		ok    bool
	)
	if !obj.IsObject() {
		return found, false
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

type pair struct {
	key   string
	value gjson.Result
}

func joinPairs(pairs []pair) string {
	if len(pairs) == 0 {
		return None
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.key)
		b.WriteString(": ")
		b.WriteString(Display(p.value))
	}
	return b.String()
}
