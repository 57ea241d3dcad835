package transforms

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// ErrUnknownTransform is returned when a transform name is not in the catalog.
var ErrUnknownTransform = errors.New("unknown transform")

// Func converts one field value into a table cell.
type Func func(v gjson.Result) Result

// Entry describes a catalog transform.
type Entry struct {
	Name    string
	Input   string
	Summary string
	Func    Func
}

var entries = []Entry{
	{"identity", "any", "value unchanged", Identity},
	{"if_present", "scalar", "value, or --- when absent", IfPresent},
	{"join_names", "array of objects", "names joined by comma, or (none)", JoinNames},
	{"nested", "object", "object as compact JSON, or (none)", Nested},
	{"nested_val", "object", "serialnumber, or (none)", NestedVal},
	{"nested_val_ip", "object", "ipaddress, or (none)", NestedValIP},
	{"nested_val_lldp", "object", "lldp_neighbor_portid_eno1, or (none)", NestedValLLDP},
	{"shallow_hash", "object", "key: value pairs, or (none)", ShallowHash},
	{"select_name", "object", "name, or --- when missing", SelectName},
	{"mac", "string", "hyphens replaced with colons, or ---", MAC},
	{"name", "object", "name, or --- when absent", Name},
	{"name_if_present", "object", "name, or --- when absent", Name},
	{"name_hide_nil", "object", "name, hides the column when absent", NameHideNil},
	{"count_column", "object", "count field", CountColumn},
	{"count", "array", "number of items", Count},
	{"count_hash", "object", "number of keys, 0 for non-objects", CountHash},
	{"event_msg", "event", "message cut after 51 characters, hides when absent", EventMsg},
	{"full_event_msg", "event", "full message, hides when absent", FullEventMsg},
	{"event_entities", "event", "task, policy, broker, repo, node and command", EventEntities},
	{"event_misc", "event", "attributes other than entities and message", EventMisc},
}

var catalog = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return m
}()

// Catalog returns every transform sorted by name.
func Catalog() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the transform names in sorted order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, bool) {
	e, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return e.Func, true
}

// Apply runs the named transform on v.
func Apply(name string, v gjson.Result) (Result, error) {
	fn, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return fn(v), nil
}
