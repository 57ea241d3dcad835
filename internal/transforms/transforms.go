// Package transforms turns single fields of a Razor API record into the short
// strings shown in CLI table cells.
//
// Every transform is a pure function over a gjson value. A missing key and a
// JSON null are treated alike, and values of an unexpected type fall back to
// the same branch as a missing value. The only non-text outcome is Hide, which
// tells the caller to leave the column out for the current row.
package transforms

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// EventMsgLimit is the message length above which event_msg truncates.
const EventMsgLimit = 50

// Ellipsis is appended to truncated event messages.
const Ellipsis = "..."

var (
	entityKeys = []string{"task", "policy", "broker", "repo", "node", "command"}
	miscSkip   = map[string]bool{
		"task": true, "policy": true, "broker": true, "repo": true,
		"node": true, "msg": true, "command": true,
	}
)

// Identity returns the display form of v unchanged.
func Identity(v gjson.Result) Result {
	return Show(Display(v))
}

// IfPresent returns Missing for absent values.
func IfPresent(v gjson.Result) Result {
	if absent(v) {
		return Show(Missing)
	}
	return Show(Display(v))
}

// JoinNames joins the name field of every item in an array.
func JoinNames(v gjson.Result) Result {
	if !v.IsArray() || empty(v) {
		return Show(None)
	}
	items := v.Array()
	names := make([]string, 0, len(items))
	for _, item := range items {
		name, _ := field(item, "name")
		names = append(names, Display(name))
	}
	return Show(strings.Join(names, ", "))
}

// Nested renders a whole object as compact JSON.
func Nested(v gjson.Result) Result {
	if !v.IsObject() || empty(v) {
		return Show(None)
	}
	return Show(Display(v))
}

func nestedValue(key string) Func {
	return func(v gjson.Result) Result {
		if !v.IsObject() || empty(v) {
			return Show(None)
		}
		val, _ := field(v, key)
		return Show(Display(val))
	}
}

// NestedVal shows the serial number from a facts object.
var NestedVal = nestedValue("serialnumber")

// NestedValIP shows the IP address from a facts object.
var NestedValIP = nestedValue("ipaddress")

// NestedValLLDP shows the LLDP neighbour port of eno1 from a facts object.
var NestedValLLDP = nestedValue("lldp_neighbor_portid_eno1")

// ShallowHash renders the top level of an object as "key: value" pairs.
func ShallowHash(v gjson.Result) Result {
	if !v.IsObject() {
		return Show(None)
	}
	var pairs []pair
	v.ForEach(func(k, val gjson.Result) bool {
		pairs = append(pairs, pair{key: k.Str, value: val})
		return true
	})
	return Show(joinPairs(pairs))
}

// SelectName returns the name of an object, or Missing when there is none.
func SelectName(v gjson.Result) Result {
	name, ok := field(v, "name")
	if !ok || absent(name) || name.Type == gjson.False {
		return Show(Missing)
	}
	return Show(Display(name))
}

// MAC rewrites a hyphen separated MAC address with colons.
func MAC(v gjson.Result) Result {
	if v.Type != gjson.String {
		return Show(Missing)
	}
	return Show(strings.ReplaceAll(v.Str, "-", ":"))
}

// Name returns the name field of an object, or Missing for anything else.
func Name(v gjson.Result) Result {
	if !v.IsObject() {
		return Show(Missing)
	}
	name, _ := field(v, "name")
	return Show(Display(name))
}

// NameHideNil is Name, except that a missing object hides the column.
func NameHideNil(v gjson.Result) Result {
	if !v.IsObject() {
		return Hide()
	}
	name, _ := field(v, "name")
	return Show(Display(name))
}

// CountColumn passes the count field of an object through.
func CountColumn(v gjson.Result) Result {
	count, _ := field(v, "count")
	return Show(Display(count))
}

// Count returns the length of an array. Anything else counts as zero.
func Count(v gjson.Result) Result {
	if !v.IsArray() {
		return Show("0")
	}
	return Show(strconv.Itoa(len(v.Array())))
}

// CountHash returns the number of keys in an object.
func CountHash(v gjson.Result) Result {
	if !v.IsObject() {
		return Show("0")
	}
	n := 0
	v.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return Show(strconv.Itoa(n))
}

// EventMsg shows the start of an event message. Messages longer than
// EventMsgLimit runes keep their first EventMsgLimit+1 runes followed by
// Ellipsis.
func EventMsg(v gjson.Result) Result {
	msg, ok := field(v, "msg")
	if !ok || absent(msg) {
		return Hide()
	}
	text := Display(msg)
	if utf8.RuneCountInString(text) <= EventMsgLimit {
		return Show(text)
	}
	runes := []rune(text)
	return Show(string(runes[:EventMsgLimit+1]) + Ellipsis)
}

// FullEventMsg shows the complete event message.
func FullEventMsg(v gjson.Result) Result {
	msg, ok := field(v, "msg")
	if !ok || absent(msg) {
		return Hide()
	}
	return Show(Display(msg))
}

// EventEntities lists the entities an event refers to, in the fixed order
// task, policy, broker, repo, node, command.
func EventEntities(v gjson.Result) Result {
	var pairs []pair
	for _, key := range entityKeys {
		if val, ok := field(v, key); ok {
			pairs = append(pairs, pair{key: key, value: val})
		}
	}
	return Show(joinPairs(pairs))
}

// EventMisc lists every event attribute that is neither an entity nor the
// message.
func EventMisc(v gjson.Result) Result {
	if !v.IsObject() {
		return Show(None)
	}
	var pairs []pair
	v.ForEach(func(k, val gjson.Result) bool {
		if !miscSkip[k.Str] {
			pairs = append(pairs, pair{key: k.Str, value: val})
		}
		return true
	})
	return Show(joinPairs(pairs))
}
