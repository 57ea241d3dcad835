package transforms

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// absentValue is what gjson returns for a key that is not there.
var absentValue = gjson.Get(`{}`, "missing")

func TestPlaceholdersForAbsentInput(t *testing.T) {
	inputs := map[string]gjson.Result{
		"missing key": absentValue,
		"json null":   gjson.Parse(`null`),
	}
	tests := []struct {
		name     string
		fn       Func
		expected string
	}{
		{"if_present", IfPresent, Missing},
		{"join_names", JoinNames, None},
		{"nested", Nested, None},
		{"nested_val", NestedVal, None},
		{"nested_val_ip", NestedValIP, None},
		{"nested_val_lldp", NestedValLLDP, None},
		{"shallow_hash", ShallowHash, None},
		{"select_name", SelectName, Missing},
		{"mac", MAC, Missing},
		{"name", Name, Missing},
	}

	for _, tt := range tests {
		for label, in := range inputs {
			t.Run(tt.name+"/"+label, func(t *testing.T) {
				got := tt.fn(in)
				if got.Hidden {
					t.Fatalf("%s hid the column", tt.name)
				}
				if got.Text != tt.expected {
					t.Errorf("%s() = %q, want %q", tt.name, got.Text, tt.expected)
				}
			})
		}
	}
}

func TestPlaceholdersForEmptyCollections(t *testing.T) {
	tests := []struct {
		name     string
		fn       Func
		input    string
		expected string
	}{
		{"join_names empty array", JoinNames, `[]`, None},
		{"nested empty object", Nested, `{}`, None},
		{"nested_val empty object", NestedVal, `{}`, None},
		{"nested_val_ip empty object", NestedValIP, `{}`, None},
		{"nested_val_lldp empty object", NestedValLLDP, `{}`, None},
		{"shallow_hash empty object", ShallowHash, `{}`, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(gjson.Parse(tt.input))
			if got.Text != tt.expected {
				t.Errorf("got %q, want %q", got.Text, tt.expected)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"node1"`, "node1"},
		{`42`, "42"},
		{`true`, "true"},
		{`null`, ""},
		{`{ "a" : 1 }`, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := Identity(gjson.Parse(tt.input)); got.Text != tt.expected {
			t.Errorf("Identity(%s) = %q, want %q", tt.input, got.Text, tt.expected)
		}
	}
}

func TestIfPresent(t *testing.T) {
	if got := IfPresent(gjson.Parse(`"x"`)); got.Text != "x" {
		t.Errorf("IfPresent(x) = %q", got.Text)
	}
	if got := IfPresent(gjson.Parse(`false`)); got.Text != "false" {
		t.Errorf("IfPresent(false) = %q, want false", got.Text)
	}
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two names", `[{"name":"a"},{"name":"b"}]`, "a, b"},
		{"single", `[{"name":"only","id":"x"}]`, "only"},
		{"item without name", `[{"name":"a"},{"id":"b"}]`, "a, "},
		{"not an array", `{"name":"a"}`, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinNames(gjson.Parse(tt.input)); got.Text != tt.expected {
				t.Errorf("JoinNames() = %q, want %q", got.Text, tt.expected)
			}
		})
	}
}

func TestNested(t *testing.T) {
	got := Nested(gjson.Parse(`{"rule": ["=", ["fact", "f"], "v"], "n": 2}`))
	if got.Text != `{"rule":["=",["fact","f"],"v"],"n":2}` {
		t.Errorf("Nested() = %q", got.Text)
	}
	if got := Nested(gjson.Parse(`[1,2]`)); got.Text != None {
		t.Errorf("Nested(array) = %q, want %q", got.Text, None)
	}
}

func TestNestedValues(t *testing.T) {
	facts := gjson.Parse(`{
		"serialnumber": "SN123",
		"ipaddress": "10.0.0.5",
		"lldp_neighbor_portid_eno1": "Eth1/12"
	}`)
	tests := []struct {
		name     string
		fn       Func
		expected string
	}{
		{"serial", NestedVal, "SN123"},
		{"ip", NestedValIP, "10.0.0.5"},
		{"lldp", NestedValLLDP, "Eth1/12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(facts); got.Text != tt.expected {
				t.Errorf("got %q, want %q", got.Text, tt.expected)
			}
		})
	}

	if got := NestedValIP(gjson.Parse(`{"serialnumber":"x"}`)); got.Text != "" {
		t.Errorf("missing key should render empty, got %q", got.Text)
	}
}

func TestNestedValueKeysAreLiteral(t *testing.T) {
	// A path lookup would treat the dot as a separator.
	v := gjson.Parse(`{"ipaddress": {"x": 1}, "ip.address": "wrong"}`)
	if got := NestedValIP(v); got.Text != `{"x":1}` {
		t.Errorf("NestedValIP() = %q", got.Text)
	}
}

func TestShallowHash(t *testing.T) {
	got := ShallowHash(gjson.Parse(`{"b": 1, "a": "x", "c": {"d": true}, "n": null}`))
	want := `b: 1, a: x, c: {"d":true}, n: `
	if got.Text != want {
		t.Errorf("ShallowHash() = %q, want %q", got.Text, want)
	}
}

func TestSelectName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"name":"microkernel"}`, "microkernel"},
		{`{"name":null}`, Missing},
		{`{"name":false}`, Missing},
		{`{"id":"x"}`, Missing},
		{`"a string"`, Missing},
	}
	for _, tt := range tests {
		if got := SelectName(gjson.Parse(tt.input)); got.Text != tt.expected {
			t.Errorf("SelectName(%s) = %q, want %q", tt.input, got.Text, tt.expected)
		}
	}
}

func TestMAC(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"AA-BB-CC"`, "AA:BB:CC"},
		{`"52-54-00-a1-b2-c3"`, "52:54:00:a1:b2:c3"},
		{`"already:colon"`, "already:colon"},
		{`null`, Missing},
		{`12`, Missing},
	}
	for _, tt := range tests {
		if got := MAC(gjson.Parse(tt.input)); got.Text != tt.expected {
			t.Errorf("MAC(%s) = %q, want %q", tt.input, got.Text, tt.expected)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name(gjson.Parse(`{"name":"policy-1"}`)); got.Text != "policy-1" {
		t.Errorf("Name() = %q", got.Text)
	}
	if got := Name(gjson.Parse(`"policy-1"`)); got.Text != Missing {
		t.Errorf("Name(string) = %q, want %q", got.Text, Missing)
	}
	if got := Name(gjson.Parse(`{"id":"x"}`)); got.Text != "" {
		t.Errorf("Name(no name) = %q, want empty", got.Text)
	}
}

func TestNameHideNil(t *testing.T) {
	if got := NameHideNil(absentValue); !got.Hidden {
		t.Error("absent value should hide the column")
	}
	if got := NameHideNil(gjson.Parse(`null`)); !got.Hidden {
		t.Error("null should hide the column")
	}
	if got := NameHideNil(gjson.Parse(`7`)); !got.Hidden {
		t.Error("non-object should hide the column")
	}
	got := NameHideNil(gjson.Parse(`{"name":"broker-1"}`))
	if got.Hidden || got.Text != "broker-1" {
		t.Errorf("NameHideNil() = %+v", got)
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name     string
		fn       Func
		input    string
		expected string
	}{
		{"count empty", Count, `[]`, "0"},
		{"count three", Count, `["x","y","z"]`, "3"},
		{"count non-array", Count, `{"a":1}`, "0"},
		{"count absent", Count, `null`, "0"},
		{"count_hash empty", CountHash, `{}`, "0"},
		{"count_hash two", CountHash, `{"a":1,"b":2}`, "2"},
		{"count_hash string", CountHash, `"not a hash"`, "0"},
		{"count_column", CountColumn, `{"count": 12, "id": "x"}`, "12"},
		{"count_column missing", CountColumn, `{"id": "x"}`, ""},
		{"count_column non-object", CountColumn, `[1]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(gjson.Parse(tt.input)); got.Text != tt.expected {
				t.Errorf("got %q, want %q", got.Text, tt.expected)
			}
		})
	}
}

func TestEventMsg(t *testing.T) {
	long := strings.Repeat("x", 60)
	got := EventMsg(gjson.Parse(`{"msg":"` + long + `"}`))
	if got.Hidden {
		t.Fatal("message present, column should not hide")
	}
	if !strings.HasSuffix(got.Text, Ellipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got.Text)
	}
	if n := len(strings.TrimSuffix(got.Text, Ellipsis)); n != 51 {
		t.Errorf("kept %d characters, want 51", n)
	}

	if got := EventMsg(gjson.Parse(`{"msg":"short"}`)); got.Text != "short" {
		t.Errorf("EventMsg(short) = %q", got.Text)
	}

	exact := strings.Repeat("y", EventMsgLimit)
	if got := EventMsg(gjson.Parse(`{"msg":"` + exact + `"}`)); got.Text != exact {
		t.Errorf("message of exactly %d characters should not be cut, got %q", EventMsgLimit, got.Text)
	}

	if got := EventMsg(gjson.Parse(`{}`)); !got.Hidden {
		t.Error("missing msg should hide the column")
	}
	if got := EventMsg(gjson.Parse(`{"msg":null}`)); !got.Hidden {
		t.Error("null msg should hide the column")
	}
	if got := EventMsg(gjson.Parse(`"msg"`)); !got.Hidden {
		t.Error("non-object should hide the column")
	}
}

func TestEventMsgCountsRunes(t *testing.T) {
	long := strings.Repeat("é", 55)
	got := EventMsg(gjson.Parse(`{"msg":"` + long + `"}`))
	kept := strings.TrimSuffix(got.Text, Ellipsis)
	if n := utf8.RuneCountInString(kept); n != 51 {
		t.Errorf("kept %d runes, want 51", n)
	}
	if !utf8.ValidString(got.Text) {
		t.Error("truncation split a multi-byte rune")
	}
}

func TestFullEventMsg(t *testing.T) {
	long := strings.Repeat("z", 120)
	if got := FullEventMsg(gjson.Parse(`{"msg":"` + long + `"}`)); got.Text != long {
		t.Errorf("FullEventMsg() truncated to %d characters", len(got.Text))
	}
	if got := FullEventMsg(gjson.Parse(`{"severity":"info"}`)); !got.Hidden {
		t.Error("missing msg should hide the column")
	}
}

func TestEventEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"filters unknown keys", `{"task":"t","policy":"p","foo":"bar"}`, "task: t, policy: p"},
		{"fixed order", `{"node":"n1","command":"c","task":"t"}`, "task: t, node: n1, command: c"},
		{"none present", `{"foo":"bar"}`, None},
		{"not an object", `"x"`, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventEntities(gjson.Parse(tt.input)); got.Text != tt.expected {
				t.Errorf("EventEntities() = %q, want %q", got.Text, tt.expected)
			}
		})
	}
}

func TestEventMisc(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"only extra", `{"task":"t","msg":"m","extra":"e"}`, "extra: e"},
		{"document order", `{"z":1,"node":"n","a":2}`, "z: 1, a: 2"},
		{"nothing left", `{"msg":"m","repo":"r"}`, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventMisc(gjson.Parse(tt.input)); got.Text != tt.expected {
				t.Errorf("EventMisc() = %q, want %q", got.Text, tt.expected)
			}
		})
	}
}
