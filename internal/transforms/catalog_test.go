package transforms

import (
	"errors"
	"sort"
	"testing"

	"github.com/tidwall/gjson"
)

func TestCatalogNames(t *testing.T) {
	expected := []string{
		"count", "count_column", "count_hash", "event_entities", "event_misc",
		"event_msg", "full_event_msg", "identity", "if_present", "join_names",
		"mac", "name", "name_hide_nil", "name_if_present", "nested",
		"nested_val", "nested_val_ip", "nested_val_lldp", "select_name",
		"shallow_hash",
	}
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, want %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], expected[i])
		}
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, e := range Catalog() {
		if e.Func == nil {
			t.Errorf("%s has no function", e.Name)
		}
		if e.Summary == "" || e.Input == "" {
			t.Errorf("%s is missing its description", e.Name)
		}
	}
}

func TestApply(t *testing.T) {
	got, err := Apply("mac", gjson.Parse(`"AA-BB"`))
	if err != nil {
		t.Fatalf("Apply(mac) error: %v", err)
	}
	if got.Text != "AA:BB" {
		t.Errorf("Apply(mac) = %q", got.Text)
	}

	got, err = Apply("name_if_present", gjson.Parse(`null`))
	if err != nil {
		t.Fatalf("Apply(name_if_present) error: %v", err)
	}
	if got.Text != Missing {
		t.Errorf("Apply(name_if_present, null) = %q, want %q", got.Text, Missing)
	}

	got, err = Apply("event_msg", gjson.Parse(`{}`))
	if err != nil {
		t.Fatalf("hidden column must not be an error: %v", err)
	}
	if !got.Hidden {
		t.Error("Apply(event_msg, {}) should hide the column")
	}
}

func TestApplyUnknown(t *testing.T) {
	_, err := Apply("upcase", gjson.Parse(`"x"`))
	if !errors.Is(err, ErrUnknownTransform) {
		t.Fatalf("expected ErrUnknownTransform, got %v", err)
	}
	if _, ok := Lookup("upcase"); ok {
		t.Error("Lookup(upcase) should fail")
	}
}

func TestResultString(t *testing.T) {
	if Hide().String() != "" {
		t.Error("hidden result should print empty")
	}
	if Show("x").String() != "x" {
		t.Error("shown result should print its text")
	}
}
