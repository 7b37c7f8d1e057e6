package types

import (
	"errors"
	"testing"
)

// mapDataset implements Dataset over a fixed attribute map.
type mapDataset struct {
	attrs map[string]any
	order []string
}

func (m *mapDataset) Attribute(name string) (any, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

func (m *mapDataset) AttributeNames() []string { return m.order }

func (m *mapDataset) Close() error { return nil }

func TestLookupString(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		present   bool
		wantState AttrState
		wantValue string
	}{
		{"absent", nil, false, AttrAbsent, ""},
		{"string", "EK60", true, AttrPresent, "EK60"},
		{"nul padded string", "EK80\x00\x00", true, AttrPresent, "EK80"},
		{"bytes", []byte("AZFP"), true, AttrPresent, "AZFP"},
		{"single element list", []string{"EK60"}, true, AttrPresent, "EK60"},
		{"single element json list", []any{"EK80"}, true, AttrPresent, "EK80"},
		{"two element list", []string{"EK60", "EK80"}, true, AttrInvalid, ""},
		{"integer", int32(60), true, AttrInvalid, ""},
		{"float", 1.5, true, AttrInvalid, ""},
		{"json object", map[string]any{"a": "b"}, true, AttrInvalid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &mapDataset{attrs: map[string]any{}}
			if tt.present {
				ds.attrs[KeywordsAttribute] = tt.value
			}

			got := LookupString(ds, KeywordsAttribute)
			if got.State != tt.wantState {
				t.Fatalf("State = %v, want %v", got.State, tt.wantState)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", got.Value, tt.wantValue)
			}
		})
	}
}

func TestAttrLookup_Display(t *testing.T) {
	if got := (AttrLookup{State: AttrPresent, Value: "XYZ"}).Display(); got != "XYZ" {
		t.Errorf("Display() = %q, want XYZ", got)
	}
	if got := (AttrLookup{State: AttrInvalid, Raw: int32(7)}).Display(); got != "7" {
		t.Errorf("Display() = %q, want 7", got)
	}
	if got := (AttrLookup{State: AttrAbsent}).Display(); got != "" {
		t.Errorf("Display() = %q, want empty", got)
	}
}

func TestAttributes(t *testing.T) {
	ds := &mapDataset{
		attrs: map[string]any{"keywords": "EK60", "title": "cruise", "date_created": "2019-01-01"},
		order: []string{"title", "keywords", "date_created", "missing"},
	}

	attrs := Attributes(ds)
	if len(attrs) != 3 {
		t.Fatalf("len(Attributes()) = %d, want 3", len(attrs))
	}

	names := SortedNames(attrs)
	want := []string{"date_created", "keywords", "title"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("SortedNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestOpenerFunc(t *testing.T) {
	sentinel := errors.New("boom")
	opener := OpenerFunc(func(path string) (Dataset, error) {
		return nil, sentinel
	})
	if _, err := opener.Open("x.nc"); !errors.Is(err, sentinel) {
		t.Errorf("Open() error = %v, want %v", err, sentinel)
	}
}
