package bookkeeper

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", "one")
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", true)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned an unexpected error: %v", err)
	}
	// Fields come out in Append order, zero-valued optionals are omitted.
	want := `{"b":2,"a":"one","set":true}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned an unexpected error: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON = %s, want {}", got)
	}
}
