package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != typ {
			t.Errorf("round trip %v -> %s -> %v", typ, d, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Frob")); err == nil {
		t.Error("unknown type text should fail")
	}
	if Type(99).String() != "<unknown type>" {
		t.Errorf("String(99) = %q", Type(99).String())
	}
}
