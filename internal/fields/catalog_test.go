package fields

import "testing"

func TestNameOfAndCodeOfAreInverse(t *testing.T) {
	for _, code := range Codes() {
		name, ok := NameOf(code)
		if !ok {
			t.Fatalf("NameOf(%q) not found", code)
		}
		back, ok := CodeOf(name)
		if !ok || back != code {
			t.Fatalf("CodeOf(%q) = %q, %v; want %q", name, back, ok, code)
		}
	}
}

func TestLookupsReportUnknown(t *testing.T) {
	if _, ok := NameOf("ZZ"); ok {
		t.Fatal("expected unknown code")
	}
	if _, ok := CodeOf("no such field"); ok {
		t.Fatal("expected unknown name")
	}
	if _, ok := CodeOf("Title"); ok {
		t.Fatal("name lookup must be exact")
	}
}

func TestCodesAreUniqueAndTwoCharacters(t *testing.T) {
	seen := map[Code]bool{}
	for _, code := range Codes() {
		if len(code) != 2 {
			t.Fatalf("code %q is not two characters", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
	if len(seen) != len(All()) {
		t.Fatalf("catalog size mismatch")
	}
}

func TestResolvePrefersCode(t *testing.T) {
	code, ok := Resolve("nt")
	if !ok || code != RelatedObject {
		t.Fatalf("Resolve(nt) = %q, %v", code, ok)
	}
	code, ok = Resolve("related_object.reference")
	if !ok || code != RelatedObject {
		t.Fatalf("Resolve(name) = %q, %v", code, ok)
	}
	if _, ok := Resolve("NT"); ok {
		t.Fatal("codes are case sensitive")
	}
}

func TestParseCodes(t *testing.T) {
	codes, unknown := ParseCodes(" TI, object_number,,bogus ")
	if len(codes) != 2 || codes[0] != Title || codes[1] != ObjectNumber {
		t.Fatalf("unexpected codes: %v", codes)
	}
	if len(unknown) != 1 || unknown[0] != "bogus" {
		t.Fatalf("unexpected unknown: %v", unknown)
	}
}
