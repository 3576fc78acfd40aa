package identifier

import (
	"regexp"
	"strings"
	"testing"
)

var canonicalForm = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func TestNewProducesCanonicalUppercaseUUID(t *testing.T) {
	id := New()
	if !canonicalForm.MatchString(id) {
		t.Fatalf("identifier %q is not an uppercase canonical UUID", id)
	}
	if id != strings.ToUpper(id) {
		t.Fatalf("identifier %q contains lowercase characters", id)
	}
}

func TestNewDoesNotCollide(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(New()) {
		t.Fatal("generated identifier failed validation")
	}
	if !IsValid("4f2e1b3c-9a7d-4e11-8c2f-6b1a2d3e4f50") {
		t.Fatal("lowercase canonical UUID should validate")
	}
	invalid := []string{
		"",
		"FIXED-ID",
		"4F2E1B3C9A7D4E118C2F6B1A2D3E4F50",
		"4F2E1B3C-9A7D-4E11-8C2F-6B1A2D3E4F5Z",
	}
	for _, value := range invalid {
		if IsValid(value) {
			t.Fatalf("expected %q to be invalid", value)
		}
	}
}
