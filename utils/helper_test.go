package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in       string
		expected bool
	}{
		{"tech@lab.example.com", true},
		{"first.last+tag@clinic.ph", true},
		{"no-at-sign", false},
		{"user@", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.expected {
			t.Fatalf("IsValidEmail(%q) expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}

func TestExecTemplate_ConditionalClause(t *testing.T) {
	sqlT := `SELECT 1 {{- if .sectionId }} WHERE section_id = @sectionId {{- end }}`

	withFilter, err := ExecTemplate(sqlT, map[string]interface{}{"sectionId": 3})
	if err != nil {
		t.Fatalf("ExecTemplate error: %v", err)
	}
	if withFilter != "SELECT 1 WHERE section_id = @sectionId" {
		t.Fatalf("unexpected rendered sql: %q", withFilter)
	}

	withoutFilter, err := ExecTemplate(sqlT, map[string]interface{}{"sectionId": 0})
	if err != nil {
		t.Fatalf("ExecTemplate error: %v", err)
	}
	if withoutFilter != "SELECT 1" {
		t.Fatalf("expected clause omitted, got %q", withoutFilter)
	}
}

func TestDereferencePtr(t *testing.T) {
	v := 7
	if got := DereferencePtr(&v); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := DereferencePtr[int](nil); got != 0 {
		t.Fatalf("expected zero value, got %d", got)
	}
	if got := DereferencePtr[string](nil, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestNilIfEmpty(t *testing.T) {
	if NilIfEmpty("") != nil {
		t.Fatalf("empty string should be nil")
	}
	if p := NilIfEmpty("x"); p == nil || *p != "x" {
		t.Fatalf("non-empty string should round-trip")
	}
	if NilIfEmpty(0) != nil {
		t.Fatalf("zero int should be nil")
	}
}
