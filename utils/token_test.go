package utils

import "testing"

func TestJwtGenerateAndValidate(t *testing.T) {
	token, err := JwtGenerate(42, "technician")
	if err != nil {
		t.Fatalf("JwtGenerate error: %v", err)
	}

	parsed, err := JwtValidate(token)
	if err != nil {
		t.Fatalf("JwtValidate error: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("expected valid token")
	}

	claims, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims.ID != 42 || claims.Role != "technician" {
		t.Fatalf("claims round-trip failed: id=%d role=%q", claims.ID, claims.Role)
	}
}

func TestJwtValidate_RejectsGarbage(t *testing.T) {
	if _, err := JwtValidate("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
