package models

import "testing"

func TestIsAdmin(t *testing.T) {
	admin := &User{Email: "admin@example.com", Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Fatalf("expected admin role to be recognized")
	}

	patient := &User{Email: "patient@example.com"}
	if patient.IsAdmin() {
		t.Fatalf("expected user without a role not to be admin")
	}
}

func TestIsAdmin_NilUser(t *testing.T) {
	var missing *User
	if missing.IsAdmin() {
		t.Fatalf("a missing user record must never count as admin")
	}
}
