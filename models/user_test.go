package models

import "testing"

func TestRoleValid(t *testing.T) {
	if !RoleStandard.Valid() {
		t.Error("standard (empty) role must be valid")
	}
	if !RoleAdmin.Valid() {
		t.Error("admin role must be valid")
	}
	for _, r := range []Role{"superuser", "ADMIN", "root", " "} {
		if r.Valid() {
			t.Errorf("role %q must be rejected", r)
		}
	}
}
