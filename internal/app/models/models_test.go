package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"warden", RoleWarden, true},
		{"staff", RoleStaff, true},
		{"student", RoleStudent, true},
		{"STUDENT", RoleStudent, true},
		{" Warden ", RoleWarden, true},
		{"superuser", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
