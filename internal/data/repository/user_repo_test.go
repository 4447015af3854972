package repository

import (
	"strings"
	"testing"
)

func TestBuildUserFilterQuery_NoFilters(t *testing.T) {
	query, args := buildUserFilterQuery(UserFilter{})

	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got:\n%s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildUserFilterQuery_SubstringFilters(t *testing.T) {
	query, args := buildUserFilterQuery(UserFilter{
		Name:    "ali",
		Email:   "example.com",
		Address: "street",
	})

	for _, clause := range []string{
		"name ILIKE '%' || $1 || '%'",
		"email ILIKE '%' || $2 || '%'",
		"address ILIKE '%' || $3 || '%'",
	} {
		if !strings.Contains(query, clause) {
			t.Fatalf("missing clause %q in:\n%s", clause, query)
		}
	}

	want := []any{"ali", "example.com", "street"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d", len(want), len(args))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d = %v, want %v", i, args[i], want[i])
		}
	}
}

// Role matches exactly, never as a substring, and filter values only ever
// appear as parameters.
func TestBuildUserFilterQuery_RoleExact(t *testing.T) {
	query, args := buildUserFilterQuery(UserFilter{Role: "store_owner"})

	if !strings.Contains(query, "role = $1") {
		t.Fatalf("expected exact role clause in:\n%s", query)
	}
	if strings.Contains(query, "store_owner") {
		t.Fatalf("filter value leaked into SQL text:\n%s", query)
	}
	if len(args) != 1 || args[0] != "store_owner" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUserFilterQuery_Combined(t *testing.T) {
	query, args := buildUserFilterQuery(UserFilter{Name: "bob", Role: "admin"})

	if !strings.Contains(query, "name ILIKE '%' || $1 || '%' AND role = $2") {
		t.Fatalf("unexpected clause ordering in:\n%s", query)
	}
	if len(args) != 2 || args[0] != "bob" || args[1] != "admin" {
		t.Fatalf("unexpected args: %v", args)
	}
}
