package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/open-pam/console/internal/api"
)

type fakeDirectory struct {
	users      []api.User
	roles      []api.Role
	policies   []api.Policy
	usersErr   error
	rolesErr   error
	policyErr  error
	usersCalls int
}

func (f *fakeDirectory) ListUsers(context.Context) ([]api.User, error) {
	f.usersCalls++
	return f.users, f.usersErr
}

func (f *fakeDirectory) ListRoles(context.Context) ([]api.Role, error) {
	return f.roles, f.rolesErr
}

func (f *fakeDirectory) ListPolicies(context.Context) ([]api.Policy, error) {
	return f.policies, f.policyErr
}

func TestContextLoad_PopulatesAllMaps(t *testing.T) {
	dir := &fakeDirectory{
		users:    []api.User{{ID: 7, Email: "admin@example.com"}},
		roles:    []api.Role{{ID: 2, Name: "Auditor"}},
		policies: []api.Policy{{ID: 5, Name: "Business hours"}},
	}

	var cache Context
	cache.Load(context.Background(), dir)

	if got := cache.UserName(7); got != "admin@example.com" {
		t.Fatalf("UserName(7) = %q", got)
	}
	if got := cache.RoleName(2); got != "Auditor" {
		t.Fatalf("RoleName(2) = %q", got)
	}
	if got := cache.PolicyName(5); got != "Business hours" {
		t.Fatalf("PolicyName(5) = %q", got)
	}
}

func TestContextLoad_SettleAll(t *testing.T) {
	// A forbidden policy list must not block user and role names.
	dir := &fakeDirectory{
		users:     []api.User{{ID: 7, Email: "admin@example.com"}},
		roles:     []api.Role{{ID: 2, Name: "Auditor"}},
		policyErr: errors.New("forbidden"),
	}

	var cache Context
	cache.Load(context.Background(), dir)

	if got := cache.UserName(7); got != "admin@example.com" {
		t.Fatalf("UserName(7) = %q", got)
	}
	if got := cache.RoleName(2); got != "Auditor" {
		t.Fatalf("RoleName(2) = %q", got)
	}
	if got := cache.PolicyName(5); got != "#5" {
		t.Fatalf("PolicyName(5) = %q, want #5 fallback", got)
	}
}

func TestContextLoad_LoadsOnce(t *testing.T) {
	dir := &fakeDirectory{users: []api.User{{ID: 7, Email: "admin@example.com"}}}

	var cache Context
	cache.Load(context.Background(), dir)
	cache.Load(context.Background(), dir)

	if dir.usersCalls != 1 {
		t.Fatalf("usersCalls = %d, want 1", dir.usersCalls)
	}
}

func TestContextNames_NilMapsFallBack(t *testing.T) {
	var cache Context
	if got := cache.UserName(3); got != "#3" {
		t.Fatalf("UserName(3) = %q, want #3", got)
	}
}
