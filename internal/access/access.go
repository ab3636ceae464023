// Package access flattens a user's role tree into the effective
// permission set shown by the console. Display-only: the backend is
// the sole authority on what a user may actually do.
package access

import (
	"sort"
	"strings"

	"github.com/open-pam/console/internal/api"
)

// Entry is one row of the effective-permissions view: a permission
// code plus every role and policy chain that contributes it.
type Entry struct {
	Code        string
	Description string
	Granted     bool
	Roles       []string
	Policies    []string
}

// EffectivePermissions walks roles, their attached policies, and the
// permissions underneath, deduplicating by permission code. Passing a
// non-empty catalog also surfaces explicit denied rows for codes no
// chain grants. The input is never mutated. Entries sort granted
// first, then lexicographically by code.
func EffectivePermissions(roles []api.Role, catalog []api.Permission) []Entry {
	byCode := make(map[string]*Entry)

	record := func(code, roleName, policyName string) {
		code = strings.TrimSpace(code)
		if code == "" {
			return
		}
		entry, ok := byCode[code]
		if !ok {
			entry = &Entry{Code: code, Description: Describe(code), Granted: true}
			byCode[code] = entry
		}
		entry.Roles = appendUnique(entry.Roles, roleName)
		entry.Policies = appendUnique(entry.Policies, policyName)
	}

	for _, role := range roles {
		for _, perm := range role.Permissions {
			record(perm.Code, role.Name, "")
		}
		for _, policy := range role.Policies {
			for _, perm := range policy.Permissions {
				record(perm.Code, role.Name, policy.Name)
			}
		}
	}

	for _, perm := range catalog {
		code := strings.TrimSpace(perm.Code)
		if code == "" {
			continue
		}
		if _, ok := byCode[code]; !ok {
			byCode[code] = &Entry{Code: code, Description: Describe(code)}
		}
	}

	out := make([]Entry, 0, len(byCode))
	for _, entry := range byCode {
		sort.Strings(entry.Roles)
		sort.Strings(entry.Policies)
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Granted != out[j].Granted {
			return out[i].Granted
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func appendUnique(values []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return values
	}
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
