// Package notify turns backend audit codes into the human-readable
// feed shown by the console, and carries the live WebSocket watcher.
package notify

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/open-pam/console/internal/api"
)

// directory is the slice of the backend API the context cache needs.
// *api.Client satisfies it.
type directory interface {
	ListUsers(context.Context) ([]api.User, error)
	ListRoles(context.Context) ([]api.Role, error)
	ListPolicies(context.Context) ([]api.Policy, error)
}

// Context is a best-effort, load-once id-to-name cache used to enrich
// notification text. A missing entry degrades to a raw id; it never
// gates rendering.
type Context struct {
	Users    map[int64]string
	Roles    map[int64]string
	Policies map[int64]string

	loaded bool
}

// Load populates the cache with three independent list fetches. The
// fetches settle independently: an operator without, say, the policy
// list permission still gets user and role names, and the failed list
// stays an empty map. Subsequent calls are no-ops.
func (c *Context) Load(ctx context.Context, dir directory) {
	if c.loaded {
		return
	}
	c.loaded = true
	c.Users = map[int64]string{}
	c.Roles = map[int64]string{}
	c.Policies = map[int64]string{}

	var g errgroup.Group
	g.Go(func() error {
		users, err := dir.ListUsers(ctx)
		if err != nil {
			return nil
		}
		for _, user := range users {
			c.Users[user.ID] = user.Email
		}
		return nil
	})
	g.Go(func() error {
		roles, err := dir.ListRoles(ctx)
		if err != nil {
			return nil
		}
		for _, role := range roles {
			c.Roles[role.ID] = role.Name
		}
		return nil
	})
	g.Go(func() error {
		policies, err := dir.ListPolicies(ctx)
		if err != nil {
			return nil
		}
		for _, policy := range policies {
			c.Policies[policy.ID] = policy.Name
		}
		return nil
	})
	_ = g.Wait()
}

// UserName resolves a user id to its display name, falling back to a
// "#id" placeholder.
func (c *Context) UserName(id int64) string {
	if name, ok := c.Users[id]; ok && name != "" {
		return name
	}
	return "#" + strconv.FormatInt(id, 10)
}

func (c *Context) RoleName(id int64) string {
	if name, ok := c.Roles[id]; ok && name != "" {
		return name
	}
	return "#" + strconv.FormatInt(id, 10)
}

func (c *Context) PolicyName(id int64) string {
	if name, ok := c.Policies[id]; ok && name != "" {
		return name
	}
	return "#" + strconv.FormatInt(id, 10)
}
