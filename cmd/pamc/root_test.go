package main

import "testing"

func TestRootCommand_RegistersConsoleCommands(t *testing.T) {
	t.Parallel()

	names := []string{
		"login", "logout", "whoami", "change-password", "reset-password",
		"users", "roles", "policies", "permissions",
		"sessions", "vault", "audit", "incidents", "soc",
		"settings", "notifications", "serve", "version",
	}
	for _, name := range names {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd == nil || cmd.Name() != name {
			t.Fatalf("%s command not registered: cmd=%v err=%v", name, cmd, err)
		}
	}
}

func TestCommandUsesStructuredLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "serve", args: []string{"serve"}, want: true},
		{name: "notifications watch", args: []string{"notifications", "watch"}, want: true},
		{name: "notifications list", args: []string{"notifications", "list"}, want: false},
		{name: "login", args: []string{"login"}, want: false},
		{name: "users list", args: []string{"users", "list"}, want: false},
		{name: "version", args: []string{"version"}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cmd, _, err := rootCmd.Find(tc.args)
			if err != nil {
				t.Fatalf("Find(%v) error = %v", tc.args, err)
			}
			if cmd == nil {
				t.Fatalf("Find(%v) returned nil command", tc.args)
			}

			if got := commandUsesStructuredLogging(cmd); got != tc.want {
				t.Fatalf("commandUsesStructuredLogging(%q) = %v, want %v", cmd.CommandPath(), got, tc.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	if id, err := parseID("user", "42"); err != nil || id != 42 {
		t.Fatalf("parseID(42) = %v, %v, want 42, nil", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-3"} {
		if _, err := parseID("user", bad); err == nil {
			t.Fatalf("parseID(%q) expected error", bad)
		}
	}
}
