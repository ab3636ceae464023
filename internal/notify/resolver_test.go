package notify

import (
	"encoding/json"
	"strings"
	"testing"
)

func testCache() *Context {
	return &Context{
		Users:    map[int64]string{7: "admin@example.com"},
		Roles:    map[int64]string{2: "Auditor"},
		Policies: map[int64]string{5: "Business hours"},
	}
}

func TestResolve_KnownActions(t *testing.T) {
	cache := testCache()

	tests := []struct {
		name    string
		action  string
		details string
		want    string
	}{
		{
			name:    "login success",
			action:  ActionLoginSuccess,
			details: `{"user_id":7}`,
			want:    "Пользователь admin@example.com вошёл в систему",
		},
		{
			name:    "role assigned",
			action:  ActionRoleAssigned,
			details: `{"user_id":7,"role_id":2}`,
			want:    "Пользователю admin@example.com назначена роль Auditor",
		},
		{
			name:    "policy attached",
			action:  ActionPolicyAttached,
			details: `{"role_id":2,"policy_id":5}`,
			want:    "К роли Auditor привязана политика Business hours",
		},
		{
			name:    "session isolated",
			action:  ActionSessionIsolated,
			details: `{"session_id":"sess-91"}`,
			want:    "SOC: сессия sess-91 изолирована",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.action, json.RawMessage(tc.details), cache)
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolve_UnknownActionFallsBackToCode(t *testing.T) {
	got := Resolve("CUSTOM_EVENT_X", json.RawMessage(`{}`), testCache())
	if got != "Событие: CUSTOM_EVENT_X" {
		t.Fatalf("Resolve() = %q, want %q", got, "Событие: CUSTOM_EVENT_X")
	}
}

func TestResolve_UnknownActionPrefersTextThenRaw(t *testing.T) {
	if got := Resolve("CUSTOM_EVENT_X", json.RawMessage(`{"text":"custom text"}`), nil); got != "custom text" {
		t.Fatalf("Resolve() = %q, want text field", got)
	}
	if got := Resolve("CUSTOM_EVENT_X", json.RawMessage(`{"raw":"raw line"}`), nil); got != "raw line" {
		t.Fatalf("Resolve() = %q, want raw field", got)
	}
}

func TestResolve_MissingCacheEntryDegradesToID(t *testing.T) {
	got := Resolve(ActionLoginSuccess, json.RawMessage(`{"user_id":99}`), testCache())
	if !strings.Contains(got, "#99") {
		t.Fatalf("Resolve() = %q, want #99 placeholder", got)
	}
}

func TestResolve_MalformedDetailsDoesNotThrow(t *testing.T) {
	got := Resolve(ActionLoginSuccess, json.RawMessage(`{not json`), testCache())
	if got == "" {
		t.Fatal("Resolve() returned empty string for malformed details")
	}
}

func TestResolve_NilCache(t *testing.T) {
	got := Resolve(ActionLoginSuccess, json.RawMessage(`{"user_id":7}`), nil)
	if !strings.Contains(got, "#7") {
		t.Fatalf("Resolve() = %q, want #7 placeholder", got)
	}
}
