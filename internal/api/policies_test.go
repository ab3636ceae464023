package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestUpdatePolicy_SendsExplicitZeroValues(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/policies/1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"p"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok"), time.Second)

	requireMFA := false
	sessionLimit := 0
	patch := PolicyPatch{RequireMFA: &requireMFA, SessionLimit: &sessionLimit}
	if _, err := c.UpdatePolicy(context.Background(), 1, patch); err != nil {
		t.Fatalf("UpdatePolicy() error = %v", err)
	}

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", gotBody, err)
	}
	if got, ok := sent["require_mfa"]; !ok || string(got) != "false" {
		t.Fatalf("require_mfa = %q (present=%v), want explicit false", got, ok)
	}
	if got, ok := sent["session_limit"]; !ok || string(got) != "0" {
		t.Fatalf("session_limit = %q (present=%v), want explicit 0", got, ok)
	}
	if _, ok := sent["name"]; ok {
		t.Fatalf("name present in patch body %s, want omitted", gotBody)
	}
}

func TestUpdatePolicy_OmitsUnsetFields(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":2,"name":"renamed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok"), time.Second)

	name := "renamed"
	if _, err := c.UpdatePolicy(context.Background(), 2, PolicyPatch{Name: &name}); err != nil {
		t.Fatalf("UpdatePolicy() error = %v", err)
	}

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", gotBody, err)
	}
	if len(sent) != 1 {
		t.Fatalf("patch body = %s, want only name", gotBody)
	}
	if string(sent["name"]) != `"renamed"` {
		t.Fatalf("name = %s, want %q", sent["name"], "renamed")
	}
}
