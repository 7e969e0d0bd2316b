package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{" user ", RoleUser},
		{"USER", RoleUser},
		{"moderator", Role("MODERATOR")},
		{"", Role("")},
	}

	for _, test := range tests {
		if got := ParseRole(test.in); got != test.want {
			t.Errorf("ParseRole(%q) = %q, want %q", test.in, got, test.want)
		}
	}

	if !RoleAdmin.Known() || !RoleUser.Known() {
		t.Error("USER and ADMIN should be known roles")
	}
	if Role("MODERATOR").Known() {
		t.Error("MODERATOR should not be a known role")
	}
}

func TestSessionComplete(t *testing.T) {
	var nilSession *Session
	if nilSession.Complete() {
		t.Error("nil session should not be complete")
	}

	full := &Session{ID: "u1", FullName: "Alice", Email: "a@x.com", Role: RoleUser}
	if !full.Complete() {
		t.Error("fully populated session should be complete")
	}

	partial := &Session{ID: "u1", Role: RoleUser}
	if partial.Complete() {
		t.Error("session missing fullName/email should not be complete")
	}
}

// Requirement: interests and visited countries decode from both the array
// form and the legacy comma-separated string form.
func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{
			name: "json array",
			in:   `["hiking","food"]`,
			want: StringList{"hiking", "food"},
		},
		{
			name: "comma separated string",
			in:   `"hiking, food,  museums"`,
			want: StringList{"hiking", "food", "museums"},
		},
		{
			name: "empty string",
			in:   `""`,
			want: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(test.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", test.in, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}

func TestEnvelopeDecode(t *testing.T) {
	raw := `{"success":true,"data":{"id":"u1","fullName":"Alice","email":"a@x.com","role":"USER"},"message":"ok"}`

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("Unmarshal envelope: %v", err)
	}

	if !env.Success || env.Message != "ok" {
		t.Errorf("envelope = %+v, want success with message ok", env)
	}

	var session Session
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatalf("Unmarshal data: %v", err)
	}
	if !session.Complete() {
		t.Errorf("decoded session incomplete: %+v", session)
	}
}
