package loadout

import "testing"

func TestAttemptClauses(t *testing.T) {
	cred := Attempt{Source: SourceCred, Keys: []string{"a", "b"}}
	if cred.Clause() != "credential (a.b)" {
		t.Fatalf("unexpected clause: %s", cred.Clause())
	}
	env := Attempt{Source: SourceEnv, Keys: []string{"a", "b"}}
	if env.Clause() != "environment variable (A_B)" {
		t.Fatalf("unexpected clause: %s", env.Clause())
	}
}

func TestMissingValueErrorJoinsClauses(t *testing.T) {
	err := &MissingValueError{attempts: []Attempt{
		{Source: SourceEnv, Keys: []string{"token"}},
		{Source: SourceCred, Keys: []string{"token"}},
	}}
	expected := "required environment variable (TOKEN) or credential (token) is not set"
	if err.Error() != expected {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestMissingValueErrorAttemptsCopy(t *testing.T) {
	err := &MissingValueError{attempts: []Attempt{
		{Source: SourceCred, Keys: []string{"a"}},
	}}
	attempts := err.Attempts()
	if len(attempts) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(attempts))
	}
	attempts[0].Source = SourceEnv
	if err.Attempts()[0].Source != SourceCred {
		t.Fatal("expected Attempts to return copy")
	}
}

func TestInvalidValueErrorMessage(t *testing.T) {
	err := &InvalidValueError{Kind: "int", Raw: "4x2", Name: "DB_POOL"}
	if err.Error() != "invalid value for int (`4x2`) in DB_POOL" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
