package main

import "testing"

func TestEnvFallback(t *testing.T) {
	t.Setenv("PROTECTOR_SSH_ADDR", ":4000")
	t.Setenv("PROTECTOR_MAX_SESSIONS", "3")

	addr, maxSessions, idle := flagSSHAddr, flagMaxSessions, flagIdleTimeout
	t.Cleanup(func() { flagSSHAddr, flagMaxSessions, flagIdleTimeout = addr, maxSessions, idle })

	if err := serveCmd.Flags().Set("idle-timeout", "5"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROTECTOR_IDLE_TIMEOUT", "99")

	if err := envFallback(serveCmd); err != nil {
		t.Fatalf("envFallback() failed: %v", err)
	}
	if flagSSHAddr != ":4000" {
		t.Errorf("ssh = %q, expected :4000", flagSSHAddr)
	}
	if flagMaxSessions != 3 {
		t.Errorf("max sessions = %d, expected 3", flagMaxSessions)
	}
	// Flags given on the command line win
	if flagIdleTimeout != 5 {
		t.Errorf("idle timeout = %d, expected 5", flagIdleTimeout)
	}
}

func TestEnvFallbackBadNumber(t *testing.T) {
	t.Setenv("PROTECTOR_MAX_SESSIONS", "many")
	if err := envFallback(serveCmd); err == nil {
		t.Error("expected an error for a non-numeric value")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::1]:22":       "22",
		"nonsense":       "nonsense",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
