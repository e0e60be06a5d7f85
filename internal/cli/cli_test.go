package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "ana", "--role", "admin"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts := strings.Split(strings.TrimSpace(out.String()), "."); len(parts) != 3 {
		t.Fatalf("expected a JWT, got %q", out.String())
	}
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	rootCmd.SetArgs([]string{"token", "ana"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "create-tables", "token"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
