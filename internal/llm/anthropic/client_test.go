package anthropic

import "testing"

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "claude-sonnet-4-5"); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
	if _, err := NewClient("key", "claude-sonnet-4-5"); err != nil {
		t.Fatalf("NewClient: %v", err)
	}
}
