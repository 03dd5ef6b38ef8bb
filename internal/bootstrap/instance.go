package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// LoadInstanceID returns this installation's stable instance ID, creating
// and persisting a new one on first run. The ID scopes the session restore
// cache so parallel installations don't share sessions.
func LoadInstanceID(path string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
		// Corrupt file; fall through and mint a fresh ID.
	}

	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persist instance id: %w", err)
	}
	return id, nil
}
