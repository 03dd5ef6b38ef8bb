package httpx

import (
	"context"

	"github.com/aeroedge/hr-ui-api/internal/service"
)

// snapshotKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type snapshotKey struct{}

// SetSnapshotInContext returns a child context that carries the given session snapshot.
func SetSnapshotInContext(ctx context.Context, snap service.Snapshot) context.Context {
	return context.WithValue(ctx, snapshotKey{}, snap)
}

// SnapshotFromContext returns the session snapshot from context and a boolean
// indicating presence.
func SnapshotFromContext(ctx context.Context) (service.Snapshot, bool) {
	if snap, ok := ctx.Value(snapshotKey{}).(service.Snapshot); ok {
		return snap, true
	}
	return service.Snapshot{}, false
}
