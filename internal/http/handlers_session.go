package httpx

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// SessionFeed exposes session state reads and change subscriptions.
// *service.SessionStore satisfies it.
type SessionFeed interface {
	Snapshot() service.Snapshot
	Subscribe(fn service.Subscriber) (cancel func())
}

// SessionHandlers provides HTTP handlers for reading session state.
type SessionHandlers struct {
	Feed   SessionFeed
	Logger *slog.Logger
}

func (h *SessionHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// userPayload is the JSON shape of the signed-in user.
type userPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
}

// sessionPayload is the JSON shape of /api/session responses and
// session-change events.
type sessionPayload struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	User          *userPayload `json:"user,omitempty"`
	Capabilities  []string     `json:"capabilities"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
}

// snapshotPayload converts a store snapshot to its wire shape. Capabilities
// is always present (possibly empty) so clients can gate UI without nil
// checks.
func snapshotPayload(snap service.Snapshot) sessionPayload {
	p := sessionPayload{
		Authenticated: snap.Authenticated(),
		Loading:       snap.Loading,
		Capabilities:  []string{},
	}

	if snap.Profile != nil {
		p.User = &userPayload{
			ID:        snap.Profile.ID,
			Email:     snap.Profile.Email,
			FirstName: snap.Profile.FirstName,
			LastName:  snap.Profile.LastName,
			FullName:  snap.Profile.FullName(),
			Phone:     snap.Profile.Phone,
			Role:      string(snap.Profile.Role),
			RoleLabel: snap.Profile.Role.Display(),
		}
		for _, c := range identity.CapabilitiesFor(snap.Profile.Role) {
			p.Capabilities = append(p.Capabilities, string(c))
		}
	}

	if snap.Session != nil && !snap.Session.ExpiresAt.IsZero() {
		exp := snap.Session.ExpiresAt
		p.ExpiresAt = &exp
	}

	return p
}

// Session returns the current session snapshot.
// GET /api/session.
func (h *SessionHandlers) Session(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, snapshotPayload(h.Feed.Snapshot()))
}

// Events streams session state changes as server-sent events. The first
// event carries the current snapshot; each store transition produces one
// more. The stream ends when the client disconnects.
// GET /api/session/events.
func (h *SessionHandlers) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "streaming_unsupported",
			Err:     fmt.Errorf("response writer does not support streaming"),
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Store callbacks run on the mutating goroutine and must not block, so
	// transitions are handed to this goroutine through a buffered channel.
	// When the client reads too slowly intermediate snapshots are dropped;
	// the latest one always gets through.
	updates := make(chan service.Snapshot, 8)
	cancel := h.Feed.Subscribe(func(snap service.Snapshot) {
		for {
			select {
			case updates <- snap:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			if err := writeSSE(w, snapshotPayload(snap)); err != nil {
				h.logger().DebugContext(ctx, "session event stream closed", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: session\ndata: %s\n\n", data)
	return err
}
