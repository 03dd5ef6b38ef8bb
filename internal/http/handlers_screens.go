package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// ScreenHandlers renders the per-tab JSON payloads. Each handler is a thin
// projection of the session store plus, where needed, a directory read; they
// hold no state of their own.
type ScreenHandlers struct {
	Directory *service.DirectoryService
	Logger    *slog.Logger
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (h *ScreenHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *ScreenHandlers) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// roleBadgeColor maps a role to its badge accent color.
func roleBadgeColor(role identity.Role) string {
	switch role {
	case identity.RoleAdmin:
		return "#dc2626"
	case identity.RoleHR:
		return "#2563eb"
	case identity.RoleManager:
		return "#f59e0b"
	case identity.RoleEmployee:
		return "#16a34a"
	default:
		return "#64748b"
	}
}

type roleBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func badgeFor(role identity.Role) roleBadge {
	return roleBadge{Label: role.Display(), Color: roleBadgeColor(role)}
}

// Dashboard returns the home screen payload: greeting, name, role badge,
// status cards, and capability-independent quick actions.
// GET /api/screens/dashboard.
func (h *ScreenHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := SnapshotFromContext(r.Context())
	if !ok || snap.Profile == nil {
		writeProfilePending(w)
		return
	}

	greeting := "Good Afternoon"
	if h.now().Hour() < 12 {
		greeting = "Good Morning"
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"greeting": greeting,
		"name":     snap.Profile.FullName(),
		"role":     badgeFor(snap.Profile.Role),
		"stats": []map[string]string{
			{"label": "Today's Status", "value": "Not Checked In"},
			{"label": "Leave Balance", "value": "-- days"},
		},
		"quick_actions": []map[string]string{
			{"id": "mark_attendance", "title": "Mark Attendance"},
			{"id": "apply_leave", "title": "Apply for Leave"},
		},
	})
}

// Profile returns the profile screen payload: contact info, role badge, and
// the linked employment record when the user has been onboarded.
// GET /api/screens/profile.
func (h *ScreenHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	snap, ok := SnapshotFromContext(r.Context())
	if !ok || snap.Profile == nil || snap.Session == nil {
		writeProfilePending(w)
		return
	}

	payload := map[string]any{
		"profile":   profilePayload(snap.Profile),
		"role":      badgeFor(snap.Profile.Role),
		"onboarded": false,
	}

	record, err := h.Directory.EmployeeRecord(r.Context(), *snap.Session, snap.Profile.ID)
	if err != nil {
		// The profile screen still renders without the employment card.
		h.logger().WarnContext(r.Context(), "employee record fetch failed", "error", err)
	}
	if record != nil {
		payload["onboarded"] = true
		payload["employment"] = employmentPayload(record)
	}

	WriteJSON(w, http.StatusOK, payload)
}

// Employees returns the directory screen payload. Reaching this handler
// implies the directory capability; the middleware enforces it.
// GET /api/screens/employees?q=<search>.
func (h *ScreenHandlers) Employees(w http.ResponseWriter, r *http.Request) {
	snap, ok := SnapshotFromContext(r.Context())
	if !ok || snap.Session == nil {
		writeProfilePending(w)
		return
	}

	query := r.URL.Query().Get("q")
	entries, err := h.Directory.Employees(r.Context(), *snap.Session, query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "backend_unavailable", Err: err})
		return
	}

	list := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		list = append(list, map[string]string{
			"profile_id":    e.ProfileID,
			"full_name":     e.FullName,
			"email":         e.Email,
			"employee_code": e.EmployeeCode,
			"designation":   e.Designation,
			"department":    e.Department,
		})
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"employees":   list,
		"query":       query,
		"empty_state": "No employees yet",
	})
}

// Attendance returns the attendance screen placeholder payload.
// GET /api/screens/attendance.
func (h *ScreenHandlers) Attendance(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "Not Checked In",
		"modes": []map[string]string{
			{"id": "office", "title": "Office Check-In"},
			{"id": "wfh", "title": "Work From Home"},
		},
	})
}

// Leave returns the leave tracker screen placeholder payload.
// GET /api/screens/leave.
func (h *ScreenHandlers) Leave(w http.ResponseWriter, r *http.Request) {
	snap, _ := SnapshotFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"balance":     map[string]string{"empty_state": "No leave balance available"},
		"requests":    map[string]string{"empty_state": "No leave requests yet"},
		"can_approve": snap.Can(identity.CapApproveLeave),
	})
}

// Reports returns the reports screen payload: the report category catalog.
// Reaching this handler implies the reports capability.
// GET /api/screens/reports.
func (h *ScreenHandlers) Reports(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"categories": []map[string]string{
			{"id": "1", "title": "Employee Information", "color": "#2563eb"},
			{"id": "2", "title": "Attendance Reports", "color": "#16a34a"},
			{"id": "3", "title": "Leave Tracker", "color": "#f59e0b"},
			{"id": "4", "title": "Time Tracker", "color": "#8b5cf6"},
		},
	})
}

// writeProfilePending answers screen requests that arrive while the session
// exists but the profile has not resolved yet.
func writeProfilePending(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusServiceUnavailable,
		ErrCode: "profile_pending",
		Err:     errors.New("profile not resolved yet"),
	})
}

func profilePayload(p *identity.Profile) map[string]any {
	return map[string]any{
		"id":         p.ID,
		"email":      p.Email,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"full_name":  p.FullName(),
		"phone":      p.Phone,
	}
}

func employmentPayload(rec *directory.EmployeeRecord) map[string]any {
	payload := map[string]any{
		"employee_code":   rec.EmployeeCode,
		"employment_type": rec.EmploymentType,
		"work_mode":       rec.WorkMode,
		"designation":     rec.DesignationTitle,
		"department":      rec.DepartmentName,
		"location":        rec.LocationName,
		"location_city":   rec.LocationCity,
	}
	if !rec.JoiningDate.IsZero() {
		payload["joining_date"] = rec.JoiningDate.Format("2006-01-02")
	}
	return payload
}
