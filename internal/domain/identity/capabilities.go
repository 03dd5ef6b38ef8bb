package identity

// Capability is a named permission derived from a profile's role. Screens
// consult capabilities through Can and never compare raw role strings, so
// permission logic lives in exactly one place.
type Capability string

const (
	// CapViewEmployeeDirectory allows browsing the employee directory.
	CapViewEmployeeDirectory Capability = "VIEW_EMPLOYEE_DIRECTORY"
	// CapViewReports allows the reports and analytics screens.
	CapViewReports Capability = "VIEW_REPORTS"
	// CapApproveLeave allows acting on other employees' leave requests.
	CapApproveLeave Capability = "APPROVE_LEAVE"
	// CapManageOrganization allows org-level administration.
	CapManageOrganization Capability = "MANAGE_ORGANIZATION"
)

// AllCapabilities lists every defined capability in stable order.
func AllCapabilities() []Capability {
	return []Capability{
		CapViewEmployeeDirectory,
		CapViewReports,
		CapApproveLeave,
		CapManageOrganization,
	}
}

// roleGrants is the fixed role → capability table. Roles outside the table
// (including RoleUnknown) get no capabilities: fail closed, never open.
var roleGrants = map[Role][]Capability{
	RoleAdmin: {
		CapViewEmployeeDirectory,
		CapViewReports,
		CapApproveLeave,
		CapManageOrganization,
	},
	RoleHR: {
		CapViewEmployeeDirectory,
		CapViewReports,
		CapApproveLeave,
	},
	RoleManager: {
		CapViewEmployeeDirectory,
		CapViewReports,
	},
	RoleEmployee: {},
}

// CapabilitiesFor returns the capability set for a role. It is total and
// deterministic: every invocation with the same role yields the same set,
// and unrecognized roles yield the empty set.
func CapabilitiesFor(role Role) []Capability {
	grants, ok := roleGrants[role]
	if !ok {
		return []Capability{}
	}
	out := make([]Capability, len(grants))
	copy(out, grants)
	return out
}

// Can reports whether the profile's role grants the capability.
// A nil profile never has capabilities.
func Can(profile *Profile, capability Capability) bool {
	if profile == nil {
		return false
	}
	for _, c := range roleGrants[profile.Role] {
		if c == capability {
			return true
		}
	}
	return false
}
