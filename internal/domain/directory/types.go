package directory

// Package directory contains domain types for HR directory records linked
// to profiles by identity reference. A profile without an employee record
// is a normal "not yet onboarded" state, not an error.

import "time"

// EmployeeRecord is the employment row the backend may hold for a profile.
// Designation, department, and location come from embedded lookups and may
// be unset.
type EmployeeRecord struct {
	EmployeeCode     string    `json:"employee_code"`
	EmploymentType   string    `json:"employment_type"`
	WorkMode         string    `json:"work_mode"`
	JoiningDate      time.Time `json:"joining_date"`
	DesignationTitle string    `json:"designation_title,omitempty"`
	DepartmentName   string    `json:"department_name,omitempty"`
	LocationName     string    `json:"location_name,omitempty"`
	LocationCity     string    `json:"location_city,omitempty"`
}

// DirectoryEntry is a single row of the employee directory listing.
type DirectoryEntry struct {
	ProfileID    string `json:"profile_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Department   string `json:"department,omitempty"`
}
