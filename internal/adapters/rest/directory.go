package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
)

// The employees resource embeds its designation, department, and location
// lookups as nested objects. JMESPath expressions flatten them into the
// domain record.
const (
	exprDesignation = "designations.title"
	exprDepartment  = "departments.name"
	exprLocation    = "locations.name"
	exprCity        = "locations.city"
)

const employeeSelect = "employee_code,employment_type,work_mode,joining_date," +
	"designations(title),departments(name),locations(name,city)"

const directorySelect = "user_id,employee_code,designations(title),departments(name)," +
	"profiles(id,email,first_name,last_name)"

type profileRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// ProfileByIdentity fetches the profile row keyed by the session's
// identity. An empty result set is the legitimate "no profile row yet"
// state.
func (c *Client) ProfileByIdentity(ctx context.Context, sess identity.Session) (*identity.Profile, error) {
	query := url.Values{
		"id":     {"eq." + sess.IdentityID},
		"select": {"id,email,first_name,last_name,phone,role"},
	}

	var rows []profileRow
	if err := c.restGet(ctx, sess, "/profiles", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &identity.Profile{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
		Role:      identity.ParseRole(row.Role),
	}, nil
}

// EmployeeRecordByProfileID fetches the employment record with its
// embedded lookups and flattens it into the domain shape.
func (c *Client) EmployeeRecordByProfileID(ctx context.Context, sess identity.Session, profileID string) (*directory.EmployeeRecord, error) {
	query := url.Values{
		"user_id": {"eq." + profileID},
		"select":  {employeeSelect},
	}

	var rows []map[string]any
	if err := c.restGet(ctx, sess, "/employees", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	record := &directory.EmployeeRecord{
		EmployeeCode:     stringField(row, "employee_code"),
		EmploymentType:   stringField(row, "employment_type"),
		WorkMode:         stringField(row, "work_mode"),
		DesignationTitle: searchString(exprDesignation, row),
		DepartmentName:   searchString(exprDepartment, row),
		LocationName:     searchString(exprLocation, row),
		LocationCity:     searchString(exprCity, row),
	}
	if raw := stringField(row, "joining_date"); raw != "" {
		record.JoiningDate = parseDate(raw)
	}
	return record, nil
}

// ListEmployees fetches directory rows with their embedded profiles and
// filters by the free-text query client-side.
func (c *Client) ListEmployees(ctx context.Context, sess identity.Session, search string) ([]directory.DirectoryEntry, error) {
	query := url.Values{
		"select": {directorySelect},
		"order":  {"employee_code.asc"},
	}

	var rows []map[string]any
	if err := c.restGet(ctx, sess, "/employees", query, &rows); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(search))
	entries := make([]directory.DirectoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := directory.DirectoryEntry{
			ProfileID:    searchString("profiles.id", row),
			Email:        searchString("profiles.email", row),
			EmployeeCode: stringField(row, "employee_code"),
			Designation:  searchString(exprDesignation, row),
			Department:   searchString(exprDepartment, row),
		}
		first := searchString("profiles.first_name", row)
		last := searchString("profiles.last_name", row)
		entry.FullName = strings.TrimSpace(first + " " + last)

		if q != "" &&
			!strings.Contains(strings.ToLower(entry.FullName), q) &&
			!strings.Contains(strings.ToLower(entry.Email), q) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// restGet issues an authorized GET against a /rest/v1 resource.
func (c *Client) restGet(ctx context.Context, sess identity.Session, resource string, query url.Values, out any) error {
	u := c.baseURL + restPrefix + resource + "?" + query.Encode()
	status, err := c.doJSON(ctx, http.MethodGet, u, sess.AccessToken, nil, out)
	if err != nil {
		return fmt.Errorf("backend %s: %w", resource, err)
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("backend %s: unexpected status %d", resource, status)
	}
	return nil
}

// searchString evaluates a JMESPath expression against a decoded row and
// returns the string result, or "" when the path is absent or non-string.
func searchString(expr string, row any) string {
	result, err := jmespath.Search(expr, row)
	if err != nil {
		return ""
	}
	s, _ := result.(string)
	return s
}

func stringField(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}

// parseDate accepts the backend's date-only format, falling back to
// RFC 3339 timestamps.
func parseDate(raw string) time.Time {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
