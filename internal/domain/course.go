package domain

import "fmt"

// PlannedCourse is a catalog entry the user has added to their study plan.
// Credits are copied from the catalog at add time and not re-derived, so a
// later catalog edit does not rewrite plan history.
type PlannedCourse struct {
	ID       string       `json:"id"`
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Credits  int          `json:"nz"`
	Status   CourseStatus `json:"status"`
	Grade    *string      `json:"grade"`
	Semester string       `json:"semester"`
	Year     string       `json:"year"`
	Comments string       `json:"comments"`
}

// PlannedFromCatalog builds a new planned course from a catalog entry.
// The caller assigns the ID according to the backend in use.
func PlannedFromCatalog(e CatalogEntry, semester, year string) *PlannedCourse {
	return &PlannedCourse{
		Code:     e.Code,
		Name:     e.Name,
		Credits:  e.Credits,
		Status:   StatusPlanned,
		Semester: semester,
		Year:     year,
	}
}

// ValidateStatus checks that s is a known course status.
func ValidateStatus(s string) (CourseStatus, error) {
	if !ValidCourseStatuses[s] {
		return "", fmt.Errorf("unknown status %q (want planned, registered, active or finished)", s)
	}
	return CourseStatus(s), nil
}

// Plan is the list of planned courses for one identity.
type Plan []PlannedCourse

// FindByCode returns the planned course with the given catalog code, or nil.
func (p Plan) FindByCode(code string) *PlannedCourse {
	for i := range p {
		if p[i].Code == code {
			return &p[i]
		}
	}
	return nil
}

// FindByID returns the planned course with the given document ID, or nil.
func (p Plan) FindByID(id string) *PlannedCourse {
	for i := range p {
		if p[i].ID == id {
			return &p[i]
		}
	}
	return nil
}

// ContainsCode reports whether a course with the given code is already planned.
func (p Plan) ContainsCode(code string) bool {
	return p.FindByCode(code) != nil
}

// CreditsWithStatus sums the credit weights of courses in the given status.
func (p Plan) CreditsWithStatus(status CourseStatus) int {
	total := 0
	for _, c := range p {
		if c.Status == status {
			total += c.Credits
		}
	}
	return total
}
