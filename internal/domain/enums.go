package domain

type CourseStatus string

const (
	StatusPlanned    CourseStatus = "planned"
	StatusRegistered CourseStatus = "registered"
	StatusActive     CourseStatus = "active"
	StatusFinished   CourseStatus = "finished"
)

// ValidCourseStatuses is the canonical set of accepted course status strings.
var ValidCourseStatuses = map[string]bool{
	"planned": true, "registered": true, "active": true, "finished": true,
}

// StatusLabels maps each course status to its display label.
var StatusLabels = map[CourseStatus]string{
	StatusPlanned:    "Planned",
	StatusRegistered: "Registered",
	StatusActive:     "Active",
	StatusFinished:   "Finished",
}

type Category string

const (
	CategoryRequiredMath Category = "required_math"
	CategoryRequiredCS   Category = "required_cs"
	CategoryElective     Category = "elective"
	CategorySeminar      Category = "seminar"
	CategoryWorkshop     Category = "workshop"
)

// ValidCategories is the canonical set of accepted catalog category strings.
var ValidCategories = map[string]bool{
	"required_math": true, "required_cs": true, "elective": true,
	"seminar": true, "workshop": true,
}

// CategoryLabels maps each category to its display label.
var CategoryLabels = map[Category]string{
	CategoryRequiredMath: "Required (Math)",
	CategoryRequiredCS:   "Required (CS)",
	CategoryElective:     "Elective",
	CategorySeminar:      "Seminar",
	CategoryWorkshop:     "Workshop",
}

type TaskKind string

const (
	TaskAssignment TaskKind = "assignment"
	TaskExam       TaskKind = "exam"
)

// ValidTaskKinds is the canonical set of accepted task kind strings.
var ValidTaskKinds = map[string]bool{
	"assignment": true, "exam": true,
}
