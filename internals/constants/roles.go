package constants

const (
	RoleAdmin  = "admin"
	RoleSchool = "school"
)

// Error templates used by the role middleware.
const (
	ErrOnlyAdminsCanAccess = "Only admin accounts may access %s."
	ErrOnlySchoolCanAccess = "Only school accounts may access %s."
)
