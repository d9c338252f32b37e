package dto

// CoursesQuery filters the course listing by semester.
type CoursesQuery struct {
	Semester string `form:"semester" validate:"required"`
}

// SectionsQuery filters the section listing by semester and course.
type SectionsQuery struct {
	Semester string `form:"semester" validate:"required"`
	Course   string `form:"course" validate:"required"`
}
