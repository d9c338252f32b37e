package models

// Meeting is one recurring time block of a section as published by the
// catalog service. Days and Time are free text ("MWF", "10:30-11:20") or the
// literal "TBA".
type Meeting struct {
	Days       string `json:"days"`
	Time       string `json:"time"`
	Instructor string `json:"instructor"`
}

// Section is a course offering from the catalog. It is treated as immutable
// input; the optimizer never mutates it. ID is propagated unchanged so list
// keys stay stable on the consumer side.
type Section struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	CourseCode string    `json:"course_code"`
	Section    string    `json:"section"`
	Schedule   []Meeting `json:"schedule"`
	Seats      int       `json:"seats"`
	Waitlist   int       `json:"waitlist"`
}

// Semester identifies one term offered by the catalog.
type Semester struct {
	ID   string `json:"id"`
	Term string `json:"term"`
	Year int    `json:"year"`
}

// Course is a catalog course under which sections are listed.
type Course struct {
	Subject    string `json:"subject"`
	CourseCode string `json:"course_code"`
	Title      string `json:"title"`
	Units      int    `json:"units"`
}
