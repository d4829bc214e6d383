package model

// Major учебная группа (направление) студента
type Major struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	EnrollmentYear int16  `json:"enrollment_year"`
}
