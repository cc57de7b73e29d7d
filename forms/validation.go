package forms

// Query params of the validation endpoint
type ValidationQuery struct {
	All          bool  `form:"all"`
	Dates        *bool `form:"dates"`
	Assignments  *bool `form:"assignments"`
	Grades       *bool `form:"grades"`
	Certificates *bool `form:"certificates"`
	Updates      *bool `form:"updates"`
}

func (q *ValidationQuery) WantsDates() bool {
	return orDefault(q.Dates, q.All)
}

func (q *ValidationQuery) WantsAssignments() bool {
	return orDefault(q.Assignments, q.All)
}

func (q *ValidationQuery) WantsGrades() bool {
	return orDefault(q.Grades, q.All)
}

func (q *ValidationQuery) WantsCertificates() bool {
	return orDefault(q.Certificates, q.All)
}

func (q *ValidationQuery) WantsUpdates() bool {
	return orDefault(q.Updates, q.All)
}
