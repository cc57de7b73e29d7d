package forms

// NATS payloads of the certificates worker

type AwardCourseCertificateMsg struct {
	Username  string `json:"username" validate:"required"`
	CourseKey string `json:"course_key" validate:"required"`
}

type AwardProgramCertificatesMsg struct {
	Username string `json:"username" validate:"required"`
}
