package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/jung-kurt/gofpdf"
)

// UploadCertificatePDF renders the completion certificate and stores it in
// the assets bucket. Returns the object key.
func (c *CertificatesService) UploadCertificatePDF(
	user *models.User,
	course *models.Course,
	certificate *models.GeneratedCertificate,
) (string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	defer pdf.Close()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 30, settingsData.PLATFORM_NAME, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 12, "Certificado de finalización", "", 1, "C", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, user.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s", course.Org, course.Name), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(
		0,
		8,
		fmt.Sprintf("Modalidad %s - %s", certificate.Mode, time.Now().Format("02-01-2006")),
		"",
		1,
		"C",
		false,
		0,
		"",
	)

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return "", err
	}
	key := fmt.Sprintf("certificates/%s/%s.pdf", user.Username, course.Key)
	return aws.UploadFile(key, buffer.Bytes())
}
