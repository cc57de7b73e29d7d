package services

import (
	"encoding/json"

	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/go-playground/validator/v10"
	natsPackage "github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const AWARD_QUEUE = "contentstore_certificates"

var validate = validator.New()

// ConsumeAwardCourseCertificates awards a single course certificate per message
func (c *CertificatesService) ConsumeAwardCourseCertificates() {
	nats.QueueSubscribe("award_course_certificates", AWARD_QUEUE, func(m *natsPackage.Msg) {
		var msg forms.AwardCourseCertificateMsg
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			logger.Error("Bad award_course_certificates payload", zap.Error(err))
			return
		}
		if err := validate.Struct(msg); err != nil {
			logger.Error("Invalid award_course_certificates payload", zap.Error(err))
			return
		}
		if err := c.AwardCourseCertificates(msg.Username, msg.CourseKey); err != nil {
			logger.Error(
				"Could not award course certificate",
				zap.String("username", msg.Username),
				zap.String("course_key", msg.CourseKey),
				zap.Error(err),
			)
			return
		}
		logger.Info(
			"Course certificate awarded",
			zap.String("username", msg.Username),
			zap.String("course_key", msg.CourseKey),
		)
	})
}

// ConsumeGetUserCertificates answers certificate lookups from other services
func (c *CertificatesService) ConsumeGetUserCertificates() {
	nats.Subscribe("get_user_certificates", func(m *natsPackage.Msg) {
		payload, err := nats.DecodeDataNest(m.Data)
		if err != nil {
			return
		}
		username, ok := payload["username"].(string)
		if !ok {
			return
		}
		certificates, errRes := c.GetUserCertificates(&Claims{
			Username: username,
		})
		if errRes != nil {
			return
		}

		certificatesJson, err := json.Marshal(certificates)
		if err != nil {
			return
		}
		m.RespondMsg(&natsPackage.Msg{
			Data:    certificatesJson,
			Reply:   m.Reply,
			Subject: m.Subject,
		})
	})
}

// ConsumeAwardProgramCertificates awards every completed program of the user
func (c *CertificatesService) ConsumeAwardProgramCertificates() {
	nats.QueueSubscribe("award_program_certificates", AWARD_QUEUE, func(m *natsPackage.Msg) {
		var msg forms.AwardProgramCertificatesMsg
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			logger.Error("Bad award_program_certificates payload", zap.Error(err))
			return
		}
		if err := validate.Struct(msg); err != nil {
			logger.Error("Invalid award_program_certificates payload", zap.Error(err))
			return
		}
		if err := c.AwardProgramCertificates(msg.Username); err != nil {
			logger.Error(
				"Could not award program certificates",
				zap.String("username", msg.Username),
				zap.Error(err),
			)
			return
		}
		logger.Info(
			"Program certificates awarded",
			zap.String("username", msg.Username),
		)
	})
}
