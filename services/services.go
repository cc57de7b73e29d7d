package services

import (
	"github.com/OpenCampus/Campus_BContentstore/aws_s3"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/settings"
	"github.com/OpenCampus/Campus_BContentstore/stack"
	"go.uber.org/zap"
)

// Models
var userModel = models.NewUserModel()
var courseModel = models.NewCourseModel()
var sectionModel = models.NewSectionModel()
var subsectionModel = models.NewSubsectionModel()
var unitModel = models.NewUnitModel()
var videoModel = models.NewVideoModel()
var certificateModel = models.NewCertificateModel()
var programModel = models.NewProgramModel()
var verificationModel = models.NewVerificationModel()
var courseAccessModel = models.NewCourseAccessModel()
var updateModel = models.NewUpdateModel()
var assetModel = models.NewAssetModel()

// Packages
var nats = stack.NewNats()
var aws = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()

// Logger
var logger, _ = zap.NewProduction()
