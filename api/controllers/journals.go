package controllers

import (
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/gin-gonic/gin"
)

// Services
var journalsService = services.NewJournalsService()
var certificatesService = services.NewCertificatesService()

type JournalsController struct{}

// GetLearnerJournals godoc
// @Summary     Get learner journals
// @Description Journal accesses of the authenticated learner
// @Tags        journals
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     404 {object} res.Response{} "Journals integration disabled"
// @Router      /journals [get]
func (j *JournalsController) GetLearnerJournals(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	journals, err := journalsService.GetLearnerJournals(claims)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["journals"] = journals
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetLearnerCertificates godoc
// @Summary     Get learner certificates
// @Description Certificates of the authenticated learner
// @Tags        journals
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     404 {object} res.Response{} "User not found"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /journals/certificates [get]
func (j *JournalsController) GetLearnerCertificates(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	certificates, err := certificatesService.GetUserCertificates(claims)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["certificates"] = certificates
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
