package controllers

import (
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/gin-gonic/gin"
)

// Services
var validationService = services.NewValidationService()

type ValidationController struct{}

// GetCourseValidation godoc
// @Summary     Get course validation
// @Description Readiness checks: dates, assignments, grading policy, certificates and updates
// @Tags        validation
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Param       idCourse     path     string true  "Mongo ID Course"
// @Param       all          query    bool   false "Default for the other params"
// @Param       dates        query    bool   false "Include dates block"
// @Param       assignments  query    bool   false "Include assignments block"
// @Param       grades       query    bool   false "Include grades block"
// @Param       certificates query    bool   false "Include certificates block"
// @Param       updates      query    bool   false "Include updates block"
// @Success     200          {object} res.Response{}
// @Failure     400          {object} res.Response{} "Bad query"
// @Failure     403          {object} res.Response{} "user_mismatch"
// @Failure     404          {object} res.Response{} "Course not found"
// @Failure     503          {object} res.Response{} "DB Service Unavailable"
// @Router      /validation/{idCourse} [get]
func (v *ValidationController) GetCourseValidation(c *gin.Context) {
	idCourse := c.Param("idCourse")

	var query forms.ValidationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	validation, err := validationService.GetCourseValidation(idCourse, &query)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
			Code:    err.Code,
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Data:    validation,
	})
}
