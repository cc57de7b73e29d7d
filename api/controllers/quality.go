package controllers

import (
	"io"
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/gin-gonic/gin"
)

// Services
var qualityService = services.NewQualityService()

type QualityController struct{}

// GetCourseQuality godoc
// @Summary     Get course quality
// @Description Aggregates over the course tree: sections, subsections, units and videos
// @Tags        quality
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Param       idCourse    path     string true  "Mongo ID Course"
// @Param       all         query    bool   false "Default for the other params"
// @Param       sections    query    bool   false "Include sections aggregate"
// @Param       subsections query    bool   false "Include subsections aggregate"
// @Param       units       query    bool   false "Include units aggregate"
// @Param       videos      query    bool   false "Include videos aggregate"
// @Success     200         {object} res.Response{}
// @Failure     400         {object} res.Response{} "Bad query"
// @Failure     403         {object} res.Response{} "user_mismatch"
// @Failure     404         {object} res.Response{} "Course not found"
// @Failure     503         {object} res.Response{} "DB Service Unavailable"
// @Router      /quality/{idCourse} [get]
func (q *QualityController) GetCourseQuality(c *gin.Context) {
	idCourse := c.Param("idCourse")

	var query forms.QualityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	quality, err := qualityService.GetCourseQuality(idCourse, &query)
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
		Data:    quality,
	})
}

// ExportQuality godoc
// @Summary     Export course quality
// @Description Full quality report -> export to Excel
// @Tags        quality
// @Tags        contentstore
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       idCourse path string true "Mongo ID Course"
// @Sucess      200 {file} io.Writer "Excel File"
// @Failure     403 {object} res.Response{} "user_mismatch"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /quality/{idCourse}/export [get]
func (q *QualityController) ExportQuality(c *gin.Context) {
	idCourse := c.Param("idCourse")

	c.Writer.Header().Set(
		"Content-type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)

	c.Stream(func(w io.Writer) bool {
		file, err := qualityService.ExportQuality(idCourse, w)
		if err != nil {
			c.AbortWithStatusJSON(err.StatusCode, &res.Response{
				Success: false,
				Message: err.Err.Error(),
			})
			return false
		}

		c.Writer.Header().Set(
			"Content-Disposition",
			"attachment; filename='quality.xlsx'",
		)
		if err := file.Close(); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
				Success: false,
				Message: err.Error(),
			})
			return false
		}
		return false
	})
}
