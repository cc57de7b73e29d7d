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
var assetsService = services.NewAssetsService()

type HealthController struct{}

// GetCourseAssets godoc
// @Summary     Get course assets
// @Description Paged listing of course assets with download links
// @Tags        health
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Param       idCourse    path     string true  "Mongo ID Course"
// @Param       page        query    int    false "Page, default 0"
// @Param       page_size   query    int    false "Page size, default 50"
// @Param       sort        query    string false "date_added | display_name"
// @Param       direction   query    string false "ascending | descending"
// @Param       asset_type  query    string false "Filter by content type"
// @Param       text_search query    string false "Filter by file name"
// @Success     200         {object} res.Response{}
// @Failure     400         {object} res.Response{} "Bad query"
// @Failure     403         {object} res.Response{} "user_mismatch"
// @Failure     404         {object} res.Response{} "Course not found"
// @Failure     503         {object} res.Response{} "DB Service Unavailable"
// @Router      /health/{idCourse} [get]
func (h *HealthController) GetCourseAssets(c *gin.Context) {
	idCourse := c.Param("idCourse")

	var query forms.AssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	assets, err := assetsService.GetCourseAssets(idCourse, &query)
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
		Data:    assets,
	})
}

// DownloadCourseAssets godoc
// @Summary     Download course assets
// @Description All assets of the course -> zip archive
// @Tags        health
// @Tags        contentstore
// @Accept      json
// @Produce     application/zip
// @Param       idCourse path string true "Mongo ID Course"
// @Sucess      200 {file} binary "Zip File"
// @Failure     403 {object} res.Response{} "user_mismatch"
// @Failure     404 {object} res.Response{} "No assets"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /health/{idCourse}/download [get]
func (h *HealthController) DownloadCourseAssets(c *gin.Context) {
	idCourse := c.Param("idCourse")

	c.Writer.Header().Set("Content-type", "application/zip")

	c.Stream(func(w io.Writer) bool {
		if err := assetsService.DownloadCourseAssets(idCourse, w); err != nil {
			c.AbortWithStatusJSON(err.StatusCode, &res.Response{
				Success: false,
				Message: err.Err.Error(),
			})
			return false
		}
		c.Writer.Header().Set(
			"Content-Disposition",
			"attachment; filename='assets.zip'",
		)
		return false
	})
}
