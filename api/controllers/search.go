package controllers

import (
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/gin-gonic/gin"
)

// Services
var searchService = services.NewSearchService()

type SearchController struct{}

// Search godoc
// @Summary     Search course content
// @Description Full-text search over the indexed content of the course
// @Tags        search
// @Tags        contentstore
// @Accept      json
// @Produce     json
// @Param       idCourse path     string true "Mongo ID Course"
// @Param       search   query    string true "Text to search"
// @Success     200      {object} res.Response{}
// @Failure     400      {object} res.Response{} "Bad query"
// @Failure     403      {object} res.Response{} "user_mismatch"
// @Failure     503      {object} res.Response{} "ES Service Unavailable"
// @Router      /search/{idCourse} [get]
func (s *SearchController) Search(c *gin.Context) {
	idCourse := c.Param("idCourse")

	var query forms.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	hits, err := searchService.Search(idCourse, query.Search)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["hits"] = hits
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
