package middlewares

import (
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/services"
	"github.com/gin-gonic/gin"
)

// AuthorizedCourseAuthor gates contentstore routes to users with author
// access over :idCourse. Non-authors get a structured 403.
func AuthorizedCourseAuthor() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, exists := services.NewClaimsFromContext(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}

		idCourse := ctx.Param("idCourse")
		hasAccess, err := services.HasCourseAuthorAccess(idCourse, claims)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		if !hasAccess {
			ctx.AbortWithStatusJSON(http.StatusForbidden, &res.Response{
				Success: false,
				Message: "The user requested does not have the required permissions.",
				Code:    "user_mismatch",
			})
			return
		}
		ctx.Next()
	}
}
