package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/api/controllers"
	"github.com/OpenCampus/Campus_BContentstore/api/docs"
	"github.com/OpenCampus/Campus_BContentstore/middlewares"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/settings"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in" + time.Until(info.ResetTime).String(),
	})
}

var settingsData = settings.GetSettings()

func init() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("No .env file found")
	}
}

func Init() {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap looger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/api/c/contentstore/swagger"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// Docs
	docs.SwaggerInfo.BasePath = "/api/c/contentstore"
	docs.SwaggerInfo.Version = "v1"
	docs.SwaggerInfo.Host = "localhost:8080"
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: uint(settingsData.RATE_LIMIT),
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Routes
	defaultRoles := []string{
		models.STUDENT,
		models.INSTRUCTOR,
		models.STAFF,
	}
	quality := router.Group(
		"/api/c/contentstore/quality",
		middlewares.JWTMiddleware(),
	)
	validation := router.Group(
		"/api/c/contentstore/validation",
		middlewares.JWTMiddleware(),
	)
	health := router.Group(
		"/api/c/contentstore/health",
		middlewares.JWTMiddleware(),
	)
	search := router.Group(
		"/api/c/contentstore/search",
		middlewares.JWTMiddleware(),
	)
	journals := router.Group(
		"/api/c/contentstore/journals",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	{
		// Init controllers
		qualityController := new(controllers.QualityController)
		validationController := new(controllers.ValidationController)
		healthController := new(controllers.HealthController)
		searchController := new(controllers.SearchController)
		journalsController := new(controllers.JournalsController)
		// Define routes
		// Quality
		quality.GET(
			"/:idCourse",
			middlewares.AuthorizedCourseAuthor(),
			qualityController.GetCourseQuality,
		)
		quality.GET(
			"/:idCourse/export",
			middlewares.AuthorizedCourseAuthor(),
			qualityController.ExportQuality,
		)
		// Validation
		validation.GET(
			"/:idCourse",
			middlewares.AuthorizedCourseAuthor(),
			validationController.GetCourseValidation,
		)
		// Health
		health.GET(
			"/:idCourse",
			middlewares.AuthorizedCourseAuthor(),
			healthController.GetCourseAssets,
		)
		health.GET(
			"/:idCourse/download",
			middlewares.AuthorizedCourseAuthor(),
			healthController.DownloadCourseAssets,
		)
		// Search
		search.GET(
			"/:idCourse",
			middlewares.AuthorizedCourseAuthor(),
			searchController.Search,
		)
		// Journals
		journals.GET("", journalsController.GetLearnerJournals)
		journals.GET("/certificates", journalsController.GetLearnerCertificates)
	}
	// Route docs
	router.GET("/api/c/contentstore/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Route healthz
	router.GET("/api/c/contentstore/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(); err != nil {
		log.Fatalf("Error init server")
	}
}
