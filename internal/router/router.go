package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/muhammaaddsafii-dev/BE-terestria/docs"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/middleware"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/handler"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/telemetry"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	AuthService     service.AuthService
	ProjectHandler  *handler.ProjectHandler
	GeoDataHandler  *handler.GeoDataHandler
	AdminLogHandler *handler.AdminLogHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name, d.Config.App.APIPrefix))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	docs.SwaggerInfo.BasePath = d.Config.App.APIPrefix
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(d.Config.App.APIPrefix)
	{
		api.Use(middleware.Authenticate(d.AuthService))
		api.Use(middleware.Require(middleware.StaffOnly))

		projects := api.Group("/projects")
		{
			projects.GET("/", d.ProjectHandler.ListProjects)
			projects.GET("/statistics/", d.ProjectHandler.GetProjectStatistics)
			projects.GET("/:id/", d.ProjectHandler.GetProject)
			projects.GET("/:id/geodata/", d.ProjectHandler.GetProjectGeoData)
		}

		geodata := api.Group("/geodata")
		{
			geodata.GET("/", d.GeoDataHandler.ListGeoData)
			geodata.GET("/statistics/", d.GeoDataHandler.GetGeoDataStatistics)
			geodata.GET("/export/", d.GeoDataHandler.ExportGeoData)
			geodata.GET("/:id/", d.GeoDataHandler.GetGeoData)
		}

		logs := api.Group("/logs")
		{
			logs.GET("/", d.AdminLogHandler.ListAdminLogs)
			logs.GET("/:id/", d.AdminLogHandler.GetAdminLog)
		}
	}
	return r
}
