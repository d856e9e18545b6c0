package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	origins := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, trusted := range origins {
			if origin == trusted {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Session-Id, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HireMe4U API is running"})
	})

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/setup", app.Handler.SetupAdmin)
			admin.POST("/login", app.Handler.LoginAdmin)
			admin.POST("/jobs", app.AdminAuthMiddleware(), app.Handler.CreateJob)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", app.Handler.ListJobs)
			jobs.GET("/filters/options", app.Handler.GetFilterOptions)
			jobs.GET("/:slug", app.Handler.GetJobBySlug)
		}

		upload := api.Group("/upload")
		{
			upload.GET("/template", app.Handler.DownloadTemplate)
			upload.POST("/bulk", app.AdminAuthMiddleware(), app.Handler.BulkUpload)
		}

		visitor := api.Group("/visitor")
		{
			visitor.POST("/track", app.Handler.TrackVisitor)
			visitor.GET("/stats", app.AdminAuthMiddleware(), app.Handler.VisitorStats)
			visitor.GET("/recent", app.AdminAuthMiddleware(), app.Handler.RecentVisitors)
		}

		analytics := api.Group("/analytics")
		{
			analytics.POST("/track", app.Handler.TrackEvent)
			analytics.GET("/stats", app.Handler.AnalyticsStats)
			analytics.GET("/detailed", app.Handler.DetailedAnalytics)
		}
	}

	return r
}
