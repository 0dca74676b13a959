package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/marslan-elation/Jobs-Handler/internal/auth"
)

// RegisterRoutes mounts the full API surface. Sign-in, sign-out and health
// are public; everything else sits behind the token gate.
func RegisterRoutes(r *gin.Engine, jobs *JobHandler, outreach *OutreachHandler, settings *SettingHandler, authH *AuthHandler, jwtSecret string) {
	api := r.Group("/api")

	api.GET("/health", HealthCheck)
	api.POST("/signin", authH.SignIn)
	api.POST("/signout", authH.SignOut)

	protected := api.Group("")
	protected.Use(auth.RequireAuth(jwtSecret))
	{
		// Job Routes
		protected.GET("/jobs", jobs.ListJobs)
		protected.POST("/jobs", jobs.CreateJob)
		protected.GET("/jobs/:id", jobs.GetJob)
		protected.PATCH("/jobs/:id", jobs.PatchJob)
		protected.DELETE("/jobs/:id", jobs.DeleteJob)
		protected.PATCH("/jobs/:id/toggle", jobs.ToggleJob)
		protected.GET("/jobs/:id/salary", jobs.JobSalary)

		// Outreach Routes
		protected.GET("/outreach", outreach.ListOutreach)
		protected.POST("/outreach", outreach.CreateOutreach)
		protected.GET("/outreach/:id", outreach.GetOutreach)
		protected.PATCH("/outreach/:id", outreach.PatchOutreach)
		protected.DELETE("/outreach/:id", outreach.DeleteOutreach)
		protected.PATCH("/outreach/:id/toggle", outreach.ToggleOutreach)

		// Settings Routes
		protected.GET("/settings/job-application", settings.GetSetting)
		protected.POST("/settings/job-application", settings.UpsertSetting)
	}
}
