package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/handlers"
	"github.com/linskybing/crf-go/middleware"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/notify"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/services"
	"github.com/linskybing/crf-go/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.Storage) {

	// init
	repos := repositories.New()
	hub := notify.NewHub()
	svc := services.New(repos, store, hub)
	h := handlers.New(svc, repos, hub)
	gate := middleware.NewAuth(svc.Auth)

	r.Use(middleware.CORSMiddleware())

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.GET("/check-status", h.Crf.CheckStatus)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", h.Notification.Stream)

		lookups := auth.Group("/")
		{
			lookups.GET("/departments", h.Lookup.ListDepartments)
			lookups.GET("/categories", h.Lookup.ListCategories)
			lookups.GET("/factors", h.Lookup.ListFactors)
			lookups.GET("/pics", h.Lookup.ListPICs)
		}

		crfs := auth.Group("/crfs")
		{
			crfs.POST("", gate.Require(models.CapCreateCrf), h.Crf.CreateCrf)
			crfs.GET("/:id", h.Crf.GetCrf)
			crfs.DELETE("/:id", gate.Require(models.CapDelete), h.Crf.DeleteCrf)

			crfs.POST("/:id/approve", gate.Require(models.CapApprove), h.Crf.Approve)
			crfs.POST("/:id/approve-tp", gate.Require(models.CapApproveTP), h.Crf.ApproveByTP)
			crfs.POST("/:id/acknowledge", gate.Require(models.CapAcknowledge), h.Crf.Acknowledge)
			crfs.POST("/:id/assign-itd", gate.Require(models.CapAssignITD), h.Crf.AssignToITD)
			crfs.POST("/:id/assign-vendor", gate.Require(models.CapAssignVendor), h.Crf.AssignToVendor)
			crfs.POST("/:id/reassign-itd", gate.Require(models.CapReassignITD), h.Crf.ReassignToITD)
			crfs.POST("/:id/reassign-vendor", gate.Require(models.CapReassignVendor), h.Crf.ReassignToVendor)
			crfs.POST("/:id/in-progress", gate.Require(models.CapUpdateOwn), h.Crf.MarkInProgress)
			crfs.POST("/:id/complete", gate.Require(models.CapClose), h.Crf.MarkCompleted)
			crfs.PUT("/:id/remark", gate.Require(models.CapUpdateOwn), h.Crf.UpdateRemark)
			crfs.PUT("/:id/factor", gate.Require(models.CapUpdateOwn), h.Crf.UpdateFactor)
		}

		attachments := auth.Group("/attachments")
		{
			attachments.GET("/:id/download", h.Attachment.Download)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.GET("/unread-count", h.Notification.UnreadCount)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
		}

		reports := auth.Group("/reports")
		{
			reports.GET("/crf", gate.Require(models.CapViewReports), h.Report.ListCrfReport)
			reports.GET("/crf/export", gate.Require(models.CapViewReports), h.Report.ExportCrfReport)
			reports.GET("/stats", h.Report.Stats)
			reports.GET("/my-stats", h.Report.MyStats)
		}
	}
}
