package hr

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitGuards ...gin.HandlerFunc) {
	hrs := r.Group("/hr")
	{
		hrs.POST("/login", handler.Login)
		hrs.GET("/get-pending-leaves", handler.GetPendingLeaves)
		hrs.POST("/submit-leave-application",
			append(submitGuards, handler.SubmitLeaveApplication)...)
		hrs.PUT("/change-leave-application-status", handler.ChangeLeaveApplicationStatus)
		hrs.GET("/download-leave-applications", handler.DownloadLeaveApplications)
	}
}
