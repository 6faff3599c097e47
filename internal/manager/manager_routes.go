package manager

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitGuards ...gin.HandlerFunc) {
	managers := r.Group("/manager")
	{
		managers.POST("/login", handler.Login)
		managers.GET("/get-pending-leaves", handler.GetPendingLeaves)
		managers.POST("/submit-leave-application",
			append(submitGuards, handler.SubmitLeaveApplication)...)
		managers.PUT("/change-leave-application-status", handler.ChangeLeaveApplicationStatus)
	}
}
