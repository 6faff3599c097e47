package partner

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	partners := r.Group("/partner")
	{
		partners.POST("/login", handler.Login)
		partners.GET("/get-pending-leaves", handler.GetPendingLeaves)
		partners.PUT("/change-leave-application-status", handler.ChangeLeaveApplicationStatus)
	}
}
