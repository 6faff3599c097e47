package hrmanager

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitGuards ...gin.HandlerFunc) {
	hrManagers := r.Group("/hr-manager")
	{
		hrManagers.POST("/login", handler.Login)
		hrManagers.POST("/submit-leave-application",
			append(submitGuards, handler.SubmitLeaveApplication)...)
	}
}
