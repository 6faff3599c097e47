package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitGuards ...gin.HandlerFunc) {
	employees := r.Group("/employee")
	{
		employees.GET("/print-all-lists", handler.PrintAllLists)
		employees.POST("/login", handler.Login)
		employees.POST("/submit-leave-application",
			append(submitGuards, handler.SubmitLeaveApplication)...)
	}
}
