package manager

import (
	"net/http"

	"github.com/PILLP-HO/pillp-lms/internal/directory"
	"github.com/PILLP-HO/pillp-lms/internal/leave"
	"github.com/PILLP-HO/pillp-lms/internal/shared/apperror"
	"github.com/PILLP-HO/pillp-lms/internal/shared/contextutil"
	"github.com/PILLP-HO/pillp-lms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory directory.Service
	leaves    leave.Service
	logger    *zap.Logger
}

func NewHandler(dir directory.Service, leaves leave.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("manager.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.handler")
	}
	return &Handler{directory: dir, leaves: leaves, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("manager request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	person, err := h.directory.Login(c.Request.Context(), directory.RoleManager, req.EmployeeCode, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, person, "")
}

// GetPendingLeaves lists employee applications awaiting this manager.
func (h *Handler) GetPendingLeaves(c *gin.Context) {
	code := c.Query("employeeCode")
	if code == "" {
		h.writeError(c, apperror.RequiredField("Employee Code"))
		return
	}

	pending, err := h.leaves.PendingForManager(c.Request.Context(), code)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pending, "")
}

// SubmitLeaveApplication files the manager's own leave into the staff chain.
func (h *Handler) SubmitLeaveApplication(c *gin.Context) {
	var req leave.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	if _, err := h.leaves.Submit(c.Request.Context(), directory.RoleManager, req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Leave application submitted successfully!")
}

func (h *Handler) ChangeLeaveApplicationStatus(c *gin.Context) {
	var req leave.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	approve := req.Status == leave.DecisionApproved
	if _, err := h.leaves.ChangeStatus(c.Request.Context(), leave.StageManager, req.LeaveID, approve); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Leave status updated!")
}
