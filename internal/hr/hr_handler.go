package hr

import (
	"net/http"
	"path/filepath"

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
	l := zap.L().Named("hr.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hr.handler")
	}
	return &Handler{directory: dir, leaves: leaves, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("hr request failed",
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

	person, err := h.directory.Login(c.Request.Context(), directory.RoleHR, req.EmployeeCode, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, person, "")
}

// GetPendingLeaves lists everything awaiting the HR stage: manager-approved
// employee applications and partner-approved staff applications.
func (h *Handler) GetPendingLeaves(c *gin.Context) {
	pending, err := h.leaves.PendingForHR(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pending, "")
}

func (h *Handler) SubmitLeaveApplication(c *gin.Context) {
	var req leave.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	if _, err := h.leaves.Submit(c.Request.Context(), directory.RoleHR, req); err != nil {
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
	if _, err := h.leaves.ChangeStatus(c.Request.Context(), leave.StageHR, req.LeaveID, approve); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Leave status updated!")
}

// DownloadLeaveApplications streams one of the two ledger workbooks.
func (h *Handler) DownloadLeaveApplications(c *gin.Context) {
	var origin leave.Origin
	switch c.Query("type") {
	case "employee":
		origin = leave.OriginEmployee
	case "hr":
		origin = leave.OriginStaff
	default:
		h.writeError(c, apperror.InvalidField("Type"))
		return
	}

	path := h.leaves.ExportPath(origin)
	c.FileAttachment(path, filepath.Base(path))
}
