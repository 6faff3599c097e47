package leave

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PILLP-HO/pillp-lms/internal/directory"
	"github.com/PILLP-HO/pillp-lms/internal/events"
	leaveerrors "github.com/PILLP-HO/pillp-lms/internal/leave/errors"
	"github.com/PILLP-HO/pillp-lms/internal/notify"

	"go.uber.org/zap"
)

// Stage names the approval step implied by the invoking endpoint. The engine
// trusts the route to identify the stage; it does not re-check that the
// authenticated caller is the legitimate current-stage approver.
type Stage string

const (
	StageManager Stage = "manager"
	StageHR      Stage = "hr"
	StagePartner Stage = "partner"
)

const (
	dateLayout      = "2006-01-02"
	shortDateLayout = "02-Jan-2006"
	minReasonRunes  = 10
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	// Submit validates and files a new leave application for the given
	// submitter role, resolves the first-stage approver and notifies them.
	Submit(ctx context.Context, submitterRole directory.Role, req SubmitLeaveRequest) (*Record, error)

	// ChangeStatus applies one approval-stage decision to the record with the
	// given id and notifies the next stage (on approval) or the submitter.
	ChangeStatus(ctx context.Context, stage Stage, leaveID string, approve bool) (*Record, error)

	PendingForManager(ctx context.Context, managerCode string) ([]Record, error)
	PendingForHR(ctx context.Context) ([]Record, error)
	PendingForPartner(ctx context.Context) ([]Record, error)

	// ExportPath returns the backing workbook for an origin, for downloads.
	ExportPath(origin Origin) string
}

type service struct {
	employeeLeaves Repository
	staffLeaves    Repository
	directory      directory.Service
	notifier       notify.Dispatcher
	logger         *zap.Logger
}

func NewService(
	employeeLeaves, staffLeaves Repository,
	dir directory.Service,
	notifier notify.Dispatcher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		employeeLeaves: employeeLeaves,
		staffLeaves:    staffLeaves,
		directory:      dir,
		notifier:       notifier,
		logger:         l,
	}
}

func (s *service) Submit(ctx context.Context, submitterRole directory.Role, req SubmitLeaveRequest) (*Record, error) {
	s.logger.Debug("submit leave requested",
		zap.String("role", string(submitterRole)),
		zap.String("employee_code", req.EmployeeCode),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	reason := strings.TrimSpace(req.LeaveReason)
	if utf8.RuneCountInString(reason) < minReasonRunes {
		return nil, leaveerrors.ErrReasonTooShort
	}

	from, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	to, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	// Equal dates are a single-day leave and are allowed.
	if from.After(to) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	submitter, err := s.directory.FindSubmitter(ctx, submitterRole, req.EmployeeCode)
	if err != nil {
		return nil, err
	}

	repo := s.staffLeaves
	firstApproved := StatusPartnerApproved
	if submitterRole == directory.RoleEmployee {
		repo = s.employeeLeaves
		firstApproved = StatusManagerApproved
	}

	outstanding, err := repo.ListWhere(ctx, func(rec Record) bool {
		return strings.EqualFold(rec.Code, submitter.Code) &&
			(rec.Status == StatusPending || rec.Status == firstApproved)
	})
	if err != nil {
		return nil, err
	}
	if len(outstanding) > 0 {
		s.logger.Warn("submit leave rejected, application outstanding",
			zap.String("employee_code", submitter.Code),
			zap.String("outstanding_status", outstanding[0].Status),
		)
		return nil, leaveerrors.ErrAlreadyPending
	}

	today := time.Now().UTC().Format(dateLayout)
	rec := Record{
		ID:             GenerateLeaveID(),
		Role:           s.roleLiteral(ctx, submitterRole, submitter.Code),
		Code:           submitter.Code,
		Name:           submitter.Name,
		WhatsApp:       submitter.WhatsApp,
		Email:          submitter.Email,
		Designation:    submitter.Designation,
		Department:     submitter.Department,
		WorkLocation:   submitter.WorkLocation,
		FromDate:       from.Format(dateLayout),
		ToDate:         to.Format(dateLayout),
		Reason:         reason,
		Status:         StatusPending,
		SubmissionDate: today,
		LastUpdated:    today,
	}

	var evt events.LeaveNotificationRequested
	if submitterRole == directory.RoleEmployee {
		manager, err := s.directory.ResolveManager(ctx, submitter.Department, submitter.WorkLocation)
		if err != nil {
			return nil, err
		}
		rec.ManagerCode = manager.Code
		evt = events.LeaveNotificationRequested{
			LeaveID:  rec.ID,
			Template: notify.TemplateNewLeaveRequest,
			To:       notify.FormatWhatsAppNumber(manager.WhatsApp),
			Vars: map[string]string{
				"1": submitter.Name,
				"2": submitter.Code,
				"3": submitter.Designation,
				"4": submitter.WorkLocation,
				"5": shortDate(rec.FromDate),
				"6": shortDate(rec.ToDate),
				"7": reason,
			},
		}
	} else {
		partner, err := s.directory.ResolveDutyPartner(ctx)
		if err != nil {
			return nil, err
		}
		evt = events.LeaveNotificationRequested{
			LeaveID:  rec.ID,
			Template: notify.TemplateHRLeaveSubmission,
			To:       notify.FormatWhatsAppNumber(partner.WhatsApp),
			Vars: map[string]string{
				"1": submitter.Name,
				"2": submitter.WorkLocation,
				"3": shortDate(rec.FromDate),
				"4": shortDate(rec.ToDate),
				"5": reason,
			},
		}
	}

	if err := repo.Append(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("leave application submitted",
		zap.String("leave_id", rec.ID),
		zap.String("role", rec.Role),
		zap.String("employee_code", rec.Code),
	)

	s.dispatch(ctx, evt)
	return &rec, nil
}

// roleLiteral resolves the Role column value. HR-Manager submitters are
// recorded as HR when they also appear in the HR roster, otherwise Manager.
func (s *service) roleLiteral(ctx context.Context, submitterRole directory.Role, code string) string {
	switch submitterRole {
	case directory.RoleEmployee:
		return "Employee"
	case directory.RoleManager:
		return "Manager"
	case directory.RoleHR:
		return "HR"
	case directory.RoleHRManager:
		if _, err := s.directory.FindSubmitter(ctx, directory.RoleHR, code); err == nil {
			return "HR"
		}
		return "Manager"
	default:
		return string(submitterRole)
	}
}

func (s *service) ChangeStatus(ctx context.Context, stage Stage, leaveID string, approve bool) (*Record, error) {
	s.logger.Debug("change leave status requested",
		zap.String("stage", string(stage)),
		zap.String("leave_id", leaveID),
		zap.Bool("approve", approve),
	)

	repo, rec, err := s.findForStage(ctx, stage, leaveID)
	if err != nil {
		return nil, err
	}

	target, err := targetStatus(stage, rec, approve)
	if err != nil {
		s.logger.Warn("change leave status invalid for stage",
			zap.String("leave_id", leaveID),
			zap.String("stage", string(stage)),
			zap.String("current_status", rec.Status),
		)
		return nil, err
	}

	submitter, err := s.findRecordSubmitter(ctx, stage, rec)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format(dateLayout)
	updated, err := repo.Update(ctx, leaveID, func(r *Record) {
		r.Status = target
		r.LastUpdated = today
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("leave status updated",
		zap.String("leave_id", leaveID),
		zap.String("status", updated.Status),
	)

	if evt, ok := s.buildDecisionEvent(ctx, stage, repo.Origin(), updated, submitter, approve); ok {
		s.dispatch(ctx, evt)
	}
	return updated, nil
}

// findForStage locates the record in the collection(s) the stage acts on.
// HR acts on whichever collection holds the id, employee-origin first.
func (s *service) findForStage(ctx context.Context, stage Stage, leaveID string) (Repository, *Record, error) {
	switch stage {
	case StageManager:
		rec, err := s.employeeLeaves.FindByID(ctx, leaveID)
		return s.employeeLeaves, rec, err
	case StagePartner:
		rec, err := s.staffLeaves.FindByID(ctx, leaveID)
		return s.staffLeaves, rec, err
	default:
		if rec, err := s.employeeLeaves.FindByID(ctx, leaveID); err == nil {
			return s.employeeLeaves, rec, nil
		}
		rec, err := s.staffLeaves.FindByID(ctx, leaveID)
		return s.staffLeaves, rec, err
	}
}

// targetStatus enforces the state machine: a stage may only act on a record
// currently awaiting it.
func targetStatus(stage Stage, rec *Record, approve bool) (string, error) {
	switch stage {
	case StageManager:
		if rec.Status != StatusPending {
			return "", leaveerrors.ErrNotAwaitingStage
		}
		if approve {
			return StatusManagerApproved, nil
		}
		return StatusManagerRejected, nil
	case StagePartner:
		if rec.Status != StatusPending {
			return "", leaveerrors.ErrNotAwaitingStage
		}
		if approve {
			return StatusPartnerApproved, nil
		}
		return StatusPartnerRejected, nil
	default:
		if rec.Status != StatusManagerApproved && rec.Status != StatusPartnerApproved {
			return "", leaveerrors.ErrNotAwaitingStage
		}
		if approve {
			return StatusHRApproved, nil
		}
		return StatusHRRejected, nil
	}
}

// findRecordSubmitter resolves the submitter's directory entry, searching the
// rosters the invoking stage can be acting for.
func (s *service) findRecordSubmitter(ctx context.Context, stage Stage, rec *Record) (*directory.Person, error) {
	switch stage {
	case StageManager:
		return s.directory.FindAnyByCode(ctx, rec.Code, directory.RoleEmployee)
	case StagePartner:
		return s.directory.FindAnyByCode(ctx, rec.Code,
			directory.RoleHR, directory.RoleManager, directory.RoleHRManager)
	default:
		return s.directory.FindAnyByCode(ctx, rec.Code,
			directory.RoleEmployee, directory.RoleManager, directory.RoleHR, directory.RoleHRManager)
	}
}

// buildDecisionEvent selects the template and recipient for a decision.
// Approvals inform the next stage's actor; rejections and final HR decisions
// inform the submitter. Returns false when the recipient cannot be resolved;
// that failure is a notification concern and never unwinds the transition.
func (s *service) buildDecisionEvent(
	ctx context.Context,
	stage Stage,
	origin Origin,
	rec *Record,
	submitter *directory.Person,
	approve bool,
) (events.LeaveNotificationRequested, bool) {
	evt := events.LeaveNotificationRequested{LeaveID: rec.ID}

	switch stage {
	case StageManager:
		if approve {
			hr, err := s.directory.ResolveDutyHR(ctx)
			if err != nil {
				s.logger.Warn("manager approval notification skipped", zap.Error(err))
				return evt, false
			}
			evt.Template = notify.TemplateManagerApproval
			evt.To = notify.FormatWhatsAppNumber(hr.WhatsApp)
			evt.Vars = map[string]string{
				"1": submitter.Name,
				"2": submitter.Code,
				"3": submitter.Department,
				"4": submitter.WorkLocation,
			}
			return evt, true
		}
		evt.Template = notify.TemplateManagerRejection
		evt.To = notify.FormatWhatsAppNumber(submitter.WhatsApp)
		evt.Vars = map[string]string{"1": submitter.Name}
		return evt, true

	case StagePartner:
		if approve {
			hr, err := s.directory.ResolveDutyHR(ctx)
			if err != nil {
				s.logger.Warn("partner approval notification skipped", zap.Error(err))
				return evt, false
			}
			evt.Template = notify.TemplatePartnerApproval
			evt.To = notify.FormatWhatsAppNumber(hr.WhatsApp)
			evt.Vars = map[string]string{
				"1": submitter.Name,
				"2": submitter.Code,
				"3": submitter.WorkLocation,
				"4": shortDate(rec.FromDate),
				"5": shortDate(rec.ToDate),
				"6": rec.Reason,
			}
			return evt, true
		}
		evt.Template = notify.TemplatePartnerRejection
		evt.To = notify.FormatWhatsAppNumber(submitter.WhatsApp)
		evt.Vars = map[string]string{
			"1": submitter.Name,
			"2": shortDate(rec.FromDate),
			"3": shortDate(rec.ToDate),
			"4": rec.Reason,
		}
		return evt, true

	default:
		evt.To = notify.FormatWhatsAppNumber(submitter.WhatsApp)
		if origin == OriginEmployee {
			evt.Template = notify.TemplateHRRejectionRegular
			if approve {
				evt.Template = notify.TemplateHRApprovalRegular
			}
			evt.Vars = map[string]string{
				"1": submitter.Name,
				"2": shortDate(rec.FromDate),
				"3": shortDate(rec.ToDate),
			}
			return evt, true
		}
		if approve {
			evt.Template = notify.TemplateHRApprovalHRLeave
			evt.Vars = map[string]string{
				"1": submitter.Name,
				"2": shortDate(rec.FromDate),
				"3": shortDate(rec.ToDate),
				"4": "N/A",
				"5": rec.Reason,
			}
			return evt, true
		}
		evt.Template = notify.TemplateHRRejectionHRLeave
		evt.Vars = map[string]string{
			"1": submitter.Name,
			"2": shortDate(rec.FromDate),
			"3": shortDate(rec.ToDate),
			"4": rec.Reason,
		}
		return evt, true
	}
}

func (s *service) PendingForManager(ctx context.Context, managerCode string) ([]Record, error) {
	manager, err := s.directory.FindSubmitter(ctx, directory.RoleManager, managerCode)
	if err != nil {
		return nil, err
	}
	return s.employeeLeaves.ListWhere(ctx, func(rec Record) bool {
		return strings.EqualFold(rec.ManagerCode, manager.Code) && rec.Status == StatusPending
	})
}

func (s *service) PendingForHR(ctx context.Context) ([]Record, error) {
	awaitingFromManager, err := s.employeeLeaves.ListWhere(ctx, func(rec Record) bool {
		return rec.Status == StatusManagerApproved
	})
	if err != nil {
		return nil, err
	}
	awaitingFromPartner, err := s.staffLeaves.ListWhere(ctx, func(rec Record) bool {
		return rec.Status == StatusPartnerApproved
	})
	if err != nil {
		return nil, err
	}
	return append(awaitingFromManager, awaitingFromPartner...), nil
}

func (s *service) PendingForPartner(ctx context.Context) ([]Record, error) {
	return s.staffLeaves.ListWhere(ctx, func(rec Record) bool {
		return rec.Status == StatusPending
	})
}

func (s *service) ExportPath(origin Origin) string {
	if origin == OriginEmployee {
		return s.employeeLeaves.Path()
	}
	return s.staffLeaves.Path()
}

// dispatch is fire-and-forget: a delivery failure is logged, never surfaced,
// and never rolls back the state change that triggered it.
func (s *service) dispatch(ctx context.Context, evt events.LeaveNotificationRequested) {
	if err := s.notifier.Dispatch(ctx, evt); err != nil {
		s.logger.Warn("notification dispatch failed",
			zap.String("leave_id", evt.LeaveID),
			zap.String("template", evt.Template),
			zap.Error(err),
		)
	}
}

func shortDate(v string) string {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return v
	}
	return t.Format(shortDateLayout)
}
