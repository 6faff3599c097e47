package leave

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PILLP-HO/pillp-lms/internal/directory"
	directoryerrors "github.com/PILLP-HO/pillp-lms/internal/directory/errors"
	"github.com/PILLP-HO/pillp-lms/internal/events"
	leaveerrors "github.com/PILLP-HO/pillp-lms/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

type memLedger struct {
	origin  Origin
	records []Record
}

func (m *memLedger) Origin() Origin { return m.origin }

func (m *memLedger) Append(ctx context.Context, rec Record) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memLedger) Update(ctx context.Context, id string, mutate func(*Record)) (*Record, error) {
	for i := range m.records {
		if strings.EqualFold(m.records[i].ID, id) {
			mutate(&m.records[i])
			out := m.records[i]
			return &out, nil
		}
	}
	return nil, leaveerrors.ErrLeaveNotFound
}

func (m *memLedger) FindByID(ctx context.Context, id string) (*Record, error) {
	for i := range m.records {
		if strings.EqualFold(m.records[i].ID, id) {
			out := m.records[i]
			return &out, nil
		}
	}
	return nil, leaveerrors.ErrLeaveNotFound
}

func (m *memLedger) ListWhere(ctx context.Context, pred func(Record) bool) ([]Record, error) {
	var out []Record
	for _, rec := range m.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memLedger) Path() string { return string(m.origin) + ".xlsx" }

type fakeDirectory struct {
	loginFn              func(ctx context.Context, role directory.Role, identifier, secret string) (*directory.Person, error)
	findSubmitterFn      func(ctx context.Context, role directory.Role, code string) (*directory.Person, error)
	resolveManagerFn     func(ctx context.Context, department, workLocation string) (*directory.Person, error)
	resolveDutyHRFn      func(ctx context.Context) (*directory.Person, error)
	resolveDutyPartnerFn func(ctx context.Context) (*directory.Person, error)
	findAnyByCodeFn      func(ctx context.Context, code string, roles ...directory.Role) (*directory.Person, error)
}

func (f *fakeDirectory) Login(ctx context.Context, role directory.Role, identifier, secret string) (*directory.Person, error) {
	return f.loginFn(ctx, role, identifier, secret)
}
func (f *fakeDirectory) FindSubmitter(ctx context.Context, role directory.Role, code string) (*directory.Person, error) {
	return f.findSubmitterFn(ctx, role, code)
}
func (f *fakeDirectory) ResolveManager(ctx context.Context, department, workLocation string) (*directory.Person, error) {
	return f.resolveManagerFn(ctx, department, workLocation)
}
func (f *fakeDirectory) ResolveDutyHR(ctx context.Context) (*directory.Person, error) {
	return f.resolveDutyHRFn(ctx)
}
func (f *fakeDirectory) ResolveDutyPartner(ctx context.Context) (*directory.Person, error) {
	return f.resolveDutyPartnerFn(ctx)
}
func (f *fakeDirectory) FindAnyByCode(ctx context.Context, code string, roles ...directory.Role) (*directory.Person, error) {
	return f.findAnyByCodeFn(ctx, code, roles...)
}
func (f *fakeDirectory) AllRosters(ctx context.Context) map[string][]directory.Person { return nil }

type fakeDispatcher struct {
	sent []events.LeaveNotificationRequested
	err  error
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, evt events.LeaveNotificationRequested) error {
	f.sent = append(f.sent, evt)
	return f.err
}

func employeePerson() *directory.Person {
	return &directory.Person{
		Code:         "EMP001",
		Name:         "Asha Verma",
		WhatsApp:     "9876543210",
		Email:        "asha@pillp.example",
		Designation:  "Analyst",
		Department:   "Audit",
		WorkLocation: "Mumbai",
	}
}

func managerPerson() *directory.Person {
	return &directory.Person{
		Code:         "MGR001",
		Name:         "Rohit Shah",
		WhatsApp:     "+919812345678",
		Department:   "Audit",
		WorkLocation: "Mumbai",
	}
}

func newEmployeeDirectory() *fakeDirectory {
	return &fakeDirectory{
		findSubmitterFn: func(ctx context.Context, role directory.Role, code string) (*directory.Person, error) {
			if role == directory.RoleEmployee && strings.EqualFold(code, "EMP001") {
				return employeePerson(), nil
			}
			return nil, directoryerrors.NotFound(string(role))
		},
		resolveManagerFn: func(ctx context.Context, department, workLocation string) (*directory.Person, error) {
			return managerPerson(), nil
		},
		findAnyByCodeFn: func(ctx context.Context, code string, roles ...directory.Role) (*directory.Person, error) {
			if strings.EqualFold(code, "EMP001") {
				return employeePerson(), nil
			}
			return nil, directoryerrors.NotFound("Employee")
		},
		resolveDutyHRFn: func(ctx context.Context) (*directory.Person, error) {
			return &directory.Person{Code: "HR001", Name: "Duty HR", WhatsApp: "9000000000"}, nil
		},
	}
}

func validSubmit() SubmitLeaveRequest {
	return SubmitLeaveRequest{
		EmployeeCode: "emp001",
		FromDate:     "2026-09-10",
		ToDate:       "2026-09-12",
		LeaveReason:  "Family function out of town",
	}
}

func TestService_Submit_Employee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee}
		staff := &memLedger{origin: OriginStaff}
		dispatcher := &fakeDispatcher{}
		svc := NewService(employee, staff, newEmployeeDirectory(), dispatcher)

		rec, err := svc.Submit(ctx, directory.RoleEmployee, validSubmit())
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(rec.ID, "LV-"))
		assert.Equal(t, "Employee", rec.Role)
		assert.Equal(t, "EMP001", rec.Code)
		assert.Equal(t, "MGR001", rec.ManagerCode)
		assert.Equal(t, StatusPending, rec.Status)
		assert.Len(t, employee.records, 1)
		assert.Empty(t, staff.records)

		assert.Len(t, dispatcher.sent, 1)
		evt := dispatcher.sent[0]
		assert.Equal(t, "new_leave_request", evt.Template)
		assert.Equal(t, "whatsapp:+919812345678", evt.To)
		assert.Equal(t, "Asha Verma", evt.Vars["1"])
		assert.Equal(t, "10-Sep-2026", evt.Vars["5"])
		assert.Equal(t, "12-Sep-2026", evt.Vars["6"])
	})

	t.Run("negative reason too short after trimming", func(t *testing.T) {
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		req := validSubmit()
		req.LeaveReason = "   short     "
		_, err := svc.Submit(ctx, directory.RoleEmployee, req)
		assert.ErrorIs(t, err, leaveerrors.ErrReasonTooShort)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		req := validSubmit()
		req.FromDate = "10/09/2026"
		_, err := svc.Submit(ctx, directory.RoleEmployee, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative from after to", func(t *testing.T) {
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		req := validSubmit()
		req.FromDate = "2026-09-13"
		_, err := svc.Submit(ctx, directory.RoleEmployee, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("single day leave allowed", func(t *testing.T) {
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		req := validSubmit()
		req.ToDate = req.FromDate
		rec, err := svc.Submit(ctx, directory.RoleEmployee, req)
		assert.NoError(t, err)
		assert.Equal(t, rec.FromDate, rec.ToDate)
	})

	t.Run("negative unknown submitter", func(t *testing.T) {
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		req := validSubmit()
		req.EmployeeCode = "GHOST"
		_, err := svc.Submit(ctx, directory.RoleEmployee, req)
		assert.Error(t, err)
	})

	t.Run("negative outstanding application blocks resubmission", func(t *testing.T) {
		for _, blocking := range []string{StatusPending, StatusManagerApproved} {
			employee := &memLedger{origin: OriginEmployee, records: []Record{
				{ID: "LV-1", Code: "EMP001", Status: blocking},
			}}
			svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

			_, err := svc.Submit(ctx, directory.RoleEmployee, validSubmit())
			assert.ErrorIs(t, err, leaveerrors.ErrAlreadyPending, blocking)
		}
	})

	t.Run("terminal application does not block resubmission", func(t *testing.T) {
		for _, terminal := range []string{StatusManagerRejected, StatusHRApproved, StatusHRRejected} {
			employee := &memLedger{origin: OriginEmployee, records: []Record{
				{ID: "LV-1", Code: "EMP001", Status: terminal},
			}}
			svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

			_, err := svc.Submit(ctx, directory.RoleEmployee, validSubmit())
			assert.NoError(t, err, terminal)
		}
	})

	t.Run("negative roster gap surfaces", func(t *testing.T) {
		dir := newEmployeeDirectory()
		dir.resolveManagerFn = func(ctx context.Context, department, workLocation string) (*directory.Person, error) {
			return nil, directoryerrors.NoManagerFor(department, workLocation)
		}
		employee := &memLedger{origin: OriginEmployee}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, dir, &fakeDispatcher{})

		_, err := svc.Submit(ctx, directory.RoleEmployee, validSubmit())
		assert.Error(t, err)
		assert.Empty(t, employee.records)
	})

	t.Run("dispatch failure does not fail submission", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(),
			&fakeDispatcher{err: errors.New("broker down")})

		_, err := svc.Submit(ctx, directory.RoleEmployee, validSubmit())
		assert.NoError(t, err)
		assert.Len(t, employee.records, 1)
	})
}

func TestService_Submit_Staff(t *testing.T) {
	ctx := context.Background()

	hrPerson := &directory.Person{
		Code:         "HR001",
		Name:         "Priya Nair",
		WhatsApp:     "9123456789",
		WorkLocation: "Delhi",
	}
	dir := &fakeDirectory{
		findSubmitterFn: func(ctx context.Context, role directory.Role, code string) (*directory.Person, error) {
			if role == directory.RoleHR && strings.EqualFold(code, "HR001") {
				return hrPerson, nil
			}
			return nil, directoryerrors.NotFound(string(role))
		},
		resolveDutyPartnerFn: func(ctx context.Context) (*directory.Person, error) {
			return &directory.Person{Code: "PTR001", Name: "Partner", WhatsApp: "9555555555"}, nil
		},
	}

	employee := &memLedger{origin: OriginEmployee}
	staff := &memLedger{origin: OriginStaff}
	dispatcher := &fakeDispatcher{}
	svc := NewService(employee, staff, dir, dispatcher)

	req := validSubmit()
	req.EmployeeCode = "HR001"
	rec, err := svc.Submit(ctx, directory.RoleHR, req)
	assert.NoError(t, err)
	assert.Equal(t, "HR", rec.Role)
	assert.Empty(t, rec.ManagerCode)
	assert.Empty(t, employee.records)
	assert.Len(t, staff.records, 1)

	assert.Len(t, dispatcher.sent, 1)
	assert.Equal(t, "hr_leave_submission", dispatcher.sent[0].Template)
	assert.Equal(t, "whatsapp:+919555555555", dispatcher.sent[0].To)
}

func TestService_Submit_HRManagerRoleLiteral(t *testing.T) {
	ctx := context.Background()

	hrm := &directory.Person{Code: "HRM001", Name: "Meera Iyer", WhatsApp: "9222222222"}
	inHRRoster := false
	dir := &fakeDirectory{
		findSubmitterFn: func(ctx context.Context, role directory.Role, code string) (*directory.Person, error) {
			switch role {
			case directory.RoleHRManager:
				return hrm, nil
			case directory.RoleHR:
				if inHRRoster {
					return hrm, nil
				}
			}
			return nil, directoryerrors.NotFound(string(role))
		},
		resolveDutyPartnerFn: func(ctx context.Context) (*directory.Person, error) {
			return &directory.Person{Code: "PTR001", WhatsApp: "9555555555"}, nil
		},
	}

	req := validSubmit()
	req.EmployeeCode = "HRM001"

	t.Run("recorded as HR when present in HR roster", func(t *testing.T) {
		inHRRoster = true
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, dir, &fakeDispatcher{})
		rec, err := svc.Submit(ctx, directory.RoleHRManager, req)
		assert.NoError(t, err)
		assert.Equal(t, "HR", rec.Role)
	})

	t.Run("recorded as Manager otherwise", func(t *testing.T) {
		inHRRoster = false
		svc := NewService(&memLedger{origin: OriginEmployee}, &memLedger{origin: OriginStaff}, dir, &fakeDispatcher{})
		rec, err := svc.Submit(ctx, directory.RoleHRManager, req)
		assert.NoError(t, err)
		assert.Equal(t, "Manager", rec.Role)
	})
}

func TestService_ChangeStatus_ManagerStage(t *testing.T) {
	ctx := context.Background()

	newFixture := func(status string) (*memLedger, *fakeDispatcher, Service) {
		employee := &memLedger{origin: OriginEmployee, records: []Record{{
			ID:       "LV-100-AAAA",
			Code:     "EMP001",
			FromDate: "2026-09-10",
			ToDate:   "2026-09-12",
			Reason:   "Family function out of town",
			Status:   status,
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), dispatcher)
		return employee, dispatcher, svc
	}

	t.Run("approve moves to manager approved and notifies duty hr", func(t *testing.T) {
		employee, dispatcher, svc := newFixture(StatusPending)

		rec, err := svc.ChangeStatus(ctx, StageManager, "LV-100-AAAA", true)
		assert.NoError(t, err)
		assert.Equal(t, StatusManagerApproved, rec.Status)
		assert.Equal(t, StatusManagerApproved, employee.records[0].Status)

		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "manager_approval", dispatcher.sent[0].Template)
		assert.Equal(t, "whatsapp:+919000000000", dispatcher.sent[0].To)
	})

	t.Run("reject moves to manager rejected and notifies submitter", func(t *testing.T) {
		_, dispatcher, svc := newFixture(StatusPending)

		rec, err := svc.ChangeStatus(ctx, StageManager, "LV-100-AAAA", false)
		assert.NoError(t, err)
		assert.Equal(t, StatusManagerRejected, rec.Status)

		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "manager_rejection", dispatcher.sent[0].Template)
		assert.Equal(t, "whatsapp:+919876543210", dispatcher.sent[0].To)
	})

	t.Run("negative not awaiting manager stage", func(t *testing.T) {
		_, _, svc := newFixture(StatusManagerApproved)

		_, err := svc.ChangeStatus(ctx, StageManager, "LV-100-AAAA", true)
		assert.ErrorIs(t, err, leaveerrors.ErrNotAwaitingStage)
	})

	t.Run("negative unknown leave id", func(t *testing.T) {
		_, _, svc := newFixture(StatusPending)

		_, err := svc.ChangeStatus(ctx, StageManager, "LV-missing", true)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("duty hr gap skips notification but keeps transition", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee, records: []Record{{
			ID: "LV-100-AAAA", Code: "EMP001", Status: StatusPending,
			FromDate: "2026-09-10", ToDate: "2026-09-12",
		}}}
		dir := newEmployeeDirectory()
		dir.resolveDutyHRFn = func(ctx context.Context) (*directory.Person, error) {
			return nil, directoryerrors.ErrNoDutyHR
		}
		dispatcher := &fakeDispatcher{}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, dir, dispatcher)

		rec, err := svc.ChangeStatus(ctx, StageManager, "LV-100-AAAA", true)
		assert.NoError(t, err)
		assert.Equal(t, StatusManagerApproved, rec.Status)
		assert.Empty(t, dispatcher.sent)
	})
}

func TestService_ChangeStatus_HRStage(t *testing.T) {
	ctx := context.Background()

	t.Run("final approval on employee track", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee, records: []Record{{
			ID: "LV-200-BBBB", Code: "EMP001", Status: StatusManagerApproved,
			FromDate: "2026-09-10", ToDate: "2026-09-12",
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), dispatcher)

		rec, err := svc.ChangeStatus(ctx, StageHR, "LV-200-BBBB", true)
		assert.NoError(t, err)
		assert.Equal(t, StatusHRApproved, rec.Status)

		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "hr_approval_regular", dispatcher.sent[0].Template)
		assert.Equal(t, "whatsapp:+919876543210", dispatcher.sent[0].To)
	})

	t.Run("final rejection on employee track", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee, records: []Record{{
			ID: "LV-250-GGGG", Code: "EMP001", Status: StatusManagerApproved,
			FromDate: "2026-09-10", ToDate: "2026-09-12",
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), dispatcher)

		rec, err := svc.ChangeStatus(ctx, StageHR, "LV-250-GGGG", false)
		assert.NoError(t, err)
		assert.Equal(t, StatusHRRejected, rec.Status)
		assert.Equal(t, StatusHRRejected, employee.records[0].Status)

		assert.Len(t, dispatcher.sent, 1)
		evt := dispatcher.sent[0]
		assert.Equal(t, "hr_rejection_regular", evt.Template)
		assert.Equal(t, "whatsapp:+919876543210", evt.To)
		assert.Equal(t, "Asha Verma", evt.Vars["1"])
		assert.Equal(t, "10-Sep-2026", evt.Vars["2"])
		assert.Equal(t, "12-Sep-2026", evt.Vars["3"])
	})

	t.Run("final rejection on staff track", func(t *testing.T) {
		staffSubmitter := &directory.Person{Code: "MGR002", Name: "Kiran Rao", WhatsApp: "9333333333"}
		dir := newEmployeeDirectory()
		dir.findAnyByCodeFn = func(ctx context.Context, code string, roles ...directory.Role) (*directory.Person, error) {
			if strings.EqualFold(code, "MGR002") {
				return staffSubmitter, nil
			}
			return nil, directoryerrors.NotFound("Employee")
		}
		staff := &memLedger{origin: OriginStaff, records: []Record{{
			ID: "LV-300-CCCC", Code: "MGR002", Status: StatusPartnerApproved,
			FromDate: "2026-09-10", ToDate: "2026-09-12", Reason: "Medical procedure scheduled",
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(&memLedger{origin: OriginEmployee}, staff, dir, dispatcher)

		rec, err := svc.ChangeStatus(ctx, StageHR, "LV-300-CCCC", false)
		assert.NoError(t, err)
		assert.Equal(t, StatusHRRejected, rec.Status)

		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "hr_rejection_hr_leave", dispatcher.sent[0].Template)
		assert.Equal(t, "Medical procedure scheduled", dispatcher.sent[0].Vars["4"])
	})

	t.Run("negative record still pending", func(t *testing.T) {
		employee := &memLedger{origin: OriginEmployee, records: []Record{{
			ID: "LV-400-DDDD", Code: "EMP001", Status: StatusPending,
		}}}
		svc := NewService(employee, &memLedger{origin: OriginStaff}, newEmployeeDirectory(), &fakeDispatcher{})

		_, err := svc.ChangeStatus(ctx, StageHR, "LV-400-DDDD", true)
		assert.ErrorIs(t, err, leaveerrors.ErrNotAwaitingStage)
	})
}

func TestService_ChangeStatus_PartnerStage(t *testing.T) {
	ctx := context.Background()

	staffSubmitter := &directory.Person{
		Code: "HR001", Name: "Priya Nair", WhatsApp: "9123456789", WorkLocation: "Delhi",
	}
	dir := &fakeDirectory{
		findAnyByCodeFn: func(ctx context.Context, code string, roles ...directory.Role) (*directory.Person, error) {
			if strings.EqualFold(code, "HR001") {
				return staffSubmitter, nil
			}
			return nil, directoryerrors.NotFound("Employee")
		},
		resolveDutyHRFn: func(ctx context.Context) (*directory.Person, error) {
			return &directory.Person{Code: "HR002", WhatsApp: "9000000000"}, nil
		},
	}

	t.Run("approve routes to duty hr", func(t *testing.T) {
		staff := &memLedger{origin: OriginStaff, records: []Record{{
			ID: "LV-500-EEEE", Code: "HR001", Status: StatusPending,
			FromDate: "2026-09-10", ToDate: "2026-09-12", Reason: "Family function out of town",
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(&memLedger{origin: OriginEmployee}, staff, dir, dispatcher)

		rec, err := svc.ChangeStatus(ctx, StagePartner, "LV-500-EEEE", true)
		assert.NoError(t, err)
		assert.Equal(t, StatusPartnerApproved, rec.Status)

		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "partner_approval", dispatcher.sent[0].Template)
		assert.Equal(t, "10-Sep-2026", dispatcher.sent[0].Vars["4"])
	})

	t.Run("reject notifies submitter", func(t *testing.T) {
		staff := &memLedger{origin: OriginStaff, records: []Record{{
			ID: "LV-600-FFFF", Code: "HR001", Status: StatusPending,
			FromDate: "2026-09-10", ToDate: "2026-09-12",
		}}}
		dispatcher := &fakeDispatcher{}
		svc := NewService(&memLedger{origin: OriginEmployee}, staff, dir, dispatcher)

		rec, err := svc.ChangeStatus(ctx, StagePartner, "LV-600-FFFF", false)
		assert.NoError(t, err)
		assert.Equal(t, StatusPartnerRejected, rec.Status)
		assert.Equal(t, "partner_rejection", dispatcher.sent[0].Template)
	})
}

func TestService_PendingQueries(t *testing.T) {
	ctx := context.Background()

	employee := &memLedger{origin: OriginEmployee, records: []Record{
		{ID: "LV-1", Code: "EMP001", ManagerCode: "MGR001", Status: StatusPending},
		{ID: "LV-2", Code: "EMP002", ManagerCode: "mgr001", Status: StatusPending},
		{ID: "LV-3", Code: "EMP003", ManagerCode: "MGR002", Status: StatusPending},
		{ID: "LV-4", Code: "EMP004", ManagerCode: "MGR001", Status: StatusManagerApproved},
	}}
	staff := &memLedger{origin: OriginStaff, records: []Record{
		{ID: "LV-5", Code: "HR001", Status: StatusPending},
		{ID: "LV-6", Code: "MGR003", Status: StatusPartnerApproved},
	}}
	dir := newEmployeeDirectory()
	dir.findSubmitterFn = func(ctx context.Context, role directory.Role, code string) (*directory.Person, error) {
		if role == directory.RoleManager && strings.EqualFold(code, "MGR001") {
			return managerPerson(), nil
		}
		return nil, directoryerrors.NotFound(string(role))
	}
	svc := NewService(employee, staff, dir, &fakeDispatcher{})

	t.Run("manager sees own pending reports, code matched case-insensitively", func(t *testing.T) {
		pending, err := svc.PendingForManager(ctx, "mgr001")
		assert.NoError(t, err)
		assert.Len(t, pending, 2)
	})

	t.Run("negative unknown manager", func(t *testing.T) {
		_, err := svc.PendingForManager(ctx, "MGR999")
		assert.Error(t, err)
	})

	t.Run("hr sees both tracks awaiting final decision", func(t *testing.T) {
		pending, err := svc.PendingForHR(ctx)
		assert.NoError(t, err)
		assert.Len(t, pending, 2)
		assert.Equal(t, "LV-4", pending[0].ID)
		assert.Equal(t, "LV-6", pending[1].ID)
	})

	t.Run("partner sees pending staff applications", func(t *testing.T) {
		pending, err := svc.PendingForPartner(ctx)
		assert.NoError(t, err)
		assert.Len(t, pending, 1)
		assert.Equal(t, "LV-5", pending[0].ID)
	})
}

func TestService_ExportPath(t *testing.T) {
	employee := &memLedger{origin: OriginEmployee}
	staff := &memLedger{origin: OriginStaff}
	svc := NewService(employee, staff, newEmployeeDirectory(), &fakeDispatcher{})

	assert.Equal(t, "employee.xlsx", svc.ExportPath(OriginEmployee))
	assert.Equal(t, "staff.xlsx", svc.ExportPath(OriginStaff))
}
