package directory

import (
	"context"
	"strings"

	directoryerrors "github.com/PILLP-HO/pillp-lms/internal/directory/errors"

	"go.uber.org/zap"
)

const wildcardLocation = "all"

//go:generate mockgen -source=directory_service.go -destination=mock/directory_service_mock.go -package=mock
type Service interface {
	// Login resolves a person by role-specific credentials. Employees identify
	// by name + WhatsApp number; Partners by email + password; the remaining
	// roles by employee code + password. Identifying fields match
	// case-insensitively, secrets by exact string equality.
	Login(ctx context.Context, role Role, identifier, secret string) (*Person, error)

	// FindSubmitter resolves a submitter code within one roster.
	FindSubmitter(ctx context.Context, role Role, code string) (*Person, error)

	// ResolveManager picks the approving manager for an employee: department
	// equal (case-insensitive) or the literal "all", work location equal
	// (case-insensitive, no wildcard). First match wins.
	ResolveManager(ctx context.Context, department, workLocation string) (*Person, error)

	// ResolveDutyHR picks the HR executive covering all locations.
	ResolveDutyHR(ctx context.Context) (*Person, error)

	// ResolveDutyPartner picks the partner covering all locations.
	ResolveDutyPartner(ctx context.Context) (*Person, error)

	// FindAnyByCode searches the given rosters in order for a code.
	FindAnyByCode(ctx context.Context, code string, roles ...Role) (*Person, error)

	// AllRosters returns every roster, keyed for the debug listing endpoint.
	AllRosters(ctx context.Context) map[string][]Person
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, role Role, identifier, secret string) (*Person, error) {
	for _, p := range s.repo.List(role) {
		if matchCredential(role, p, identifier, secret) {
			found := p
			s.logger.Info("login success",
				zap.String("role", string(role)),
				zap.String("code", found.Code),
			)
			return &found, nil
		}
	}
	s.logger.Warn("login failed",
		zap.String("role", string(role)),
		zap.String("identifier", identifier),
	)
	return nil, directoryerrors.NotFound(role.DisplayName())
}

func matchCredential(role Role, p Person, identifier, secret string) bool {
	switch role {
	case RoleEmployee:
		return strings.EqualFold(p.Name, identifier) && strings.EqualFold(p.WhatsApp, secret)
	case RolePartner:
		return strings.EqualFold(p.Email, identifier) && p.Password == secret
	default:
		return strings.EqualFold(p.Code, identifier) && p.Password == secret
	}
}

func (s *service) FindSubmitter(ctx context.Context, role Role, code string) (*Person, error) {
	p, ok := s.repo.FindByCode(role, code)
	if !ok {
		return nil, directoryerrors.NotFound(role.DisplayName())
	}
	return p, nil
}

func (s *service) ResolveManager(ctx context.Context, department, workLocation string) (*Person, error) {
	for _, m := range s.repo.List(RoleManager) {
		deptMatch := strings.EqualFold(m.Department, department) ||
			strings.EqualFold(m.Department, wildcardLocation)
		if deptMatch && strings.EqualFold(m.WorkLocation, workLocation) {
			if m.WhatsApp == "" {
				return nil, directoryerrors.MissingWhatsApp("Manager")
			}
			found := m
			return &found, nil
		}
	}
	s.logger.Error("no manager resolvable",
		zap.String("department", department),
		zap.String("work_location", workLocation),
	)
	return nil, directoryerrors.NoManagerFor(department, workLocation)
}

func (s *service) ResolveDutyHR(ctx context.Context) (*Person, error) {
	for _, hr := range s.repo.List(RoleHR) {
		if strings.EqualFold(hr.Designation, "hr executive") &&
			strings.EqualFold(hr.WorkLocation, wildcardLocation) {
			if hr.WhatsApp == "" {
				return nil, directoryerrors.MissingWhatsApp("HR")
			}
			found := hr
			return &found, nil
		}
	}
	return nil, directoryerrors.ErrNoDutyHR
}

func (s *service) ResolveDutyPartner(ctx context.Context) (*Person, error) {
	for _, p := range s.repo.List(RolePartner) {
		if strings.EqualFold(p.WorkLocation, wildcardLocation) {
			if p.WhatsApp == "" {
				return nil, directoryerrors.MissingWhatsApp("Partner")
			}
			found := p
			return &found, nil
		}
	}
	return nil, directoryerrors.ErrNoDutyPartner
}

func (s *service) FindAnyByCode(ctx context.Context, code string, roles ...Role) (*Person, error) {
	for _, role := range roles {
		if p, ok := s.repo.FindByCode(role, code); ok {
			return p, nil
		}
	}
	return nil, directoryerrors.NotFound("Employee")
}

func (s *service) AllRosters(ctx context.Context) map[string][]Person {
	return map[string][]Person{
		"employeeList":  s.repo.List(RoleEmployee),
		"managerList":   s.repo.List(RoleManager),
		"hrList":        s.repo.List(RoleHR),
		"hrManagerList": s.repo.List(RoleHRManager),
		"partnerList":   s.repo.List(RolePartner),
	}
}
