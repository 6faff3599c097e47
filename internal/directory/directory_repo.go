package directory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PILLP-HO/pillp-lms/internal/storage"

	"go.uber.org/zap"
)

// Roster file names inside the data directory.
var rosterFiles = map[Role]string{
	RoleEmployee:  "employee_list.xlsx",
	RoleManager:   "manager_list.xlsx",
	RoleHR:        "hr_list.xlsx",
	RoleHRManager: "hr_manager_list.xlsx",
	RolePartner:   "partner_list.xlsx",
}

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	List(role Role) []Person
	FindByCode(role Role, code string) (*Person, bool)
}

type repository struct {
	rosters map[Role][]Person
}

// NewRepository loads all five rosters from dataDir once, at startup. Rosters
// never change for the lifetime of the process.
func NewRepository(dataDir string, logger ...*zap.Logger) (Repository, error) {
	l := zap.L().Named("directory.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.repo")
	}

	rosters := make(map[Role][]Person, len(rosterFiles))
	for role, file := range rosterFiles {
		wb := storage.NewWorkbook(filepath.Join(dataDir, file), PersonHeaders)
		rows, err := wb.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("load %s roster: %w", role, err)
		}
		people := make([]Person, 0, len(rows))
		for _, row := range rows {
			people = append(people, personFromRow(row))
		}
		rosters[role] = people
		l.Info("roster loaded",
			zap.String("role", string(role)),
			zap.Int("count", len(people)),
		)
	}
	return &repository{rosters: rosters}, nil
}

// NewStaticRepository builds a repository from in-memory rosters.
func NewStaticRepository(rosters map[Role][]Person) Repository {
	return &repository{rosters: rosters}
}

func (r *repository) List(role Role) []Person {
	return r.rosters[role]
}

func (r *repository) FindByCode(role Role, code string) (*Person, bool) {
	for _, p := range r.rosters[role] {
		if strings.EqualFold(p.Code, code) {
			found := p
			return &found, true
		}
	}
	return nil, false
}
