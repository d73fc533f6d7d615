package repo

import (
	domain "github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/models/m_project"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// ProjectRepo builds project writes.
type ProjectRepo struct{}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{}
}

// InsertMut builds an insert for a new project.
func (r *ProjectRepo) InsertMut(p *domain.Project) *commitplan.Write {
	if p == nil {
		return nil
	}
	values := m_project.BuildInsertMap(p.ID(), p.Name(), string(p.Status()), p.CreatedBy(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC())
	return m_project.InsertWrite(values)
}
