package repository

import (
	"context"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"

	"github.com/google/uuid"
)

type AdvisorRepository struct {
	db db.DBTX
}

func NewAdvisorRepository(dbtx db.DBTX) *AdvisorRepository {
	return &AdvisorRepository{db: dbtx}
}

// IsAdvisor reports whether teacherID is a linked advisor of studentID and
// still holds the teacher role.
func (r *AdvisorRepository) IsAdvisor(ctx context.Context, studentID, teacherID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (
	SELECT 1 FROM advisor_links l
	JOIN users u ON u.id = l.teacher_id
	WHERE l.student_id = $1 AND l.teacher_id = $2
	  AND 'teacher' = ANY(u.roles) AND u.is_active
)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, studentID, teacherID).Scan(&ok); err != nil {
		return false, infra.WrapRepoErr("failed to check advisor link", err)
	}
	return ok, nil
}
