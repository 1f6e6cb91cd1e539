package repository

import (
	"context"
	"time"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
)

type CodeSequenceRepository struct {
	db db.DBTX
}

func NewCodeSequenceRepository(dbtx db.DBTX) *CodeSequenceRepository {
	return &CodeSequenceRepository{db: dbtx}
}

// Next bumps the per-day counter. The row lock taken by the upsert holds
// until commit, so two admissions on one day never share a number.
func (r *CodeSequenceRepository) Next(ctx context.Context, day time.Time) (int, error) {
	const q = `INSERT INTO booking_code_sequences (day, last_seq) VALUES ($1, 1)
ON CONFLICT (day) DO UPDATE SET last_seq = booking_code_sequences.last_seq + 1
RETURNING last_seq`
	var seq int
	if err := r.db.QueryRow(ctx, q, day).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate booking code", err)
	}
	return seq, nil
}
