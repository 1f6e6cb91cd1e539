package components

import (
	"lab-reservation/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
