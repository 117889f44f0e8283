package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tokenswap/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func (r *SnapshotRepository) GetLatest(ctx context.Context) (domain.RateSnapshot, error) {
	const q = `
        select taken_at, rates
        from rate_snapshots
        order by taken_at desc, id desc
        limit 1;
    `

	var (
		snapshot domain.RateSnapshot
		raw      []byte
	)
	if err := r.pool.QueryRow(ctx, q).Scan(&snapshot.TakenAt, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateSnapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.RateSnapshot{}, fmt.Errorf("failed to select latest snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, &snapshot.Rates); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("failed to decode snapshot rates: %w", err)
	}
	return snapshot, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot domain.RateSnapshot) error {
	const q = `insert into rate_snapshots (taken_at, rates) values ($1, $2);`

	raw, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot rates: %w", err)
	}

	if _, err = r.pool.Exec(ctx, q, snapshot.TakenAt, raw); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
