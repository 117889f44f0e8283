package adapters

import (
	"context"

	"tokenswap/internal/domain"
)

type SnapshotRepository interface {
	GetLatest(ctx context.Context) (domain.RateSnapshot, error)
	Save(ctx context.Context, snapshot domain.RateSnapshot) error
}

type SwapProvider interface {
	Swap(ctx context.Context, order domain.ProviderSwapOrder) (domain.SwapOrder, error)
	GetTickers(ctx context.Context) (map[string]domain.Rate, error)
}

// SnapshotCache holds the newest snapshot; Set must ignore snapshots older than the cached one.
type SnapshotCache interface {
	Get() (domain.RateSnapshot, bool)
	Set(snapshot domain.RateSnapshot)
}
