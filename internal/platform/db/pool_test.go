package db

import (
	"context"
	"net"
	"testing"
	"time"

	"tokenswap/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestCreatePoolAndPingAndMigrate(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("tokenswap"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	endpoint, err := pg.Endpoint(ctx, "")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(endpoint)
	require.NoError(t, err)

	cfg := config.DbServer{Host: host, Port: port, User: "postgres", Pass: "postgres", Name: "tokenswap", MaxConns: 2}

	var pool *pgxpool.Pool
	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		pool, err = CreatePoolAndPing(pingCtx, cfg)
		return err == nil
	}, 15*time.Second, 500*time.Millisecond)
	t.Cleanup(pool.Close)
	require.Equal(t, int32(2), pool.Config().MaxConns)

	require.NoError(t, Migrate(ctx, pool))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, pool))

	var exists bool
	require.NoError(t, pool.QueryRow(ctx, `select to_regclass('public.rate_snapshots') is not null`).Scan(&exists))
	require.True(t, exists)
}

func TestCreatePoolAndPing_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := CreatePoolAndPing(ctx, config.DbServer{Host: "127.0.0.1", Port: "1", User: "u", Pass: "p", Name: "n"})
	require.Error(t, err)
}
