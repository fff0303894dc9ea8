package sequence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testParams(t *testing.T, seq *config.TicketSequenceConfig) Params {
	t.Helper()

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{TicketSequence: seq},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:     testutil.NewTestDB(t),
	}
}

func TestNewSequenceGenerator_Gorm(t *testing.T) {
	gen, err := NewSequenceGenerator(testParams(t, &config.TicketSequenceConfig{Provider: "gorm"}))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, gen.Seed(ctx, "ticket", 1000))

	n, err := gen.Next(ctx, "ticket")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), n)
}

func TestNewSequenceGenerator_Errors(t *testing.T) {
	_, err := NewSequenceGenerator(testParams(t, &config.TicketSequenceConfig{Provider: "redis"}))
	assert.Error(t, err, "redis requires an address")

	_, err = NewSequenceGenerator(testParams(t, &config.TicketSequenceConfig{Provider: "etcd"}))
	assert.Error(t, err)
}

func TestRedisSequence_SurfacesConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	seq := NewRedisSequence(client, "test:seq:")
	assert.Equal(t, "test:seq:ticket", seq.key("ticket"))

	_, err := seq.Next(context.Background(), "ticket")
	assert.ErrorContains(t, err, "failed to increment sequence ticket")
	assert.Error(t, seq.Seed(context.Background(), "ticket", 1000))
}
