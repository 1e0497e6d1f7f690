package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping() error { return p.err }

func TestCollect_WithNilRedis(t *testing.T) {
	result := (&Collector{}).Collect(context.Background())
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", result.Dependencies["redis"].Status)
	assert.Equal(t, 0, result.Traffic.TotalRequests)
	assert.NotEmpty(t, result.Runtime.GoVersion)
}

func TestCollect_WithMiniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	c := &Collector{Rdb: rdb, DB: pinger{}}
	result := c.Collect(ctx)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.Equal(t, "100", result.Traffic.SuccessRate)

	require.NoError(t, rdb.Set(ctx, "health:global:req_total", "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:req_errors", "2", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:res_time_total", "150.5", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:res_count", "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:start_time", "1000000", 0).Err())

	result2 := c.Collect(ctx)
	assert.Equal(t, 10, result2.Traffic.TotalRequests)
	assert.Equal(t, 2, result2.Traffic.FailedCount)
	assert.Equal(t, 8, result2.Traffic.SuccessCount)
	assert.Equal(t, "80.0", result2.Traffic.SuccessRate)
	assert.Equal(t, "15.05", result2.Traffic.AvgResponseTime)
}

func TestCollect_DatabaseError(t *testing.T) {
	result := (&Collector{DB: pinger{err: errors.New("down")}}).Collect(context.Background())
	assert.Equal(t, "error", result.Dependencies["database"].Status)
	assert.Equal(t, "issue", result.Status)
}

func TestCollect_Probes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Collector{Probes: []Probe{{Name: "stripe", URL: srv.URL}, {Name: "broken", URL: "http://127.0.0.1:1"}}}
	result := c.Collect(context.Background())
	assert.Equal(t, "reachable", result.Dependencies["stripe"].Status)
	assert.Equal(t, "unreachable", result.Dependencies["broken"].Status)
}

func TestGatewayProbe(t *testing.T) {
	assert.Equal(t, "midtrans", GatewayProbe("midtrans").Name)
	assert.Equal(t, "stripe", GatewayProbe("stripe").Name)
}
