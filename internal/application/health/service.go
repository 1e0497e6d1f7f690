package health

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"nvp-welfare-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const probeTimeout = 3 * time.Second

// DBPinger is optional for health check. If nil, database is reported as disconnected.
type DBPinger interface {
	Ping() error
}

// Probe is an external HTTP dependency checked for reachability only.
type Probe struct {
	Name string
	URL  string
}

// GatewayProbe returns the reachability probe for the configured payment provider.
func GatewayProbe(provider string) Probe {
	if provider == "midtrans" {
		return Probe{Name: "midtrans", URL: "https://api.midtrans.com/ping"}
	}
	return Probe{Name: "stripe", URL: "https://api.stripe.com/healthcheck"}
}

// Result is served by /health/json.
type Result struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Traffic      TrafficInfo          `json:"traffic"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Memory        MemoryInfo `json:"memory"`
	Goroutines    int        `json:"goroutines"`
	Platform      string     `json:"platform"`
	GoVersion     string     `json:"goVersion"`
}

type MemoryInfo struct {
	AllocMB  int `json:"allocMb"`
	HeapInMB int `json:"heapInUseMb"`
}

type TrafficInfo struct {
	TotalRequests   int         `json:"totalRequests"`
	SuccessCount    int         `json:"successCount"`
	FailedCount     int         `json:"failedCount"`
	SuccessRate     string      `json:"successRate"`
	AvgResponseTime interface{} `json:"avgResponseTime"`
	LastRequest     interface{} `json:"lastRequest"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

type Collector struct {
	Rdb    *redis.Client
	DB     DBPinger
	Probes []Probe
	Client *http.Client
}

// Collect gathers database and Redis status, request counters written by
// middleware.HealthMarker, runtime info and external probe reachability.
// Overall status is "ok" only when the database and Redis are both connected.
func (c *Collector) Collect(ctx context.Context) Result {
	result := Result{Dependencies: make(map[string]DepStatus)}

	dbStatus := "disconnected"
	var dbPingMs *int64
	if c.DB != nil {
		start := time.Now()
		if err := c.DB.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbPingMs = &ms
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	result.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs *int64
	traffic := TrafficInfo{AvgResponseTime: 0, SuccessRate: "100"}
	startTimeMs := time.Now().UnixMilli()
	if c.Rdb != nil {
		start := time.Now()
		if err := c.Rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = "connected"
			startTimeMs = c.readTraffic(ctx, &traffic, startTimeMs)
		} else {
			redisStatus = "error"
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}
	result.Traffic = traffic

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := (time.Now().UnixMilli() - startTimeMs) / 1000
	if uptime < 0 {
		uptime = 0
	}
	result.Runtime = RuntimeInfo{
		UptimeSeconds: uptime,
		Memory:        MemoryInfo{AllocMB: int(m.Alloc / 1024 / 1024), HeapInMB: int(m.HeapInuse / 1024 / 1024)},
		Goroutines:    runtime.NumGoroutine(),
		Platform:      runtime.GOOS + " (" + runtime.GOARCH + ")",
		GoVersion:     runtime.Version(),
	}

	for _, p := range c.Probes {
		ping := c.httpPing(ctx, p.URL)
		status := "unreachable"
		if ping != nil {
			status = "reachable"
		}
		result.Dependencies[p.Name] = DepStatus{Status: status, PingMs: ping}
	}

	if dbStatus == "connected" && redisStatus == "connected" {
		result.Status = "ok"
	} else {
		result.Status = "issue"
	}
	return result
}

func (c *Collector) readTraffic(ctx context.Context, t *TrafficInfo, startTimeMs int64) int64 {
	totalReq, _ := c.Rdb.Get(ctx, middleware.KeyReqTotal).Result()
	totalErr, _ := c.Rdb.Get(ctx, middleware.KeyReqErrors).Result()
	totalTime, _ := c.Rdb.Get(ctx, middleware.KeyResTime).Result()
	resCount, _ := c.Rdb.Get(ctx, middleware.KeyResCount).Result()
	startStr, _ := c.Rdb.Get(ctx, middleware.KeyStartTime).Result()
	lastReq, _ := c.Rdb.Get(ctx, middleware.KeyLastReq).Result()

	if startStr != "" {
		if v, err := strconv.ParseInt(startStr, 10, 64); err == nil {
			startTimeMs = v
		}
	} else {
		c.Rdb.Set(ctx, middleware.KeyStartTime, startTimeMs, 0)
	}

	t.TotalRequests, _ = strconv.Atoi(totalReq)
	t.FailedCount, _ = strconv.Atoi(totalErr)
	t.SuccessCount = t.TotalRequests - t.FailedCount
	if t.TotalRequests > 0 {
		t.SuccessRate = strconv.FormatFloat(float64(t.SuccessCount)/float64(t.TotalRequests)*100, 'f', 1, 64)
	}
	timeSum, _ := strconv.ParseFloat(totalTime, 64)
	count, _ := strconv.Atoi(resCount)
	if count > 0 {
		t.AvgResponseTime = strconv.FormatFloat(timeSum/float64(count), 'f', 2, 64)
	}
	if lastReq != "" {
		var v map[string]interface{}
		_ = json.Unmarshal([]byte(lastReq), &v)
		t.LastRequest = v
	}
	return startTimeMs
}

func (c *Collector) httpPing(ctx context.Context, url string) *int64 {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	ms := time.Since(start).Milliseconds()
	return &ms
}
