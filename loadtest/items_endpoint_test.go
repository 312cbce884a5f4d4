// ABOUTME: Load tests for the /items endpoint
// ABOUTME: Tests that concurrent clients share one population and stay fast afterwards

package loadtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"items-app-api/api"
	"items-app-api/api/handlers"
	"items-app-api/core/interfaces"
	"items-app-api/core/items"
	"items-app-api/infrastructure/cache/memory"
	stdhttp "items-app-api/infrastructure/http/standard"
	"items-app-api/infrastructure/remote"
)

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

// newItemsServer starts the API over a memory store and a slow fake remote.
// The returned counter tracks how often the remote was downloaded.
func newItemsServer(tb testing.TB, remoteDelay time.Duration) (*httptest.Server, *atomic.Int64) {
	tb.Helper()

	var remoteCalls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteCalls.Add(1)
		time.Sleep(remoteDelay)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Item 1","description":"Description 1"},{"title":"Item 2","description":"Description 2"}]`))
	}))
	tb.Cleanup(upstream.Close)

	source, err := remote.NewItemSource(stdhttp.NewStandardHTTPClient(5*time.Second), upstream.URL, "items.json")
	if err != nil {
		tb.Fatalf("creating source: %v", err)
	}
	store := memory.NewMemoryStore()
	repo := items.NewRepository(interfaces.Dependencies{Store: store, Source: source})

	apiInstance, router := api.NewAPI()
	handlers.NewItemHandler(repo, nil, store, nil).RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	tb.Cleanup(server.Close)
	return server, &remoteCalls
}

func TestItemsEndpoint_100ConcurrentRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	server, remoteCalls := newItemsServer(t, 50*time.Millisecond)

	// Test configuration
	concurrency := 100
	requestsPerWorker := 10
	totalRequests := concurrency * requestsPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()

			client := &http.Client{
				Timeout: 30 * time.Second,
			}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				resp, err := client.Get(server.URL + "/items")
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				io.ReadAll(resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}()
	}

	wg.Wait()
	totalDuration := time.Since(startTime)

	metrics := calculateMetrics(latencies, totalDuration, totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Requests")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}
	if got := remoteCalls.Load(); got != 1 {
		t.Errorf("remote downloaded %d times, want 1", got)
	}
	if metrics.P95Latency > 2*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

func BenchmarkItemsEndpoint_CachedReads(b *testing.B) {
	server, _ := newItemsServer(b, 0)

	client := &http.Client{Timeout: 5 * time.Second}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			resp, err := client.Get(server.URL + "/items")
			if err != nil {
				b.Error(err)
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	})
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[p95Index],
		P99Latency:     sorted[p99Index],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
