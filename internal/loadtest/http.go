package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// progressReportInterval throttles progress output during submission.
const progressReportInterval = 1 * time.Second

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// submitMatches posts one match request per profile using a worker pool and
// verifies every response page on the way through.
func submitMatches(ctx context.Context, config *Config, profiles []profile, stats *Stats) error {
	log.Printf("submitting %d match requests with %d workers...", len(profiles), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/match"

	var (
		successful int64
		failed     int64
		submitted  int64
		ordering   int64
		limits     int64
		returned   int64
	)

	var lastReport time.Time

	profileChan := make(chan profile, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for p := range profileChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				results, err := submitSingleMatch(ctx, client, url, p, config.Limit)
				atomic.AddInt64(&submitted, 1)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Printf("match request failed: %v", err)
					}
					continue
				}
				atomic.AddInt64(&successful, 1)
				atomic.AddInt64(&returned, int64(len(results)))

				if !sortedDescending(results) {
					atomic.AddInt64(&ordering, 1)
				}
				if config.Limit > 0 && len(results) > config.Limit {
					atomic.AddInt64(&limits, 1)
				}

				if time.Since(lastReport) >= progressReportInterval {
					lastReport = time.Now()
					log.Printf("progress: %d/%d submitted (success: %d, failed: %d)",
						atomic.LoadInt64(&submitted), len(profiles),
						atomic.LoadInt64(&successful), atomic.LoadInt64(&failed))
				}
			}
		}()
	}

	go func() {
		defer close(profileChan)
		for _, p := range profiles {
			select {
			case <-ctx.Done():
				return
			case profileChan <- p:
			}
		}
	}()

	wg.Wait()

	stats.RequestsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RequestsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))
	stats.OrderingViolations = int(atomic.LoadInt64(&ordering))
	stats.LimitViolations = int(atomic.LoadInt64(&limits))
	stats.ResultsReturned = int(atomic.LoadInt64(&returned))

	log.Printf("match submission completed: successful=%d failed=%d", stats.RequestsSuccessful, stats.RequestsFailed)
	return nil
}

// submitSingleMatch posts one profile and decodes the result page.
func submitSingleMatch(ctx context.Context, client *HTTPClient, url string, p profile, limit int) ([]scoredProduct, error) {
	resp, err := client.Post(ctx, url, matchRequest{Profile: p, Limit: limit})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var results []scoredProduct
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return results, nil
}

// sortedDescending reports whether the page is ordered by total score.
func sortedDescending(results []scoredProduct) bool {
	return sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Result.TotalScore > results[j].Result.TotalScore
	})
}
