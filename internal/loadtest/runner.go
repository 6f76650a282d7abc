package loadtest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/vitarank/pkg/logger"
)

// percentageMultiplier converts a ratio to a percentage.
const percentageMultiplier = 100.0

// Run executes the complete match load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting vitarank match load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("profiles", config.NumProfiles),
		logger.Int("workers", config.Workers),
		logger.Int("limit", config.Limit),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate synthetic profiles
	profiles, err := generateProfiles(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("profile generation failed: %w", err)
	}

	// Step 3: Submit match requests concurrently
	if err := submitMatches(ctx, config, profiles, stats); err != nil {
		return fmt.Errorf("match submission failed: %w", err)
	}

	// Step 4: Verify invariants observed across responses
	if stats.OrderingViolations > 0 || stats.LimitViolations > 0 {
		return fmt.Errorf("verification failed: %d ordering violations, %d limit violations",
			stats.OrderingViolations, stats.LimitViolations)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "load test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, requestsPerSecond float64

	if stats.RequestsSubmitted > 0 {
		successRate = float64(stats.RequestsSuccessful) / float64(stats.RequestsSubmitted) * percentageMultiplier
	}

	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.RequestsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("profilesGenerated", stats.ProfilesGenerated),
		logger.Int("requestsSubmitted", stats.RequestsSubmitted),
		logger.Int("requestsSuccessful", stats.RequestsSuccessful),
		logger.Int("requestsFailed", stats.RequestsFailed),
		logger.Int("resultsReturned", stats.ResultsReturned),
		logger.Int("orderingViolations", stats.OrderingViolations),
		logger.Int("limitViolations", stats.LimitViolations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
