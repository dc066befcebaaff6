package googleplaces

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmac111/scraper/internal/models"
	"github.com/sirupsen/logrus"
)

// RetryConfig controls the backoff applied to transient API failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   10 * time.Second,
	}
}

// retryable reports whether an error is worth retrying. Quota exhaustion and
// server-side failures clear on their own; anything else is permanent.
func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == "OVER_QUERY_LIMIT" || statusErr.Status == "UNKNOWN_ERROR"
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return false
}

func (c *Client) retryOperation(ctx context.Context, operation func() error) error {
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := operation()
		if err == nil {
			return nil
		}

		if !retryable(err) {
			return err
		}

		if attempt == c.retry.MaxRetries {
			return fmt.Errorf("operation failed after %d retries: %w", c.retry.MaxRetries, err)
		}

		delay := time.Duration(float64(c.retry.BaseDelay) * math.Pow(1.5, float64(attempt)))
		if delay > c.retry.MaxDelay {
			delay = c.retry.MaxDelay
		}

		c.logger.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"delay":   delay,
			"error":   err.Error(),
		}).Warn("Retrying Google Maps API request")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil
}

// NearbySearchWithRetry wraps NearbySearch with transient-failure retries.
func (c *Client) NearbySearchWithRetry(ctx context.Context, center models.Coordinates, radiusMeters int, keyword string) ([]NearbyPlace, error) {
	var result []NearbyPlace
	err := c.retryOperation(ctx, func() error {
		var err error
		result, err = c.NearbySearch(ctx, center, radiusMeters, keyword)
		return err
	})
	return result, err
}

// PlaceDetailsWithRetry wraps PlaceDetails with transient-failure retries.
func (c *Client) PlaceDetailsWithRetry(ctx context.Context, placeID string) (*PlaceDetail, error) {
	var result *PlaceDetail
	err := c.retryOperation(ctx, func() error {
		var err error
		result, err = c.PlaceDetails(ctx, placeID)
		return err
	})
	return result, err
}
