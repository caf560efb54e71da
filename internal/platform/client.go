// Package platform reads the booking and fleet collections owned by the
// travel platform's REST services.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finboard/internal/config"
	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/pkg/clients"
)

const (
	BookingsPath = "/api/bookings"
	VehiclesPath = "/api/vehicles"

	maxRetries    = 3
	retryInterval = time.Second
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrMalformedBody    = errors.New("malformed response body")
)

type Client struct {
	url           string
	token         string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:           cfg.PlatformAddress,
		token:         cfg.PlatformToken,
		client:        client,
		retryInterval: retryInterval,
	}
}

func (c *Client) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	body, err := c.get(ctx, BookingsPath)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Booking](body, "data", "bookings", "items")
}

func (c *Client) FetchVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	body, err := c.get(ctx, VehiclesPath)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Vehicle](body, "data", "vehicles", "items")
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if c.token != "" {
		headers.Set("Authorization", "Bearer "+c.token)
	}
	return headers
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.url + path
	for attempt := 1; ; attempt++ {
		statusCode, respBody, respHeaders, err := c.client.Get(ctx, url, c.headers())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt < maxRetries {
				if err := sleep(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("failed to fetch %s after %d retries: %w", path, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return respBody, nil
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			if attempt >= maxRetries {
				return nil, fmt.Errorf("%w %d from %s after %d retries", ErrUnexpectedStatus, statusCode, path, maxRetries)
			}
			retryAfter := c.retryAfter(respHeaders, attempt)
			zap.L().Warn(
				"Platform is throttling, retrying",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			if err := sleep(ctx, retryAfter); err != nil {
				return nil, err
			}
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("path", path))
			return nil, fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, statusCode, path)
		}
	}
}

func (c *Client) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := c.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	return retryAfter
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeList accepts a bare array or an envelope object holding the array
// under one of keys. Elements that fail to decode are skipped.
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	raw, err := unwrap(body, keys)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			zap.L().Warn("Skipping malformed record", zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func unwrap(body []byte, keys []string) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	for _, key := range keys {
		value, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, &list); err == nil {
			return list, nil
		}
	}
	return nil, ErrMalformedBody
}
