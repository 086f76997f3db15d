package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

const (
	// jitterFraction spreads retries by up to ±25% of the computed delay.
	jitterFraction = 0.25

	// maxResponseBody caps how much of a reply is kept in Response.Body.
	maxResponseBody = 64 << 10
)

// sendWithRetry runs up to maxAttempts attempts. Transport errors other
// than cancellation and retryable statuses (429, 5xx) are retried; a
// Retry-After header on the previous reply overrides the backoff.
func (c *Client) sendWithRetry(ctx context.Context, req Request) (*Response, error) {
	var (
		last       *Response
		lastErr    error
		retryAfter time.Duration
	)

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			delay := retryAfter
			if delay <= 0 {
				delay = backoff(attempt, c.retry)
			}
			logging.FromContext(ctx).WarnContext(ctx, "retrying outbound call",
				slog.String("receiver", c.name),
				slog.String("method", req.Method),
				slog.String("path", req.Path),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.retry.maxAttempts),
				slog.Duration("delay", delay),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, delay); err != nil {
				return last, err
			}
		}

		resp, err := c.attempt(ctx, req)
		if err != nil {
			if !isRetryable(ctx, err) {
				return nil, err
			}
			last, lastErr, retryAfter = nil, err, 0
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}
		last = resp
		lastErr = fmt.Errorf("%s answered %d", c.name, resp.StatusCode)
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), c.retry.maxInterval)
	}

	if last != nil {
		return last, fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
	}
	return nil, lastErr
}

// attempt performs a single round trip and reads the reply. The rest of an
// oversized body is drained so the connection can be reused.
func (c *Client) attempt(ctx context.Context, req Request) (*Response, error) {
	hr, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := c.http.Do(hr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, raw.Body)
		_ = raw.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(raw.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("reading %s reply: %w", c.name, err)
	}
	return &Response{StatusCode: raw.StatusCode, Header: raw.Header, Body: body}, nil
}

func bytesReader(b []byte) io.Reader {
	if b == nil {
		return http.NoBody
	}
	return bytes.NewReader(b)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-based):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, with jitter.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := min(float64(p.initialInterval)*math.Pow(p.multiplier, float64(attempt-1)), float64(p.maxInterval))
	delay += delay * jitterFraction * (2*randFloat64() - 1)
	return time.Duration(max(delay, 0))
}

// parseRetryAfter reads a delta-seconds Retry-After value capped at limit.
// HTTP dates and malformed values yield zero.
func parseRetryAfter(v string, limit time.Duration) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return min(time.Duration(secs)*time.Second, limit)
}

// randFloat64 returns a value in [0, 1) from crypto/rand.
func randFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0.5
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable treats every transport failure as transient, including a
// per-attempt client timeout, unless the caller's context is done.
func isRetryable(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() == nil
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
