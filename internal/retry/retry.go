// Package retry repeats idempotent HTTP calls on transient failures.
// It is opt-in: the zero Policy makes exactly one attempt.
package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const (
	defaultBaseDelay      = 500 * time.Millisecond
	defaultMaxDelay       = 8 * time.Second
	defaultMultiplier     = 2.0
	defaultJitterFraction = 0.30
	defaultSnippetLimit   = 200
)

type Sleeper func(ctx context.Context, d time.Duration) error
type NowFunc func() time.Time
type RandFunc func() float64

// Policy controls attempts and delays. MaxAttempts <= 1 disables retries.
type Policy struct {
	MaxAttempts    int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	Multiplier     float64
	JitterFraction float64
	SnippetLimit   int
	Retryable      func(status int) bool
	Sleep          Sleeper
	Now            NowFunc
	Rand           RandFunc
}

// WithAttempts returns a policy with default delays and n attempts in total.
func WithAttempts(n int) Policy {
	return withDefaults(Policy{MaxAttempts: n})
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// AttemptFunc performs one call. It must read and close the body itself.
type AttemptFunc func(ctx context.Context) (*Response, error)

// ExhaustedError is returned when the last attempt still failed transiently.
// For status failures the last Response is returned alongside it.
type ExhaustedError struct {
	Cause    error
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry attempts exhausted after %d: %v", e.Attempts, e.Cause)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Cause
}

type StatusError struct {
	StatusCode  int
	BodySnippet string
}

func (e *StatusError) Error() string {
	if e.BodySnippet == "" {
		return fmt.Sprintf("transient status %d", e.StatusCode)
	}
	return fmt.Sprintf("transient status %d: %s", e.StatusCode, e.BodySnippet)
}

// Do calls attempt until it succeeds, fails permanently, or attempts run out.
// A non-retryable status is not an error: the response is returned as is.
func Do(ctx context.Context, policy Policy, logger *slog.Logger, attempt AttemptFunc) (*Response, error) {
	policy = withDefaults(policy)

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		last := n >= policy.MaxAttempts

		resp, err := attempt(ctx)
		if err != nil {
			if !isRetryableNetErr(ctx, err) {
				return nil, err
			}
			if last {
				if policy.MaxAttempts == 1 {
					return nil, err
				}
				return nil, &ExhaustedError{Cause: err, Attempts: n}
			}
			delay := policy.jitterDelay(policy.backoffDelay(n))
			logRetry(logger, n+1, policy.MaxAttempts, 0, reasonForNetErr(err), delay, false, "")
			if err := policy.Sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if resp == nil {
			return nil, errors.New("nil response from attempt")
		}
		if !policy.Retryable(resp.StatusCode) || policy.MaxAttempts == 1 {
			return resp, nil
		}

		snippet := bodySnippet(resp.Body, policy.SnippetLimit)
		if last {
			return resp, &ExhaustedError{
				Cause:    &StatusError{StatusCode: resp.StatusCode, BodySnippet: snippet},
				Attempts: n,
			}
		}

		retryAfter, usedRetryAfter := parseRetryAfter(resp.Header, policy.Now())
		delay := policy.nextDelay(n, retryAfter, usedRetryAfter)
		logRetry(logger, n+1, policy.MaxAttempts, resp.StatusCode, reasonForStatus(resp.StatusCode), delay, usedRetryAfter, snippet)
		if err := policy.Sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// RetryableStatus reports statuses worth another attempt. 402 is final:
// exhausted credits do not come back by waiting.
func RetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func withDefaults(p Policy) Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay == 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.MaxDelay == 0 {
		p.MaxDelay = defaultMaxDelay
	}
	if p.Multiplier == 0 {
		p.Multiplier = defaultMultiplier
	}
	if p.JitterFraction == 0 {
		p.JitterFraction = defaultJitterFraction
	}
	if p.SnippetLimit == 0 {
		p.SnippetLimit = defaultSnippetLimit
	}
	if p.Retryable == nil {
		p.Retryable = RetryableStatus
	}
	if p.Sleep == nil {
		p.Sleep = defaultSleep
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Rand == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		p.Rand = rng.Float64
	}
	return p
}

func (p Policy) backoffDelay(retryIndex int) time.Duration {
	if retryIndex < 1 {
		retryIndex = 1
	}
	delay := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(retryIndex-1))
	if delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}
	return time.Duration(delay)
}

func (p Policy) jitterDelay(delay time.Duration) time.Duration {
	if delay <= 0 || p.JitterFraction <= 0 {
		return delay
	}
	factor := 1 + (p.Rand()*2-1)*p.JitterFraction
	adjusted := float64(delay) * factor
	if adjusted < 0 {
		adjusted = 0
	}
	return time.Duration(adjusted)
}

func (p Policy) nextDelay(retryIndex int, retryAfter time.Duration, usedRetryAfter bool) time.Duration {
	if usedRetryAfter {
		return min(retryAfter, p.MaxDelay)
	}
	return p.jitterDelay(p.backoffDelay(retryIndex))
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseRetryAfter(header http.Header, now time.Time) (time.Duration, bool) {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, true
		}
		return time.Duration(seconds) * time.Second, true
	}
	if parsed, err := http.ParseTime(value); err == nil {
		return max(parsed.Sub(now), 0), true
	}
	return 0, false
}

func reasonForStatus(status int) string {
	switch status {
	case http.StatusTooManyRequests:
		return "rate limit"
	case http.StatusRequestTimeout:
		return "timeout"
	default:
		if status >= 500 {
			return "server error"
		}
		return "http error"
	}
}

func isRetryableNetErr(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection reset")
}

func reasonForNetErr(err error) string {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "eof"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "connection refused"
	case errors.Is(err, syscall.ECONNRESET), strings.Contains(strings.ToLower(err.Error()), "connection reset"):
		return "connection reset"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "network error"
}

func logRetry(logger *slog.Logger, attempt, maxAttempts, status int, reason string, delay time.Duration, usedRetryAfter bool, snippet string) {
	if logger == nil {
		return
	}
	attrs := []slog.Attr{
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", maxAttempts),
		slog.String("reason", reason),
		slog.Duration("retry_in", delay),
		slog.Bool("retry_after_used", usedRetryAfter),
	}
	if status > 0 {
		attrs = append(attrs, slog.Int("status", status))
	}
	if snippet != "" {
		attrs = append(attrs, slog.String("snippet", snippet))
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, "retrying request", attrs...)
}

func bodySnippet(body []byte, limit int) string {
	if len(body) == 0 || limit <= 0 {
		return ""
	}
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
