// Package youdao implements the Youdao translation API client: request
// signing, the retrying HTTP call and normalization of its responses.
package youdao

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/domain"
)

const signTypeV3 = "v3"

// ProviderError is a well-formed response carrying a non-zero error code.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youdao: error code %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("youdao: error code %s", e.Code)
}

// Client calls the Youdao translation API.
type Client struct {
	baseURL    string
	appKey     string
	appSecret  string
	timeout    time.Duration
	maxRetries int
	backoff    Backoff
	params     map[string]string

	http *resty.Client
	log  *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client from provider configuration.
func NewClient(cfg config.YoudaoConfig, logger *slog.Logger) *Client {
	log := logger.With("adapter", "youdao")
	return &Client{
		baseURL:    cfg.BaseURL,
		appKey:     cfg.AppKey,
		appSecret:  cfg.AppSecret,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		backoff: Backoff{
			Base:      cfg.BaseDelay,
			Max:       cfg.MaxDelay,
			MaxJitter: cfg.MaxJitter,
		},
		params: map[string]string{
			"signType": signTypeV3,
			"ext":      cfg.Ext,
			"voice":    cfg.Voice,
			"strict":   strconv.FormatBool(cfg.Strict),
			"vocabId":  cfg.VocabID,
		},
		http: resty.New().
			SetHeader("Accept", "application/json").
			SetLogger(restyLogger{log: log}),
		log:   log,
		now:   time.Now,
		sleep: sleepContext,
	}
}

type outcome int

const (
	outcomeOK outcome = iota
	outcomeRetryable
	outcomeAborted
)

// attemptResult is the result of a single provider call.
type attemptResult struct {
	kind    outcome
	payload *Payload
	err     error
}

// Translate sends q to the provider and returns the successful payload.
// Transport errors, non-2xx statuses, undecodable bodies and non-zero
// provider codes are retried with backoff. A per-attempt timeout or a
// cancelled ctx ends the call immediately. Every terminal failure is a
// *domain.TranslationError.
func (c *Client) Translate(ctx context.Context, q domain.TranslationQuery) (*Payload, error) {
	for retry := 0; ; retry++ {
		res := c.attempt(ctx, q)

		switch res.kind {
		case outcomeOK:
			return res.payload, nil
		case outcomeAborted:
			c.log.ErrorContext(ctx, "youdao request aborted",
				slog.String("q", q.Text),
				slog.Int("retries", retry),
				slog.String("error", res.err.Error()))
			return nil, &domain.TranslationError{Retries: retry, Aborted: true, Err: res.err}
		}

		if retry >= c.maxRetries {
			c.log.ErrorContext(ctx, "youdao request failed",
				slog.String("q", q.Text),
				slog.Int("retries", retry),
				slog.String("error", res.err.Error()))
			return nil, &domain.TranslationError{Retries: retry, Err: res.err}
		}

		delay := c.backoff.Delay(retry)
		c.log.WarnContext(ctx, "youdao retry",
			slog.String("q", q.Text),
			slog.Int("attempt", retry+1),
			slog.Int("max_retries", c.maxRetries),
			slog.Duration("delay", delay),
			slog.String("reason", res.err.Error()))

		if err := c.sleep(ctx, delay); err != nil {
			return nil, &domain.TranslationError{Retries: retry, Aborted: true, Err: err}
		}
	}
}

// attempt performs one signed request under its own timeout. The timeout
// context is released before attempt returns.
func (c *Client) attempt(ctx context.Context, q domain.TranslationQuery) attemptResult {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sig := NewSignature(c.appKey, c.appSecret, q.Text, c.now())

	c.log.DebugContext(ctx, "youdao request",
		slog.String("q", q.Text),
		slog.String("from", q.From),
		slog.String("to", q.To))

	resp, err := c.http.R().
		SetContext(attemptCtx).
		SetQueryParams(c.queryParams(q, sig)).
		Get(c.baseURL)
	if err != nil {
		if ctx.Err() != nil {
			return attemptResult{kind: outcomeAborted, err: ctx.Err()}
		}
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return attemptResult{
				kind: outcomeAborted,
				err:  fmt.Errorf("youdao: request timed out after %s: %w", c.timeout, context.DeadlineExceeded),
			}
		}
		return attemptResult{kind: outcomeRetryable, err: fmt.Errorf("youdao: request: %w", err)}
	}

	if !resp.IsSuccess() {
		return attemptResult{kind: outcomeRetryable, err: fmt.Errorf("youdao: unexpected status %d", resp.StatusCode())}
	}

	payload, err := DecodePayload(resp.Body())
	if err != nil {
		return attemptResult{kind: outcomeRetryable, err: fmt.Errorf("youdao: %w", err)}
	}

	if code := payload.ErrorCode(); code != "0" {
		return attemptResult{kind: outcomeRetryable, err: &ProviderError{Code: code, Message: payload.Message()}}
	}

	c.log.DebugContext(ctx, "youdao response",
		slog.String("q", q.Text),
		slog.Int("status", resp.StatusCode()),
		slog.Int("translations", len(payload.Translations())))

	return attemptResult{kind: outcomeOK, payload: payload}
}

func (c *Client) queryParams(q domain.TranslationQuery, sig Signature) map[string]string {
	params := make(map[string]string, len(c.params)+7)
	for k, v := range c.params {
		params[k] = v
	}
	params["q"] = q.Text
	params["from"] = q.From
	params["to"] = q.To
	params["appKey"] = c.appKey
	params["salt"] = sig.Salt
	params["sign"] = sig.Digest
	params["curtime"] = sig.CurTime
	return params
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// restyLogger routes resty's internal messages to slog.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug(fmt.Sprintf(format, v...)) }
