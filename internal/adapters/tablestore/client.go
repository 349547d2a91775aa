// Package tablestore talks to the hosted table service (PostgREST
// dialect) that holds the catalog and contact tables.
package tablestore

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"cairo_tours/internal/adapters/observability"
	"cairo_tours/internal/domain"
)

type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("store API key is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) Select(ctx context.Context, table string, dst any) error {
	u := fmt.Sprintf("%s/rest/v1/%s?select=*&order=id.desc", c.base, table)
	return c.do(ctx, http.MethodGet, u, table, "select", nil, dst)
}

func (c *Client) Insert(ctx context.Context, table string, row any, dst any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/rest/v1/%s", c.base, table)
	var created []json.RawMessage
	if err := c.do(ctx, http.MethodPost, u, table, "insert", body, &created); err != nil {
		return err
	}
	return firstRow(created, dst)
}

func (c *Client) Update(ctx context.Context, table string, id int64, patch any, dst any) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/rest/v1/%s?id=eq.%d", c.base, table, id)
	var updated []json.RawMessage
	if err := c.do(ctx, http.MethodPatch, u, table, "update", body, &updated); err != nil {
		return err
	}
	return firstRow(updated, dst)
}

func (c *Client) Delete(ctx context.Context, table string, id int64) error {
	u := fmt.Sprintf("%s/rest/v1/%s?id=eq.%d", c.base, table, id)
	return c.do(ctx, http.MethodDelete, u, table, "delete", nil, nil)
}

// firstRow unwraps the single-element representation array the store
// returns for inserts and updates. Empty array means no row matched.
func firstRow(rows []json.RawMessage, dst any) error {
	if len(rows) == 0 {
		return domain.ErrNotFound
	}
	if dst == nil {
		return nil
	}
	return json.Unmarshal(rows[0], dst)
}

// do performs one store round trip with client-side rate limiting and
// bounded retries on 429 and transient 5xx, honoring Retry-After.
// POST is never retried: a lost response does not prove the insert was
// not committed, and a re-send would duplicate the row.
func (c *Client) do(ctx context.Context, method, url, table, op string, body []byte, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	retriable := method != http.MethodPost
	var lastErr error
	for i := 0; i < 4; i++ {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rd)
		if err != nil {
			return err
		}
		req.Header.Set("apikey", c.key)
		req.Header.Set("Authorization", "Bearer "+c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", uuid.NewString())
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if method == http.MethodPost || method == http.MethodPatch {
			req.Header.Set("Prefer", "return=representation")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if retriable && i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveStore(table, op, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return domain.ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return domain.ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("store %d", resp.StatusCode)
			if retriable && i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			// constraint violations and malformed requests land here;
			// surface a short diagnostic from the body
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("store rejected %s %s: %d: %s", op, table, resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles each attempt (200ms, 400ms, 800ms...) with up to
// +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
