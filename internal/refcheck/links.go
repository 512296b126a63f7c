package refcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPDoer describes the HTTP client used for link probes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// LinkResult is the outcome for one referenced URL. Code holds the HTTP status
// when a response arrived; Error holds the failure otherwise.
type LinkResult struct {
	Link  string `json:"link"`
	Code  int    `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// OK reports a 2xx response.
func (r LinkResult) OK() bool { return r.Code >= 200 && r.Code < 300 }

// Status renders the numeric code, or the error message when no response
// arrived.
func (r LinkResult) Status() string {
	if r.Code != 0 {
		return strconv.Itoa(r.Code)
	}
	return r.Error
}

// LinkChecker probes URLs sequentially.
type LinkChecker struct {
	Client    HTTPDoer
	Timeout   time.Duration
	Method    string
	UserAgent string
}

// Check probes every link in order. Cancelling ctx stops further requests;
// links not probed are reported with the context error.
func (c *LinkChecker) Check(ctx context.Context, links []string) []LinkResult {
	out := make([]LinkResult, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			out = append(out, LinkResult{Link: link, Error: err.Error()})
			continue
		}
		out = append(out, c.probe(ctx, link))
	}
	return out
}

func (c *LinkChecker) probe(ctx context.Context, link string) LinkResult {
	result := LinkResult{Link: link}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	method := strings.ToUpper(strings.TrimSpace(c.Method))
	if method == "" {
		method = http.MethodHead
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSpace(link), nil)
	if err != nil {
		result.Error = fmt.Sprintf("build request: %v", err)
		return result
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()
	// Drain a little so keep-alive connections can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)
	result.Code = resp.StatusCode
	return result
}
