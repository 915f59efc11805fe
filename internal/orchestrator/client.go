package orchestrator

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"spcli/internal/device"
	"spcli/internal/formatting"
	"spcli/pkg/logging"
	spstrings "spcli/pkg/strings"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/publicsuffix"
)

const (
	loginPath  = "/authentication/login"
	logoutPath = "/authentication/logout"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 512
	// maxErrorMessage bounds how much of it ends up in messages.
	maxErrorMessage = 200
)

// Options configures a Client.
type Options struct {
	// TLSVerify enables certificate verification. Orchestrators usually
	// serve self-signed certificates, so it is off by default.
	TLSVerify bool
	// UserAgent is sent with every request when set.
	UserAgent string
}

// Client is a Querier bound to a single endpoint and login session.
type Client struct {
	endpoint device.Endpoint
	baseURL  string
	opts     Options
	http     *http.Client
	loggedIn bool
}

// NewClient creates a client for endpoint. It does not contact the
// endpoint; call Login before issuing queries.
func NewClient(endpoint device.Endpoint, opts Options) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	transport := cleanhttp.DefaultTransport()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !opts.TLSVerify, //nolint:gosec // self-signed orchestrator certificates
	}

	return &Client{
		endpoint: endpoint,
		baseURL:  endpoint.BaseURL(),
		opts:     opts,
		http: &http.Client{
			Transport: transport,
			Jar:       jar,
		},
	}, nil
}

// Login opens a session with the endpoint's credentials.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"user":     c.endpoint.Credentials.Username,
		"password": c.endpoint.Credentials.Password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	defer logging.Timed("Orchestrator", "Login to %s", c.endpoint)()

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err, c.endpoint.String(), "login")
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{
			Endpoint:   c.endpoint.String(),
			Username:   c.endpoint.Credentials.Username,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &TransportError{
			Endpoint:   c.endpoint.String(),
			Op:         "login",
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Err:        bodyError(respBody),
		}
	}

	c.loggedIn = true
	logging.Debug("Orchestrator", "Logged in to %s as %s", c.endpoint, c.endpoint.Credentials.Username)
	return nil
}

// Close ends the session. It is a no-op when Login never succeeded.
func (c *Client) Close() error {
	if !c.loggedIn {
		return nil
	}
	c.loggedIn = false

	// Logout must not hang on a dead session.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+logoutPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err, c.endpoint.String(), "logout")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{
			Endpoint:   c.endpoint.String(),
			Op:         "logout",
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
		}
	}
	return nil
}

// GetAppliances implements Querier.
func (c *Client) GetAppliances(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/appliance", nil)
}

// GetAppliance implements Querier.
func (c *Client) GetAppliance(ctx context.Context, neID string) (*Response, error) {
	return c.get(ctx, "/appliance/"+url.PathEscape(neID), nil)
}

// GetReachApp implements Querier.
func (c *Client) GetReachApp(ctx context.Context, neID string) (*Response, error) {
	return c.get(ctx, "/reachability/appliance/"+url.PathEscape(neID), nil)
}

// GetReachGMS implements Querier.
func (c *Client) GetReachGMS(ctx context.Context, neID string) (*Response, error) {
	return c.get(ctx, "/reachability/gms/"+url.PathEscape(neID), nil)
}

// GetGroups implements Querier.
func (c *Client) GetGroups(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/gms/group", nil)
}

// GetGroup implements Querier.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Response, error) {
	return c.get(ctx, "/gms/group/"+url.PathEscape(groupID), nil)
}

// GetGroupRoot implements Querier.
func (c *Client) GetGroupRoot(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/gms/group/root", nil)
}

// GetGRNodes implements Querier.
func (c *Client) GetGRNodes(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/gms/grNode", nil)
}

// GetDiscovered implements Querier.
func (c *Client) GetDiscovered(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/appliance/discovered", nil)
}

// GetApproved implements Querier.
func (c *Client) GetApproved(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/appliance/approved", nil)
}

// GetInterfaces implements Querier.
func (c *Client) GetInterfaces(ctx context.Context, neID string, cached bool) (*Response, error) {
	query := url.Values{}
	query.Set("nePk", neID)
	query.Set("cached", strconv.FormatBool(cached))
	return c.get(ctx, "/interfaceState", query)
}

// GetAlarms implements Querier.
func (c *Client) GetAlarms(ctx context.Context, q AlarmQuery) (*Response, error) {
	view := q.View
	if view == "" {
		view = AlarmViewAll
	}
	query := url.Values{}
	query.Set("view", string(view))
	if q.Severity != "" {
		query.Set("severity", q.Severity)
	}
	return c.get(ctx, "/alarm/gms", query)
}

// GetAlarmSummary implements Querier.
func (c *Client) GetAlarmSummary(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/alarm/summary", nil)
}

// GetAlarmSummaryType implements Querier.
func (c *Client) GetAlarmSummaryType(ctx context.Context, alarmType AlarmType) (*Response, error) {
	if alarmType == "" {
		alarmType = AlarmTypeGMS
	}
	return c.get(ctx, "/alarm/summary/"+url.PathEscape(string(alarmType)), nil)
}

// get issues a GET against path and decodes the body into a payload.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.endpoint.String(), path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, classifyTransportError(err, c.endpoint.String(), path)
	}
	logging.Debug("Orchestrator", "GET %s -> %d (%d bytes, %s)", target, resp.StatusCode, len(body), elapsed.Round(time.Millisecond))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthenticationError{
			Endpoint:   c.endpoint.String(),
			Username:   c.endpoint.Credentials.Username,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{
			Endpoint:   c.endpoint.String(),
			Op:         path,
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Err:        bodyError(body),
		}
	}

	payload, err := formatting.DecodePayload(body)
	if err != nil {
		return nil, &TransportError{
			Endpoint:   c.endpoint.String(),
			Op:         path,
			Kind:       KindMalformedResponse,
			Err:        err,
		}
	}

	return &Response{
		Payload: payload,
		Metadata: Metadata{
			StatusCode: resp.StatusCode,
			Method:     http.MethodGet,
			URL:        target,
			Elapsed:    elapsed,
		},
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}
}

// bodyError turns an error body into a single-line error for context, or nil.
func bodyError(body []byte) error {
	msg := spstrings.SingleLine(string(body), maxErrorMessage)
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
