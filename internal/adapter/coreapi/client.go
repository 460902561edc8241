// Package coreapi is the HTTP client for the core service, the remote
// system that owns all persistent state: the staff roster, attendance and
// financial records, and caller roles.
package coreapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/config"
	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/ctxutil"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// callerHeader carries the authenticated caller principal to the core
// service, which scopes profile and role operations by it.
const callerHeader = "X-Caller-Principal"

// Client talks to the core service. Reads retry once on transient
// failures; writes are attempted exactly once and surface rejection to the
// caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	ready      atomic.Bool
}

// New creates a Client from configuration.
func New(cfg config.CoreConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "coreapi"),
	}
}

// NewWithURL creates a Client with a custom base URL (for testing).
func NewWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "coreapi"),
	}
}

// Ready reports whether the initial handshake with the core service has
// succeeded. Until then, cache-backed reads resolve empty instead of
// blocking.
func (c *Client) Ready() bool {
	return c.ready.Load()
}

// Connect performs the readiness handshake. On success the client is
// marked ready; a later Ping failure does not clear the flag.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}
	if c.ready.CompareAndSwap(false, true) {
		c.log.InfoContext(ctx, "core service connected", slog.String("base_url", c.baseURL))
	}
	return nil
}

// Ping checks core service liveness.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/healthz", nil, nil)
}

// --- Staff ---

func (c *Client) GetAllStaff(ctx context.Context) ([]domain.StaffRecord, error) {
	var wire []wireStaff
	if err := c.get(ctx, "/staff", nil, &wire); err != nil {
		return nil, fmt.Errorf("coreapi: get all staff: %w", err)
	}
	out := make([]domain.StaffRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// AddStaff registers a new roster entry. The returned flag mirrors the
// core service's success indicator; false without an error means the
// record was refused (typically a duplicate id).
func (c *Client) AddStaff(ctx context.Context, rec domain.StaffRecord) (bool, error) {
	req := addStaffRequest{StaffID: rec.StaffID, FullName: rec.FullName, Role: rec.Role.String()}
	var resp addStaffResponse
	if err := c.send(ctx, http.MethodPost, "/staff", req, &resp); err != nil {
		return false, fmt.Errorf("coreapi: add staff: %w", err)
	}
	return resp.OK, nil
}

func (c *Client) DeactivateStaff(ctx context.Context, staffID string) error {
	path := "/staff/" + url.PathEscape(staffID) + "/deactivate"
	if err := c.send(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("coreapi: deactivate staff: %w", err)
	}
	return nil
}

// --- Attendance ---

func (c *Client) GetAttendanceByDate(ctx context.Context, day time.Time) ([]domain.AttendanceRecord, error) {
	q := url.Values{"date": {strconv.FormatInt(daytime.ToNanos(day), 10)}}
	var wire []wireAttendance
	if err := c.get(ctx, "/attendance", q, &wire); err != nil {
		return nil, fmt.Errorf("coreapi: get attendance by date: %w", err)
	}
	out := make([]domain.AttendanceRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) GetAttendanceByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	path := "/staff/" + url.PathEscape(staffID) + "/attendance"
	var wire []wireAttendance
	if err := c.get(ctx, path, nil, &wire); err != nil {
		return nil, fmt.Errorf("coreapi: get attendance by staff: %w", err)
	}
	out := make([]domain.AttendanceRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) RecordSignIn(ctx context.Context, staffID string, day time.Time, shift domain.Shift) error {
	req := signInRequest{StaffID: staffID, Date: daytime.ToNanos(day), Shift: shift.String()}
	if err := c.send(ctx, http.MethodPost, "/attendance/sign-in", req, nil); err != nil {
		return fmt.Errorf("coreapi: record sign-in: %w", err)
	}
	return nil
}

func (c *Client) RecordSignOut(ctx context.Context, staffID string, day time.Time) error {
	req := signOutRequest{StaffID: staffID, Date: daytime.ToNanos(day)}
	if err := c.send(ctx, http.MethodPost, "/attendance/sign-out", req, nil); err != nil {
		return fmt.Errorf("coreapi: record sign-out: %w", err)
	}
	return nil
}

// --- Financial ---

func (c *Client) GetFinancialRecordsByRange(ctx context.Context, start, end time.Time) ([]domain.FinancialRecord, error) {
	q := url.Values{
		"start": {strconv.FormatInt(daytime.ToNanos(start), 10)},
		"end":   {strconv.FormatInt(daytime.ToNanos(end), 10)},
	}
	var wire []wireFinancial
	if err := c.get(ctx, "/financial", q, &wire); err != nil {
		return nil, fmt.Errorf("coreapi: get financial records: %w", err)
	}
	out := make([]domain.FinancialRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// UpdateFinancialRecord upserts the record for (date, shift). Last write
// wins; the core service performs no concurrency check.
func (c *Client) UpdateFinancialRecord(ctx context.Context, rec domain.FinancialRecord) error {
	if err := c.send(ctx, http.MethodPut, "/financial", toWireFinancial(rec), nil); err != nil {
		return fmt.Errorf("coreapi: update financial record: %w", err)
	}
	return nil
}

// --- Profiles and roles ---

// GetCallerUserProfile returns the caller's profile, or nil if none has
// been saved yet.
func (c *Client) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var wire wireProfile
	err := c.get(ctx, "/me/profile", nil, &wire)
	if errorsIsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("coreapi: get caller profile: %w", err)
	}
	p := wire.toDomain()
	return &p, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	req := wireProfile{StaffID: profile.StaffID, Name: profile.Name}
	if err := c.send(ctx, http.MethodPut, "/me/profile", req, nil); err != nil {
		return fmt.Errorf("coreapi: save caller profile: %w", err)
	}
	return nil
}

// GetUserProfile returns another principal's profile (admin use), or nil
// if none exists.
func (c *Client) GetUserProfile(ctx context.Context, principal string) (*domain.UserProfile, error) {
	path := "/users/" + url.PathEscape(principal) + "/profile"
	var wire wireProfile
	err := c.get(ctx, path, nil, &wire)
	if errorsIsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("coreapi: get user profile: %w", err)
	}
	p := wire.toDomain()
	return &p, nil
}

func (c *Client) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	var resp roleResponse
	if err := c.get(ctx, "/me/role", nil, &resp); err != nil {
		return "", fmt.Errorf("coreapi: get caller role: %w", err)
	}
	return domain.UserRole(resp.Role), nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var resp isAdminResponse
	if err := c.get(ctx, "/me/is-admin", nil, &resp); err != nil {
		return false, fmt.Errorf("coreapi: is caller admin: %w", err)
	}
	return resp.IsAdmin, nil
}

func (c *Client) AssignUserRole(ctx context.Context, principal string, role domain.UserRole) error {
	req := assignRoleRequest{Principal: principal, Role: role.String()}
	if err := c.send(ctx, http.MethodPost, "/roles", req, nil); err != nil {
		return fmt.Errorf("coreapi: assign role: %w", err)
	}
	return nil
}

// --- Transport plumbing ---

// get issues an idempotent read with a single retry on 5xx or network
// errors.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

// send issues a mutation exactly once. Retry policy for writes belongs to
// the caller's interaction layer, not here.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if principal, ok := ctxutil.PrincipalFromCtx(ctx); ok {
		req.Header.Set(callerHeader, principal)
	}

	return req, nil
}

func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "core request retry",
		slog.String("path", req.URL.Path),
		slog.String("reason", reason),
	)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}

// decode maps the response status to a domain error or unmarshals the
// body into out.
func (c *Client) decode(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := statusError(resp.StatusCode, body); err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// statusError maps non-2xx responses to sentinel errors. The core service
// reports duplicate identifiers with 409 or a recognizable message, which
// both map to ErrAlreadyExists so the UI can name the likely cause.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := errorMessage(body)

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusConflict || isDuplicateMessage(msg):
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, msg)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, msg)
	}
}

func errorMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return strings.TrimSpace(string(body))
}

func isDuplicateMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "duplicate") || strings.Contains(lower, "already exists")
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
