package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/store"
	"github.com/daystar-app/daystar-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// HTTPClientConfig holds the settings of the HTTP gateway client.
type HTTPClientConfig struct {
	// BaseURL is the API root, e.g. "https://api-daystar.onrender.com/api".
	BaseURL string
	// RequestTimeout bounds every outbound request. Defaults to 15s.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	creds  store.CredentialStore

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL, configures
// the underlying resty client with the request timeout, and installs the
// request-decoration and response-inspection middleware around every
// call.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, creds store.CredentialStore, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	a := &httpServerAdapter{creds: creds, logger: log}

	a.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		OnBeforeRequest(a.decorateRequest).
		OnAfterResponse(a.inspectResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// decorateRequest runs before every dispatch. The credential store is
// read on every call, never cached in memory, so a just-cleared
// credential is never reused. A storage failure aborts the request.
func (a *httpServerAdapter) decorateRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-Id", uuid.NewString())

	token, err := a.creds.Read(req.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoCredential) {
			return nil
		}
		return fmt.Errorf("read credential: %w", err)
	}

	req.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// inspectResponse runs after every response. An authorization failure
// clears the credential store before the rejection propagates, so the
// next request decoration sees no stale credential. It is a side effect
// only: no retry, and session state stays with the session manager.
func (a *httpServerAdapter) inspectResponse(_ *resty.Client, resp *resty.Response) error {
	code := resp.StatusCode()
	if code != 401 && code != 403 {
		return nil
	}

	if err := a.creds.Clear(resp.Request.Context()); err != nil {
		a.logger.Error().Err(err).
			Str("url", resp.Request.URL).
			Msg("failed to clear credential after authorization failure")
	}
	return nil
}

// LoginWithGoogle implements [ServerAdapter].
func (a *httpServerAdapter) LoginWithGoogle(ctx context.Context, idToken string) (string, *models.UserProfile, error) {
	return a.authRequest(ctx, "/auth/google", models.GoogleLoginRequest{IDToken: idToken})
}

// Login implements [ServerAdapter].
func (a *httpServerAdapter) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	return a.authRequest(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password})
}

// Register implements [ServerAdapter].
func (a *httpServerAdapter) Register(ctx context.Context, email, password, name string) (string, *models.UserProfile, error) {
	return a.authRequest(ctx, "/auth/register", models.RegisterRequest{Email: email, Password: password, Name: name})
}

// authRequest POSTs body to path and decodes the common auth envelope.
// All three login variants share the same response shape.
func (a *httpServerAdapter) authRequest(ctx context.Context, path string, body any) (string, *models.UserProfile, error) {
	var ar models.AuthResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&ar).
		Post(path)
	if err != nil {
		return "", nil, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", nil, err
	}
	if !ar.Success || ar.Token == "" || ar.User == nil {
		return "", nil, fmt.Errorf("%w: malformed auth response from %s", ErrServer, path)
	}

	return ar.Token, ar.User, nil
}

// Verify implements [ServerAdapter]. A structurally valid response with
// valid=false means the server rejected the token without a 401; it is
// surfaced as [ErrUnauthorized] so callers handle both cases uniformly.
func (a *httpServerAdapter) Verify(ctx context.Context) (*models.UserProfile, error) {
	var vr models.VerifyResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&vr).
		Get("/auth/verify")
	if err != nil {
		return nil, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !vr.Success {
		return nil, fmt.Errorf("%w: malformed verify response", ErrServer)
	}
	if !vr.Valid || vr.User == nil {
		return nil, fmt.Errorf("%w: token rejected by verify", ErrUnauthorized)
	}

	return vr.User, nil
}

// UpdateProfile implements [ServerAdapter]. password may be empty, in
// which case only the name changes.
func (a *httpServerAdapter) UpdateProfile(ctx context.Context, name, password string) (*models.UserProfile, error) {
	var pr models.ProfileResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateProfileRequest{Name: name, Password: password}).
		SetResult(&pr).
		Put("/auth/profile")
	if err != nil {
		return nil, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !pr.Success || pr.User == nil {
		return nil, fmt.Errorf("%w: malformed profile response", ErrServer)
	}

	return pr.User, nil
}

// ListHabits implements [ServerAdapter].
func (a *httpServerAdapter) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var hr models.HabitsResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&hr).
		Get("/habits")
	if err != nil {
		return nil, fmt.Errorf("list habits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !hr.Success {
		return nil, fmt.Errorf("%w: malformed habits response", ErrServer)
	}

	return hr.Habits, nil
}

// CreateHabit implements [ServerAdapter].
func (a *httpServerAdapter) CreateHabit(ctx context.Context, fields models.HabitFields) (*models.Habit, error) {
	return a.habitRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(fields).Post("/habits")
	})
}

// UpdateHabit implements [ServerAdapter].
func (a *httpServerAdapter) UpdateHabit(ctx context.Context, id int64, fields models.HabitFields) (*models.Habit, error) {
	return a.habitRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(fields).Put(fmt.Sprintf("/habits/%d", id))
	})
}

// CheckIn implements [ServerAdapter]. The server is authoritative on
// whether localDate already has a check-in for this habit; a duplicate
// comes back as a structured 4xx and is mapped to [ErrValidation].
func (a *httpServerAdapter) CheckIn(ctx context.Context, habitID int64, localDate string) (*models.Habit, error) {
	return a.habitRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(models.CheckInRequest{LocalDate: localDate}).
			Post(fmt.Sprintf("/habits/%d/checkin", habitID))
	})
}

// habitRequest runs a mutation that answers with the single-habit
// envelope and decodes it.
func (a *httpServerAdapter) habitRequest(ctx context.Context, do func(*resty.Request) (*resty.Response, error)) (*models.Habit, error) {
	var hr models.HabitResponse

	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetResult(&hr)

	resp, err := do(req)
	if err != nil {
		return nil, fmt.Errorf("habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !hr.Success || hr.Habit == nil {
		return nil, fmt.Errorf("%w: malformed habit response", ErrServer)
	}

	return hr.Habit, nil
}

// ListCheckIns implements [ServerAdapter].
func (a *httpServerAdapter) ListCheckIns(ctx context.Context, habitID int64) ([]models.CheckIn, error) {
	var cr models.CheckInsResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&cr).
		Get(fmt.Sprintf("/habits/%d/checkins", habitID))
	if err != nil {
		return nil, fmt.Errorf("list checkins request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !cr.Success {
		return nil, fmt.Errorf("%w: malformed checkins response", ErrServer)
	}

	return cr.CheckIns, nil
}
