package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yndnr/beagle-go/internal/beagle"
	"github.com/yndnr/beagle-go/internal/cli/config"
	"github.com/yndnr/beagle-go/internal/cli/connection"
	"github.com/yndnr/beagle-go/internal/cli/prompt"
	"github.com/yndnr/beagle-go/internal/cli/session"
	"github.com/yndnr/beagle-go/internal/telemetry/logger"
	"github.com/yndnr/beagle-go/internal/telemetry/metric"
	"github.com/yndnr/beagle-go/pkg/token"
)

// ErrInvalidCredentials is the fatal outcome of re-authentication. The
// command layer maps it to the process's only non-zero exit.
var ErrInvalidCredentials = errors.New("auth: invalid username or password")

// Authenticator drives the token verification state machine.
type Authenticator struct {
	client  *connection.Client
	store   *session.Store
	cfg     *config.Config
	prompt  *prompt.Reader
	out     io.Writer
	logger  logger.Logger
	metrics *metric.Registry
}

// Options collects the authenticator's collaborators.
type Options struct {
	Client *connection.Client
	Store  *session.Store
	Config *config.Config
	Prompt *prompt.Reader
	// Out receives the login confirmation; defaults to stderr.
	Out     io.Writer
	Logger  logger.Logger
	Metrics *metric.Registry
}

// New creates an Authenticator.
func New(opts Options) *Authenticator {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Authenticator{
		client:  opts.Client,
		store:   opts.Store,
		cfg:     opts.Config,
		prompt:  opts.Prompt,
		out:     out,
		logger:  log,
		metrics: opts.Metrics,
	}
}

// Ensure runs the gate: verify, else refresh, else re-authenticate.
// It is called exactly once per invocation, before command dispatch.
func (a *Authenticator) Ensure(ctx context.Context) error {
	rec := a.store.Record()

	if a.verify(ctx, rec.AccessToken) {
		a.event(metric.AuthVerifyOK)
		return nil
	}

	if a.refresh(ctx, rec.RefreshToken) {
		a.event(metric.AuthRefreshOK)
		return nil
	}

	return a.reauthenticate(ctx)
}

// verify asks the backend whether the stored access token is still valid.
func (a *Authenticator) verify(ctx context.Context, access string) bool {
	if access == "" {
		return false
	}

	a.debugToken("verifying access token", access)
	res, err := a.client.Post(ctx, beagle.PathVerify, map[string]string{"token": access})
	if err != nil {
		a.logger.Warn("token verification unreachable", "error", err)
		return false
	}
	return res.OK()
}

// refresh spends the refresh token on a new access token and persists it.
// The refresh token itself is left untouched.
func (a *Authenticator) refresh(ctx context.Context, refresh string) bool {
	if refresh == "" {
		return false
	}

	res, err := a.client.Post(ctx, beagle.PathRefresh, map[string]string{"refresh": refresh})
	if err != nil || !res.OK() {
		return false
	}

	var pair beagle.TokenPair
	if err := unmarshalResult(res, &pair); err != nil || pair.Access == "" {
		a.logger.Warn("refresh response malformed", "error", err)
		return false
	}
	if err := a.store.Set(session.FieldAccessToken, pair.Access); err != nil {
		a.logger.Error("persist refreshed token", "error", err)
		return false
	}
	a.debugToken("access token refreshed", pair.Access)
	return true
}

// reauthenticate obtains a fresh token pair with full credentials:
// pre-supplied from configuration when both are present, interactive
// otherwise. Failure here is fatal for the process.
func (a *Authenticator) reauthenticate(ctx context.Context) error {
	username, password := a.cfg.User, a.cfg.Pw
	if !a.cfg.HasCredentials() {
		var err error
		if username, err = a.prompt.RequiredLine("Username: "); err != nil {
			return fmt.Errorf("auth: read username: %w", err)
		}
		if password, err = a.prompt.Password("Password: "); err != nil {
			return fmt.Errorf("auth: read password: %w", err)
		}
	}

	res, err := a.client.Post(ctx, beagle.PathAuth, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil || !res.OK() {
		a.event(metric.AuthLoginFailed)
		return ErrInvalidCredentials
	}

	var pair beagle.TokenPair
	if err := unmarshalResult(res, &pair); err != nil || pair.Access == "" {
		a.event(metric.AuthLoginFailed)
		return ErrInvalidCredentials
	}
	if err := a.store.SetTokens(pair.Access, pair.Refresh); err != nil {
		return fmt.Errorf("auth: persist tokens: %w", err)
	}

	a.event(metric.AuthLoginOK)
	a.debugToken("authenticated", pair.Access)
	fmt.Fprintln(a.out, "Authentication successful")
	return nil
}

func (a *Authenticator) event(name string) {
	if a.metrics != nil {
		a.metrics.AuthEvent(name)
	}
}

// debugToken logs a token event using its fingerprint and, when the token
// is a readable JWT, its expiry. Raw tokens never reach the logger.
func (a *Authenticator) debugToken(msg, tok string) {
	args := []any{"fingerprint", token.Fingerprint(tok)}
	if claims, err := token.Peek(tok); err == nil && !claims.ExpiresAt.IsZero() {
		args = append(args, "expires_at", claims.ExpiresAt, "expired", claims.Expired(time.Now()))
	}
	a.logger.Debug(msg, args...)
}

func unmarshalResult(res *connection.Result, target any) error {
	return json.Unmarshal(res.Body, target)
}
