package services

import (
	"context"
	"errors"
	"fmt"
	"storefront/lib"
	"storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/singleflight"
)

const refreshTimeout = 10 * time.Second

// SessionService is the session provider: it signs users in and hands out
// currently valid credentials, refreshing them when they are about to expire.
type SessionService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	identity  IdentityProvider
	store     SessionStore
	refreshes singleflight.Group
	now       func() time.Time
}

func NewSessionService(logger *gecho.Logger, cfg *structs.Config, identity IdentityProvider, store SessionStore) *SessionService {
	return &SessionService{
		logger:   logger,
		cfg:      cfg,
		identity: identity,
		store:    store,
		now:      time.Now,
	}
}

// SignIn authenticates against the identity provider and stores a new session
func (ss *SessionService) SignIn(ctx context.Context, req *structs.AuthRequest) (*structs.Session, error) {
	startTime := time.Now()

	tokens, err := ss.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			ss.logger.Debug("Sign-in rejected", gecho.Field("identifier", req.Email))
		} else {
			ss.logger.Error("Identity provider error during sign-in", gecho.Field("error", err))
		}
		return nil, err
	}

	claims, err := lib.ParseIdentityToken(tokens.IDToken)
	if err != nil {
		ss.logger.Error("Identity provider returned an unreadable id token", gecho.Field("error", err))
		return nil, err
	}

	sealedRefresh, err := lib.Encrypt(tokens.RefreshToken, ss.cfg.Session.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to seal refresh token: %w", err)
	}

	session := &structs.Session{
		ID:           lib.NewSessionID(),
		Username:     claims.Username,
		LoginID:      claims.LoginID,
		IDToken:      tokens.IDToken,
		ExpiresAt:    claims.ExpiresAt,
		RefreshToken: sealedRefresh,
		CreatedAt:    ss.now(),
	}

	if err := ss.store.Save(ctx, session, ss.cfg.Session.TTL); err != nil {
		ss.logger.Error("Failed to store session", gecho.Field("error", err))
		return nil, err
	}

	ss.logger.Debug("User signed in",
		gecho.Field("login_id", session.LoginID),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	return session, nil
}

// SignOut forgets the session. Unknown ids are not an error.
func (ss *SessionService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return ss.store.Delete(ctx, sessionID)
}

// CurrentUser returns the stored session without refreshing it
func (ss *SessionService) CurrentUser(ctx context.Context, sessionID string) (*structs.Session, error) {
	if sessionID == "" {
		return nil, lib.ErrNoActiveSession
	}

	session, err := ss.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return nil, lib.ErrNoActiveSession
		}
		return nil, fmt.Errorf("%w: %w", lib.ErrNoActiveSession, err)
	}

	return session, nil
}

// GetCredential returns a bearer credential valid for at least the refresh
// skew, refreshing the session's token first when needed.
func (ss *SessionService) GetCredential(ctx context.Context, sessionID string) (*structs.Credential, error) {
	session, err := ss.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if ss.isFresh(session) {
		return credentialFor(session), nil
	}

	// concurrent requests of one session share a single refresh. It is
	// detached from the caller so one disconnecting browser cannot fail it
	// for the others.
	results := ss.refreshes.DoChan(sessionID, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return ss.refresh(refreshCtx, session)
	})

	var res singleflight.Result
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", lib.ErrTransportFailure, ctx.Err())
	}

	if res.Err == nil {
		return credentialFor(res.Val.(*structs.Session)), nil
	}
	if errors.Is(res.Err, lib.ErrNoActiveSession) {
		return nil, res.Err
	}

	// transient failure: the session survives, and so does the current token
	// until it really expires
	if session.IDToken != "" && ss.now().Before(session.ExpiresAt) {
		ss.logger.Warn("Token refresh failed, using current token",
			gecho.Field("error", res.Err),
			gecho.Field("login_id", session.LoginID),
		)
		return credentialFor(session), nil
	}
	return nil, fmt.Errorf("%w: %w", lib.ErrNoActiveSession, res.Err)
}

// ForSession binds the provider to one session for the order flow
func (ss *SessionService) ForSession(sessionID string) CredentialSource {
	return CredentialSourceFunc(func(ctx context.Context) (*structs.Credential, error) {
		return ss.GetCredential(ctx, sessionID)
	})
}

func (ss *SessionService) isFresh(session *structs.Session) bool {
	return session.IDToken != "" && session.ExpiresAt.Sub(ss.now()) > ss.cfg.Identity.RefreshSkew
}

func (ss *SessionService) refresh(ctx context.Context, session *structs.Session) (*structs.Session, error) {
	refreshToken, err := lib.Decrypt(session.RefreshToken, ss.cfg.Session.Secret)
	if err != nil || refreshToken == "" {
		ss.logger.Warn("Session cannot be refreshed", gecho.Field("login_id", session.LoginID))
		ss.drop(ctx, session.ID)
		return nil, lib.ErrNoActiveSession
	}

	tokens, err := ss.identity.Refresh(ctx, session.Username, refreshToken)
	if err != nil {
		if !refreshRejected(err) {
			return nil, fmt.Errorf("token refresh: %w", err)
		}
		ss.logger.Warn("Token refresh rejected, ending session", gecho.Field("error", err), gecho.Field("login_id", session.LoginID))
		ss.drop(ctx, session.ID)
		return nil, fmt.Errorf("%w: %w", lib.ErrNoActiveSession, err)
	}

	claims, err := lib.ParseIdentityToken(tokens.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: refreshed id token: %w", lib.ErrMalformedResponse, err)
	}

	refreshed := *session
	refreshed.IDToken = tokens.IDToken
	refreshed.ExpiresAt = claims.ExpiresAt
	if tokens.RefreshToken != "" {
		sealed, err := lib.Encrypt(tokens.RefreshToken, ss.cfg.Session.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to seal refresh token: %w", err)
		}
		refreshed.RefreshToken = sealed
	}

	if err := ss.store.Save(ctx, &refreshed, ss.cfg.Session.TTL); err != nil {
		// the refreshed token is still good for this request
		ss.logger.Warn("Failed to store refreshed session", gecho.Field("error", err))
	}

	ss.logger.Debug("Session token refreshed",
		gecho.Field("login_id", refreshed.LoginID),
		gecho.Field("expires_at", refreshed.ExpiresAt),
	)

	return &refreshed, nil
}

// refreshRejected reports whether the identity provider refused the refresh
// token itself, as opposed to failing to answer.
func refreshRejected(err error) bool {
	return errors.Is(err, lib.ErrInvalidCredentials) ||
		errors.Is(err, lib.ErrInvalidToken) ||
		errors.Is(err, lib.ErrAccountActionRequired)
}

func (ss *SessionService) drop(ctx context.Context, sessionID string) {
	if err := ss.store.Delete(ctx, sessionID); err != nil {
		ss.logger.Warn("Failed to drop session", gecho.Field("error", err))
	}
}

func credentialFor(session *structs.Session) *structs.Credential {
	return &structs.Credential{
		Token:     session.IDToken,
		ExpiresAt: session.ExpiresAt,
		UserID:    session.LoginID,
	}
}
