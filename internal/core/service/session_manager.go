package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
	"github.com/collabhub/partner-directory/pkg/token"
)

// RestoreOutcome tells callers (and tests) exactly what happened during a
// session restore instead of silently collapsing every failure into
// "logged out".
type RestoreOutcome string

const (
	// RestoreNone: no persisted session existed for the key.
	RestoreNone RestoreOutcome = "none"
	// RestoreActive: a live session was restored.
	RestoreActive RestoreOutcome = "active"
	// RestoreExpired: a session existed but its token had lapsed; cleared.
	RestoreExpired RestoreOutcome = "expired"
	// RestoreCorrupt: the persisted blob did not parse; cleared.
	RestoreCorrupt RestoreOutcome = "corrupt"
)

const sessionKeyPrefix = "session:"

// SessionManager mediates every authentication state transition and persists
// the result, one session blob per account email. It never exposes partial
// state: a failed login or register leaves the stored session untouched, and
// storage faults are logged rather than propagated.
type SessionManager struct {
	store   ports.SessionStore
	gateway ports.AuthGateway
	decoder token.Decoder
	log     zerolog.Logger
	now     func() time.Time

	mu       sync.Mutex
	attempts map[string]uint64
}

func NewSessionManager(store ports.SessionStore, gateway ports.AuthGateway, decoder token.Decoder, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:    store,
		gateway:  gateway,
		decoder:  decoder,
		log:      log,
		now:      time.Now,
		attempts: make(map[string]uint64),
	}
}

// Restore loads the persisted session for email. It never returns an error:
// a missing blob means no session, an unparsable blob or an expired token
// clears the key, and the outcome reports which of those happened.
func (m *SessionManager) Restore(ctx context.Context, email string) (domain.Session, RestoreOutcome) {
	blob, err := m.store.Load(ctx, m.key(email))
	if err != nil {
		if err != domain.ErrSessionNotFound {
			m.log.Warn().Err(err).Str("email", email).Msg("session load failed, treating as logged out")
		}
		return domain.Session{}, RestoreNone
	}

	var sess domain.Session
	if err := json.Unmarshal(blob, &sess); err != nil || sess.User == nil || sess.User.Token == "" {
		m.clear(ctx, email)
		return domain.Session{}, RestoreCorrupt
	}

	if token.Expired(m.decoder, sess.User.Token, m.now()) {
		m.clear(ctx, email)
		return domain.Session{}, RestoreExpired
	}

	sess.Authenticated = true
	return sess, RestoreActive
}

// Login authenticates against the gateway and persists the resulting session.
// Concurrent attempts for the same email are sequenced: an attempt that
// resolves after a newer one began is discarded with ErrLoginSuperseded
// instead of overwriting fresher state.
func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	attempt := m.begin(email)

	user, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	return m.commit(ctx, email, attempt, user)
}

// Register creates an account through the gateway; same persistence and
// sequencing contract as Login.
func (m *SessionManager) Register(ctx context.Context, input ports.RegisterInput) (domain.Session, error) {
	attempt := m.begin(input.Email)

	user, err := m.gateway.Register(ctx, input)
	if err != nil {
		return domain.Session{}, err
	}

	return m.commit(ctx, input.Email, attempt, user)
}

// Logout clears the persisted session and invalidates any in-flight login
// for the same email. Calling it without an active session is a no-op.
func (m *SessionManager) Logout(ctx context.Context, email string) error {
	m.mu.Lock()
	m.attempts[email]++
	m.mu.Unlock()

	m.clear(ctx, email)
	return nil
}

// UpdateUser shallow-merges the non-nil patch fields into the stored user and
// re-persists. Silently a no-op when no live session exists.
func (m *SessionManager) UpdateUser(ctx context.Context, email string, patch ports.UserPatch) (domain.Session, error) {
	sess, outcome := m.Restore(ctx, email)
	if outcome != RestoreActive {
		return domain.Session{}, nil
	}

	user := sess.User
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if patch.Business != nil {
		user.Business = &domain.BusinessInfo{
			Name:        patch.Business.Name,
			Description: patch.Business.Description,
			Location:    patch.Business.Location,
			Category:    patch.Business.Category,
		}
	}
	user.FullName = domain.FullName(user.FirstName, user.LastName)

	sess.SavedAt = m.now().UTC()
	m.persist(ctx, email, sess)
	return sess, nil
}

// begin registers a new authentication attempt for email and returns its
// sequence number.
func (m *SessionManager) begin(email string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[email]++
	return m.attempts[email]
}

// commit persists the authenticated session unless a newer attempt has
// started since this one began.
func (m *SessionManager) commit(ctx context.Context, email string, attempt uint64, user *domain.User) (domain.Session, error) {
	m.mu.Lock()
	superseded := m.attempts[email] != attempt
	m.mu.Unlock()
	if superseded {
		m.log.Info().Str("email", email).Msg("discarding superseded auth attempt")
		return domain.Session{}, domain.ErrLoginSuperseded
	}

	user.FullName = domain.FullName(user.FirstName, user.LastName)
	sess := domain.Session{
		Authenticated: true,
		User:          user,
		SavedAt:       m.now().UTC(),
	}
	m.persist(ctx, email, sess)
	return sess, nil
}

// persist writes the session blob. Storage failures (quota, connectivity)
// are logged and swallowed; the in-memory session remains usable.
func (m *SessionManager) persist(ctx context.Context, email string, sess domain.Session) {
	blob, err := json.Marshal(sess)
	if err != nil {
		m.log.Error().Err(err).Str("email", email).Msg("session marshal failed")
		return
	}
	if err := m.store.Save(ctx, m.key(email), blob); err != nil {
		m.log.Error().Err(err).Str("email", email).Msg("session save failed")
	}
}

func (m *SessionManager) clear(ctx context.Context, email string) {
	if err := m.store.Clear(ctx, m.key(email)); err != nil && err != domain.ErrSessionNotFound {
		m.log.Warn().Err(err).Str("email", email).Msg("session clear failed")
	}
}

func (m *SessionManager) key(email string) string {
	return sessionKeyPrefix + email
}
