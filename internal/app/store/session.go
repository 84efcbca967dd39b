package store

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

// DemoEmail is the sentinel email that signs in as the first roster user
// holding the requested role, regardless of address. Demo mode only.
const DemoEmail = "demo"

// SessionStore tracks the single authenticated identity against a fixed
// roster. Sign-in failure is an error value, never a panic, and leaves the
// current identity untouched.
type SessionStore struct {
	roster  []models.User
	current *models.User
	delay   time.Duration
	logger  zerolog.Logger
}

// NewSessionStore creates a session store over the given roster. delay is
// the simulated network latency applied to every sign-in attempt; pass zero
// to resolve immediately.
func NewSessionStore(roster []models.User, delay time.Duration, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		roster: append([]models.User(nil), roster...),
		delay:  delay,
		logger: logger,
	}
}

// SignIn authenticates against the roster by exact (email, role) match.
// The DemoEmail sentinel instead picks the first roster user with the
// requested role. The call always resolves after the configured delay;
// there is no cancellation path.
func (s *SessionStore) SignIn(email string, role models.RoleType) (*models.User, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	for i := range s.roster {
		if s.roster[i].Email == email && s.roster[i].Role == role {
			u := s.roster[i]
			s.current = &u
			s.logger.Info().Str("userID", u.ID).Str("role", string(u.Role)).Msg("User signed in")
			return &u, nil
		}
	}

	if email == DemoEmail {
		for i := range s.roster {
			if s.roster[i].Role == role {
				u := s.roster[i]
				s.current = &u
				s.logger.Info().Str("userID", u.ID).Str("role", string(u.Role)).Msg("Demo sign-in")
				return &u, nil
			}
		}
	}

	s.logger.Warn().Str("email", email).Str("role", string(role)).Msg("Sign-in failed")
	return nil, apperrors.ErrInvalidCredentials
}

// SignOut clears the current identity. Always succeeds.
func (s *SessionStore) SignOut() {
	s.current = nil
}

// CurrentUser returns the signed-in user, if any.
func (s *SessionStore) CurrentUser() (*models.User, bool) {
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// IsAuthenticated reports whether an identity is set.
func (s *SessionStore) IsAuthenticated() bool {
	return s.current != nil
}

// Roster returns the fixed user roster the store authenticates against.
func (s *SessionStore) Roster() []models.User {
	return append([]models.User(nil), s.roster...)
}
