package sessions

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openshelf/openshelf/pkg/bintree"
	"github.com/openshelf/openshelf/pkg/config"
	"github.com/openshelf/openshelf/pkg/errcodes"
	"github.com/openshelf/openshelf/pkg/models"
	"github.com/openshelf/openshelf/pkg/timestamp"
)

func comparePrincipalsByID(a, b *models.Principal) int {
	return strings.Compare(a.ID, b.ID)
}

func comparePrincipalsByName(a, b *models.Principal) int {
	return strings.Compare(a.Name, b.Name)
}

func compareSessions(a, b *models.Session) int {
	return strings.Compare(a.ID, b.ID)
}

// JWTClaims represents the claims in a session token.
type JWTClaims struct {
	PrincipalID string `json:"principal_id"`
	Name        string `json:"name"`
	jwt.RegisteredClaims
}

// Service is the session directory: registered principals (indexed by id and,
// separately, by name) and their sessions. A session's id is the signed token
// handed to the client.
//
// The mutex guards the three indexes. Password verification is CPU-heavy and
// runs outside of it so independent operations are not blocked behind a login.
type Service struct {
	mu               sync.Mutex
	principalsByID   *bintree.Tree[*models.Principal]
	principalsByName *bintree.Tree[*models.Principal]
	sessions         *bintree.Tree[*models.Session]
	jwtSecret        []byte
	tokenExpiry      time.Duration
}

// NewService creates a session directory and registers the configured seed
// principals.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		principalsByID:   bintree.New[*models.Principal](),
		principalsByName: bintree.New[*models.Principal](),
		sessions:         bintree.New[*models.Session](),
		jwtSecret:        []byte(cfg.JWTSecret),
		tokenExpiry:      cfg.TokenExpiry,
	}

	for _, seed := range cfg.SeedPrincipals {
		_ = s.RegisterPrincipal(&models.Principal{
			ID:           seed.ID,
			Name:         seed.Name,
			PasswordHash: seed.PasswordHash,
		})
	}

	return s
}

// RegisterPrincipal adds a principal to both indexes. Duplicate ids are
// rejected here since the indexes themselves do not detect them.
func (s *Service) RegisterPrincipal(principal *models.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.principalsByID.Search(&models.Principal{ID: principal.ID}, comparePrincipalsByID); ok {
		return errcodes.ValidationError("Principal id already exists")
	}
	s.principalsByID.Insert(principal, comparePrincipalsByID)
	s.principalsByName.Insert(principal, comparePrincipalsByName)
	return nil
}

// Login verifies the password of the principal with the given id. An unknown
// id returns (false, nil) without running the hash. A wrong password returns
// (false, nil); a corrupted stored hash returns an error.
func (s *Service) Login(ctx context.Context, principalID, password string) (bool, error) {
	s.mu.Lock()
	principal, ok := s.principalsByID.Search(&models.Principal{ID: principalID}, comparePrincipalsByID)
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	// Verification takes nontrivial wall-clock time; it runs on the caller's
	// goroutine without the directory lock held.
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}
	return VerifyPassword(password, principal.PasswordHash)
}

// FindPrincipal looks a principal up by id.
func (s *Service) FindPrincipal(id string) (*models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	principal, ok := s.principalsByID.Search(&models.Principal{ID: id}, comparePrincipalsByID)
	if !ok {
		return nil, errcodes.NotFound("Principal")
	}
	return principal, nil
}

// FindPrincipalByName looks a principal up by name on the name index.
func (s *Service) FindPrincipalByName(name string) (*models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	principal, ok := s.principalsByName.Search(&models.Principal{Name: name}, comparePrincipalsByName)
	if !ok {
		return nil, errcodes.NotFound("Principal")
	}
	return principal, nil
}

// CreateSession registers an active session under the given id, stamped with
// the current wall-clock time.
func (s *Service) CreateSession(id string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &models.Session{ID: id, StartedAt: timestamp.Now()}
	s.sessions.Insert(session, compareSessions)
	return session
}

// EndSession stamps the session's end time. It fails when the session is
// unknown or already ended; an end time, once set, is never changed.
func (s *Service) EndSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Search(&models.Session{ID: id}, compareSessions)
	if !ok {
		return errcodes.NotFound("Session")
	}
	if !session.Active() {
		return errcodes.Conflict("Session has already ended")
	}
	session.EndedAt = timestamp.Now()
	return nil
}

// FindSession looks a session up by id.
func (s *Service) FindSession(id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Search(&models.Session{ID: id}, compareSessions)
	if !ok {
		return nil, errcodes.NotFound("Session")
	}
	return session, nil
}

// ListSessions returns every session, active or ended, in id order.
func (s *Service) ListSessions() []*models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.List()
}

// ListActiveSessions returns only the sessions that have not ended, in id
// order.
func (s *Service) ListActiveSessions() []*models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := []*models.Session{}
	for _, session := range s.sessions.List() {
		if session.Active() {
			active = append(active, session)
		}
	}
	return active
}

// GenerateToken signs a new session token for the principal.
func (s *Service) GenerateToken(principal *models.Principal) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		PrincipalID: principal.ID,
		Name:        principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken verifies a session token's signature and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
