package services

import (
	"fmt"

	"chefbook/internal/models"
	"chefbook/internal/session"
)

// AuthService handles registration, login, logout, and session
// resolution. Credential lookup goes through ChefService's search so it
// reuses the store's username/email matching; both registration and
// login then filter for an exact username match.
type AuthService struct {
	chefService *ChefService
	sessions    session.Store
	verifier    CredentialVerifier
}

// NewAuthService creates a new AuthService. A nil verifier defaults to
// PlaintextVerifier, which matches the historical credential data.
func NewAuthService(chefService *ChefService, sessions session.Store, verifier CredentialVerifier) *AuthService {
	if verifier == nil {
		verifier = PlaintextVerifier{}
	}
	return &AuthService{
		chefService: chefService,
		sessions:    sessions,
		verifier:    verifier,
	}
}

// Register persists a new chef account. The candidate's username must
// not exactly match any existing chef's, admin status is always forced
// off, and the chef's id is filled in by the store. Returns
// ErrUsernameTaken on conflict, with nothing persisted.
func (s *AuthService) Register(chef *models.Chef) error {
	existing, err := s.chefService.SearchChefs(chef.Username)
	if err != nil {
		return fmt.Errorf("failed to check username availability: %w", err)
	}
	for _, found := range existing {
		if found.Username == chef.Username {
			return ErrUsernameTaken
		}
	}

	chef.IsAdmin = false

	stored, err := s.verifier.Hash(chef.Password)
	if err != nil {
		return fmt.Errorf("failed to derive stored password: %w", err)
	}
	chef.Password = stored

	if err := s.chefService.SaveChef(chef); err != nil {
		return fmt.Errorf("failed to register chef: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a session token. Both an
// unknown username and a wrong password produce ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	candidates, err := s.chefService.SearchChefs(username)
	if err != nil {
		return "", fmt.Errorf("failed to look up credentials: %w", err)
	}
	for _, found := range candidates {
		if found.Username == username && s.verifier.Verify(found.Password, password) {
			token, err := s.sessions.Issue(found)
			if err != nil {
				return "", fmt.Errorf("failed to issue session: %w", err)
			}
			return token, nil
		}
	}
	return "", ErrInvalidCredentials
}

// Logout revokes the session token. Revoking an unknown token is a
// no-op, so logout is idempotent.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Revoke(token)
}

// ChefFromToken resolves a session token to the chef it authenticates,
// or (nil, nil) when the token is unknown.
func (s *AuthService) ChefFromToken(token string) (*models.Chef, error) {
	return s.sessions.Resolve(token)
}
