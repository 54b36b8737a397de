// Package session tracks active login sessions. A session is an opaque
// token mapped to the chef it authenticates; nothing else is stored.
package session

import "chefbook/internal/models"

// Store defines how sessions are issued, resolved, and revoked.
//
// Resolve returns (nil, nil) for an unknown token. Revoke of an unknown
// token is a no-op, not an error.
type Store interface {
	Issue(chef models.Chef) (string, error)
	Resolve(token string) (*models.Chef, error)
	Revoke(token string) error
}
