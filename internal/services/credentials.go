package services

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier abstracts how a stored password is derived from
// and compared against a supplied one. The historical data set stores
// passwords verbatim, so PlaintextVerifier is the default; deployments
// starting from a clean database can swap in BcryptVerifier without
// touching the login contract.
type CredentialVerifier interface {
	// Hash derives the storable form of a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether supplied matches the stored form.
	Verify(stored, supplied string) bool
}

// PlaintextVerifier stores and compares passwords verbatim.
type PlaintextVerifier struct{}

// Hash returns the password unchanged.
func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares by string equality.
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// BcryptVerifier stores bcrypt hashes and compares with constant-time
// bcrypt comparison.
type BcryptVerifier struct{}

// Hash derives a bcrypt hash of the password.
func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether supplied matches the stored bcrypt hash.
func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
