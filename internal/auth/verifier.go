package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks submitted secrets against stored one-way hashes.
type CredentialVerifier interface {
	Hash(secret string) (string, error)
	Verify(submittedSecret, storedHash string) bool
}

// BcryptVerifier implements CredentialVerifier with bcrypt.
type BcryptVerifier struct {
	Cost int
}

// NewBcryptVerifier creates a verifier with bcrypt's default cost.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{Cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify never errors on mismatch, it only reports false.
func (v *BcryptVerifier) Verify(submittedSecret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(submittedSecret)) == nil
}
