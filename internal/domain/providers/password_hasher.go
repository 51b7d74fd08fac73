package providers

// PasswordHasher derives and verifies one-way password hashes
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}
