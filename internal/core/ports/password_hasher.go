package ports

// PasswordHasher produces and checks self-describing, salted password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns false with a nil error for mismatches and malformed
	// digests. A non-nil error means the hasher itself failed.
	Verify(password, digest string) (bool, error)
}
