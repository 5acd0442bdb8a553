// Package password implements ports.PasswordHasher with bcrypt (default) and
// argon2id. Digests are self-describing, so Verify dispatches on the digest
// prefix rather than on the configured algorithm.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobledger/records-api/internal/api/metrics"
	"github.com/jobledger/records-api/internal/core/domain"
)

// Algorithm selects the digest format produced by Hash.
type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

const (
	DefaultBcryptCost    = 12
	DefaultArgon2Time    = 3
	DefaultArgon2Memory  = 64 * 1024 // KiB
	DefaultArgon2Threads = 2

	argon2SaltLen = 16
	argon2KeyLen  = 32

	// Digests claiming more than this are treated as malformed.
	maxArgon2Memory = 1024 * 1024 // KiB
	maxArgon2Time   = 64
)

// Config captures the hashing parameters. Zero values fall back to defaults.
type Config struct {
	Algorithm       Algorithm
	BcryptCost      int
	Argon2Time      uint32
	Argon2MemoryKiB uint32
	Argon2Threads   uint8
}

// Hasher implements ports.PasswordHasher.
type Hasher struct {
	cfg Config
}

// New validates cfg and returns a Hasher.
func New(cfg Config) (*Hasher, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmBcrypt
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultBcryptCost
	}
	if cfg.Argon2Time == 0 {
		cfg.Argon2Time = DefaultArgon2Time
	}
	if cfg.Argon2MemoryKiB == 0 {
		cfg.Argon2MemoryKiB = DefaultArgon2Memory
	}
	if cfg.Argon2Threads == 0 {
		cfg.Argon2Threads = DefaultArgon2Threads
	}

	switch cfg.Algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("password: unsupported algorithm %q", cfg.Algorithm)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password: bcrypt cost %d out of range [%d, %d]", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.Argon2MemoryKiB > maxArgon2Memory || cfg.Argon2Time > maxArgon2Time {
		return nil, fmt.Errorf("password: argon2 parameters too large")
	}
	return &Hasher{cfg: cfg}, nil
}

// Hash returns a salted digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	defer observe("hash", time.Now())

	if h.cfg.Algorithm == AlgorithmArgon2id {
		return h.hashArgon2(password)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password exceeds 72 bytes", domain.ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("%w: bcrypt: %v", domain.ErrHasherFault, err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest.
func (h *Hasher) Verify(password, digest string) (bool, error) {
	defer observe("verify", time.Now())

	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return verifyArgon2(password, digest), nil
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		// bcrypt reports mismatches and malformed digests alike; none of its
		// comparison errors indicate a fault in the hasher.
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil, nil
	default:
		return false, nil
	}
}

func (h *Hasher) hashArgon2(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: generate salt: %v", domain.ErrHasherFault, err)
	}

	key := argon2.IDKey([]byte(password), salt, h.cfg.Argon2Time, h.cfg.Argon2MemoryKiB, h.cfg.Argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$KEY
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.cfg.Argon2MemoryKiB, h.cfg.Argon2Time, h.cfg.Argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if time < 1 || time > maxArgon2Time || threads < 1 || memory < 8*uint32(threads) || memory > maxArgon2Memory {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func observe(op string, start time.Time) {
	metrics.PasswordHashDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
