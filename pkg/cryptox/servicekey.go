package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for service-key hashing. Keys are verified once per
// request from trusted backends, so the cost can sit above interactive-login
// defaults.
const (
	keyHashTime    = 3
	keyHashMemory  = 64 * 1024 // KiB
	keyHashThreads = 1
	keyHashLen     = 32
	keySaltLen     = 16
)

var ErrMalformedKeyHash = errors.New("cryptox: malformed service key hash")

// HashServiceKey derives an argon2id hash of a service key in the standard
// "$argon2id$v=19$m=...,t=...,p=...$salt$hash" encoding. The encoded form is
// what lands in configuration; the raw key is never stored.
func HashServiceKey(key string) (string, error) {
	salt := make([]byte, keySaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(key), salt, keyHashTime, keyHashMemory, keyHashThreads, keyHashLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, keyHashMemory, keyHashTime, keyHashThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// VerifyServiceKey reports whether key matches the encoded argon2id hash.
// Comparison is constant-time.
func VerifyServiceKey(key, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedKeyHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedKeyHash
	}
	if version != argon2.Version {
		return false, ErrMalformedKeyHash
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, ErrMalformedKeyHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedKeyHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedKeyHash
	}

	got := argon2.IDKey([]byte(key), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
