package keystore

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Argon2id parameters, aligned with OWASP recommendations.
const (
	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 2
	saltLength          = 16
	keyLength    uint32 = 32
)

func randBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// seal encrypts plaintext under a key derived from secret with Argon2id and
// XChaCha20-Poly1305. Layout: salt || nonce || ciphertext.
func seal(secret, plaintext []byte) ([]byte, error) {
	salt, err := randBytes(saltLength)
	if err != nil {
		return nil, err
	}
	key := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, keyLength)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce, err := randBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, nil)...)
	return out, nil
}

// open reverses seal.
func open(secret, sealed []byte) ([]byte, error) {
	if len(sealed) < saltLength+chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("sealed blob too short")
	}
	salt := sealed[:saltLength]
	nonce := sealed[saltLength : saltLength+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltLength+chacha20poly1305.NonceSizeX:]

	key := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, keyLength)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}
