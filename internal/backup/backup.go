// Package backup exports and imports password-protected copies of the
// storage document.
package backup

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Siddhesh-Agarwal/pwactl/internal/storage"
	"golang.org/x/crypto/pbkdf2"
)

const (
	version    = 1
	iterations = 600_000
	keyLength  = 32
	saltSize   = 16

	maxIterations = 10_000_000
)

var (
	// ErrDecrypt indicates a wrong password or a tampered backup.
	ErrDecrypt = errors.New("decryption failed: invalid password or corrupted data")
	// ErrVersion indicates a backup written by an incompatible pwactl.
	ErrVersion = errors.New("unsupported backup version")
)

type envelope struct {
	Version    int    `json:"version"`
	Iterations int    `json:"iterations"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Export encrypts s with a key derived from password and writes the result
// to w. password is zeroed before returning.
func Export(w io.Writer, s *storage.Storage, password []byte) error {
	defer clearSensitiveData(password)

	var plaintext bytes.Buffer
	if err := storage.Encode(&plaintext, s, false); err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	defer clearSensitiveData(plaintext.Bytes())

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, iterations)
	defer clearSensitiveData(key)

	gcm, err := newGCM(key)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	env := envelope{
		Version:    version,
		Iterations: iterations,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext.Bytes(), nil),
	}
	return json.NewEncoder(w).Encode(env)
}

// Import reads a backup written by Export and decodes the storage it holds.
// password is zeroed before returning.
func Import(r io.Reader, password []byte) (*storage.Storage, error) {
	defer clearSensitiveData(password)

	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	if env.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, env.Version)
	}
	if env.Iterations <= 0 || env.Iterations > maxIterations {
		return nil, fmt.Errorf("read backup: invalid iteration count %d", env.Iterations)
	}

	key := deriveKey(password, env.Salt, env.Iterations)
	defer clearSensitiveData(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != gcm.NonceSize() {
		return nil, ErrDecrypt
	}

	plaintext, err := gcm.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	defer clearSensitiveData(plaintext)

	return storage.Decode(plaintext)
}

func deriveKey(password, salt []byte, iter int) []byte {
	return pbkdf2.Key(password, salt, iter, keyLength, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}

func clearSensitiveData(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
