package lib

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const encryptionInfo = "storefront session sealing"

// deriveKey stretches an arbitrary secret into an XChaCha20-Poly1305 key.
func deriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("encryption secret must not be empty")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(encryptionInfo)), key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt seals plaintext with XChaCha20-Poly1305 and returns it base64 encoded
func Encrypt(plaintext string, secret string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	key, err := deriveKey(secret)
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// nonce is prepended to the ciphertext
	ciphertext := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens a value produced by Encrypt
func Decrypt(ciphertext string, secret string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	key, err := deriveKey(secret)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", err
	}

	if len(data) < aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
