package lib

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/google/uuid"
)

// NewSessionID returns an opaque, unguessable session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// SecretHash computes the SECRET_HASH parameter the identity provider expects
// from app clients that carry a client secret.
func SecretHash(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
