package lib

import (
	"fmt"
	"storefront/structs"

	"github.com/golang-jwt/jwt/v5"
)

// ParseIdentityToken reads the claims of an ID token issued by the identity
// provider. The signature is not checked here: the remote API's authorizer
// verifies every token it receives, the storefront only needs the expiry and
// the login id.
func ParseIdentityToken(tokenStr string) (*structs.IdentityClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}

	username, _ := claims["cognito:username"].(string)
	if username == "" {
		username = sub
	}

	loginID, _ := claims["email"].(string)
	if loginID == "" {
		loginID = username
	}

	return &structs.IdentityClaims{
		Subject:   sub,
		Username:  username,
		LoginID:   loginID,
		ExpiresAt: exp.Time,
	}, nil
}
