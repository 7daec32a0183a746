package services

import (
	"context"
	"errors"
	"fmt"
	"storefront/lib"
	"storefront/structs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// IdentityProvider issues and refreshes ID tokens.
type IdentityProvider interface {
	SignIn(ctx context.Context, username, password string) (*structs.IdentityTokens, error)
	Refresh(ctx context.Context, username, refreshToken string) (*structs.IdentityTokens, error)
}

// CognitoAPI is the part of the Cognito user pool client the storefront calls.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cognito.InitiateAuthInput, optFns ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error)
}

// CognitoIdentity signs users in against a Cognito user pool app client.
type CognitoIdentity struct {
	api          CognitoAPI
	clientID     string
	clientSecret string
}

// NewCognitoIdentity builds a user pool client for the configured region.
func NewCognitoIdentity(ctx context.Context, cfg *structs.Config) (*CognitoIdentity, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Identity.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewCognitoIdentityWithAPI(cognito.NewFromConfig(awsCfg), cfg), nil
}

func NewCognitoIdentityWithAPI(api CognitoAPI, cfg *structs.Config) *CognitoIdentity {
	return &CognitoIdentity{
		api:          api,
		clientID:     cfg.Identity.ClientID,
		clientSecret: cfg.Identity.ClientSecret,
	}
}

func (ci *CognitoIdentity) SignIn(ctx context.Context, username, password string) (*structs.IdentityTokens, error) {
	params := map[string]string{
		"USERNAME": username,
		"PASSWORD": password,
	}
	ci.addSecretHash(params, username)

	return ci.initiateAuth(ctx, types.AuthFlowTypeUserPasswordAuth, params)
}

func (ci *CognitoIdentity) Refresh(ctx context.Context, username, refreshToken string) (*structs.IdentityTokens, error) {
	if refreshToken == "" {
		return nil, lib.ErrInvalidToken
	}

	params := map[string]string{
		"REFRESH_TOKEN": refreshToken,
	}
	ci.addSecretHash(params, username)

	return ci.initiateAuth(ctx, types.AuthFlowTypeRefreshTokenAuth, params)
}

func (ci *CognitoIdentity) addSecretHash(params map[string]string, username string) {
	if ci.clientSecret == "" {
		return
	}
	params["SECRET_HASH"] = lib.SecretHash(username, ci.clientID, ci.clientSecret)
}

func (ci *CognitoIdentity) initiateAuth(ctx context.Context, flow types.AuthFlowType, params map[string]string) (*structs.IdentityTokens, error) {
	out, err := ci.api.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		AuthFlow:       flow,
		ClientId:       aws.String(ci.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, classifyAuthError(err)
	}

	// MFA and password-reset challenges are not handled by the storefront
	if out.ChallengeName != "" {
		return nil, fmt.Errorf("%w: unsupported challenge %s", lib.ErrInvalidCredentials, out.ChallengeName)
	}

	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.IdToken) == "" {
		return nil, fmt.Errorf("%w: no id token in authentication result", lib.ErrMalformedResponse)
	}

	return &structs.IdentityTokens{
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
	}, nil
}

// classifyAuthError sorts Cognito failures into rejections, which end a
// session, and everything else, which is worth trying again later.
func classifyAuthError(err error) error {
	var notAuthorized *types.NotAuthorizedException
	var userNotFound *types.UserNotFoundException
	var notConfirmed *types.UserNotConfirmedException
	var resetRequired *types.PasswordResetRequiredException

	switch {
	case errors.As(err, &notAuthorized), errors.As(err, &userNotFound):
		return fmt.Errorf("%w: %w", lib.ErrInvalidCredentials, err)
	case errors.As(err, &notConfirmed), errors.As(err, &resetRequired):
		return fmt.Errorf("%w: %w", lib.ErrAccountActionRequired, err)
	default:
		return fmt.Errorf("%w: identity provider: %w", lib.ErrTransportFailure, err)
	}
}
