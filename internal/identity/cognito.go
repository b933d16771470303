package identity

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"
)

// CognitoAPI is the part of the Cognito client CognitoProvider calls.
// *cognitoidentityprovider.Client satisfies it.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
}

// CognitoConfig identifies the app client to talk to.
type CognitoConfig struct {
	ClientID     string
	ClientSecret string // optional; enables SECRET_HASH
	UserPoolID   string // required for the admin flow only
	AuthFlow     types.AuthFlowType
}

// CognitoProvider implements Provider against a Cognito user pool.
type CognitoProvider struct {
	client CognitoAPI
	cfg    CognitoConfig
	logger *zap.Logger
}

var _ Provider = (*CognitoProvider)(nil)

// NewCognitoProvider validates cfg and returns a provider. An empty AuthFlow
// means USER_PASSWORD_AUTH.
func NewCognitoProvider(client CognitoAPI, cfg CognitoConfig, logger *zap.Logger) (*CognitoProvider, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("cognito provider: client id is required")
	}
	switch cfg.AuthFlow {
	case "":
		cfg.AuthFlow = types.AuthFlowTypeUserPasswordAuth
	case types.AuthFlowTypeUserPasswordAuth:
	case types.AuthFlowTypeAdminUserPasswordAuth:
		if cfg.UserPoolID == "" {
			return nil, fmt.Errorf("cognito provider: auth flow %s requires a user pool id", cfg.AuthFlow)
		}
	default:
		return nil, fmt.Errorf("cognito provider: unsupported auth flow %q", cfg.AuthFlow)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CognitoProvider{client: client, cfg: cfg, logger: logger}, nil
}

func (p *CognitoProvider) SignUp(ctx context.Context, creds Credentials) error {
	input := &cip.SignUpInput{
		ClientId: aws.String(p.cfg.ClientID),
		Username: aws.String(creds.Email),
		Password: aws.String(creds.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(creds.Email)},
		},
	}
	if hash := p.secretHash(creds.Email); hash != "" {
		input.SecretHash = aws.String(hash)
	}

	if _, err := p.client.SignUp(ctx, input); err != nil {
		classified := Classify(err)
		p.logger.Debug("SignUp rejected",
			zap.String("code", classified.Name),
			zap.Stringer("kind", classified.Kind),
		)
		return classified
	}
	return nil
}

func (p *CognitoProvider) Authenticate(ctx context.Context, creds Credentials) (*Tokens, error) {
	params := map[string]string{
		"USERNAME": creds.Email,
		"PASSWORD": creds.Password,
	}
	if hash := p.secretHash(creds.Email); hash != "" {
		params["SECRET_HASH"] = hash
	}

	var (
		result *types.AuthenticationResultType
		err    error
	)
	if p.cfg.AuthFlow == types.AuthFlowTypeAdminUserPasswordAuth {
		var out *cip.AdminInitiateAuthOutput
		out, err = p.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
			AuthFlow:       p.cfg.AuthFlow,
			ClientId:       aws.String(p.cfg.ClientID),
			UserPoolId:     aws.String(p.cfg.UserPoolID),
			AuthParameters: params,
		})
		if out != nil {
			result = out.AuthenticationResult
		}
	} else {
		var out *cip.InitiateAuthOutput
		out, err = p.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
			AuthFlow:       p.cfg.AuthFlow,
			ClientId:       aws.String(p.cfg.ClientID),
			AuthParameters: params,
		})
		if out != nil {
			result = out.AuthenticationResult
		}
	}
	if err != nil {
		classified := Classify(err)
		p.logger.Debug("Authentication rejected",
			zap.String("code", classified.Name),
			zap.Stringer("kind", classified.Kind),
		)
		return nil, classified
	}

	// A challenge response carries no AuthenticationResult.
	if result == nil {
		return &Tokens{}, nil
	}
	return &Tokens{
		IDToken:      result.IdToken,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

func (p *CognitoProvider) secretHash(username string) string {
	if p.cfg.ClientSecret == "" {
		return ""
	}
	return SecretHash(p.cfg.ClientSecret, username, p.cfg.ClientID)
}

// SecretHash computes the SECRET_HASH value for app clients with a secret.
func SecretHash(clientSecret, username, clientID string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
