package service

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"taskboard/internal/models"
	"taskboard/pkg/apperrors"
	"taskboard/pkg/crypto"
)

// CognitoAPI is the slice of the Cognito client the credential service
// uses. It matches *cognitoidentityprovider.Client so the real client
// satisfies it directly.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	AdminConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.AdminConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminConfirmSignUpOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
}

// CredentialService wraps the identity provider. Accounts, passwords and
// tokens live entirely on the provider side; nothing is persisted locally.
type CredentialService struct {
	client       CognitoAPI
	userPoolID   string
	clientID     string
	clientSecret string
}

func NewCredentialService(client CognitoAPI, userPoolID, clientID, clientSecret string) *CredentialService {
	return &CredentialService{
		client:       client,
		userPoolID:   userPoolID,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Register creates the account and immediately confirms it; no
// email-verification step is honoured. Returns the provider-assigned
// subject id.
func (s *CredentialService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	out, err := s.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(s.clientID),
		Username: aws.String(req.Email),
		Password: aws.String(req.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(req.Email)},
			{Name: aws.String("name"), Value: aws.String(req.Name)},
		},
		SecretHash: aws.String(crypto.SecretHash(req.Email, s.clientID, s.clientSecret)),
	})
	if err != nil {
		return "", classifyRegisterError(err)
	}

	if _, err := s.client.AdminConfirmSignUp(ctx, &cognitoidentityprovider.AdminConfirmSignUpInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(req.Email),
	}); err != nil {
		return "", classifyRegisterError(err)
	}

	return aws.ToString(out.UserSub), nil
}

// Login verifies the credentials and returns the provider's token bundle.
func (s *CredentialService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenBundle, error) {
	out, err := s.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(s.userPoolID),
		ClientId:   aws.String(s.clientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME":    req.Email,
			"PASSWORD":    req.Password,
			"SECRET_HASH": crypto.SecretHash(req.Email, s.clientID, s.clientSecret),
		},
	})
	if err != nil {
		return nil, classifyLoginError(err)
	}

	result := out.AuthenticationResult
	if result == nil {
		return nil, apperrors.Internal("Unexpected error during login", errors.New("provider returned no authentication result"))
	}

	return &models.TokenBundle{
		IDToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

func classifyRegisterError(err error) error {
	var exists *types.UsernameExistsException
	if errors.As(err, &exists) {
		return apperrors.DuplicateAccount()
	}
	var password *types.InvalidPasswordException
	if errors.As(err, &password) {
		return apperrors.InvalidPassword()
	}
	return classifyProviderError(err, "Error registering user")
}

func classifyLoginError(err error) error {
	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return apperrors.InvalidCredentials()
	}
	var notFound *types.UserNotFoundException
	if errors.As(err, &notFound) {
		return apperrors.AccountNotFound()
	}
	return classifyProviderError(err, "Login error")
}

// classifyProviderError passes an unmapped provider rejection through with
// its own code; anything else is internal.
func classifyProviderError(err error, message string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Upstream(apiErr.ErrorCode(), message+": "+apiErr.ErrorMessage())
	}
	return apperrors.Internal("Unexpected error", err)
}
