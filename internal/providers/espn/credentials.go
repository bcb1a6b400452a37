package espn

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
)

const credentialsSource = "CognitoIdentity"

type cognitoAPI interface {
	GetCredentialsForIdentity(ctx context.Context, params *cognitoidentity.GetCredentialsForIdentityInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.GetCredentialsForIdentityOutput, error)
}

// cognitoCredentials exchanges a fixed, unauthenticated identity for temporary AWS keys.
type cognitoCredentials struct {
	client     cognitoAPI
	identityID string
}

var _ aws.CredentialsProvider = (*cognitoCredentials)(nil)

func newCognitoCredentials(client cognitoAPI, identityID string) *cognitoCredentials {
	return &cognitoCredentials{client: client, identityID: identityID}
}

// Retrieve implements aws.CredentialsProvider.
func (c *cognitoCredentials) Retrieve(ctx context.Context) (aws.Credentials, error) {
	if c.client == nil || c.identityID == "" {
		return aws.Credentials{}, errors.New("cognito identity not configured")
	}
	out, err := c.client.GetCredentialsForIdentity(ctx, &cognitoidentity.GetCredentialsForIdentityInput{
		IdentityId: aws.String(c.identityID),
	})
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("get credentials for identity %s: %w", c.identityID, err)
	}
	if out == nil || out.Credentials == nil {
		return aws.Credentials{}, fmt.Errorf("get credentials for identity %s: empty response", c.identityID)
	}
	creds := aws.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Source:          credentialsSource,
	}
	if out.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *out.Credentials.Expiration
	}
	return creds, nil
}
