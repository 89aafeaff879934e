package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the part of the Secrets Manager client used here
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// StoreCredentials holds the connection settings of a statement store
type StoreCredentials struct {
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`
	DBPath        string `json:"db_path"`
}

// Client wraps AWS Secrets Manager operations
type Client struct {
	api SecretsManagerAPI
}

// NewClient loads the default AWS configuration. A blank region leaves the region
// to the default chain.
func NewClient(ctx context.Context, region string) (*Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewClientWithAPI creates a client over an existing Secrets Manager API
func NewClientWithAPI(api SecretsManagerAPI) *Client {
	return &Client{api: api}
}

// RetrieveStoreCredentials reads and decodes the JSON secret named secretName
func (c *Client) RetrieveStoreCredentials(ctx context.Context, secretName string) (StoreCredentials, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}

	result, err := c.api.GetSecretValue(ctx, input)
	if err != nil {
		return StoreCredentials{}, fmt.Errorf("failed to get secret value: %w", err)
	}

	if result.SecretString == nil {
		return StoreCredentials{}, fmt.Errorf("secret string is nil")
	}

	var creds StoreCredentials
	err = json.Unmarshal([]byte(*result.SecretString), &creds)
	if err != nil {
		return StoreCredentials{}, fmt.Errorf("failed to unmarshal store credentials: %w", err)
	}

	return creds, nil
}
