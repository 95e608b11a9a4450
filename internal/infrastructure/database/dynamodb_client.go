package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions selects region and, for DynamoDB Local, an endpoint.
type DynamoDBOptions struct {
	Region   string
	Endpoint string // optional; e.g. http://dynamodb:8000
}

// ConnectDynamoDB creates a DynamoDB client.
//
// Credentials come from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY, defaulting
// to "local" when an endpoint is set.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if opts.Endpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		endpoint := opts.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(creds),
			config.WithEndpointResolverWithOptions(resolver),
		)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
