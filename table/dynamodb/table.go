package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/giftstore/table"
)

// DefaultRegion is the AWS region used when none is configured.
const DefaultRegion = "us-east-1"

// defaultMaxWait bounds EnsureTable when the caller passes no wait time.
const defaultMaxWait = 2 * time.Minute

// Client is the subset of *dynamodb.Client used by Table.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Options configures a Table.
type Options struct {
	// Region is the AWS region. Only used by New.
	Region string

	// Endpoint overrides the service endpoint (e.g. DynamoDB Local at
	// http://localhost:8000). Only used by New.
	Endpoint string

	// KeyAttribute is the name of the string hash key.
	KeyAttribute string

	// ConsistentRead requests strongly consistent scans.
	ConsistentRead bool

	// PageSize limits the number of items evaluated per scan request.
	// Zero leaves the page size to DynamoDB (1 MB of data).
	PageSize int32
}

// DefaultOptions contains the default configuration for a Table.
var DefaultOptions = Options{
	Region:       DefaultRegion,
	KeyAttribute: table.DefaultKeyAttribute,
}

// Table implements table.Table for a single DynamoDB table.
type Table struct {
	client Client
	name   string
	opts   Options
}

// NewTable creates a Table on top of an existing client.
func NewTable(client Client, tableName string, optFns ...func(o *Options)) *Table {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.KeyAttribute == "" {
		opts.KeyAttribute = table.DefaultKeyAttribute
	}

	return &Table{
		client: client,
		name:   tableName,
		opts:   opts,
	}
}

// New loads the default AWS configuration and creates a Table backed by a new
// DynamoDB client.
func New(ctx context.Context, tableName string, optFns ...func(o *Options)) (*Table, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", table.ErrUnavailable, err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return NewTable(client, tableName, func(o *Options) { *o = opts }), nil
}

// Name returns the DynamoDB table name.
func (t *Table) Name() string {
	return t.name
}

// Scan reads every item in the table, one page at a time.
func (t *Table) Scan(ctx context.Context) ([]table.Record, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(t.name),
	}
	if t.opts.ConsistentRead {
		input.ConsistentRead = aws.Bool(true)
	}
	if t.opts.PageSize > 0 {
		input.Limit = aws.Int32(t.opts.PageSize)
	}

	var records []table.Record

	paginator := dynamodb.NewScanPaginator(t.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", table.ErrUnavailable, t.name, err)
		}
		for _, item := range page.Items {
			var rec map[string]any
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("%w: decode item from %s: %w", table.ErrUnavailable, t.name, err)
			}
			records = append(records, table.Record(rec))
		}
	}

	return records, nil
}

// Put writes rec, replacing any item with the same key.
func (t *Table) Put(ctx context.Context, rec table.Record) error {
	if _, err := table.KeyOf(rec, t.opts.KeyAttribute); err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(map[string]any(rec))
	if err != nil {
		return fmt.Errorf("%w: encode item: %w", table.ErrInvalidRecord, err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	})
	if err != nil {
		return classifyWriteError(t.name, err)
	}
	return nil
}

// EnsureTable creates the table if it does not exist and waits until it is
// active. maxWait <= 0 selects a two minute limit.
func (t *Table) EnsureTable(ctx context.Context, maxWait time.Duration) error {
	if maxWait <= 0 {
		maxWait = defaultMaxWait
	}

	describe := &dynamodb.DescribeTableInput{TableName: aws.String(t.name)}

	_, err := t.client.DescribeTable(ctx, describe)
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("%w: describe table %s: %w", table.ErrUnavailable, t.name, err)
	}

	_, err = t.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(t.name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(t.opts.KeyAttribute), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(t.opts.KeyAttribute), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		// Another process may have created it between describe and create.
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("%w: create table %s: %w", table.ErrUnavailable, t.name, err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(t.client)
	if err := waiter.Wait(ctx, describe, maxWait); err != nil {
		return fmt.Errorf("%w: wait for table %s: %w", table.ErrUnavailable, t.name, err)
	}
	return nil
}
