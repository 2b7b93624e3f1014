package infra

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/brian-dev01/WDD-Server/domain/model"
)

type DynamoDB struct {
	db *dynamodb.Client
}

var inquiryTableName = "wdd_server_inquiries"

func NewDynamoDB() (*DynamoDB, error) {
	if os.Getenv("DYNAMO_INQUIRY_TABLE_NAME") != "" {
		inquiryTableName = os.Getenv("DYNAMO_INQUIRY_TABLE_NAME")
	}
	var db *dynamodb.Client
	if os.Getenv("DYNAMO_LOCAL") != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion("dummy"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		db = dynamodb.NewFromConfig(cfg,
			func(o *dynamodb.Options) {
				o.BaseEndpoint = aws.String("http://localhost:8000")
			},
		)
	} else {
		cfg, err := config.LoadDefaultConfig(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		db = dynamodb.NewFromConfig(cfg)
	}
	d := &DynamoDB{
		db: db,
	}
	if os.Getenv("DYNAMO_LOCAL") != "" {
		if err := d.EnsureTable(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

const (
	waitInterval = 2 * time.Second // ポーリング間隔
	maxRetries   = 30              // 最大リトライ回数 (30回 = 約1分)
)

func (d *DynamoDB) EnsureTable() error {
	_, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
		TableName: aws.String(inquiryTableName),
	})
	if err == nil {
		// テーブルが既に存在する
		return nil
	}

	if err := d.createTable(); err != nil {
		return err
	}

	// テーブルがACTIVEになるまで待機
	for i := 0; i < maxRetries; i++ {
		out, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
			TableName: aws.String(inquiryTableName),
		})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %v", inquiryTableName, err)
		}

		if out.Table.TableStatus == types.TableStatusActive {
			return nil
		}

		time.Sleep(waitInterval)
	}

	return fmt.Errorf("table %s creation timed out", inquiryTableName)
}

func (d *DynamoDB) createTable() error {
	createTableInput := &dynamodb.CreateTableInput{
		TableName: aws.String(inquiryTableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(5),
		},
	}

	_, err := d.db.CreateTable(context.TODO(), createTableInput)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %v", inquiryTableName, err)
	}

	return nil
}

func (d *DynamoDB) SaveInquiry(inquiry *model.Inquiry) error {
	now := timeNow()
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now

	input := &dynamodb.PutItemInput{
		TableName: aws.String(inquiryTableName),
		Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: inquiry.ID},
			"name":       &types.AttributeValueMemberS{Value: inquiry.Name},
			"email":      &types.AttributeValueMemberS{Value: inquiry.Email},
			"message":    &types.AttributeValueMemberS{Value: inquiry.Message},
			"event_date": &types.AttributeValueMemberS{Value: inquiry.EventDate.Format(time.RFC3339)},
			"user_id":    &types.AttributeValueMemberS{Value: inquiry.UserID},
			"created_at": &types.AttributeValueMemberS{Value: inquiry.CreatedAt.Format(time.RFC3339)},
			"updated_at": &types.AttributeValueMemberS{Value: inquiry.UpdatedAt.Format(time.RFC3339)},
		},
	}

	_, err := d.db.PutItem(context.TODO(), input)
	return err
}

func (d *DynamoDB) GetInquiries() ([]model.Inquiry, error) {
	var inquiries []model.Inquiry

	input := &dynamodb.ScanInput{
		TableName: aws.String(inquiryTableName),
	}

	paginator := dynamodb.NewScanPaginator(d.db, input)
	for paginator.HasMorePages() {
		result, err := paginator.NextPage(context.TODO())
		if err != nil {
			return nil, err
		}

		for _, item := range result.Items {
			inquiry, err := itemToInquiry(item)
			if err != nil {
				return nil, err
			}
			inquiries = append(inquiries, *inquiry)
		}
	}

	// Dynamoでうまいことソートできないのでここでソート
	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
	return inquiries, nil
}

func (d *DynamoDB) DeleteInquiry(id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(inquiryTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// 存在しないidの削除をgormと同様にエラーにする
		ConditionExpression: aws.String("attribute_exists(id)"),
	}

	_, err := d.db.DeleteItem(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: id=%s: %v", id, err)
	}
	return nil
}

func itemToInquiry(item map[string]types.AttributeValue) (*model.Inquiry, error) {
	createdAtStr := getStringValue(item, "created_at")
	if createdAtStr == "" {
		return nil, fmt.Errorf("created_at is empty")
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at (%s): %v", createdAtStr, err)
	}

	updatedAt := createdAt
	if s := getStringValue(item, "updated_at"); s != "" {
		updatedAt, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at (%s): %v", s, err)
		}
	}

	eventDate := time.Time{}
	if s := getStringValue(item, "event_date"); s != "" {
		eventDate, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event_date (%s): %v", s, err)
		}
	}

	return &model.Inquiry{
		ID:        getStringValue(item, "id"),
		Name:      getStringValue(item, "name"),
		Email:     getStringValue(item, "email"),
		Message:   getStringValue(item, "message"),
		EventDate: eventDate,
		UserID:    getStringValue(item, "user_id"),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func getStringValue(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
