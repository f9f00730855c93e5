package repository

import (
	"context"
	"sort"
	"time"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type lineItemItem struct {
	Product    string  `dynamodbav:"product"`
	Quantity   float64 `dynamodbav:"quantity"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
	TotalValue float64 `dynamodbav:"total_value"`
}

type costInputsItem struct {
	Transport   float64 `dynamodbav:"transport"`
	Packing     float64 `dynamodbav:"packing"`
	Fumigation  float64 `dynamodbav:"fumigation"`
	Customs     float64 `dynamodbav:"customs"`
	DutyPercent float64 `dynamodbav:"duty"`
}

type marginInputsItem struct {
	Importer    float64 `dynamodbav:"importer"`
	Distributor float64 `dynamodbav:"distributor"`
	Retailer    float64 `dynamodbav:"retailer"`
}

type estimateResultItem struct {
	TotalValue  float64 `dynamodbav:"total_value"`
	Margin      float64 `dynamodbav:"margin"`
	FOBPrice    float64 `dynamodbav:"fob_price"`
	RetailPrice float64 `dynamodbav:"retail_price"`
}

type estimateItem struct {
	ID          string             `dynamodbav:"id"`
	ContainerID string             `dynamodbav:"container_id"`
	Destination string             `dynamodbav:"destination"`
	Date        string             `dynamodbav:"date"`
	Products    []lineItemItem     `dynamodbav:"products"`
	Costs       costInputsItem     `dynamodbav:"costs"`
	Margins     marginInputsItem   `dynamodbav:"margins"`
	Results     estimateResultItem `dynamodbav:"results"`
	Status      string             `dynamodbav:"status"`
	CreatedAt   string             `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists estimates in DynamoDB, for
// deployments that need the store to outlive the process.
//
// Table requirements:
//   - PK: id (string)
//
// Scan has no defined order, so listings sort by created_at to recover
// the append order the core contract promises.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Append(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListAll(ctx context.Context) ([]entities.Estimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *EstimateDynamoRepository) ListByStatus(ctx context.Context, status entities.EstimateStatus) ([]entities.Estimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *EstimateDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Estimate, error) {
	estimates := make([]entities.Estimate, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			estimates = append(estimates, fromEstimateItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.Before(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	products := make([]lineItemItem, 0, len(e.Products))
	for _, l := range e.Products {
		products = append(products, lineItemItem{
			Product:    l.Product,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalValue: l.TotalValue,
		})
	}
	return estimateItem{
		ID:          e.ID,
		ContainerID: e.ContainerID,
		Destination: e.Destination,
		Date:        e.Date.UTC().Format(time.RFC3339Nano),
		Products:    products,
		Costs: costInputsItem{
			Transport:   e.Costs.Transport,
			Packing:     e.Costs.Packing,
			Fumigation:  e.Costs.Fumigation,
			Customs:     e.Costs.Customs,
			DutyPercent: e.Costs.DutyPercent,
		},
		Margins: marginInputsItem{
			Importer:    e.Margins.Importer,
			Distributor: e.Margins.Distributor,
			Retailer:    e.Margins.Retailer,
		},
		Results: estimateResultItem{
			TotalValue:  e.Results.TotalValue,
			Margin:      e.Results.Margin,
			FOBPrice:    e.Results.FOBPrice,
			RetailPrice: e.Results.RetailPrice,
		},
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	products := make([]entities.LineItem, 0, len(it.Products))
	for _, l := range it.Products {
		products = append(products, entities.LineItem{
			Product:    l.Product,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalValue: l.TotalValue,
		})
	}
	return entities.Estimate{
		ID:          it.ID,
		ContainerID: it.ContainerID,
		Destination: it.Destination,
		Date:        date,
		Products:    products,
		Costs: entities.CostInputs{
			Transport:   it.Costs.Transport,
			Packing:     it.Costs.Packing,
			Fumigation:  it.Costs.Fumigation,
			Customs:     it.Costs.Customs,
			DutyPercent: it.Costs.DutyPercent,
		},
		Margins: entities.MarginInputs{
			Importer:    it.Margins.Importer,
			Distributor: it.Margins.Distributor,
			Retailer:    it.Margins.Retailer,
		},
		Results: entities.EstimateResult{
			TotalValue:  it.Results.TotalValue,
			Margin:      it.Results.Margin,
			FOBPrice:    it.Results.FOBPrice,
			RetailPrice: it.Results.RetailPrice,
		},
		Status:    entities.EstimateStatus(it.Status),
		CreatedAt: createdAt,
	}
}
