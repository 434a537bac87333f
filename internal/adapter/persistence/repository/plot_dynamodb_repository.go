package repository

import (
	"context"
	"errors"
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlotsTableName = "plots"

type plotItem struct {
	ID                       string `dynamodbav:"id"`
	Name                     string `dynamodbav:"plot_name"`
	CustomerID               string `dynamodbav:"customer_id"`
	MonthlyMaintenanceBudget string `dynamodbav:"monthly_maintenance_budget"`
	MaintenanceBalance       string `dynamodbav:"maintenance_balance"`
	TotalAmountSpent         string `dynamodbav:"total_amount_spent"`
	SupervisionCharges       string `dynamodbav:"supervision_charges"`
	LastMaintenanceReset     string `dynamodbav:"last_maintenance_reset"`
	CreatedAt                string `dynamodbav:"created_at"`
	UpdatedAt                string `dynamodbav:"updated_at"`
}

// PlotDynamoRepository reads plots and writes back derived balance fields.
//
// Table requirements:
//   - PK: id (string)
//
// Plot master data is owned elsewhere; this repository never creates plots.

type PlotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlotRepository = (*PlotDynamoRepository)(nil)

func NewPlotDynamoRepository(ddb *dynamodb.Client) *PlotDynamoRepository {
	return &PlotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLOTS_TABLE", defaultPlotsTableName),
	}
}

func (r *PlotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plot{}, nil
	}

	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func (r *PlotDynamoRepository) UpdateBalances(ctx context.Context, id string, totalSpent, balance float64, lastReset time.Time) (entities.Plot, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #spent = :spent, #balance = :balance, #last_reset = :last_reset"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":spent":      &types.AttributeValueMemberS{Value: floatToString(totalSpent)},
			":balance":    &types.AttributeValueMemberS{Value: floatToString(balance)},
			":last_reset": &types.AttributeValueMemberS{Value: timeToString(lastReset)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#spent":      "total_amount_spent",
			"#balance":    "maintenance_balance",
			"#last_reset": "last_maintenance_reset",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Plot{}, nil
		}
		return entities.Plot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Plot{}, nil
	}
	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func fromPlotItem(it plotItem) entities.Plot {
	return entities.Plot{
		ID:                       it.ID,
		Name:                     it.Name,
		CustomerID:               it.CustomerID,
		MonthlyMaintenanceBudget: stringToFloat(it.MonthlyMaintenanceBudget),
		MaintenanceBalance:       stringToFloat(it.MaintenanceBalance),
		TotalAmountSpent:         stringToFloat(it.TotalAmountSpent),
		SupervisionCharges:       stringToFloat(it.SupervisionCharges),
		LastMaintenanceReset:     stringToTime(it.LastMaintenanceReset),
		CreatedAt:                stringToTime(it.CreatedAt),
		UpdatedAt:                stringToTime(it.UpdatedAt),
	}
}
