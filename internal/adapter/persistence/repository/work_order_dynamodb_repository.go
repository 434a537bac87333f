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

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersPlotIDIndex      = "plot_id-index"
)

type lineItemItem struct {
	ItemID      string `dynamodbav:"item_id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"item_display_name"`
	Quantity    string `dynamodbav:"quantity"`
	Unit        string `dynamodbav:"unit"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Count       int    `dynamodbav:"count"`
	TotalPrice  string `dynamodbav:"total_price"`
}

type workOrderItem struct {
	ID                       string         `dynamodbav:"id"`
	PlotID                   string         `dynamodbav:"plot_id"`
	CustomerID               string         `dynamodbav:"customer_id"`
	WorkTypeID               string         `dynamodbav:"work_type_id"`
	WorkDate                 string         `dynamodbav:"work_date"`
	Description              string         `dynamodbav:"description"`
	Status                   string         `dynamodbav:"status"`
	Equipment                []lineItemItem `dynamodbav:"equipment_table,omitempty"`
	Material                 []lineItemItem `dynamodbav:"material_table,omitempty"`
	Labor                    []lineItemItem `dynamodbav:"labor_table,omitempty"`
	TotalCost                string         `dynamodbav:"total_cost"`
	MonthlyMaintenanceBudget string         `dynamodbav:"monthly_maintenance_budget"`
	MaintenanceBalance       string         `dynamodbav:"maintenance_balance"`
	CreatedAt                string         `dynamodbav:"created_at"`
	UpdatedAt                string         `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plot_id-index (PK: plot_id, SK: work_date)
//
// Line items are stored inline on the document; they are owned exclusively
// by the order and never addressed on their own.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return w, nil
}

// Update replaces the whole document. Only drafts are updated this way;
// status transitions go through UpdateStatusByID.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListSubmittedByPlotBetween(ctx context.Context, plotID string, from, to time.Time) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersPlotIDIndex),
		KeyConditionExpression: aws.String("plot_id = :pid AND work_date BETWEEN :from AND :to"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":    &types.AttributeValueMemberS{Value: plotID},
			":from":   &types.AttributeValueMemberS{Value: timeToString(from)},
			":to":     &types.AttributeValueMemberS{Value: timeToString(to)},
			":status": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusSubmitted)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromWorkOrderItem(it))
	}
	return orders, nil
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:                       w.ID,
		PlotID:                   w.PlotID,
		CustomerID:               w.CustomerID,
		WorkTypeID:               w.WorkTypeID,
		WorkDate:                 timeToString(w.WorkDate),
		Description:              w.Description,
		Status:                   string(w.Status),
		Equipment:                toLineItemItems(w.Equipment),
		Material:                 toLineItemItems(w.Material),
		Labor:                    toLineItemItems(w.Labor),
		TotalCost:                floatToString(w.TotalCost),
		MonthlyMaintenanceBudget: floatToString(w.MonthlyMaintenanceBudget),
		MaintenanceBalance:       floatToString(w.MaintenanceBalance),
		CreatedAt:                timeToString(w.CreatedAt),
		UpdatedAt:                timeToString(w.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                       it.ID,
		PlotID:                   it.PlotID,
		CustomerID:               it.CustomerID,
		WorkTypeID:               it.WorkTypeID,
		WorkDate:                 stringToTime(it.WorkDate),
		Description:              it.Description,
		Status:                   entities.WorkOrderStatus(it.Status),
		Equipment:                fromLineItemItems(it.Equipment),
		Material:                 fromLineItemItems(it.Material),
		Labor:                    fromLineItemItems(it.Labor),
		TotalCost:                stringToFloat(it.TotalCost),
		MonthlyMaintenanceBudget: stringToFloat(it.MonthlyMaintenanceBudget),
		MaintenanceBalance:       stringToFloat(it.MaintenanceBalance),
		CreatedAt:                stringToTime(it.CreatedAt),
		UpdatedAt:                stringToTime(it.UpdatedAt),
	}
}

func toLineItemItems(lines []entities.LineItem) []lineItemItem {
	if len(lines) == 0 {
		return nil
	}
	items := make([]lineItemItem, 0, len(lines))
	for _, li := range lines {
		items = append(items, lineItemItem{
			ItemID:      li.ItemID,
			Name:        li.Name,
			DisplayName: li.DisplayName,
			Quantity:    floatToString(li.Quantity),
			Unit:        li.Unit,
			UnitPrice:   floatToString(li.UnitPrice),
			Count:       li.Count,
			TotalPrice:  floatToString(li.TotalPrice),
		})
	}
	return items
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	lines := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.LineItem{
			ItemID:      it.ItemID,
			Name:        it.Name,
			DisplayName: it.DisplayName,
			Quantity:    stringToFloat(it.Quantity),
			Unit:        it.Unit,
			UnitPrice:   stringToFloat(it.UnitPrice),
			Count:       it.Count,
			TotalPrice:  stringToFloat(it.TotalPrice),
		})
	}
	return lines
}
