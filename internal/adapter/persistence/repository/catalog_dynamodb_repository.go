package repository

import (
	"context"

	"managefarms/internal/domain/entities"
	"managefarms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogItemsTableName = "catalog_items"
	defaultItemPricesTableName   = "item_prices"
)

type catalogItemItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"item_name"`
	Description   string `dynamodbav:"description"`
	Group         string `dynamodbav:"item_group"`
	UnitOfMeasure string `dynamodbav:"stock_uom"`
}

type priceListEntryItem struct {
	ItemID    string `dynamodbav:"item_id"`
	PriceList string `dynamodbav:"price_list"`
	Rate      string `dynamodbav:"price_list_rate"`
}

// CatalogDynamoRepository reads catalog items and price-list rates.
//
// Table requirements:
//   - catalog_items: PK id (string)
//   - item_prices:   PK item_id (string), SK price_list (string)
//
// Absent items/entries come back zero-valued; the lookup layer turns that
// into a soft miss.

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	itemsTableName  string
	pricesTableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		itemsTableName:  getenvDefault("CATALOG_ITEMS_TABLE", defaultCatalogItemsTableName),
		pricesTableName: getenvDefault("ITEM_PRICES_TABLE", defaultItemPricesTableName),
	}
}

func (r *CatalogDynamoRepository) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.itemsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Group:         it.Group,
		UnitOfMeasure: it.UnitOfMeasure,
	}, nil
}

func (r *CatalogDynamoRepository) GetPrice(ctx context.Context, itemID, priceList string) (entities.PriceListEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.pricesTableName),
		Key: map[string]types.AttributeValue{
			"item_id":    &types.AttributeValueMemberS{Value: itemID},
			"price_list": &types.AttributeValueMemberS{Value: priceList},
		},
	})
	if err != nil {
		return entities.PriceListEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceListEntry{}, nil
	}

	var it priceListEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceListEntry{}, err
	}
	return entities.PriceListEntry{
		ItemID:    it.ItemID,
		PriceList: it.PriceList,
		Rate:      stringToFloat(it.Rate),
	}, nil
}
