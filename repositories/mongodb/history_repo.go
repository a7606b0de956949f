package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "qris-stream/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HistoryRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewHistoryRepository(client *mongo.Client) *HistoryRepository {
	return &HistoryRepository{client: client, database: "qris", collection: "merchant_history"}
}

// Upsert stores a merchant history record, deduplicating on the exact
// static payload string: rescanning a known code replaces the previous
// entry rather than appending a duplicate.
func (r *HistoryRepository) Upsert(ctx context.Context, history models.MerchantHistory) error {
	collection := r.client.Database(r.database).Collection(r.collection)

	filter := bson.M{"payload": history.Payload}
	update := bson.M{
		"$set": bson.M{
			"dynamic_payload": history.DynamicPayload,
			"amount":          history.Amount,
			"merchant_name":   history.MerchantName,
			"merchant_city":   history.MerchantCity,
			"scanned_at":      history.ScannedAt,
		},
		"$setOnInsert": bson.M{
			"_id":     history.ScanID,
			"payload": history.Payload,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// Recent returns up to limit history records, most recently scanned first.
func (r *HistoryRepository) Recent(ctx context.Context, limit int64) ([]models.MerchantHistory, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	opts := options.Find().SetSort(bson.M{"scanned_at": -1}).SetLimit(limit)
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.MerchantHistory
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
