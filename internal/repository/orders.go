package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolform/order-service/internal/domain/model"
)

// OrderDocument is the archived order snapshot as stored in MongoDB.
// The spreadsheet collaborator stays the durability owner; this archive is an
// audit trail only.
type OrderDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID    string             `bson:"order_id" json:"order_id"`
	Items      []model.OrderItem  `bson:"items" json:"items"`
	ParentName string             `bson:"parent_name" json:"parent_name"`
	ChildName  string             `bson:"child_name" json:"child_name"`
	TotalPrice int                `bson:"total_price" json:"total_price"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	ArchivedAt time.Time          `bson:"archived_at" json:"archived_at"`
}

// OrdersRepository provides archive operations for recorded orders.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Create archives a recorded order snapshot.
func (r *OrdersRepository) Create(ctx context.Context, order *model.Order) error {
	doc := OrderDocument{
		ID:         primitive.NewObjectID(),
		OrderID:    order.ID,
		Items:      order.Items,
		ParentName: order.Guardian.ParentName,
		ChildName:  order.Guardian.ChildName,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
		ArchivedAt: time.Now(),
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// GetByOrderID returns the archived snapshot for an order identifier.
func (r *OrdersRepository) GetByOrderID(ctx context.Context, orderID string) (*OrderDocument, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns the most recently archived orders, newest first.
func (r *OrdersRepository) List(ctx context.Context, limit int) ([]OrderDocument, error) {
	if limit <= 0 {
		limit = 50
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
