package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoply/storefront-api/internal/core/domain"
)

const collectionProducts = "products"

// ProductRepository persists catalog entries in the products collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

// Create inserts a new product document and returns it with the assigned ID.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"name":       product.Name,
		"price":      product.Price,
		"created_at": product.CreatedAt,
		"updated_at": product.UpdatedAt,
	}
	if product.Image != "" {
		doc["image"] = product.Image
	}
	if product.Description != "" {
		doc["description"] = product.Description
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListNewestFirst returns every product sorted by creation time descending.
func (r *ProductRepository) ListNewestFirst(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]domain.Product, 0)
	for cur.Next(ctx) {
		var doc struct {
			ID          primitive.ObjectID `bson:"_id"`
			Name        string             `bson:"name"`
			Price       float64            `bson:"price"`
			Image       string             `bson:"image,omitempty"`
			Description string             `bson:"description,omitempty"`
			CreatedAt   primitive.DateTime `bson:"created_at"`
			UpdatedAt   primitive.DateTime `bson:"updated_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, domain.Product{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Price:       doc.Price,
			Image:       doc.Image,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt.Time().UTC(),
			UpdatedAt:   doc.UpdatedAt.Time().UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
