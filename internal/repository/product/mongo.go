package product

import (
	"context"
	"errors"
	"io"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"luxe-jewelry-api/internal/db"
	"luxe-jewelry-api/internal/domain"
)

const collectionName = "products"

type mongoRepo struct {
	store  *db.Store
	logger *log.Logger
}

// NewMongo builds the products repository over the shared store handle.
// Every operation re-checks availability through the handle.
func NewMongo(store *db.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{store: store, logger: logger}
}

func (r *mongoRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"is_featured": true})
}

func (r *mongoRepo) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, filter, options.Find().SetLimit(ListLimit))
	if err != nil {
		r.logger.Printf("product repo: find filter=%v error=%v", filter, err)
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Product
	if err := cur.All(ctx, &result); err != nil {
		r.logger.Printf("product repo: find decode error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *mongoRepo) Insert(ctx context.Context, p domain.Product) error {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, p); err != nil {
		r.logger.Printf("product repo: insert id=%s error=%v", p.ID, err)
		return err
	}
	r.logger.Printf("product repo: inserted id=%s name=%q", p.ID, p.Name)
	return nil
}

func (r *mongoRepo) InsertMany(ctx context.Context, ps []domain.Product) error {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		docs = append(docs, p)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		r.logger.Printf("product repo: insert many count=%d error=%v", len(ps), err)
		return err
	}
	r.logger.Printf("product repo: inserted %d products", len(ps))
	return nil
}

func (r *mongoRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func (r *mongoRepo) Count(ctx context.Context) (int64, error) {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}
