package contact

import (
	"context"
	"io"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"luxe-jewelry-api/internal/db"
	"luxe-jewelry-api/internal/domain"
)

const collectionName = "contacts"

type mongoRepo struct {
	store  *db.Store
	logger *log.Logger
}

func NewMongo(store *db.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{store: store, logger: logger}
}

func (r *mongoRepo) Insert(ctx context.Context, c domain.Contact) error {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, c); err != nil {
		r.logger.Printf("contact repo: insert id=%s error=%v", c.ID, err)
		return err
	}
	r.logger.Printf("contact repo: inserted id=%s email=%s", c.ID, c.Email)
	return nil
}

func (r *mongoRepo) List(ctx context.Context) ([]domain.Contact, error) {
	coll, err := r.store.Collection(collectionName)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetLimit(ListLimit))
	if err != nil {
		r.logger.Printf("contact repo: list error=%v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Contact
	if err := cur.All(ctx, &result); err != nil {
		r.logger.Printf("contact repo: list decode error=%v", err)
		return nil, err
	}
	return result, nil
}
