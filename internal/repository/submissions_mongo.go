package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/octobees/portfolio-contact/api/internal/entity"
)

// SubmissionsCollection is the collection holding submission documents.
const SubmissionsCollection = "messages"

type mongoCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type mongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type submissionDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// MongoSubmissionsRepository implements SubmissionsRepository on a MongoDB collection.
type MongoSubmissionsRepository struct {
	collection mongoCollection
	client     mongoPinger
}

// NewMongoSubmissionsRepository wires the messages collection of db.
func NewMongoSubmissionsRepository(client *mongo.Client, db *mongo.Database) *MongoSubmissionsRepository {
	return &MongoSubmissionsRepository{
		collection: db.Collection(SubmissionsCollection),
		client:     client,
	}
}

var _ SubmissionsRepository = (*MongoSubmissionsRepository)(nil)

// Create inserts a new document; the ObjectID hex becomes the submission ID.
func (r *MongoSubmissionsRepository) Create(ctx context.Context, submission *entity.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	doc := submissionDocument{
		ID:        primitive.NewObjectID(),
		Name:      submission.Name,
		Email:     submission.Email,
		Message:   submission.Message,
		CreatedAt: submission.CreatedAt,
		UpdatedAt: submission.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	submission.ID = doc.ID.Hex()
	return nil
}

// Ping checks the primary is reachable.
func (r *MongoSubmissionsRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
