package notifier

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "notifications"

// MongoStorage is the document-database implementation of Storage.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates a Mongo-backed storage over the named collection.
// Call EnsureIndexes once at startup to install the TTL and query indexes.
func NewMongoStorage(db *mongo.Database, collection string) *MongoStorage {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStorage{coll: db.Collection(collection)}
}

// EnsureIndexes installs the retention TTL index and the recipient query
// index. The TTL index makes Mongo purge records RetentionPeriod after
// creation, so no application-level sweep is needed.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(RetentionPeriod.Seconds())),
		},
		{
			Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{
				{Key: "recipient_id", Value: 1},
				{Key: "entity_id", Value: 1},
				{Key: "type", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	})
	return err
}

func (s *MongoStorage) Insert(ctx context.Context, notif Notification) (Notification, error) {
	if notif.ID == "" || notif.RecipientID == "" {
		return Notification{}, ErrInvalidNotification
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	// Replace-not-accumulate: remove any record with the identical content
	// tuple before inserting the fresh one.
	_, err := s.coll.DeleteMany(ctx, bson.D{
		{Key: "recipient_id", Value: notif.RecipientID},
		{Key: "sender_id", Value: notif.SenderID},
		{Key: "title", Value: notif.Title},
		{Key: "message", Value: notif.Message},
		{Key: "type", Value: notif.Type},
		{Key: "entity_id", Value: notif.EntityID},
	})
	if err != nil {
		return Notification{}, err
	}

	if _, err := s.coll.InsertOne(ctx, notif); err != nil {
		return Notification{}, err
	}
	return notif, nil
}

func (s *MongoStorage) Get(ctx context.Context, recipientID, notifID string) (*Notification, error) {
	var notif Notification
	err := s.coll.FindOne(ctx, bson.D{
		{Key: "_id", Value: notifID},
		{Key: "recipient_id", Value: recipientID},
	}).Decode(&notif)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &notif, nil
}

func (s *MongoStorage) List(ctx context.Context, recipientID string, opts ListOptions) ([]Notification, error) {
	filter := bson.D{{Key: "recipient_id", Value: recipientID}}
	if opts.OnlyUnopened {
		filter = append(filter, bson.E{Key: "opened", Value: false})
	}
	if len(opts.Types) > 0 {
		filter = append(filter, bson.E{Key: "type", Value: bson.D{{Key: "$in", Value: opts.Types}}})
	}
	if opts.Since != nil {
		filter = append(filter, bson.E{Key: "created_at", Value: bson.D{{Key: "$gt", Value: *opts.Since}}})
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifs := []Notification{}
	if err := cursor.All(ctx, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

func (s *MongoStorage) MarkAllOpened(ctx context.Context, recipientIDs ...string) (int64, error) {
	if len(recipientIDs) == 0 {
		return 0, nil
	}

	now := time.Now()
	result, err := s.coll.UpdateMany(ctx,
		bson.D{
			{Key: "recipient_id", Value: bson.D{{Key: "$in", Value: recipientIDs}}},
			{Key: "opened", Value: false},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "opened", Value: true},
			{Key: "opened_at", Value: now},
		}}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoStorage) CountUnopened(ctx context.Context, recipientID string) (int, error) {
	count, err := s.coll.CountDocuments(ctx, bson.D{
		{Key: "recipient_id", Value: recipientID},
		{Key: "opened", Value: false},
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *MongoStorage) ExistsSince(ctx context.Context, recipientID, entityID string, typ Type, since time.Time) (bool, error) {
	count, err := s.coll.CountDocuments(ctx, bson.D{
		{Key: "recipient_id", Value: recipientID},
		{Key: "entity_id", Value: entityID},
		{Key: "type", Value: typ},
		{Key: "created_at", Value: bson.D{{Key: "$gt", Value: since}}},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
