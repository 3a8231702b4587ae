// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/gift-draw/models"
)

// CollectionName is the MongoDB collection holding participant documents.
const CollectionName = "participants"

// MongoStore keeps the roster as documents in a single collection.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(CollectionName),
	}
}

// The selectedTargetId index is partial: documents without the field would
// otherwise all index as null and collide.
func participantIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("id_unique"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("name_unique"),
		},
		{
			Keys: bson.D{{Key: "selectedTargetId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("selected_target_unique").
				SetPartialFilterExpression(bson.D{
					{Key: "selectedTargetId", Value: bson.D{{Key: "$exists", Value: true}}},
				}),
		},
	}
}

func (s *MongoStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.col.Indexes().CreateMany(ctx, participantIndexes()); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]models.Participant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})

	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}

	participants := []models.Participant{}
	if err := cur.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}
	return participants, nil
}

func (s *MongoStore) FindByName(ctx context.Context, name string) (*models.Participant, error) {
	return s.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (s *MongoStore) FindByID(ctx context.Context, id int64) (*models.Participant, error) {
	return s.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.D) (*models.Participant, error) {
	var p models.Participant
	err := s.col.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}})).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query participant: %w", err)
	}
	return &p, nil
}

func (s *MongoStore) ListTakenTargets(ctx context.Context) ([]int64, error) {
	filter := bson.D{{Key: "selectedTargetId", Value: bson.D{{Key: "$exists", Value: true}}}}
	opts := options.Find().
		SetSort(bson.D{{Key: "selectedTargetId", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "selectedTargetId", Value: 1}})

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query taken targets: %w", err)
	}

	var docs []struct {
		SelectedTargetID int64 `bson:"selectedTargetId"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read taken targets: %w", err)
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.SelectedTargetID)
	}
	return ids, nil
}

func (s *MongoStore) Count(ctx context.Context) (int, error) {
	n, err := s.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return int(n), nil
}

// ReplaceAll builds the new generation in a staging collection with every
// unique index in place, then renames it over the live one. A failed build
// leaves the current roster untouched.
func (s *MongoStore) ReplaceAll(ctx context.Context, names []string) (int, error) {
	clean := CleanNames(names)
	if len(clean) == 0 {
		return 0, fmt.Errorf("%w: no valid names provided", ErrInvalidInput)
	}
	if name, ok := firstDuplicate(clean); ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	database := s.col.Database()
	staging := database.Collection(CollectionName + "_staging")
	if err := staging.Drop(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear staging collection: %w", err)
	}
	if _, err := staging.Indexes().CreateMany(ctx, participantIndexes()); err != nil {
		return 0, fmt.Errorf("failed to create indexes: %w", err)
	}

	docs := make([]interface{}, len(clean))
	for i, name := range clean {
		docs[i] = models.Participant{ID: int64(i + 1), Name: name}
	}

	if _, err := staging.InsertMany(ctx, docs); err != nil {
		_ = staging.Drop(ctx)
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: %v", ErrDuplicateName, err)
		}
		return 0, fmt.Errorf("failed to insert participants: %w", err)
	}

	rename := bson.D{
		{Key: "renameCollection", Value: database.Name() + "." + staging.Name()},
		{Key: "to", Value: database.Name() + "." + CollectionName},
		{Key: "dropTarget", Value: true},
	}
	if err := s.client.Database("admin").RunCommand(ctx, rename).Err(); err != nil {
		return 0, fmt.Errorf("failed to publish roster: %w", err)
	}

	return len(clean), nil
}

// ClaimTarget is one UpdateOne filtered on the field being absent; the
// partial unique index rejects a second holder of the same target.
//
// A document store cannot tie the target's existence to the same write, so
// the target is looked up first; a reseed landing between the lookup and the
// update is not caught here.
func (s *MongoStore) ClaimTarget(ctx context.Context, pickerID, targetID int64) error {
	if pickerID == targetID {
		return ErrSelfSelection
	}
	if _, err := s.FindByID(ctx, targetID); err != nil {
		return err
	}

	filter := bson.D{
		{Key: "id", Value: pickerID},
		{Key: "selectedTargetId", Value: bson.D{{Key: "$exists", Value: false}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "selectedTargetId", Value: targetID}}}}

	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrTargetTaken
		}
		return fmt.Errorf("failed to update selection: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyAssigned
	}

	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
