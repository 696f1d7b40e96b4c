package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// goalDoc is the wire shape of a goal document.
type goalDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	GoalType    string             `bson:"goal_type"`
	StartDate   string             `bson:"start_date"`
	GoalValue   float64            `bson:"goal_value"`
	Description string             `bson:"description"`
	Unit        string             `bson:"unit"`
	Frequency   string             `bson:"frequency"`
	Progress    float64            `bson:"progress"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// InsertGoal persists a new goal document.
func (s *MongoStore) InsertGoal(ctx context.Context, g *models.Goal) (string, error) {
	doc := goalDoc{
		ID:          primitive.NewObjectID(),
		GoalType:    g.Type,
		StartDate:   g.StartDate,
		GoalValue:   g.Value,
		Description: g.Description,
		Unit:        g.Unit,
		Frequency:   g.Frequency,
		Progress:    g.Progress,
		CreatedAt:   g.CreatedAt,
	}

	if _, err := s.goals.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert goal: %w", err)
	}

	g.ID = doc.ID.Hex()
	return g.ID, nil
}

// GetGoal retrieves a goal by its hex ID.
func (s *MongoStore) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc goalDoc
	err = s.goals.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("goal %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return &models.Goal{
		ID:          doc.ID.Hex(),
		Type:        doc.GoalType,
		StartDate:   doc.StartDate,
		Value:       doc.GoalValue,
		Description: doc.Description,
		Unit:        doc.Unit,
		Frequency:   doc.Frequency,
		Progress:    doc.Progress,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
