package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// expenseDoc is the wire shape of an expense document. Amounts are stored
// as Decimal128 to keep decimal precision through the database.
type expenseDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Category      string               `bson:"category"`
	Description   string               `bson:"description"`
	Date          string               `bson:"date"`
	Currency      string               `bson:"currency"`
	PaymentMethod string               `bson:"payment_method"`
	Status        string               `bson:"status"`
	Tags          []string             `bson:"tags"`
	Location      string               `bson:"location,omitempty"`
	Receipt       string               `bson:"receipt,omitempty"`
	Notes         string               `bson:"notes,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// InsertExpense persists a new expense document.
func (s *MongoStore) InsertExpense(ctx context.Context, e *models.Expense) (string, error) {
	amount, err := primitive.ParseDecimal128(e.Amount.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert amount: %w", err)
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := expenseDoc{
		ID:            primitive.NewObjectID(),
		Amount:        amount,
		Category:      e.Category,
		Description:   e.Description,
		Date:          e.Date,
		Currency:      e.Currency,
		PaymentMethod: e.PaymentMethod,
		Status:        e.Status,
		Tags:          tags,
		Location:      e.Location,
		Receipt:       e.Receipt,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	if _, err := s.expenses.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}

	e.ID = doc.ID.Hex()
	return e.ID, nil
}

// GetExpense retrieves an expense by its hex ID.
func (s *MongoStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc expenseDoc
	err = s.expenses.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	amount, err := decimal.NewFromString(doc.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount: %w", err)
	}

	return &models.Expense{
		ID:            doc.ID.Hex(),
		Amount:        amount,
		Category:      doc.Category,
		Description:   doc.Description,
		Date:          doc.Date,
		Currency:      doc.Currency,
		PaymentMethod: doc.PaymentMethod,
		Status:        doc.Status,
		Tags:          doc.Tags,
		Location:      doc.Location,
		Receipt:       doc.Receipt,
		Notes:         doc.Notes,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}
