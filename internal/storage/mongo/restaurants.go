package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// restaurantDoc is the wire shape of a restaurant document. MenuIDs carries
// omitempty so a restaurant without menus has no menu_ids field at all, as
// opposed to an empty array.
type restaurantDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	ContactNumber string             `bson:"contactNumber,omitempty"`
	OrderTimings  timingsDoc         `bson:"orderTimings"`
	Location      locationDoc        `bson:"location"`
	MenuIDs       []string           `bson:"menu_ids,omitempty"`
}

type timingsDoc struct {
	Start string `bson:"start"`
	End   string `bson:"end"`
}

type locationDoc struct {
	Address string   `bson:"address"`
	Lat     *float64 `bson:"lat"`
	Long    *float64 `bson:"long"`
}

// InsertRestaurant persists a new restaurant document.
func (s *MongoStore) InsertRestaurant(ctx context.Context, r *models.Restaurant) (string, error) {
	doc := restaurantDoc{
		ID:            primitive.NewObjectID(),
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		OrderTimings: timingsDoc{
			Start: r.OrderTimings.Start,
			End:   r.OrderTimings.End,
		},
		Location: locationDoc{
			Address: r.Location.Address,
			Lat:     r.Location.Lat,
			Long:    r.Location.Long,
		},
		MenuIDs: r.MenuIDs,
	}

	if _, err := s.restaurants.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert restaurant: %w", err)
	}

	r.ID = doc.ID.Hex()
	return r.ID, nil
}

// GetRestaurant retrieves a restaurant by its hex ID.
func (s *MongoStore) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc restaurantDoc
	err = s.restaurants.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("restaurant %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return &models.Restaurant{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		ContactNumber: doc.ContactNumber,
		OrderTimings: models.OrderTimings{
			Start: doc.OrderTimings.Start,
			End:   doc.OrderTimings.End,
		},
		Location: models.Location{
			Address: doc.Location.Address,
			Lat:     doc.Location.Lat,
			Long:    doc.Location.Long,
		},
		MenuIDs: doc.MenuIDs,
	}, nil
}

// UpdateRestaurant applies the patch as a single $set. Dotted paths merge
// into their sub-objects server-side, so siblings set in the same call never
// clobber each other.
func (s *MongoStore) UpdateRestaurant(ctx context.Context, id string, patch storage.Patch) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	for path, value := range patch {
		set[path] = value
	}

	res, err := s.restaurants.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to update restaurant: %w", err)
	}

	return res.ModifiedCount, nil
}

// AddMenuIDs adds menu IDs via $addToSet/$each, the set-union append.
func (s *MongoStore) AddMenuIDs(ctx context.Context, id string, menuIDs []string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.restaurants.UpdateByID(ctx, oid, bson.M{
		"$addToSet": bson.M{
			"menu_ids": bson.M{"$each": menuIDs},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append menu ids: %w", err)
	}

	return res.ModifiedCount, nil
}
