package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/console-api/internal/core/domain"
)

const settingsCollection = "settings"

// settingsDocID pins the single notification-settings document to a
// well-known id so GET/PUT always address the same document.
const settingsDocID = "65fdaaca4f94194ff730d3be"

type MongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: db.Collection(settingsCollection)}
}

func (r *MongoSettingsRepository) docID() primitive.ObjectID {
	oid, _ := primitive.ObjectIDFromHex(settingsDocID)
	return oid
}

func (r *MongoSettingsRepository) Get(ctx context.Context) (*domain.MessageSettings, error) {
	var settings domain.MessageSettings
	err := r.coll.FindOne(ctx, bson.M{"_id": r.docID()}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &settings, nil
}

func (r *MongoSettingsRepository) Replace(ctx context.Context, settings *domain.MessageSettings) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": r.docID()}, settings)
	if err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}

func (r *MongoSettingsRepository) SetSMTPActive(ctx context.Context, active bool) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": r.docID()},
		bson.M{"$set": bson.M{"smtp.active": active}})
	if err != nil {
		return fmt.Errorf("set smtp active: %w", err)
	}
	return nil
}

// EnsureDefault inserts the default settings document when none exists.
func (r *MongoSettingsRepository) EnsureDefault(ctx context.Context) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": r.docID()})
	if err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := bson.M{
		"_id": r.docID(),
		"smtp": bson.M{
			"active":       false,
			"server":       "smtp.gmail.com",
			"port":         587,
			"user":         "your_email@gmail.com",
			"password":     "your_password",
			"system_email": "your_email@gmail.com",
		},
		"whatsapp": bson.M{
			"active":      false,
			"account_sid": "your_account_sid",
			"auth_token":  "your_auth_token",
			"from_number": "+1234567890",
		},
		"sms": bson.M{
			"active":      false,
			"provider":    "Twilio",
			"api_key":     "your_api_key",
			"from_number": "+1234567890",
		},
	}
	if _, err := r.coll.InsertOne(ctx, defaults); err != nil {
		return fmt.Errorf("insert default settings: %w", err)
	}
	return nil
}
