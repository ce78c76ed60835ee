package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/console-api/internal/core/domain"
)

const emailsCollection = "emails_sent"

// MongoEmailLog records sent emails for auditing.
type MongoEmailLog struct {
	coll *mongo.Collection
}

func NewEmailLog(db *mongo.Database) *MongoEmailLog {
	return &MongoEmailLog{coll: db.Collection(emailsCollection)}
}

type sentEmail struct {
	Subject     string   `bson:"subject"`
	Body        string   `bson:"body"`
	ToEmails    []string `bson:"to_emails"`
	Attachments []string `bson:"attachments"`
	SentAt      int64    `bson:"sent_at"`
}

func (l *MongoEmailLog) Record(ctx context.Context, email domain.OutboundEmail) error {
	names := make([]string, 0, len(email.Attachments))
	for _, att := range email.Attachments {
		names = append(names, att.Filename)
	}

	doc := sentEmail{
		Subject:     email.Subject,
		Body:        email.Body,
		ToEmails:    email.Recipients,
		Attachments: names,
		SentAt:      time.Now().UTC().Unix(),
	}
	if _, err := l.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("record email: %w", err)
	}
	return nil
}
