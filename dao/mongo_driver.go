package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// MongoDatabaseInterface is the part of *mongo.Database used by MongoService
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService stores payment sessions in a MongoDB collection
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
	now            func() time.Time
}

func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoDBURL))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: [%v]", err)
	}

	err = mongoClient.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error pinging mongodb: [%v]", err)
	}

	log.Info("connected to mongodb")
	client = mongoClient
	return client, nil
}

// NewMongoService connects to the database named in the config. A new
// connection also ensures the expiry index exists.
func NewMongoService(cfg *config.Config) (*MongoService, error) {
	connected := client != nil

	mongoClient, err := getMongoClient(cfg.MongoDBURL)
	if err != nil {
		return nil, err
	}

	mongoService := &MongoService{
		db:             mongoClient.Database(cfg.Database),
		CollectionName: cfg.Collection,
		now:            time.Now,
	}

	if !connected {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err = mongoService.ensureExpiryIndex(ctx)
		if err != nil {
			return nil, err
		}
	}

	return mongoService, nil
}

// ensureExpiryIndex adds a TTL index so that MongoDB deletes each session
// once its expires_at has passed
func (m *MongoService) ensureExpiryIndex(ctx context.Context) error {
	collection := m.db.Collection(m.CollectionName)

	expiryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}

	_, err := collection.Indexes().CreateOne(ctx, expiryIndex)
	if err != nil {
		return fmt.Errorf("error creating session expiry index: [%v]", err)
	}

	log.Info("session expiry index ensured", log.Data{"collection": m.CollectionName})
	return nil
}

// GetPaymentSession gets an unexpired payment session from the DB
// If the session is not found in the DB, return nil
func (m *MongoService) GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionDB, error) {
	var paymentSession models.PaymentSessionDB
	collection := m.db.Collection(m.CollectionName)

	filter := bson.M{
		"_id":        id,
		"expires_at": bson.M{"$gt": m.currentTime()},
	}

	err := collection.FindOne(ctx, filter).Decode(&paymentSession)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &paymentSession, nil
}

// SavePaymentSession writes the payment session to the DB, replacing any
// previous version
func (m *MongoService) SavePaymentSession(ctx context.Context, paymentSession *models.PaymentSessionDB) error {
	collection := m.db.Collection(m.CollectionName)

	_, err := collection.ReplaceOne(ctx, bson.M{"_id": paymentSession.ID}, paymentSession, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoService) currentTime() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}
