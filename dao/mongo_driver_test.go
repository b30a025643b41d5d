package dao

import (
	"context"
	"testing"
	"time"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options, models.PaymentSessionDB) {
	now := time.Date(2024, 10, 1, 11, 6, 0, 0, time.UTC)

	mongoService := MongoService{
		CollectionName: "payment_sessions",
		now:            fixedClock(now),
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	paymentSession := models.PaymentSessionDB{
		ID: "ID",
		Draft: models.PaymentRequestDraftDB{
			SenderURL:   "https://sender/alice",
			ReceiverURL: "https://receiver/bob",
			Amount:      "10.5",
		},
		Grant: models.PaymentGrantDB{
			QuoteID:             "q1",
			ContinueURI:         "https://x/c",
			ContinueAccessToken: "tok",
		},
		State:     "grant-held",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	opts := mtest.NewOptions().DatabaseName("databaseName").ClientType(mtest.Mock)

	return mongoService, commandError, opts, paymentSession
}

func TestUnitSavePaymentSessionDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, paymentSession := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("SavePaymentSession runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.SavePaymentSession(context.Background(), &paymentSession)

		assert.Nil(t, err)
	})

	mt.Run("SavePaymentSession runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.SavePaymentSession(context.Background(), &paymentSession)

		assert.NotNil(t, err)
	})
}

func TestUnitGetPaymentSessionDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, paymentSession := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetPaymentSession successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.payment_sessions", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: paymentSession.ID},
			{Key: "state", Value: paymentSession.State},
			{Key: "grant", Value: bson.D{
				{Key: "quote_id", Value: paymentSession.Grant.QuoteID},
				{Key: "continue_uri", Value: paymentSession.Grant.ContinueURI},
				{Key: "continue_access_token", Value: paymentSession.Grant.ContinueAccessToken},
			}},
			{Key: "expires_at", Value: paymentSession.ExpiresAt},
		}))

		mongoService.db = mt.DB

		result, err := mongoService.GetPaymentSession(context.Background(), "ID")
		assert.Nil(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "ID", result.ID)
		assert.Equal(t, "grant-held", result.State)
		assert.Equal(t, "q1", result.Grant.QuoteID)
		assert.Equal(t, "tok", result.Grant.ContinueAccessToken)
	})

	mt.Run("GetPaymentSession not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.payment_sessions", mtest.FirstBatch))

		mongoService.db = mt.DB

		result, err := mongoService.GetPaymentSession(context.Background(), "ID")
		assert.Nil(t, err)
		assert.Nil(t, result)
	})

	mt.Run("GetPaymentSession with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		result, err := mongoService.GetPaymentSession(context.Background(), "ID")
		assert.NotNil(t, err)
		assert.Nil(t, result)
	})
}

func TestUnitEnsureExpiryIndexDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("ensureExpiryIndex runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.ensureExpiryIndex(context.Background())

		assert.Nil(t, err)

		started := mt.GetStartedEvent()
		assert.Equal(t, "createIndexes", started.CommandName)

		indexes := started.Command.Lookup("indexes").Array()
		index, err := indexes.IndexErr(0)
		assert.Nil(t, err)
		document := index.Value().Document()
		assert.Equal(t, int32(0), document.Lookup("expireAfterSeconds").Int32())
		assert.Equal(t, "expires_at_1", document.Lookup("name").StringValue())
	})

	mt.Run("ensureExpiryIndex runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.ensureExpiryIndex(context.Background())

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "error creating session expiry index")
	})
}
