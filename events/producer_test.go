package events

import (
	"testing"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitNewPublisher(t *testing.T) {
	Convey("No brokers configured", t, func() {
		publisher := NewPublisher(config.DefaultConfig())
		_, ok := publisher.(NoopPublisher)
		So(ok, ShouldBeTrue)
		So(publisher.PublishPaymentFinalised("q1", "https://sender/alice"), ShouldBeNil)
	})

	Convey("Brokers configured", t, func() {
		cfg := config.DefaultConfig()
		cfg.BrokerAddr = []string{"kafka:9092"}
		cfg.SchemaRegistryURL = "http://schema-registry"

		publisher := NewPublisher(cfg)
		kafkaPublisher, ok := publisher.(*KafkaPublisher)
		So(ok, ShouldBeTrue)
		So(kafkaPublisher.BrokerAddr, ShouldResemble, []string{"kafka:9092"})
		So(kafkaPublisher.SchemaRegistryURL, ShouldEqual, "http://schema-registry")
	})
}

func TestUnitPrepareKafkaMessage(t *testing.T) {
	Convey("Successful message preparation with prepareKafkaMessage", t, func() {
		// This is the schema that is used by the producer
		schema := `{
			"type": "record",
			"name": "payment_finalised",
			"namespace": "payments",
			"fields": [
			{
				"name": "quote_id",
				"type": "string"
			},
			{
				"name": "sending_wallet_address_url",
				"type": "string"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, err := prepareKafkaMessage("q1", "https://sender/alice", *producerSchema)
		unmarshalled := paymentFinalised{}
		unmarshalErr := producerSchema.Unmarshal(message.Value, &unmarshalled)

		So(err, ShouldBeNil)
		So(unmarshalErr, ShouldBeNil)
		So(message.Topic, ShouldEqual, ProducerTopic)
		So(unmarshalled.QuoteID, ShouldEqual, "q1")
		So(unmarshalled.SendingWalletAddressURL, ShouldEqual, "https://sender/alice")
	})

	Convey("Unsuccessful message preparation with prepareKafkaMessage", t, func() {
		// the type is incorrect, so should error when marshalling
		schema := `{
			"type": "record",
			"name": "payment_finalised",
			"namespace": "payments",
			"fields": [
			{
				"name": "quote_id",
				"type": "int"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		_, err := prepareKafkaMessage("q1", "https://sender/alice", *producerSchema)
		So(err, ShouldNotBeEmpty)
	})
}
