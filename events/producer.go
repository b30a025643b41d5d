// Package events produces Kafka messages announcing finalised payments.
package events

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
)

// ProducerTopic is the topic to which the payment finalised kafka message is sent
const ProducerTopic = "payment-finalised"

// ProducerSchemaName is the schema which will be used to send the payment finalised kafka message with
const ProducerSchemaName = "payment-finalised"

// paymentFinalised represents the avro schema registered as ProducerSchemaName
type paymentFinalised struct {
	QuoteID                 string `avro:"quote_id"`
	SendingWalletAddressURL string `avro:"sending_wallet_address_url"`
}

// Publisher is an interface for announcing that a payment has been finalised
type Publisher interface {
	PublishPaymentFinalised(quoteID, sendingWalletAddressURL string) error
}

// NewPublisher returns a Kafka publisher, or a publisher that does nothing
// when no brokers are configured
func NewPublisher(cfg *config.Config) Publisher {
	if !cfg.EventsEnabled() {
		return NoopPublisher{}
	}
	return &KafkaPublisher{
		BrokerAddr:        cfg.BrokerAddr,
		SchemaRegistryURL: cfg.SchemaRegistryURL,
	}
}

// NoopPublisher discards events
type NoopPublisher struct{}

// PublishPaymentFinalised does nothing
func (NoopPublisher) PublishPaymentFinalised(string, string) error {
	return nil
}

// KafkaPublisher sends events to Kafka using the avro schema from the registry
type KafkaPublisher struct {
	BrokerAddr        []string
	SchemaRegistryURL string
}

// PublishPaymentFinalised handles creating a producer, marshalling the event
// into the correct avro schema and sending it to ProducerTopic
func (k *KafkaPublisher) PublishPaymentFinalised(quoteID, sendingWalletAddressURL string) error {
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: k.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}

	paymentFinalisedSchema, err := schema.Get(k.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: paymentFinalisedSchema,
	}

	message, err := prepareKafkaMessage(quoteID, sendingWalletAddressURL, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d: [%v]", partition, offset, err)
	}
	return nil
}

// prepareKafkaMessage is pulled out of PublishPaymentFinalised to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(quoteID, sendingWalletAddressURL string, paymentFinalisedSchema avro.Schema) (*producer.Message, error) {
	paymentFinalisedMessage := paymentFinalised{
		QuoteID:                 quoteID,
		SendingWalletAddressURL: sendingWalletAddressURL,
	}

	messageBytes, err := paymentFinalisedSchema.Marshal(paymentFinalisedMessage)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payment finalised message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
