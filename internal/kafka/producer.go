package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"transactions-service/config"
	"transactions-service/internal/models"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaConfig возвращает настройки синхронного продюсера
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Partitioner = sarama.NewHashPartitioner
	return config
}

func NewProducer(cfg *config.Config) (Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, NewSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return NewProducerWithClient(producer, cfg.Kafka.TransactionTopic), nil
}

// NewProducerWithClient оборачивает готовый sarama.SyncProducer
func NewProducerWithClient(producer sarama.SyncProducer, topic string) Producer {
	return &ProducerImpl{
		producer: producer,
		topic:    topic,
	}
}

// SendTransactionEvent публикует событие; ключ сообщения - id транзакции,
// поэтому все изменения одной записи попадают в одну партицию
func (p *ProducerImpl) SendTransactionEvent(event *models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(strconv.FormatInt(event.Data.TransactionID, 10)),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Printf("Message sent to topic %s, partition %d, offset %d", p.topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
