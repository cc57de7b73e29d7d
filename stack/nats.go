package stack

import (
	"encoding/json"
	"log"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/settings"
	"github.com/nats-io/nats.go"
)

var settingsData = settings.GetSettings()

var natsInstance *NatsClient

type NatsNestJSRes struct {
	Response interface{} `json:"response"`
	ID       string      `json:"id"`
	Err      interface{} `json:"err,omitempty"`
}

type NatsClient struct {
	conn *nats.Conn
}

func newConnection() *nats.Conn {
	conn, err := nats.Connect(
		"nats://"+settingsData.NATS_HOST,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second*2),
	)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	return conn
}

func (n *NatsClient) Subscribe(subject string, handler func(m *nats.Msg)) (*nats.Subscription, error) {
	return n.conn.Subscribe(subject, handler)
}

// Queue subscription: members of the same queue group share the work
func (n *NatsClient) QueueSubscribe(
	subject string,
	queue string,
	handler func(m *nats.Msg),
) (*nats.Subscription, error) {
	return n.conn.QueueSubscribe(subject, queue, handler)
}

func (n *NatsClient) Request(subject string, data []byte) (*nats.Msg, error) {
	return n.conn.Request(subject, data, time.Second*10)
}

func (n *NatsClient) Publish(subject string, data []byte) error {
	return n.conn.Publish(subject, data)
}

func (n *NatsClient) PublishEncode(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return n.conn.Publish(subject, data)
}

// DecodeDataNest unwraps the {id, data} envelope used by the NestJS services
func (n *NatsClient) DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if inner, ok := payload["data"].(map[string]interface{}); ok {
		return inner, nil
	}
	return payload, nil
}

func NewNats() *NatsClient {
	if natsInstance == nil {
		natsInstance = &NatsClient{
			conn: newConnection(),
		}
	}
	return natsInstance
}
