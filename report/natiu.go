//go:build tinygo

package report

import (
	"context"

	mqtt "github.com/soypat/natiu-mqtt"
)

// NatiuPublisher publishes Events over a natiu-mqtt client, copying the
// rendered payload into a pre-allocated 64-byte buffer so no new payload
// slice is handed to the client per call, for builds where heap churn is
// a real budget. The payload string itself is still built by payload.
type NatiuPublisher struct {
	client *mqtt.Client
	topic  []byte
	buf    [64]byte
}

// NewNatiuPublisher wraps client, publishing to topic at QoS 0.
func NewNatiuPublisher(client *mqtt.Client, topic string) *NatiuPublisher {
	return &NatiuPublisher{client: client, topic: []byte(topic)}
}

// Publish renders evt into p's internal buffer and publishes it without
// allocating a new payload slice.
func (p *NatiuPublisher) Publish(ctx context.Context, evt Event) error {
	s := payload(evt)
	n := copy(p.buf[:], s)

	var varPub mqtt.VariablesPublish
	varPub.TopicName = p.topic
	varPub.PacketIdentifier = 0

	flags, err := mqtt.NewPublishFlags(mqtt.QoS0, false, false, false)
	if err != nil {
		return err
	}

	return p.client.PublishPayload(flags, varPub, p.buf[:n])
}
