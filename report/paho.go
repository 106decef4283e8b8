//go:build !tinygo

package report

import (
	"context"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// PahoPublisher publishes Events over an already-connected paho MQTT
// client. Intended for desktop/gateway builds of a scanner host, where
// goroutines and allocation are cheap.
type PahoPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewPahoPublisher wraps client, publishing every Event to topic (with a
// per-symbology suffix appended) at the given QoS.
func NewPahoPublisher(client mqtt.Client, topic string, qos byte) *PahoPublisher {
	return &PahoPublisher{client: client, topic: topic, qos: qos}
}

// Publish sends evt and waits for the token to resolve or ctx to be
// canceled, whichever comes first.
func (p *PahoPublisher) Publish(ctx context.Context, evt Event) error {
	full := p.topic + "/" + topicSuffix(evt.Symbol)
	token := p.client.Publish(full, p.qos, false, payload(evt))

	done := make(chan struct{})
	go func() {
		token.Wait()
		close(done)
	}()

	select {
	case <-done:
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
