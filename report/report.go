// Package report publishes decoded symbol events to an MQTT broker.
// Publish is always called after a full edge-processing pass completes,
// never from inside the decode loop, so a slow or unreachable broker
// never blocks scanning.
package report

import (
	"context"
	"strconv"

	"github.com/zkrige/zbar/ean"
)

// Event is one completed decode, carrying enough of the symbol to
// reconstruct a wire.Frame or a log line without reaching back into the
// decoder that produced it.
type Event struct {
	Symbol ean.SymbolType
	Digits string
}

// Publisher is the sink every report backend implements.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// payload renders evt the way both backends serialize it on the wire: a
// flat, comma-joined "<symbology>,<digits>" string, deliberately simpler
// than JSON since the consumer already knows the schema.
func payload(evt Event) string {
	return evt.Symbol.String() + "," + evt.Digits
}

// topicSuffix is appended to a configured base topic per symbology, so a
// subscriber can filter by type without parsing the payload.
func topicSuffix(sym ean.SymbolType) string {
	return strconv.Itoa(int(sym))
}
