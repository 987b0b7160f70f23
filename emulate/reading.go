// Package emulate replays synthetic gas-sensor rows as a live MQTT device
// feed, simulating the Arduino sensor node the datasets model. A Feed owns
// one Generator, draws a class per tick from a configured fresh ratio, and
// publishes each reading as a JSON payload with QoS 1.
//
// Errors:
//
//	ErrBadConfig - the feed configuration is incomplete or out of range.
//	ErrConnect   - the broker connection could not be established.
//	ErrPublish   - one reading could not be delivered (reported to the
//	               configured callback; the feed keeps running).
package emulate

import (
	"time"

	"github.com/PenyelamatPangan/Models/sensor"
)

// Reading is the wire payload for one published sample.
type Reading struct {
	// DeviceID identifies the simulated sensor node.
	DeviceID string `json:"device_id"`

	// Timestamp is the publish time in nanoseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`

	// Variant names the dataset scheme the values follow.
	Variant string `json:"variant"`

	// Values are the row's numeric columns in schema order (label excluded).
	Values []float64 `json:"values"`

	// Label is the ground-truth freshness class (1 fresh, 0 bad).
	Label int `json:"label"`
}

// newReading assembles the payload for one generated row.
func newReading(deviceID, variant string, row sensor.Row, at time.Time) Reading {
	return Reading{
		DeviceID:  deviceID,
		Timestamp: at.UnixNano(),
		Variant:   variant,
		Values:    row.Values,
		Label:     int(row.Label),
	}
}
