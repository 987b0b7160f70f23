// Package emulate contains unit tests for the feed configuration and the
// reading payload; broker interaction itself is exercised only through
// the validation path (no live broker in unit tests).
package emulate

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PenyelamatPangan/Models/sensor"
	"github.com/PenyelamatPangan/Models/synth"
)

// TestConfigDefaults verifies zero-value resolution.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{BrokerURL: "tcp://localhost:1883", Topic: "t"}.withDefaults()
	require.Equal(t, defaultPeriod, cfg.Period)
	require.Equal(t, defaultFreshRatio, cfg.FreshRatio)
	require.Equal(t, defaultConnectTimeout, cfg.ConnectTimeout)
	require.Equal(t, defaultPublishTimeout, cfg.PublishTimeout)
	require.True(t, strings.HasPrefix(cfg.ClientID, deviceIDPrefix+"-"))
}

// TestConfigDefaultsKeepExplicit verifies explicit knobs survive resolution.
func TestConfigDefaultsKeepExplicit(t *testing.T) {
	t.Parallel()

	cfg := Config{
		BrokerURL:  "tcp://broker:1883",
		Topic:      "t",
		ClientID:   "GASNODE-test",
		Period:     250 * time.Millisecond,
		FreshRatio: 0.9,
	}.withDefaults()
	require.Equal(t, "GASNODE-test", cfg.ClientID)
	require.Equal(t, 250*time.Millisecond, cfg.Period)
	require.Equal(t, 0.9, cfg.FreshRatio)
}

// TestConfigValidate exercises every rejection branch.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"empty broker", Config{Topic: "t"}},
		{"empty topic", Config{BrokerURL: "tcp://x:1883"}},
		{"negative period", Config{BrokerURL: "tcp://x:1883", Topic: "t", Period: -time.Second}},
		{"ratio above one", Config{BrokerURL: "tcp://x:1883", Topic: "t", FreshRatio: 1.5}},
		{"ratio below zero", Config{BrokerURL: "tcp://x:1883", Topic: "t", FreshRatio: -0.1}},
	}

	for _, tc := range cases {
		err := tc.cfg.validate()
		require.ErrorIs(t, err, ErrBadConfig, tc.name)
	}
}

// TestNewFeedRejectsBadConfig: validation fails before any broker dial.
func TestNewFeedRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := NewFeed(Config{Topic: "t"}, synth.RawADC())
	require.ErrorIs(t, err, ErrBadConfig)
}

// TestNewFeedRejectsBadVariant: a broken table fails before any dial.
func TestNewFeedRejectsBadVariant(t *testing.T) {
	t.Parallel()

	v := synth.RawADC()
	v.Bad = nil
	_, err := NewFeed(Config{BrokerURL: "tcp://localhost:1883", Topic: "t"}, v)
	require.ErrorIs(t, err, synth.ErrInvalidVariant)
}

// TestReadingPayload checks the wire shape of one published reading.
func TestReadingPayload(t *testing.T) {
	t.Parallel()

	at := time.Unix(1700000000, 42)
	row := sensor.Row{Values: []float64{120, 340, 210}, Label: sensor.LabelFresh}
	payload, err := json.Marshal(newReading("GASNODE-1", "RawADC", row, at))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, "GASNODE-1", decoded["device_id"])
	require.Equal(t, "RawADC", decoded["variant"])
	require.Equal(t, float64(at.UnixNano()), decoded["timestamp"])
	require.Equal(t, float64(1), decoded["label"])
	require.Len(t, decoded["values"], 3)
}
