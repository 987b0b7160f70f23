// SPDX-License-Identifier: MIT
// Package: Models/emulate
//
// feed.go — the MQTT device feed.
//
// Failure policy (matches the hardware node being simulated):
//   • A failed broker connection is fatal (NewFeed returns ErrConnect).
//   • A failed publish is transient: reported via Config.OnPublishError
//     and the feed continues; auto-reconnect is left to the client.
//   • Run stops cleanly when its context is canceled.

package emulate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/PenyelamatPangan/Models/sensor"
	"github.com/PenyelamatPangan/Models/synth"
)

// Sentinel errors for the feed lifecycle.
var (
	// ErrBadConfig indicates an incomplete or out-of-range configuration.
	ErrBadConfig = errors.New("emulate: invalid feed config")

	// ErrConnect indicates the broker connection could not be established.
	ErrConnect = errors.New("emulate: broker connect failed")

	// ErrPublish indicates one reading could not be delivered in time.
	ErrPublish = errors.New("emulate: publish failed")
)

// Defaults applied by Config.withDefaults.
const (
	defaultPeriod         = time.Second
	defaultFreshRatio     = 0.5
	defaultConnectTimeout = 5 * time.Second
	defaultPublishTimeout = 2 * time.Second
	defaultQoS            = 1
	disconnectQuiesceMs   = 250
	deviceIDPrefix        = "GASNODE"
)

// Config parameterizes one device feed.
type Config struct {
	// BrokerURL is the MQTT broker address, e.g. "tcp://localhost:1883".
	BrokerURL string

	// Topic is the publish topic for readings.
	Topic string

	// ClientID overrides the generated MQTT client identifier (optional).
	ClientID string

	// Period is the interval between readings (default 1s).
	Period time.Duration

	// FreshRatio is the per-tick probability of a fresh reading, in [0,1]
	// (default 0.5).
	FreshRatio float64

	// ConnectTimeout and PublishTimeout bound the broker handshakes.
	ConnectTimeout time.Duration
	PublishTimeout time.Duration

	// OnPublishError, when non-nil, observes transient publish failures.
	OnPublishError func(error)
}

// withDefaults resolves zero-valued knobs to their documented defaults.
func (c Config) withDefaults() Config {
	if c.Period == 0 {
		c.Period = defaultPeriod
	}
	if c.FreshRatio == 0 {
		c.FreshRatio = defaultFreshRatio
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.PublishTimeout == 0 {
		c.PublishTimeout = defaultPublishTimeout
	}
	if c.ClientID == "" {
		c.ClientID = fmt.Sprintf("%s-%s", deviceIDPrefix, uuid.NewString())
	}

	return c
}

// validate rejects configurations the feed cannot run with.
func (c Config) validate() error {
	if c.BrokerURL == "" {
		return fmt.Errorf("broker URL is empty: %w", ErrBadConfig)
	}
	if c.Topic == "" {
		return fmt.Errorf("topic is empty: %w", ErrBadConfig)
	}
	if c.Period < 0 {
		return fmt.Errorf("period %v negative: %w", c.Period, ErrBadConfig)
	}
	if c.FreshRatio < 0 || c.FreshRatio > 1 {
		return fmt.Errorf("fresh ratio %g not in [0,1]: %w", c.FreshRatio, ErrBadConfig)
	}

	return nil
}

// Feed publishes generated readings for one variant to an MQTT topic.
type Feed struct {
	cfg     Config
	variant string
	client  mqtt.Client
	gen     *synth.Generator
	coin    *rand.Rand // class selector, independent of the generator stream
}

// NewFeed validates the configuration, builds the row generator, and
// connects to the broker. Generator options (WithSeed and friends) apply
// to the sampling stream. Errors: ErrBadConfig, ErrInvalidVariant
// (wrapped from synth), ErrConnect.
func NewFeed(cfg Config, v synth.Variant, opts ...synth.Option) (*Feed, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("NewFeed: %w", err)
	}

	gen, err := synth.NewGenerator(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFeed: %w", err)
	}

	copts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetCleanSession(true).
		SetConnectTimeout(cfg.ConnectTimeout)

	client := mqtt.NewClient(copts)
	token := client.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, fmt.Errorf("NewFeed: %s: timeout: %w", cfg.BrokerURL, ErrConnect)
	}
	if err = token.Error(); err != nil {
		return nil, fmt.Errorf("NewFeed: %s: %v: %w", cfg.BrokerURL, err, ErrConnect)
	}

	return &Feed{
		cfg:     cfg,
		variant: v.Schema.Name,
		client:  client,
		gen:     gen,
		coin:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// DeviceID reports the identifier stamped on every published reading.
func (f *Feed) DeviceID() string { return f.cfg.ClientID }

// Run publishes one reading per period until ctx is canceled.
// Transient publish failures go to Config.OnPublishError; Run itself
// returns only when the context ends.
func (f *Feed) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := f.publishOne(); err != nil && f.cfg.OnPublishError != nil {
				f.cfg.OnPublishError(err)
			}
		}
	}
}

// publishOne draws a class, generates a row, and publishes its payload.
func (f *Feed) publishOne() error {
	var row sensor.Row
	if f.coin.Float64() < f.cfg.FreshRatio {
		row = f.gen.Fresh()
	} else {
		row = f.gen.Bad()
	}

	payload, err := json.Marshal(newReading(f.cfg.ClientID, f.variant, row, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal reading: %v: %w", err, ErrPublish)
	}

	token := f.client.Publish(f.cfg.Topic, defaultQoS, false, payload)
	if !token.WaitTimeout(f.cfg.PublishTimeout) {
		return fmt.Errorf("publish to %s: timeout: %w", f.cfg.Topic, ErrPublish)
	}
	if err = token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %v: %w", f.cfg.Topic, err, ErrPublish)
	}

	return nil
}

// Close disconnects from the broker, allowing in-flight messages a short
// quiesce window.
func (f *Feed) Close() {
	f.client.Disconnect(disconnectQuiesceMs)
}
