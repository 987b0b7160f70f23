// Command freshemu simulates a live gas-sensor node: it generates labeled
// readings from one dataset variant and publishes them to an MQTT broker
// until interrupted.
//
// Configuration comes from the environment (a .env file is honored):
//
//	FRESHEMU_BROKER  broker URL            (default tcp://localhost:1883)
//	FRESHEMU_TOPIC   publish topic         (default food/freshness/readings)
//	FRESHEMU_VARIANT RawADC | PPMShelfLife | TriGas (default RawADC)
//	FRESHEMU_PERIOD  interval between readings, Go duration (default 1s)
//	FRESHEMU_RATIO   fresh probability per reading in [0,1] (default 0.5)
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/PenyelamatPangan/Models/emulate"
	"github.com/PenyelamatPangan/Models/synth"
)

const (
	defaultBroker  = "tcp://localhost:1883"
	defaultTopic   = "food/freshness/readings"
	defaultVariant = "RawADC"
)

// variants resolves the FRESHEMU_VARIANT name to its preset.
var variants = map[string]func() synth.Variant{
	"RawADC":       synth.RawADC,
	"PPMShelfLife": synth.PPMShelfLife,
	"TriGas":       synth.TriGas,
}

func main() {
	log.SetFlags(log.LstdFlags)

	// Optional .env next to the binary; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Print("Loaded configuration from .env")
	}

	name := envOr("FRESHEMU_VARIANT", defaultVariant)
	preset, ok := variants[name]
	if !ok {
		log.Fatalf("unknown variant %q (want RawADC, PPMShelfLife, or TriGas)", name)
	}

	cfg := emulate.Config{
		BrokerURL:  envOr("FRESHEMU_BROKER", defaultBroker),
		Topic:      envOr("FRESHEMU_TOPIC", defaultTopic),
		Period:     envDuration("FRESHEMU_PERIOD"),
		FreshRatio: envFloat("FRESHEMU_RATIO"),
		OnPublishError: func(err error) {
			log.Printf("publish: %v", err)
		},
	}

	feed, err := emulate.NewFeed(cfg, preset())
	if err != nil {
		log.Fatalf("start feed: %v", err)
	}
	defer feed.Close()

	log.Printf("Device %s publishing %s readings to %s (topic %s)",
		feed.DeviceID(), name, cfg.BrokerURL, cfg.Topic)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = feed.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("feed stopped: %v", err)
	}

	log.Print("Interrupted; feed stopped.")
}

// envOr reads an environment variable with a fallback default.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// envDuration parses an optional duration variable; zero means "use the
// feed's default". A malformed value is fatal rather than silently ignored.
func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}

	return d
}

// envFloat parses an optional float variable; zero means "use the default".
func envFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}

	return f
}
