package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/callebjorkell/big-button/internal/button"
	"github.com/callebjorkell/big-button/internal/display"
	"github.com/callebjorkell/big-button/internal/edge"
	"github.com/callebjorkell/big-button/internal/feedback"
	"github.com/callebjorkell/big-button/internal/publish"
	"github.com/callebjorkell/big-button/internal/timer"
)

func startServer(conf *Config) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	var led *feedback.LedController
	if conf.Led.Enabled {
		led = feedback.NewLedController()
	}
	if conf.Lcd.Enabled {
		display.Init()
	}

	var pub publish.Publisher
	if conf.Mqtt.Broker != "" {
		p, err := publish.NewMQTTPublisher(conf.Mqtt.Broker, conf.Mqtt.Topic)
		if err != nil {
			log.Fatal("Unable to connect to MQTT: ", err)
		}
		pub = p
	}

	// The engine callback must not block, so gestures are handed to the
	// consumers through a buffered channel.
	events := make(chan button.Event, 16)
	engine, err := button.New(edge.NewSource(conf.Button.Pin), timer.New(), func(ev button.Event) {
		select {
		case events <- ev:
		default:
			log.Warn("Consumers are backed up, dropping event: ", ev)
		}
	}, conf.Thresholds())
	if err != nil {
		log.Fatal(err)
	}
	if err := engine.Start(); err != nil {
		log.Fatal(err)
	}

	go func() {
		for ev := range events {
			log.Infof("Gesture: %v", ev)
			if led != nil {
				led.Confirm(ev)
			}
			if conf.Lcd.Enabled {
				display.Show(ev)
			}
			if pub != nil {
				if err := pub.Publish(ev); err != nil {
					log.Warn("Unable to publish gesture: ", err)
				}
			}
		}
	}()

	<-signalChan

	if err := engine.Close(); err != nil {
		log.Warn("Unable to stop engine: ", err)
	}
	close(events)
	if pub != nil {
		pub.Close()
	}
	if conf.Lcd.Enabled {
		display.Clear()
	}
	if led != nil {
		led.Close()
	}

	log.Info("Done...")
}
