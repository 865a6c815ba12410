package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	coremetrics "github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/infra/logger"
)

// ErrTimeout is returned when the broker does not complete an operation in
// time.
var ErrTimeout = errors.New("mqtt timeout")

// SummaryPublisher publishes run summaries as JSON on a single topic.
type SummaryPublisher struct {
	cli        pahoClient
	topic      string
	qos        byte
	retain     bool
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// NewSummaryPublisher connects to the broker described by cfg.
func NewSummaryPublisher(cfg Config) (*SummaryPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	p := &SummaryPublisher{
		topic:      cfg.Topic,
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		timeout:    cfg.timeout(),
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        logger.New("mqtt-sink"),
	}
	c := newMQTTClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(p.timeout) {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, err)
	}
	p.log.Debugf("connected to %s as %s", cfg.Broker, cfg.ClientID)
	p.cli = c
	return p, nil
}

// NewSummaryPublisherWithFallback behaves like NewSummaryPublisher but logs
// an unreachable broker and returns a NopSink. Configuration errors are still
// returned.
func NewSummaryPublisherWithFallback(cfg Config) (coremetrics.SummarySink, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewClientOptions(cfg); err != nil {
		return nil, err
	}
	p, err := NewSummaryPublisher(cfg)
	if err != nil {
		logger.New("mqtt-sink").Errorf("summary will not be published: %v", err)
		return coremetrics.NopSink{}, nil
	}
	return p, nil
}

// RecordSummary publishes the summary, retrying with exponential backoff.
func (p *SummaryPublisher) RecordSummary(s coremetrics.Summary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(p.backoff * time.Duration(1<<(attempt-1)))
		}
		token := p.cli.Publish(p.topic, p.qos, p.retain, payload)
		if !token.WaitTimeout(p.timeout) {
			publishErr = fmt.Errorf("publish %s: %w", p.topic, ErrTimeout)
		} else {
			publishErr = token.Error()
		}
		if publishErr == nil {
			p.log.Infof("published summary %s to %s", s.RunID, p.topic)
			return nil
		}
		p.log.Errorf("publish attempt %d failed: %v", attempt+1, publishErr)
	}
	return publishErr
}

// Close disconnects from the broker.
func (p *SummaryPublisher) Close() error {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
	return nil
}
