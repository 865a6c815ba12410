package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/infra/logger"
)

// InfluxConfig holds the InfluxDB connection settings.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes summaries to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.SummarySink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Points converts a summary into line protocol points: one per rank, one per
// day and one for the score.
func Points(s coremetrics.Summary) []*write.Point {
	pts := make([]*write.Point, 0, model.NumRanks+model.NumDays+1)
	hash := strconv.FormatUint(uint64(s.Hash), 16)
	for r, n := range s.Choices {
		pts = append(pts, write.NewPointWithMeasurement("choice_occupancy").
			AddTag("run_id", s.RunID).
			AddTag("hash", hash).
			AddTag("rank", strconv.Itoa(r)).
			AddField("people", n).
			SetTime(s.Time))
	}
	for d, total := range s.DayTotals {
		p := write.NewPointWithMeasurement("day_occupancy").
			AddTag("run_id", s.RunID).
			AddTag("hash", hash).
			AddTag("day", strconv.Itoa(d+1)).
			AddField("people", total)
		if s.Tables != nil {
			for r, n := range s.Tables.Days[d] {
				p.AddField("rank_"+strconv.Itoa(r), n)
			}
		}
		pts = append(pts, p.SetTime(s.Time))
	}
	pts = append(pts, write.NewPointWithMeasurement("score").
		AddTag("run_id", s.RunID).
		AddTag("hash", hash).
		AddTag("source", s.Source).
		AddField("index", s.Index).
		AddField("preference", s.Score.Preference).
		AddField("accounting", round3(s.Score.Accounting)).
		AddField("total", round3(s.Score.Total)).
		AddField("feasible", s.Score.Feasible).
		SetTime(s.Time))
	return pts
}

// RecordSummary writes the summary points in a single batch.
func (s *InfluxSink) RecordSummary(sum coremetrics.Summary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, Points(sum)...)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
