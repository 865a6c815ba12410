// Package metrics defines the run summary and the sinks it is published to.
// Sinks are built from configuration through the factory registry; the
// concrete Prometheus, InfluxDB and MQTT sinks register themselves from the
// infra packages. Several configured sinks are combined into a MultiSink.
package metrics
