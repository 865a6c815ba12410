// Package infra contains technical adapters such as chart renderers, summary
// exporters and the MQTT client. These packages should depend only on the
// interfaces defined in the core packages.
package infra
