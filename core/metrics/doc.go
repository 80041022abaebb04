// Package metrics exposes Prometheus counters for the image proxy.
//
// A private registry keeps the exported series limited to what the service
// records: responses per retrieval route and public probe outcomes.
package metrics
