// Package metrics holds the prometheus counters the codec increments as it
// runs, mirroring the /metrics wiring of cmd/proxysip/main.go in the teacher
// repo (promhttp.Handler exposed over HTTP by cmd/mrcpcodec).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// ParserRuns counts every Parser.Run outcome seen by StreamWalk, by result
// (complete, truncated, invalid), letting an operator see truncation/invalid
// rates per connection class without reading logs. Parser.Run calls made
// outside StreamWalk are not counted.
var ParserRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mrcp_parser_runs_total",
		Help: "Total Parser.Run invocations made by StreamWalk, by outcome.",
	},
	[]string{"result"},
)

// GeneratorRuns is ParserRuns' mirror for the Generator.
var GeneratorRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mrcp_generator_runs_total",
		Help: "Total Generator.Run invocations, by outcome.",
	},
	[]string{"result"},
)

// StreamWalksAborted counts walks that stopped early because the handler
// returned false, as opposed to running to Truncated/end-of-stream.
var StreamWalksAborted = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "mrcp_stream_walks_aborted_total",
		Help: "Total stream walks ended by the handler returning false.",
	},
)

func init() {
	prometheus.MustRegister(ParserRuns, GeneratorRuns, StreamWalksAborted)
}
