// Command mrcpcodec walks a file of concatenated MRCP messages and prints one
// line per complete message, the way a developer would exercise the codec by
// hand against a packet capture dump. It is a thin harness, not a server:
// transport, TLS, and connection lifecycle are out of this module's scope.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mrcpgo/mrcp/mrcp"
)

func main() {
	inputPath := flag.String("in", "", "path to a file of concatenated MRCP messages (required)")
	v1Resource := flag.String("v1-resource", "", "resource name to assume for MRCPv1 input (no channel-id line on the wire)")
	bufSize := flag.Int("bufsize", 8192, "read buffer size in bytes")
	maxMessage := flag.Int("max-message", 0, "maximum size in bytes of a message's start line, channel-id line and header section (body not counted), 0 for unbounded")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve /metrics on this address (e.g. :8080)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	if *inputPath == "" {
		log.Error().Msg("missing required -in flag")
		flag.Usage()
		os.Exit(2)
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", *inputPath).Msg("failed to open input")
		os.Exit(1)
	}
	defer f.Close()

	factory := mrcp.DefaultResourceFactory()
	parser := mrcp.NewParser(factory, mrcp.Limits{MaxMessageLength: *maxMessage})
	if *v1Resource != "" {
		parser.SetV1ResourceName(*v1Resource)
	}

	buf := make([]byte, *bufSize)
	stream := mrcp.NewTextStream(buf, 0)

	count := 0
	handler := func(_ any, msg *mrcp.Message, result mrcp.Result) bool {
		if result == mrcp.ResultComplete {
			count++
			fmt.Printf("message %d: kind=%v resource=%s\n", count, msg.Start.Kind, msg.Channel.ResourceName)
		}
		return true
	}

	for {
		n, readErr := f.Read(buf[stream.Len():])
		if n > 0 {
			stream.SetLen(stream.Len() + n)
			mrcp.StreamWalk(parser, stream, handler, nil)
		}
		if readErr != nil {
			break
		}
	}

	log.Info().Int("messages", count).Msg("done")
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})
	log.Info().Str("addr", addr).Int("cpus", runtime.NumCPU()).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server exited")
	}
}
