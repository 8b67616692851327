// Package main runs the nanostock example flow and optionally serves its API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	httpstock "github.com/micromdm/nanostock/http"
	"github.com/micromdm/nanostock/log/logkeys"
	"github.com/micromdm/nanostock/report"
	"github.com/micromdm/nanostock/seed"
	"github.com/micromdm/nanostock/shop"
	shophttp "github.com/micromdm/nanostock/shop/http"
	"github.com/micromdm/nanostock/subsystem/vendors/storage/inmem"
	"github.com/micromdm/nanostock/utils/uuid"

	"github.com/alexedwards/flow"
	"github.com/joho/godotenv"
	"github.com/micromdm/nanolib/envflag"
	nanohttp "github.com/micromdm/nanolib/http"
	"github.com/micromdm/nanolib/http/trace"
	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/stdlogfmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// overridden by -ldflags -X
var version = "unknown"

const (
	apiUsername = "nanostock"
	apiRealm    = "nanostock"
)

func main() {
	var (
		flDebug   = flag.Bool("debug", false, "log debug messages")
		flListen  = flag.String("listen", "", "HTTP listen address (print the sales report and exit if empty)")
		flVersion = flag.Bool("version", false, "print version and exit")
		flSeed    = flag.String("seed", "", "path to YAML seed data (embedded sample if empty)")
		flAPIKey  = flag.String("api", "", "API key for API endpoints")
		flDumpReq = flag.Bool("dump-requests", false, "dump HTTP requests")
	)
	// .env values become environment defaults for envflag
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}
	envflag.Parse("NANOSTOCK_", []string{"version"})

	if *flVersion {
		fmt.Println(version)
		return
	}

	logger := stdlogfmt.New(stdlogfmt.WithDebugFlag(*flDebug))

	reg := prometheus.NewRegistry()
	s := shop.New(
		inmem.New(),
		shop.WithLogger(logger.With("service", "shop")),
		shop.WithMetrics(shop.NewMetrics(reg)),
	)

	data, err := loadSeed(*flSeed)
	if err != nil {
		logger.Info(logkeys.Message, "loading seed", logkeys.Error, err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err = data.Apply(ctx, s); err != nil {
		logger.Info(logkeys.Message, "applying seed", logkeys.Error, err)
		os.Exit(1)
	}

	lines, err := s.SalesReport(ctx)
	if err != nil {
		logger.Info(logkeys.Message, "sales report", logkeys.Error, err)
		os.Exit(1)
	}
	if err = report.Write(os.Stdout, lines); err != nil {
		logger.Info(logkeys.Message, "writing sales report", logkeys.Error, err)
		os.Exit(1)
	}

	if *flListen == "" {
		return
	}

	mux := flow.New()

	mux.Handle("/version", nanohttp.NewJSONVersionHandler(version))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "GET")

	if *flAPIKey != "" {
		mux.Group(func(mux *flow.Mux) {
			mux.Use(func(h http.Handler) http.Handler {
				return nanohttp.NewSimpleBasicAuthHandler(h, apiUsername, *flAPIKey, apiRealm)
			})

			shophttp.HandleAPIv1("/v1", mux, logger, s)
		})
	} else {
		logger.Info(logkeys.Message, "no API key provided, API endpoints disabled")
	}

	var h http.Handler = mux
	if *flDumpReq {
		h = httpstock.DumpHandler(h, os.Stdout)
	}

	serve(*flListen, h, logger)
}

func loadSeed(path string) (*seed.Seed, error) {
	if path == "" {
		return seed.Sample()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}

func serve(addr string, h http.Handler, logger log.Logger) {
	var ider uuid.IDer = uuid.ShortID{}
	newTraceID := func(_ *http.Request) string { return ider.ID() }

	logger.Info(logkeys.Message, "starting server", "listen", addr)
	err := http.ListenAndServe(addr, trace.NewTraceLoggingHandler(h, logger.With("handler", "log"), newTraceID))
	logs := []interface{}{logkeys.Message, "server shutdown"}
	if err != nil {
		logs = append(logs, logkeys.Error, err)
	}
	logger.Info(logs...)
}
