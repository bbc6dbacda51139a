package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/gorilla/handlers"
	"github.com/mctaylorpants/alextaylor-ca/virtual"
	"github.com/mctaylorpants/alextaylor-ca/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long pages stay cached; 0 disables expiration.")
		fLogJSON           = flag.Bool("logjson", false, "Log in JSON format.")
		fDebug             = flag.Bool("debug", false, "Enable debug logging.")
	)
	flag.Parse()
	flagenv.Parse()

	setupLogging(*fLogJSON, *fDebug)

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Create the virtual file system
	fileSys, err := virtual.New(os.DirFS(*fRoot))
	if err != nil {
		log.Errorf("Cannot load site at %q: %s", *fRoot, err)
		os.Exit(1)
	}
	cfg := fileSys.Config()
	log.WithFields(log.Fields{
		"root":     *fRoot,
		"renderer": cfg.Renderer,
		"articles": cfg.Articles.Folder,
		"order":    cfg.Articles.Order,
	}).Info("Loaded site")

	// Create the cached file system
	cachedFileSystem := cachefs.New(fileSys, &cachefs.Config{GroupName: "site", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := web.NewMetrics(reg)

	// Setup handlers
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", metrics.Handler(
		web.HeaderHandler(
			web.ExpiresHandler(
				gziphandler.GzipHandler(
					web.ErrorHandler(
						http.FileServer(
							http.FS(cachedFileSystem),
						),
						cachedFileSystem,
					),
				),
				time.Duration(cfg.Expires),
				time.Duration(cfg.StaticExpires),
			),
			cfg.Headers,
		),
	))
	log.Info("Created handlers")

	// Create HTTP server
	accessLog := log.StandardLogger().Writer()
	defer accessLog.Close()
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handlers.CombinedLoggingHandler(accessLog, mux),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Errorf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.WithField("addr", srv.Addr).Info("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("HTTP server: %v", err)
	} else {
		log.Info("Goodbye.")
	}
}

// setupLogging configures the standard logrus logger.
func setupLogging(json, debug bool) {
	if json {
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "level",
				log.FieldKeyMsg:   "message",
			},
		})
	}
	log.SetOutput(os.Stdout)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
