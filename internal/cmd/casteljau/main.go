// Command casteljau serves an interactive De Casteljau construction in the
// browser, or renders a single frame to a PNG file.
//
// Usage:
//
//	casteljau [-config casteljau.yaml] [-listen addr] [-order n] [-t t] [-png out.png] [-cpuprofile]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"

	"honnef.co/go/casteljau"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "casteljau.yaml", "configuration `file`; missing files are ignored")
		listen     = flag.String("listen", "", "HTTP listen `address` (overrides config)")
		order      = flag.String("order", "", "initial curve order (overrides config)")
		t          = flag.Float64("t", -1, "initial parameter in [0, 1] (overrides config)")
		pngOut     = flag.String("png", "", "render the initial frame to `file` and exit")
		cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *order != "" {
		n, ok := casteljau.ParseOrder(*order)
		if !ok {
			return fmt.Errorf("invalid order %q", *order)
		}
		cfg.Order = n
	}
	if *t >= 0 {
		cfg.T, _ = casteljau.ClampT(*t)
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	casteljau.SetLogger(log.With(slog.String("component", "scene")))

	style, err := cfg.Style.RenderStyle()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	srv := NewServer(cfg, style, log)
	if *pngOut != "" {
		return writePNG(srv, *pngOut)
	}
	return serve(srv, cfg.Listen, log)
}

func writePNG(srv *Server, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return srv.WritePNG(f)
}

func serve(srv *Server, addr string, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", "http://"+addr))
		errs <- hs.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}
