package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/udsock"
	"github.com/MKhiriev/udsock/internal/config"
	"github.com/MKhiriev/udsock/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("udsockd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	mode, err := cfg.Socket.FileMode()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing socket mode")
	}

	srv := udsock.New(cfg.Socket.Path, udsock.HandlerFunc(control), &udsock.Options{
		Mode:       mode,
		Backlog:    cfg.Socket.Backlog,
		Concurrent: cfg.Socket.Concurrent,
		Logger:     &log.Logger,
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		srv.Shutdown()
	}()

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}

	log.Info().Msg("server Shutdown gracefully")
}

// control speaks the daemon's one-byte demo protocol: 0x00 asks the daemon
// to stop accepting connections, any other byte is doubled and written back.
func control(conn net.Conn, sink *udsock.OutcomeSink) {
	buf := make([]byte, 1)
	if _, err := conn.Read(buf); err != nil {
		return
	}

	if buf[0] == 0x00 {
		sink.Send(udsock.Quit)
		return
	}

	if _, err := conn.Write([]byte{buf[0] * 2}); err != nil {
		return
	}
	sink.Send(udsock.Continue)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
