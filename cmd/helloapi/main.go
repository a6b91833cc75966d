// helloapi is a minimal REST service built directly on net/http: one
// endpoint, hand-rolled dispatch and query parsing, and an HTTP Basic
// credential gate. No framework.
//
// Run:
//
//	go run ./cmd/helloapi
//	curl -u admin:admin "http://localhost:8080/api/hello?name=Marcin"
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/schanne-job/pure-go-rest-api/internal/server"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		username = flag.String("user", "admin", "Basic-auth username (empty disables the gate)")
		password = flag.String("pass", "admin", "Basic-auth password (empty disables the gate)")
		realm    = flag.String("realm", "hello", "Basic-auth realm")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "helloapi",
	})

	srv := server.New(server.Config{
		Addr:     *addr,
		Username: *username,
		Password: *password,
		Realm:    *realm,
		Logger:   logger,
	})

	logger.Info("try it",
		"curl", "curl -u "+*username+":"+*password+" 'http://localhost"+*addr+"/api/hello?name=Marcin'")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
