package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"college-portal-client/config"
	"college-portal-client/internal/feed"
	"college-portal-client/internal/portal"
	"college-portal-client/internal/relay"
	"college-portal-client/internal/session"
	"college-portal-client/internal/store"
	"college-portal-client/internal/submit"
)

// app bundles the wired core components.
type app struct {
	cfg      *config.Config
	session  *session.Store
	feed     *feed.Aggregator
	pipeline *submit.Pipeline
	client   *portal.Client
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: portalctl <command> [flags]

Commands:
  login          Sign in with a student id or phone number
  signup         Register a new student account
  demo-login     Sign in with the demo account
  whoami         Show the current session identity
  logout         Sign out
  feed           Show the aggregated request feed
  stats          Show dashboard stats
  submit         Submit a service request (see submit -service)
  serve          Run the local dashboard HTTP facade
  health         Probe the portal API
`)
	os.Exit(2)
}

func main() {
	log.SetFlags(log.LstdFlags)
	if len(os.Args) < 2 {
		usage()
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	client, err := portal.NewClient(&cfg.API)
	if err != nil {
		log.Fatalf("failed to create portal client: %v", err)
	}

	sess := session.NewStore(client, cfg.Session.File)

	backend, err := store.Open(&cfg.Storage, client)
	if err != nil {
		log.Fatalf("failed to open storage backend: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	agg := feed.New(backend, sess, time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second)

	var rel *relay.Relay
	if cfg.Relay.Enabled {
		rel = relay.New(&cfg.Relay)
		rel.Start(ctx)
	}

	a := &app{
		cfg:      cfg,
		session:  sess,
		feed:     agg,
		pipeline: submit.New(backend, sess, agg, rel),
		client:   client,
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%v", err)
	}
}
