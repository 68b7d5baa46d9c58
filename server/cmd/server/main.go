package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/splitsecond/splitsecond/server/core"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	port := flag.Int("port", envInt("HIGHSCORE_PORT", 8080), "HTTP listen port")
	dbPath := flag.String("db", envString("HIGHSCORE_DB", "./data/database.db"), "sqlite database file")
	assetsDir := flag.String("assets", envString("HIGHSCORE_ASSETS", ""), "Assets directory with levels/*.tmx (empty = accept any level)")
	flag.Parse()

	if *dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
			log.Fatalf("[highscore] create database directory: %v", err)
		}
	}
	store, err := core.OpenStore(*dbPath)
	if err != nil {
		log.Fatalf("[highscore] %v", err)
	}

	var levels []string
	if *assetsDir != "" {
		levels, err = core.LoadLevelIDs(*assetsDir)
		if err != nil {
			log.Fatalf("[highscore] %v", err)
		}
	}

	server := core.NewServer(store, levels)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		<-sigChan
		log.Println("[highscore] shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			log.Printf("[highscore] close store: %v", err)
		}
		close(done)
	}()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[highscore] starting on %s (db=%s)", addr, *dbPath)
	if err := server.Start(addr); err != nil {
		log.Fatalf("[highscore] fatal: %v", err)
	}
	<-done
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
