package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"freeslot-service/cmd/freeslots/cmd"
)

var appVersion = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("stopping freeslots: %v\n", sig)
		cancel()
	}()

	rootCmd, _ := cmd.NewCmd(appVersion)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
