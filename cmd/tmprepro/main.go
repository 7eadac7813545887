package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gatesim/gatebind/internal/runtime"
	"github.com/robbyt/go-supervisor/supervisor"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner, err := runtime.NewRunner("examples/config/static-actors.toml", runtime.WithContext(ctx))
	if err != nil {
		panic(err)
	}
	super, err := supervisor.New(
		supervisor.WithRunnables(runner),
		supervisor.WithContext(ctx),
	)
	if err != nil {
		panic(err)
	}
	done := make(chan error, 1)
	go func() { done <- super.Run() }()

	deadline := time.Now().Add(10 * time.Second)
	for !runner.IsRunning() {
		if time.Now().After(deadline) {
			fmt.Println("NEVER RUNNING")
			os.Exit(1)
		}
		time.Sleep(20 * time.Millisecond)
	}
	fmt.Println("RUNNING OK")
	cancel()
	select {
	case err := <-done:
		fmt.Println("super.Run returned:", err)
	case <-time.After(10 * time.Second):
		fmt.Println("no shutdown")
	}
}
