package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/roomvibe/staging-agent/pkg/stager"
	"github.com/roomvibe/staging-agent/pkg/stager/setup"
)

const (
	sampleImageFile = "test_room.jpg"
	sampleStyle     = "Industrialist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setupResult, err := setup.Setup(ctx)
	if err != nil {
		slog.Error("failed to setup", "error", err)
		return
	}

	stagerConfig, err := stager.NewStagerConfigFromSetupResult(setupResult)
	if err != nil {
		slog.Error("failed to create stager config", "error", err)
		return
	}

	stager, err := stager.NewStager(stagerConfig)
	if err != nil {
		slog.Error("failed to create stager", "error", err)
		return
	}

	if err := runSample(ctx, stager); err != nil {
		slog.Error("sample analysis failed", "error", err)
		return
	}

	if stager.ApiIpPort() != "" {
		stager.StartServer(ctx)
		<-ctx.Done()
	}
}

func runSample(ctx context.Context, stager *stager.Stager) error {
	fmt.Printf("Analyzing room with '%s' vibe...\n\n", sampleStyle)

	result, err := stager.AnalyzeRoom(ctx, sampleImageFile, sampleStyle)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("'%s' not found, add an empty room photo to the project root: %w", sampleImageFile, err)
		}
		return err
	}

	fmt.Println("=== GENERATED STAGING PROMPT ===")
	fmt.Println(result)
	fmt.Println("================================")
	fmt.Println()

	fmt.Print("Do you want to generate this image? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	choice, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	if strings.EqualFold(strings.TrimSpace(choice), "yes") {
		fmt.Println("Simulating Image Gen...")
	} else {
		fmt.Println("Aborted to save budget.")
	}

	return nil
}
