// ABOUTME: Advanced example showing custom configuration and advanced features
// ABOUTME: Demonstrates dependency injection, metrics, view model subscriptions and cache reset

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"items-app-api/core/items"
	"items-app-api/infrastructure/cache/memory"
	stdhttp "items-app-api/infrastructure/http/standard"
	logruslogger "items-app-api/infrastructure/logger/logrus"
	"items-app-api/itemslib"
	"items-app-api/pkg/config"
)

func main() {
	// Example 1: Create client with custom configuration
	fmt.Println("=== Custom Configuration ===")

	logger, err := logruslogger.NewLoggerWithWriter(config.LogConfig{
		Level:  "info",
		Format: "text",
	}, os.Stderr)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	store := memory.NewMemoryStore()
	metrics := items.NewCounterMetrics()

	client, err := itemslib.NewClient(
		// Caller-owned store, client.Close leaves it alone
		itemslib.WithStore(store),

		// Log outgoing requests with a shorter timeout
		itemslib.WithHTTPClient(stdhttp.NewLoggingHTTPClient(10*time.Second, logger)),
		itemslib.WithLogger(logger),
		itemslib.WithMetrics(metrics),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Context with timeout
	fmt.Println("\n=== Context with Timeout ===")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := client.FetchItemList(ctx).Unwrap()
	if err != nil {
		log.Printf("Error (%s): %v\n", itemslib.Classify(err), err)
	} else {
		fmt.Printf("Loaded %d items\n", len(list.Items))
	}

	// Example 3: Watching view model states
	fmt.Println("\n=== View Model ===")
	vm := client.NewViewModel()
	defer vm.Close()

	states, unsubscribe := vm.Subscribe()
	go func() {
		for state := range states {
			fmt.Printf("state: %s (%d items)\n", state.Status, len(state.Items))
		}
	}()
	<-vm.RequestData(context.Background())
	unsubscribe()

	// Example 4: Reset and reload
	fmt.Println("\n=== Reset ===")
	if err := client.Reset(context.Background()); err != nil {
		log.Printf("Reset failed: %v\n", err)
	}
	if _, err := client.FetchItemList(context.Background()).Unwrap(); err != nil {
		log.Printf("Reload failed: %v\n", err)
	}

	stats := metrics.Snapshot()
	fmt.Printf("hits=%d misses=%d populations=%d failures=%d\n",
		stats.Hits, stats.Misses, stats.Populations, stats.Failures)
}
