// ABOUTME: Basic example showing the Items library with default configuration
// ABOUTME: Loads the item list once, prints it, then reads it again from the cache

package main

import (
	"context"
	"fmt"
	"log"

	"items-app-api/itemslib"
)

func main() {
	client, err := itemslib.NewClient(itemslib.WithSQLitePath("example-items.db"))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Println("=== First load (downloads when the cache is empty) ===")
	list, err := client.FetchItemList(ctx).Unwrap()
	if err != nil {
		log.Fatalf("Error loading items: %v", err)
	}
	for _, item := range list.Items {
		fmt.Printf("%d. %s - %s\n", item.ID, item.TitleOrEmpty(), item.DescriptionOrEmpty())
	}

	fmt.Println("\n=== Second load (served from the cache) ===")
	outcome := client.FetchItemList(ctx)
	if failure, ok := outcome.Failure(); ok {
		log.Fatalf("Error loading items: %s", failure.Message)
	}
	value, _ := outcome.Value()
	fmt.Printf("%d items\n", len(value.Items))
}
