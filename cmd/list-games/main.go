package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
)

// Maintenance tool: lists every saved game in Redis with its owner, character
// and save time.
func main() {
	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	gameKeys, err := client.Keys(ctx, "game:*").Result()
	if err != nil {
		log.Fatalf("Failed to get game keys: %v", err)
	}

	fmt.Printf("Found %d saved games:\n", len(gameKeys))
	for _, key := range gameKeys {
		data, getErr := client.Get(ctx, key).Result()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		var state gamestate.State
		if unmarshalErr := json.Unmarshal([]byte(data), &state); unmarshalErr != nil {
			fmt.Printf("  %s: CORRUPT - %v\n", key, unmarshalErr)
			continue
		}
		state.Normalize()

		name := "(no character)"
		if state.Sheet != nil && state.Sheet.Name != "" {
			name = state.Sheet.Name
		}
		fmt.Printf("  %s: owner=%s character=%s chaos=%d saved=%s\n",
			key, state.OwnerID, name, state.ChaosFactor,
			state.SavedAt.Format("2006-01-02 15:04:05"))
	}
}
