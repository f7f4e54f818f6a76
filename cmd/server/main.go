// Command server runs the loot-list HTTP API.
package main

import (
	"context"
	"log"

	"github.com/ekshore/loot-list/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
