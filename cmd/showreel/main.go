package main

import (
	"log"

	"github.com/vmedia/showreel/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ showreel failed to start: %v", err)
	}
}
