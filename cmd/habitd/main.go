package main

import (
	"log"

	"github.com/sandeepkv93/habitd/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Fatalf("habitd failed: %v", err)
	}
}
