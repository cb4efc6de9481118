package main

import (
	"flag"
	"log"

	"github.com/danmuck/bridgectl/internal/config"
)

const defaultConfigPath = "cmd/bridgectl/config.toml"

func main() {
	kind := flag.String("kind", "bridge", "config kind: bridge")
	output := flag.String("output", defaultConfigPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", defaultConfigPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	stdio := flag.Bool("stdio", false, "validate for a bridgectl -stdio run (no serial device)")
	flag.Parse()

	if *validate {
		if _, err := config.LoadBridgeConfig(*input, *stdio); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %s config at %s", *kind, *input)
		return
	}

	if err := config.WriteTemplate(*output, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, *output)
}
