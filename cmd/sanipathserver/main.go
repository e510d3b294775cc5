package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/rmedina/sanipath"
)

func printBanner() {
	banner := `
                  _             _   _
 ___  __ _ _ __ (_)_ __   __ _| |_| |__
/ __|/ _' | '_ \| | '_ \ / _' | __| '_ \
\__ \ (_| | | | | | |_) | (_| | |_| | | |
|___/\__,_|_| |_|_| .__/ \__,_|\__|_| |_|
                  |_|
	`
	fmt.Println(banner)
}

func main() {
	printBanner()
	port := flag.Int("port", 0, "Port to be used by the service (overrides the config file)")
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	fat := flag.Bool("fat", false, "Also guard names reserved by FAT filesystems by default")
	trim := flag.Bool("trim", false, "Truncate over-length segments by default")
	flag.Parse()

	config := &sanipath.Config{}
	if *configPath != "" {
		loaded, err := sanipath.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		config = loaded
	} else {
		config.ApplyDefaults()
	}

	if *port != 0 {
		config.Port = *port
	}
	if *fat {
		config.Policy.FATCompatible = true
	}
	if *trim {
		config.Policy.TrimToLimit = true
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	server := sanipath.NewServer(fmt.Sprintf(":%d", config.Port), config.Policy)
	log.Fatal(server.Run())
}
