package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andareed/marketscope/dataset"
	"github.com/andareed/marketscope/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	logFile     = flag.String("debug", "", "Write Debug Logs to file")
	configFile  = flag.String("config", "", "TOML config file")
	sessionFile = flag.String("session", "", "Session snapshot to restore")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("marketscope: Started")

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	inputPath := cfg.Dataset
	if args := flag.Args(); len(args) >= 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		fmt.Println("Usage: marketscope [--debug debug.log] [--config marketscope.toml] <companies.csv>")
		os.Exit(1)
	}

	m, err := loadModel(inputPath, cfg)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	if *sessionFile != "" {
		if err := LoadSession(m, *sessionFile); err != nil {
			log.Fatalf("failed to restore session %q: %v", *sessionFile, err)
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func loadModel(path string, cfg Config) (*model, error) {
	base, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}

	// the map screen draws in web Mercator meters
	if base.HasColumn("lng") && base.HasColumn("lat") {
		base, err = dataset.WithMercator(base, "lng", "lat")
		if err != nil {
			return nil, err
		}
	}

	m, err := newModel(base, cfg)
	if err != nil {
		return nil, err
	}
	m.InitialPath = path
	return m, nil
}
