package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"pagescroll/internal/config"
	"pagescroll/internal/domain"
	"pagescroll/internal/eventbus"
	"pagescroll/internal/ui"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "", "Path to the config file (default: user config dir)")
	start := flag.Int("start", 0, "Page to start on")
	buffer := flag.Int("buffer", 0, "Pages kept on each side of the current page")
	rtl := flag.Bool("rtl", false, "Lay pages out right to left")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("pagescroll.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Log errors reported by the UI
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	configSvc := config.NewConfigServiceWithBus(bus, *configPath)
	cfg := loadOrCreateConfig(configSvc)

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.UI.StartPage = *start
		case "buffer":
			cfg.Pager.BufferSize = *buffer
		case "rtl":
			cfg.UI.RightToLeft = *rtl
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Track the session for the exit summary
	var mu sync.Mutex
	session := domain.Session{StartPage: cfg.UI.StartPage, LastPage: cfg.UI.StartPage}
	for _, t := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventNavigationRequested,
		eventbus.EventContentShifted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			mu.Lock()
			defer mu.Unlock()
			session.Apply(e)
		})
	}

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(bus, cfg, log.New(log.Writer(), "pager: ", log.LstdFlags))
	if err != nil {
		log.Printf("Error creating UI model: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if os.Getenv("PAGESCROLL_E2E_TEST") == "1" {
		uiModel.SetReadyMarker(true)
	}

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	uiModel.Close()
	bus.Close()

	mu.Lock()
	// handlers run concurrently, so the model has the final word on the page
	session.LastPage = uiModel.Selected()
	fmt.Println(session.Summary())
	mu.Unlock()
}

// loadOrCreateConfig loads the config file or creates one with the defaults
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	path := configSvc.Path()

	// Check if config exists
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		// Broken config: run with defaults and leave the file alone
		log.Printf("Failed to load config: %v", err)
		return config.DefaultConfig()
	}

	// No config yet - create one
	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
