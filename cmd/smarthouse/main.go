// Smart house reporter.
//
// This is the command-line entry point for the smart house core. It loads
// configuration, builds a house from a layout file (or the built-in demo
// house), runs every configured report provider and prints the results.
//
// Configuration is read from configs/config.yaml, or from the path in the
// SMARTHOUSE_CONFIG environment variable.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/config"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/logging"
	"github.com/nerrad567/smart-house-core/internal/layout"
	"github.com/nerrad567/smart-house-core/internal/report"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Reports are written to stdout; logs go wherever the logging config says.
//
// Parameters:
//   - stdout: Destination for report text
//
// Returns:
//   - error: nil on success, or error describing failure
func run(stdout io.Writer) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Debug("starting smart house reporter",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Debug("configuration loaded", "path", configPath)

	policy, err := report.ParseMissingPolicy(cfg.Report.MissingDevices)
	if err != nil {
		return fmt.Errorf("configuring reports: %w", err)
	}

	l, err := loadLayout(cfg)
	if err != nil {
		return err
	}

	registry := device.NewRegistry()
	registry.SetLogger(log.With("component", "registry"))

	plan, err := l.Build(registry)
	if err != nil {
		return fmt.Errorf("building house: %w", err)
	}
	plan.SetLogger(log.With("component", "report"))
	plan.SetMissingPolicy(policy)

	log.Info("house built",
		"house", plan.House.Name(),
		"rooms", len(plan.House.Rooms()),
		"devices", registry.Count(),
		"reports", len(plan.Reports),
	)

	for i, text := range plan.Run() {
		if _, err := fmt.Fprintf(stdout, "Report #%d: %s\n", i+1, text); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// resolveConfigPath returns the configuration file path.
// An explicit SMARTHOUSE_CONFIG path must exist; a missing default file
// means "use built-in defaults" and yields "".
func resolveConfigPath() (string, error) {
	path := getConfigPath()
	if path != defaultConfigPath {
		return path, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking config file: %w", err)
	}
	return path, nil
}

// getConfigPath returns the configuration file path.
// Uses SMARTHOUSE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SMARTHOUSE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// loadLayout reads the configured layout, or returns the demo layout when
// none is configured.
func loadLayout(cfg *config.Config) (*layout.Layout, error) {
	if cfg.House.LayoutPath == "" {
		return demoLayout(cfg.House.Name), nil
	}
	l, err := layout.Load(cfg.House.LayoutPath)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	return l, nil
}

// demoLayout is an empty house with two sockets and a thermometer that
// belong to no room, reported through an owning and a borrowing provider.
func demoLayout(houseName string) *layout.Layout {
	return &layout.Layout{
		House: houseName,
		Devices: []layout.DeviceSpec{
			{Name: "socket1", Kind: string(device.KindSocket)},
			{Name: "socket2", Kind: string(device.KindSocket)},
			{Name: "thermo1", Kind: string(device.KindThermometer)},
		},
		Reports: []layout.ReportSpec{
			{Provider: layout.ProviderOwning, Socket: "socket1"},
			{Provider: layout.ProviderBorrowing, Socket: "socket2", Thermometer: "thermo1"},
		},
	}
}
