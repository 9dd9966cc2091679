package global

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/mwinters/dexduel/game"
)

type GlobalConfig struct {
	LocalPlayerName string
	ScoreDBLocation string
	Debug           bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	// Loaded once by GlobalInit, read-only afterwards. Safe to share across
	// every session in the process.
	CATALOG game.Catalog
	CURATED *game.CuratedMoves

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	TrueKey = key.NewBinding(
		key.WithKeys("t"),
	)
	FalseKey = key.NewBinding(
		key.WithKeys("f"),
	)
	RestartKey = key.NewBinding(
		key.WithKeys("r"),
	)

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		LocalPlayerName: "Player",
	}

	initLogger zerolog.Logger
)

func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "dexduel")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// GlobalInit sets up config, logging and the creature catalog. A dataset
// that can't be loaded is fatal: the game has nothing to quiz on and there
// is no retry.
func GlobalInit(files fs.FS, shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging for config debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	// Read config file
	configContents, err := os.ReadFile(configFilepath)
	if err != nil {
		_, err := os.Create(configFilepath)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create config file")
		}
	}

	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to read config file")
		} else {
			Opt = populateConfig(newOpts)
		}
	} else {
		config := populateConfig(GlobalConfig{})
		configBytes, err := json.Marshal(config)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to marshal default config values")
		}

		if err := os.WriteFile(configFilepath, configBytes, 0666); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}

		Opt = config
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	// Logging Setup
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs"), "dexduel")
	fileWriter := zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
	multiLogger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).With().Timestamp().Logger().Level(level)

	initLogger = multiLogger
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// Main global logger
	log.Logger = zerolog.New(fileWriter).With().Timestamp().Caller().Logger().Level(level)

	initLogger.Info().Msg("Loading creature dataset")

	catalog, err := game.LoadCatalog(files, "data/creatures.json")
	if err != nil {
		initLogger.Fatal().Err(err).Msg("Couldn't load creature dataset")
	}
	CATALOG = catalog

	initLogger.Info().Msgf("Loaded %d creatures", len(CATALOG))

	// Curated moves are optional; a missing file just disables move filters
	CURATED = game.LoadCuratedMoves(files, "data/curated-moves.json")
	if CURATED != nil {
		initLogger.Info().Msgf("Loaded %d curated moves", len(CURATED.Moves.Combined))
	}
}

// SaveConfig writes the active config back to disk (options screen).
func SaveConfig() error {
	configBytes, err := json.Marshal(Opt)
	if err != nil {
		return err
	}

	return os.WriteFile(DefaultConfigLocation(), configBytes, 0666)
}

func populateConfig(config GlobalConfig) GlobalConfig {
	configDir := DefaultConfigDir()

	if config.LocalPlayerName == "" {
		config.LocalPlayerName = "Player"
	}
	if config.ScoreDBLocation == "" {
		config.ScoreDBLocation = filepath.Join(configDir, "scores.db")
	}

	return config
}
