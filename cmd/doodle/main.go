// doodle is a terminal doodle-jump game.
//
// Usage:
//
//	doodle play              - Play in this terminal
//	doodle serve             - Start SSH server for remote play
//	doodle scores            - Show the run history
//	doodle list              - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible platform layouts
//	--db <path>          - Set database path (default: ~/.doodle/scores.db)
//	--highscore <path>   - Set high score file (default: ~/.doodle/highscore)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination (default: ~/.doodle/doodle.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogLevel  string
	flagLogFile   string
)

// logger is built once the flags are parsed.
var logger = log.New(io.Discard)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "TUI Doodle - Jump across platforms in your terminal",
	Long: `TUI Doodle is a vertically scrolling platformer for the terminal.
Bounce from platform to platform, grab hats for a boost and
climb as high as you can.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the run history
  list     - Show all available games

Examples:
  doodle play
  doodle play --difficulty hard --seed 42
  doodle serve --ssh :2222
  doodle scores --recent`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.doodle/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.doodle/highscore", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.doodle/doodle.log", "Log file (- for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}

// setupLogging builds the logger from the global flags.
// The alt screen owns stdout while playing, so logs go to a file by default.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "-" {
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return err
		}
		if err := storage.EnsureDir(path, 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //#nosec G302 G304 -- user-chosen log file
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "doodle",
	})
	doodle.SetLogger(logger)
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// setupHighScore wires the high score file into new games.
func setupHighScore() error {
	file, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return err
	}
	doodle.SetHighScoreStore(file)
	return nil
}

// openStore opens the run history. The game runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
