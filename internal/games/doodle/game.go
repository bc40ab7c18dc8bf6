// Package doodle implements a doodle-jump style vertical platformer.
// The actor bounces upward across randomly spawned platforms while the
// world scrolls down; spawn odds shift toward harder platforms as the
// score grows.
package doodle

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/outcome"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// Scene is the screen the game is showing.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlaying
	SceneGameOver
)

const (
	gameOverGrace = 30 // Ticks before game over accepts a restart
	titleBanner   = 35 // Height of the START banner in world units
)

// HighScoreStore persists the best score between runs.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	defaultLogger *log.Logger
	defaultStore  HighScoreStore
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger given to games created through the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// SetHighScoreStore sets the store given to games created through the registry.
func SetHighScoreStore(s HighScoreStore) {
	defaultStore = s
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithHighScoreStore sets where the high score is kept.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithAssets replaces the default sprites.
func WithAssets(t *AssetTable) Option {
	return func(g *Game) {
		g.assets = t
	}
}

// WithConfig uses cfg instead of loading the config from disk on Reset.
func WithConfig(cfg config.DoodleConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedConfig = true
	}
}

// titleScreen is the idle actor bouncing on the START banner.
type titleScreen struct {
	actor  *Actor
	banner core.Box
}

func (t *titleScreen) update(in core.InputFrame) {
	t.actor.Update(in)
	if t.actor.Vel.Y > 0 && t.actor.Box().Intersects(t.banner) {
		t.actor.Jump()
	}
}

// Game manages scenes, the high score and the current session.
type Game struct {
	cfg         config.DoodleConfig
	fixedConfig bool
	assets      *AssetTable
	logger      *log.Logger
	store       HighScoreStore

	runtime core.RuntimeConfig
	rng     *rand.Rand

	scene     Scene
	title     *titleScreen
	session   *Session
	paused    bool
	highScore int
	lastScore int

	ticks       uint64
	alarms      Alarms
	acceptInput bool
}

// New creates a new doodle game instance.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultDoodleConfig(),
		assets: DefaultAssets(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "doodle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doodle Jump"
}

// Reset loads the configuration and high score and shows the title scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		cfg, err := config.LoadDoodle(configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
			cfg = config.DefaultDoodleConfig()
		}
		if difficultyPreset != "" {
			config.ApplyDoodlePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- game randomness
	g.loadHighScore()

	g.ticks = 0
	g.alarms.Clear()
	g.session = nil
	g.paused = false
	g.lastScore = 0
	g.showTitle()
}

func (g *Game) showTitle() {
	area := core.Box{W: g.cfg.Viewport.Width, H: g.cfg.Viewport.Height}
	g.title = &titleScreen{
		actor: NewActor(area, g.cfg.Physics, g.cfg.Player),
		banner: core.Box{
			Y: area.Bottom() - titleBanner,
			W: area.W,
			H: titleBanner,
		},
	}
	g.scene = SceneTitle
}

// loadHighScore picks up scores other games saved to a shared store.
// The cached value only ever rises.
func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	score, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return
	}
	g.highScore = max(g.highScore, score)
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highScore); err != nil {
		g.logger.Warn("could not save high score", "score", g.highScore, "error", err)
	}
}

// startRun begins a new session. On failure the title scene stays up.
func (g *Game) startRun() {
	s, err := NewSession(g.cfg, g.assets, g.rng, Listener{
		OnScoreIncrease: g.onScoreIncrease,
		OnDeath:         g.onDeath,
	})
	if err != nil {
		g.logger.Error("could not start run", "error", err)
		g.showTitle()
		return
	}

	g.loadHighScore()
	g.session = s
	g.paused = false
	g.lastScore = 0
	g.scene = ScenePlaying
	g.logger.Debug("run started", "platforms", s.Field().Len())
}

func (g *Game) onScoreIncrease(total int) {
	g.lastScore = total
	if total > g.highScore {
		g.highScore = total
	}
}

func (g *Game) onDeath() {
	g.scene = SceneGameOver
	g.acceptInput = false
	g.alarms.After(g.ticks, gameOverGrace, func() {
		g.acceptInput = true
	})
	g.saveHighScore()
	g.logger.Info("run over", "score", g.lastScore, "high", g.highScore)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.alarms.Fire(g.ticks)

	if in.Has(core.ActionRestart) {
		g.startRun()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionInspect) {
		g.logDistribution()
	}

	switch g.scene {
	case SceneTitle:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.startRun()
			break
		}
		g.title.update(in)

	case ScenePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.session.Tick(in)
		}

	case SceneGameOver:
		if g.acceptInput && (in.Has(core.ActionJump) || in.Has(core.ActionConfirm)) {
			g.startRun()
		}
	}

	return core.StepResult{State: g.State()}
}

// logDistribution writes the current spawn odds to the log.
func (g *Game) logDistribution() {
	if g.session == nil {
		g.logger.Info("spawn distribution", "dist", "no run in progress")
		return
	}
	d := g.session.Difficulty()
	g.logger.Info("spawn distribution",
		"score", g.session.Score(),
		"dist", FormatDistribution(d.Distribution()),
		"weights", FormatDistribution(d.Weights()),
	)
}

// FormatDistribution renders a type id keyed map as "kind=value" pairs in
// type id order.
func FormatDistribution(m map[int]float64) string {
	parts := make([]string, 0, len(m))
	for _, k := range outcome.Keys(m) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", Kind(k), m[k]))
	}
	return strings.Join(parts, " ")
}

// Render draws the current scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newView(dst, g.cfg.Viewport)

	if g.scene == SceneTitle {
		g.drawTitle(dst, v)
		return
	}

	s := g.session
	g.drawWorld(dst, v, s)
	g.drawHUD(dst, s.Score(), s.Banner())

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.scene == SceneGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:     score,
		HighScore: g.highScore,
		GameOver:  g.scene == SceneGameOver,
		Paused:    g.paused,
	}
}

// Scene returns the scene being shown.
func (g *Game) Scene() Scene {
	return g.scene
}

// Session returns the current run, or nil on the title scene before the first run.
func (g *Game) Session() *Session {
	return g.session
}

// RunTicks returns how many ticks the current run has lasted.
func (g *Game) RunTicks() uint64 {
	if g.session == nil {
		return 0
	}
	return g.session.Ticks()
}

// Register the game with the registry
func init() {
	registry.Register("doodle", func() registry.Game {
		return New(WithLogger(defaultLogger), WithHighScoreStore(defaultStore))
	})
}
