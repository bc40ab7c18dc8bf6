package core

// RuntimeConfig is what the platform tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; equal seeds replay equal runs
}

// WithDefaults fills unset sizes and rate with an 80x24 screen at 60 ticks/s.
// The seed is left alone: choosing a fresh one is the platform's job.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}

// GameState is the status a game reports after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game
	GameOver  bool // Run finished; the platform records it once
	Paused    bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
