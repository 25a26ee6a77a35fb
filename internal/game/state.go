// Package game provides the turn coordinator and the interactive game loop.
package game

// Phase is the round state of the coordinator.
type Phase int

const (
	// PhaseLevelTransition covers the title card after a board is built and
	// the delay between reaching the exit and loading the next level.
	PhaseLevelTransition Phase = iota
	// PhasePlayerTurn waits for the player to spend its move.
	PhasePlayerTurn
	// PhaseEnemiesTurn runs the paced enemy moves.
	PhaseEnemiesTurn
	// PhaseGameOver is terminal until the game is restarted.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLevelTransition:
		return "level_transition"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseEnemiesTurn:
		return "enemies_turn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
