package parameter

// Endgame
const (
	// EndgameArmCount is the mucky cell count that arms the endgame latch
	EndgameArmCount = 3

	// EndgameCoverageLimit is the mucky fraction above which an armed board resets
	EndgameCoverageLimit = 0.6

	// EndgameResetDelay is the fade duration before the board state is reset (seconds)
	EndgameResetDelay = 5.0
)
