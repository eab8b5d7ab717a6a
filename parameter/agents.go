package parameter

// Forager
const (
	ForagerCount = 2

	// ForagerJumpDelayMin/Max bound the uniform wait between jump attempts (seconds)
	ForagerJumpDelayMin = 0.5
	ForagerJumpDelayMax = 2.0

	// ForagerConsumeDelay is the landing delay before eating the target cell (seconds)
	ForagerConsumeDelay = 0.15

	// ForagerPokeRadius is the pointer hit radius around a forager's cell
	ForagerPokeRadius = 30.0
)

// Feeder
const (
	FeederCount = 7

	// FeederMaxClusterSize is the member cap of one cluster (root included)
	FeederMaxClusterSize = 3

	// FeederMaxSeeds is the seed capacity granted when a cluster completes
	FeederMaxSeeds = 40

	// FeederMinDist is the merge distance; members settle at half of it from the center
	FeederMinDist = 80.0

	// FeederMinSeedDist is the seeding reach from a cluster root
	FeederMinSeedDist = 100.0

	// FeederMinAge is the age a root needs before merging or seeding (seconds)
	FeederMinAge = 3.0

	// FeederSpawnVelocity scales the random initial velocity on reset
	FeederSpawnVelocity = 200.0

	// FeederBurstVelocity scales the outward velocity of burst members
	FeederBurstVelocity = 6.0
)
