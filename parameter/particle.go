package parameter

// Starfield
const (
	StarfieldCount = 400

	// StarfieldRadius in AU from the camera
	StarfieldRadius = 1000.0

	// StarRenderDistance is the depth stars are written at, behind all geometry
	StarRenderDistance = 1e9

	StarfieldSeed = 0x5eed
)

// Dust, distances in ship lengths
const (
	DustCount           = 60
	DustSpawnDistance   = 40.0
	DustMinDistance     = 3.0
	DustMaxDistance     = 60.0
	DustVelocityBias    = 0.6
	DustStreakThreshold = 1.5 // cells per look-ahead window
	DustSeed            = 0xd057
)
