package parameter

// Ship Defaults
const (
	ShipSize    = 2e-8 // AU
	ShipHull    = 100
	ShipShields = 50
	ShipFuel    = 100.0

	// ShipAcceleration in AU/s², braking uses the same magnitude
	ShipAcceleration = 2e-4

	// ShipMaxSpeed in AU/s
	ShipMaxSpeed = 2e-3

	ShipBoostMultiplier    = 4.0
	ShipFuelPerBoostSecond = 1.0

	// ShipTurnRate and ShipRollRate in rad/s
	ShipTurnRate = 1.5
	ShipRollRate = 2.0
)

// Hazards
const (
	// HeatMaxDistance is AU above the stellar surface where heat applies
	HeatMaxDistance = 0.05

	// HeatDamagePerSecond at the surface of a luminosity 1 star
	// Truncation per tick makes heat bite only within a few radii
	HeatDamagePerSecond = 3000.0

	// StationCollisionDamage is damage per AU/s of inward impact speed
	StationCollisionDamage = 5e4
)
