package parameter

// Camera & Projection
const (
	// CameraFOVDeg is the vertical field of view
	CameraFOVDeg = 70.0

	// CameraNearPlane in AU, a small fraction of the hull length
	CameraNearPlane = 1e-9

	// CameraCellAspect is terminal cell height over width
	CameraCellAspect = 2.0

	// CameraChaseDistance and CameraChaseHeight place the chase camera behind
	// and above the ship, in ship lengths
	CameraChaseDistance = 3.0
	CameraChaseHeight   = 0.6
)

// Shading
const (
	// ShadeAmbient is the floor intensity of unlit faces
	ShadeAmbient = 0.25
)
