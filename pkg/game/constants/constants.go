package constants

const (

	// DefaultWinScore is the score that wins a session
	DefaultWinScore int = 9
	// DefaultTimeLimit is the session countdown in seconds
	DefaultTimeLimit float64 = 30.0
	// MinForcedTimeLimit is the shortest countdown the force policy allows
	MinForcedTimeLimit float64 = 1.0
	// DefaultMessageDuration is how long a toast stays on screen in seconds
	DefaultMessageDuration float64 = 2.0
	// UrgentSeconds is the displayed countdown at or below which the timer is urgent
	UrgentSeconds int = 10

	// Arena bounds on the ground plane (x, z) in world units
	ArenaMinX  float64 = -10.0
	ArenaMinZ  float64 = -10.0
	ArenaWidth float64 = 20.0
	ArenaDepth float64 = 20.0
	// ArenaScale is the number of collision space units per world unit
	ArenaScale float64 = 100.0
	// ArenaCellSize is the collision space cell size
	ArenaCellSize int = 50

	// CubeSize is the edge length of a cube
	CubeSize float64 = 1.0
	// SphereRadius is the radius of a sphere
	SphereRadius float64 = 0.5
	// CapsuleRadius is the radius of a capsule
	CapsuleRadius float64 = 0.5
	// CapsuleHeight is the end-to-end height of a capsule
	CapsuleHeight float64 = 2.0

	// ReceptacleWidth is the x extent of a bin
	ReceptacleWidth float64 = 3.0
	// ReceptacleDepth is the z extent of a bin
	ReceptacleDepth float64 = 3.0
	// ReceptacleHeight is the y extent of a bin volume
	ReceptacleHeight float64 = 2.5
	// ReceptacleRowZ is the z coordinate of the row of bins
	ReceptacleRowZ float64 = -6.0
	// ReceptacleSpacing is the x distance between bin centres
	ReceptacleSpacing float64 = 5.0

	// Default camera, looking at the arena from the front
	CameraEyeY    float64 = 12.0
	CameraEyeZ    float64 = 12.0
	CameraTargetZ float64 = -1.5
	CameraFovY    float64 = 50.0
	CameraNear    float64 = 0.1
	CameraFar     float64 = 100.0

	// ShapesPerKind is the number of shapes of each kind in the default layout
	ShapesPerKind int = 4
	// LayoutColumns is the number of shape columns in the default layout
	LayoutColumns int = 6
	// LayoutSpacing is the distance between shapes in the default layout
	LayoutSpacing float64 = 2.0
	// LayoutStartZ is the z coordinate of the first shape row
	LayoutStartZ float64 = 1.0

	// Instructions is shown when a session starts
	Instructions string = "Sort each shape into the matching bin."
	// WinMessage is shown when the win score is reached
	WinMessage string = "Well done, you win! (R to play again)"
	// LoseMessage is shown when the countdown runs out
	LoseMessage string = "Time's up, you lose! (R to play again)"
)
