// Package builder defines shared constants used by the edge-list constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor names, used to prefix errors with context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodLoops is the canonical name for the Loops constructor.
	MethodLoops = "Loops"
	// MethodComponent is the canonical name for the Component decorator.
	MethodComponent = "Component"
	// MethodDoubled is the canonical name for the Doubled decorator.
	MethodDoubled = "Doubled"
)

// CenterVertexID is the identifier of the hub in Star and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum sizes. Every fixture must emit at least one edge, because an edge
// list cannot carry isolated nodes.
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinCycleNodes is the smallest simple ring (no loops or parallel edges).
const MinCycleNodes = 3

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-ring plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest complete graph with an edge (K_2).
const MinCompleteNodes = 2

// MinGridCells is the smallest grid with an edge (1×2 or 2×1).
const MinGridCells = 2

// MinRandomNodes is the smallest vertex count for the random constructors.
const MinRandomNodes = 2

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
