package models

// EventType represents a special event kind that can perturb the kitchen
// at the start of a day.
type EventType string

const (
	EventResourceBoost      EventType = "Resource Boost"
	EventTimelineShift      EventType = "Timeline Shift"
	EventQuantumFluctuation EventType = "Quantum Fluctuation"
	EventRealityDistortion  EventType = "Reality Distortion"
)

// AllEvents lists every special event kind.
var AllEvents = []EventType{
	EventResourceBoost,
	EventTimelineShift,
	EventQuantumFluctuation,
	EventRealityDistortion,
}

// EventRecord represents one fired special event in the run's append-only log.
type EventRecord struct {
	Day     int       `json:"day"`
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}
