package models

import "math/rand"

// ResourceType represents one of the kitchen's resource kinds.
type ResourceType string

const (
	ResourceQuantumEnergy         ResourceType = "Quantum Energy"
	ResourceProbabilityStabilizer ResourceType = "Probability Stabilizer"
	ResourceTimelineToken         ResourceType = "Timeline Token"
)

// AllResources lists every resource kind in display order.
var AllResources = []ResourceType{
	ResourceQuantumEnergy,
	ResourceProbabilityStabilizer,
	ResourceTimelineToken,
}

// RandomResource picks a resource kind uniformly.
func RandomResource(rng *rand.Rand) ResourceType {
	return AllResources[rng.Intn(len(AllResources))]
}
