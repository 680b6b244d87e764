package model

// ClearanceProfile is a named set of obstacle clearance margins. Applying a
// profile stamps its margins onto obstacles as overrides, so a project can
// switch between placement policies without editing each obstacle.
type ClearanceProfile struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	IsBuiltIn   bool                       `json:"is_built_in,omitempty"`
	Clearances  map[ObstacleType]Clearance `json:"clearances"`
}

// Built-in clearance profiles
var ClearanceProfiles = []ClearanceProfile{
	{
		Name:        "Standard",
		Description: "Default margins for typical residential rooms",
		IsBuiltIn:   true,
		Clearances: map[ObstacleType]Clearance{
			ObstacleWindow:    UniformClearance(2.0),
			ObstacleDoor:      UniformClearance(3.0),
			ObstacleDoorway:   UniformClearance(3.0),
			ObstacleOutlet:    UniformClearance(1.0),
			ObstacleSwitch:    UniformClearance(1.0),
			ObstacleVent:      UniformClearance(2.0),
			ObstaclePlumbing:  UniformClearance(1.5),
			ObstacleColumn:    UniformClearance(0.5),
			ObstacleAppliance: UniformClearance(0.25),
		},
	},
	{
		Name:        "Compact",
		Description: "Tight margins for small rooms where every inch counts",
		IsBuiltIn:   true,
		Clearances: map[ObstacleType]Clearance{
			ObstacleWindow:    UniformClearance(1.0),
			ObstacleDoor:      UniformClearance(2.0),
			ObstacleDoorway:   UniformClearance(2.0),
			ObstacleOutlet:    UniformClearance(0.5),
			ObstacleSwitch:    UniformClearance(0.5),
			ObstacleVent:      UniformClearance(1.0),
			ObstaclePlumbing:  UniformClearance(1.0),
			ObstacleColumn:    UniformClearance(0.25),
			ObstacleAppliance: UniformClearance(0),
		},
	},
	{
		Name:        "Accessible",
		Description: "Generous margins for wheelchair approach and reach",
		IsBuiltIn:   true,
		Clearances: map[ObstacleType]Clearance{
			ObstacleWindow:    UniformClearance(3.0),
			ObstacleDoor:      {Left: 18, Right: 18, Top: 3, Bottom: 0},
			ObstacleDoorway:   {Left: 18, Right: 18, Top: 3, Bottom: 0},
			ObstacleOutlet:    UniformClearance(1.5),
			ObstacleSwitch:    UniformClearance(2.0),
			ObstacleVent:      UniformClearance(2.0),
			ObstaclePlumbing:  UniformClearance(2.0),
			ObstacleColumn:    UniformClearance(1.0),
			ObstacleAppliance: UniformClearance(1.5),
		},
	},
}

// CustomClearanceProfiles holds user-defined profiles loaded from disk.
var CustomClearanceProfiles []ClearanceProfile

// AllClearanceProfiles returns built-in profiles followed by custom ones.
func AllClearanceProfiles() []ClearanceProfile {
	all := make([]ClearanceProfile, 0, len(ClearanceProfiles)+len(CustomClearanceProfiles))
	all = append(all, ClearanceProfiles...)
	all = append(all, CustomClearanceProfiles...)
	return all
}

// GetClearanceProfile returns a clearance profile by name, or the Standard
// profile if not found.
func GetClearanceProfile(name string) ClearanceProfile {
	for _, p := range AllClearanceProfiles() {
		if p.Name == name {
			return p
		}
	}
	return ClearanceProfiles[0] // Return Standard (first one)
}

// ClearanceProfileNames returns a list of all available profile names.
func ClearanceProfileNames() []string {
	var names []string
	for _, p := range AllClearanceProfiles() {
		names = append(names, p.Name)
	}
	return names
}

// ClearanceFor looks up the profile margin for an obstacle type.
func (p ClearanceProfile) ClearanceFor(t ObstacleType) (Clearance, bool) {
	c, ok := p.Clearances[t]
	return c, ok
}

// Apply returns a copy of the obstacles with this profile's margins set as
// clearance overrides. Obstacles that already carry their own override keep
// it; types the profile does not cover fall back to the default table.
func (p ClearanceProfile) Apply(obstacles []Obstacle) []Obstacle {
	out := make([]Obstacle, len(obstacles))
	for i, ob := range obstacles {
		if ob.ClearanceOverride == nil {
			if c, ok := p.Clearances[ob.Type]; ok {
				ob.ClearanceOverride = &c
			}
		}
		out[i] = ob
	}
	return out
}
