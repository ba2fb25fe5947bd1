// Package world defines the static catalog of playable environments:
// the practice room plus the ordered adventure levels, each with a bounded
// footprint, soundscape, objectives and hazards. Catalog data is read-only;
// sessions work on deep copies so repeated plays never leak mutation.
package world

import "github.com/Vaibhav6780/Echoverse-Project/internal/core"

// Soundscape tags an environment's ambient audio theme.
type Soundscape string

const (
	SoundscapePractice Soundscape = "practice"
	SoundscapeForest   Soundscape = "forest"
	SoundscapeCave     Soundscape = "cave"
)

// Objective is a one-time collectible goal template.
type Objective struct {
	Type        string    `yaml:"type"`
	Target      string    `yaml:"target"`
	Position    core.Vec2 `yaml:"position"`
	Description string    `yaml:"description"`
}

// Hazard is a repeatable penalty trigger. Hazards persist for the whole
// level and may be hit any number of times.
type Hazard struct {
	Type        string    `yaml:"type"`
	Position    core.Vec2 `yaml:"position"`
	Description string    `yaml:"description"`
}

// FlavorZone attaches narration flavor text to a distance-from-center
// threshold. Zones are cosmetic narration triggers, not gameplay state.
type FlavorZone struct {
	Beyond float64 `yaml:"beyond"`
	Text   string  `yaml:"text"`
}

// Environment is one catalog entry: a bounded area centered on the origin
// with half-extents on each axis.
type Environment struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	HalfExtentX float64     `yaml:"half_extent_x"`
	HalfExtentZ float64     `yaml:"half_extent_z"`
	Soundscape  Soundscape  `yaml:"soundscape"`
	Objectives  []Objective `yaml:"objectives"`
	Hazards     []Hazard    `yaml:"hazards"`
	Flavor      []FlavorZone `yaml:"flavor"`
}

// InBounds reports whether p lies within the footprint on both axes.
func (e *Environment) InBounds(p core.Vec2) bool {
	if p.X < -e.HalfExtentX || p.X > e.HalfExtentX {
		return false
	}
	if p.Z < -e.HalfExtentZ || p.Z > e.HalfExtentZ {
		return false
	}
	return true
}

// Clone creates a deep copy of the environment for use by a session.
func (e *Environment) Clone() *Environment {
	clone := *e
	clone.Objectives = make([]Objective, len(e.Objectives))
	copy(clone.Objectives, e.Objectives)
	clone.Hazards = make([]Hazard, len(e.Hazards))
	copy(clone.Hazards, e.Hazards)
	clone.Flavor = make([]FlavorZone, len(e.Flavor))
	copy(clone.Flavor, e.Flavor)
	return &clone
}

// FlavorAt returns the flavor text for a position, picking the zone with the
// largest threshold the player's distance from center exceeds.
func (e *Environment) FlavorAt(p core.Vec2) string {
	dist := p.Len()
	text := ""
	best := -1.0
	for _, z := range e.Flavor {
		if dist > z.Beyond && z.Beyond > best {
			best = z.Beyond
			text = z.Text
		}
	}
	return text
}

// Catalog holds the practice room and the ordered adventure levels.
type Catalog struct {
	Practice  Environment   `yaml:"practice"`
	Adventure []Environment `yaml:"adventure"`
}

// Level returns a deep copy of the 1-based adventure level, or false if the
// index is outside the catalog.
func (c Catalog) Level(n int) (*Environment, bool) {
	if n < 1 || n > len(c.Adventure) {
		return nil, false
	}
	return c.Adventure[n-1].Clone(), true
}

// LevelCount returns the number of adventure levels.
func (c Catalog) LevelCount() int {
	return len(c.Adventure)
}

// Builtin returns the hand-authored catalog used when no worlds file is
// available. Kept in sync with defaults/worlds.yaml.
func Builtin() Catalog {
	return Catalog{
		Practice: Environment{
			ID:          "practice",
			Name:        "Practice Room",
			Description: "A quiet padded room. Nothing here can hurt you. Try moving around and listening to your footsteps.",
			HalfExtentX: 5,
			HalfExtentZ: 5,
			Soundscape:  SoundscapePractice,
		},
		Adventure: []Environment{
			{
				ID:          "whispering-forest",
				Name:        "Whispering Forest",
				Description: "Tall trees creak overhead. A stream murmurs somewhere to your right.",
				HalfExtentX: 8,
				HalfExtentZ: 8,
				Soundscape:  SoundscapeForest,
				Objectives: []Objective{
					{Type: "collect", Target: "silver bell", Position: core.Vec2{X: 4, Z: 3}, Description: "You found the silver bell. Its chime cuts through the forest."},
					{Type: "collect", Target: "moonstone", Position: core.Vec2{X: -5, Z: 6}, Description: "You picked up the moonstone. It hums faintly in your palm."},
				},
				Hazards: []Hazard{
					{Type: "pit", Position: core.Vec2{X: -3, Z: -4}, Description: "The ground gives way. You tumble into a hidden pit."},
					{Type: "thorns", Position: core.Vec2{X: 6, Z: -6}, Description: "Thorns tear at you from a bramble wall."},
				},
				Flavor: []FlavorZone{
					{Beyond: 4, Text: "The trees thin out here."},
					{Beyond: 7, Text: "Branches snag at your sleeves near the forest's edge."},
				},
			},
			{
				ID:          "echoing-cave",
				Name:        "Echoing Cave",
				Description: "Your footsteps echo off unseen walls. Water drips in the distance.",
				HalfExtentX: 6,
				HalfExtentZ: 10,
				Soundscape:  SoundscapeCave,
				Objectives: []Objective{
					{Type: "collect", Target: "glowing crystal", Position: core.Vec2{X: 2, Z: 8}, Description: "You pried loose the glowing crystal. The cave brightens around you."},
					{Type: "collect", Target: "old lantern", Position: core.Vec2{X: -4, Z: 2}, Description: "You grabbed the old lantern. Its handle is still warm."},
					{Type: "reach", Target: "underground spring", Position: core.Vec2{X: 0, Z: -9}, Description: "You reached the underground spring. The water tastes of iron."},
				},
				Hazards: []Hazard{
					{Type: "chasm", Position: core.Vec2{X: 4, Z: 4}, Description: "Your foot slips on the lip of a chasm."},
					{Type: "bats", Position: core.Vec2{X: -3, Z: 7}, Description: "A swarm of bats bursts past, knocking you off balance."},
				},
				Flavor: []FlavorZone{
					{Beyond: 5, Text: "The air grows colder and the drips louder."},
					{Beyond: 9, Text: "The wall is close enough to touch, slick with damp."},
				},
			},
			{
				ID:          "sunken-ruins",
				Name:        "Sunken Ruins",
				Description: "Broken stone underfoot. Wind moans through collapsed archways.",
				HalfExtentX: 10,
				HalfExtentZ: 10,
				Soundscape:  SoundscapeCave,
				Objectives: []Objective{
					{Type: "collect", Target: "bronze key", Position: core.Vec2{X: -7, Z: -7}, Description: "You found the bronze key beneath a fallen lintel."},
					{Type: "collect", Target: "cracked tablet", Position: core.Vec2{X: 8, Z: 2}, Description: "You lifted the cracked tablet. Strange grooves cover its face."},
					{Type: "reach", Target: "sealed door", Position: core.Vec2{X: 0, Z: 9}, Description: "You reached the sealed door. The key turns with a deep clunk."},
				},
				Hazards: []Hazard{
					{Type: "rubble", Position: core.Vec2{X: 3, Z: -5}, Description: "Loose rubble shifts and buries your legs."},
					{Type: "snake", Position: core.Vec2{X: -5, Z: 5}, Description: "Something cold strikes at your ankle."},
					{Type: "pit", Position: core.Vec2{X: 6, Z: 7}, Description: "A flooded cellar swallows your next step."},
				},
				Flavor: []FlavorZone{
					{Beyond: 6, Text: "The wind picks up between the broken columns."},
					{Beyond: 9, Text: "Rubble piles high near the outer wall."},
				},
			},
		},
	}
}
