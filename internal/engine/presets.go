package engine

// Preset bundles default durations in minutes plus the long-break interval.
type Preset struct {
	Work      int
	Break     int
	LongBreak int
	Interval  int
}

// PresetCustom is the sentinel entry with no fixed durations; selecting it
// keeps whatever the user configured by hand.
const PresetCustom = "Custom"

var presetOrder = []string{
	"Classic 25/5",
	"Quick 15/3",
	"Deep 50/10",
	"Gentle 20/5",
	PresetCustom,
}

var presetTable = map[string]*Preset{
	"Classic 25/5": {Work: 25, Break: 5, LongBreak: 15, Interval: 4},
	"Quick 15/3":   {Work: 15, Break: 3, LongBreak: 10, Interval: 4},
	"Deep 50/10":   {Work: 50, Break: 10, LongBreak: 20, Interval: 3},
	"Gentle 20/5":  {Work: 20, Break: 5, LongBreak: 15, Interval: 4},
	PresetCustom:   nil,
}

// PresetNames lists the presets in menu order, Custom last.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// LookupPreset returns the bundle for a preset name. The bool is false for
// unknown names; a known name with a nil bundle is the Custom sentinel.
func LookupPreset(name string) (*Preset, bool) {
	preset, ok := presetTable[name]
	return preset, ok
}
