package income

// Preset is a named income band shown in at-a-glance output.
type Preset struct {
	Name string  `json:"name"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// presets are the stock bands; bounds are valid by construction.
var presets = []Preset{
	{Name: "Low Income", Low: 0, High: 30_000},
	{Name: "Middle Class", Low: 40_000, High: 100_000},
	{Name: "Upper Middle", Low: 100_000, High: 200_000},
	{Name: "High Income", Low: 200_000, High: 300_000},
}

// Presets returns the stock income bands.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetResult is a preset evaluated against a model.
type PresetResult struct {
	Preset
	BandResult
}

// EvaluatePresets computes the band result for every stock preset.
func (m *Model) EvaluatePresets() []PresetResult {
	out := make([]PresetResult, 0, len(presets))
	for _, p := range presets {
		res, err := m.Band(p.Low, p.High)
		if err != nil {
			continue // unreachable: preset bounds are valid
		}
		out = append(out, PresetResult{Preset: p, BandResult: res})
	}
	return out
}
