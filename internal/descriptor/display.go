package descriptor

import (
	"encoding/json"
	"strconv"
	"strings"
)

type transform struct {
	rotation    [3]float64
	translation [3]float64
	scale       float64
}

var (
	generatedDisplay = map[string]transform{
		"thirdperson": {rotation: [3]float64{-90, 0, 0}, translation: [3]float64{0, 1, -3}, scale: 0.55},
		"firstperson": {rotation: [3]float64{0, -135, 25}, translation: [3]float64{0, 4, 2}, scale: 1.7},
		"gui":         {scale: 1},
		"ground":      {translation: [3]float64{0, 2, 0}, scale: 0.5},
		"fixed":       {rotation: [3]float64{0, 180, 0}, scale: 1},
	}

	handheldDisplay = map[string]transform{
		"thirdperson": {rotation: [3]float64{0, 90, -35}, translation: [3]float64{0, 1.25, -3.5}, scale: 0.85},
		"firstperson": generatedDisplay["firstperson"],
		"gui":         generatedDisplay["gui"],
		"ground":      generatedDisplay["ground"],
		"fixed":       generatedDisplay["fixed"],
	}

	// baseDisplays holds the display transforms of the base models a legacy
	// model may inherit from.
	baseDisplays = map[string]map[string]transform{
		"block/block": {
			"thirdperson": {rotation: [3]float64{10, -45, 170}, translation: [3]float64{0, 1.5, -2.75}, scale: 0.375},
			"firstperson": {rotation: [3]float64{0, 45, 0}, scale: 0.4},
			"gui":         {rotation: [3]float64{30, 225, 0}, scale: 0.625},
			"ground":      {translation: [3]float64{0, 3, 0}, scale: 0.25},
			"fixed":       {scale: 0.5},
		},
		"item/generated": generatedDisplay,
		"item/handheld":  handheldDisplay,
	}
)

// baseDisplay returns the display transforms for a known base model.
func baseDisplay(parent string) (map[string]transform, bool) {
	name := strings.TrimPrefix(strings.ToLower(parent), namespace)
	name = strings.Replace(name, "blocks/", "block/", 1)
	name = strings.Replace(name, "items/", "item/", 1)
	views, ok := baseDisplays[name]
	return views, ok
}

// inlineDisplay copies the base model's views into model["display"] without
// replacing views the model already defines.
func inlineDisplay(model map[string]any, views map[string]transform) {
	display, _ := model["display"].(map[string]any)
	if display == nil {
		display = make(map[string]any, len(views))
	}
	for view, tr := range views {
		if _, ok := display[view]; ok {
			continue
		}
		display[view] = tr.json()
	}
	model["display"] = display
}

func (tr transform) json() map[string]any {
	return map[string]any{
		"rotation":    vector(tr.rotation),
		"translation": vector(tr.translation),
		"scale":       vector([3]float64{tr.scale, tr.scale, tr.scale}),
	}
}

func vector(v [3]float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return out
}
