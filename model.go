package trainer

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the immutable summary of one training session.
type Record struct {
	Activity string  `json:"activity"`
	Duration float64 `json:"duration_h"`
	Distance float64 `json:"distance_km"`
	Speed    float64 `json:"speed_kmh"`
	Calories float64 `json:"calories_kcal"`
}

// Message renders the record as the fixed single-line report.
func (r Record) Message() string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		r.Activity, r.Duration, r.Distance, r.Speed, r.Calories)
}

// Summary computes the full Record for a training session.
func Summary(t Training) (Record, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return Record{}, err
	}
	calories, err := t.Calories()
	if err != nil {
		return Record{}, err
	}
	return Record{
		Activity: t.Name(),
		Duration: t.Duration(),
		Distance: t.Distance(),
		Speed:    speed,
		Calories: calories,
	}, nil
}

// Package is one sensor reading tuple as delivered by the device.
type Package struct {
	Type string        `json:"workout_type"`
	Data []json.Number `json:"data"`
}

// ReadPackages decodes a batch of sensor packages. Numbers keep their
// literal form so the validators can tell counts from measures.
func ReadPackages(r io.Reader) ([]Package, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var pkgs []Package
	if err := dec.Decode(&pkgs); err != nil {
		return nil, fmt.Errorf("decoding sensor packages: %w", err)
	}
	return pkgs, nil
}
