package trainer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// builders maps each sensor code to its variant constructor. The code
// set is closed; anything else is an UnknownActivityError.
var builders = map[string]func(data []json.Number) (Training, error){
	"RUN": newRunningArgs,
	"WLK": newWalkingArgs,
	"SWM": newSwimmingArgs,
}

// New constructs the activity variant registered for code from its
// positional sensor parameters. Validation failures from the variant
// constructor propagate unchanged.
func New(code string, data []json.Number) (Training, error) {
	build, ok := builders[code]
	if !ok {
		return nil, &UnknownActivityError{Code: code}
	}
	return build(data)
}

// Evaluate dispatches a sensor package and computes its Record.
func Evaluate(pkg Package) (Record, error) {
	t, err := New(pkg.Type, pkg.Data)
	if err != nil {
		return Record{}, err
	}
	return Summary(t)
}

func newRunningArgs(data []json.Number) (Training, error) {
	if err := arity("RUN", data, 3); err != nil {
		return nil, err
	}
	steps, err := countArg("steps", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := measureArg("duration", data[1])
	if err != nil {
		return nil, err
	}
	weight, err := measureArg("weight", data[2])
	if err != nil {
		return nil, err
	}
	return NewRunning(steps, duration, weight)
}

func newWalkingArgs(data []json.Number) (Training, error) {
	if err := arity("WLK", data, 4); err != nil {
		return nil, err
	}
	steps, err := countArg("steps", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := measureArg("duration", data[1])
	if err != nil {
		return nil, err
	}
	weight, err := measureArg("weight", data[2])
	if err != nil {
		return nil, err
	}
	height, err := measureArg("height", data[3])
	if err != nil {
		return nil, err
	}
	return NewWalking(steps, duration, weight, height)
}

func newSwimmingArgs(data []json.Number) (Training, error) {
	if err := arity("SWM", data, 5); err != nil {
		return nil, err
	}
	strokes, err := countArg("strokes", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := measureArg("duration", data[1])
	if err != nil {
		return nil, err
	}
	weight, err := measureArg("weight", data[2])
	if err != nil {
		return nil, err
	}
	pool, err := measureArg("pool length", data[3])
	if err != nil {
		return nil, err
	}
	laps, err := countArg("laps", data[4])
	if err != nil {
		return nil, err
	}
	return NewSwimming(strokes, duration, weight, pool, laps)
}

func arity(code string, data []json.Number, want int) error {
	if len(data) != want {
		return invalid("data", fmt.Sprintf("%s takes exactly %d parameters, got %d", code, want, len(data)))
	}
	return nil
}

// countArg parses an integer-typed positional parameter. The literal
// form matters: a fractional literal where a count is expected fails.
func countArg(field string, n json.Number) (int, error) {
	if !intKind(n) {
		return 0, invalid(field, "expected an integer literal")
	}
	v, err := n.Int64()
	if err != nil {
		return 0, invalid(field, "expected an integer literal")
	}
	return int(v), nil
}

// measureArg parses a real-typed positional parameter. An integer
// literal where a measured real is expected fails.
func measureArg(field string, n json.Number) (float64, error) {
	if intKind(n) {
		return 0, invalid(field, "expected a fractional literal")
	}
	v, err := n.Float64()
	if err != nil {
		return 0, invalid(field, "expected a fractional literal")
	}
	return v, nil
}

func intKind(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}
