// Package trainer turns raw workout sensor readings into training
// summaries: distance covered, mean speed and calories burned.
package trainer

const (
	metersPerKm    = 1000
	minutesPerHour = 60

	strideLen = 0.65 // meters covered per step on land
	strokeLen = 1.38 // meters covered per swim stroke
)

// Training is the capability every activity variant provides. Calories
// has no shared formula; each variant supplies its own.
type Training interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() (float64, error)
	Calories() (float64, error)
}

// profile holds the sensor fields shared by all activity types. Fields
// are validated once at construction and never reassigned afterwards.
type profile struct {
	steps    int
	duration float64 // hours
	weight   float64 // kg
	stride   float64 // meters per step or stroke
}

func newProfile(steps int, duration, weight, stride float64) (profile, error) {
	if err := verifyCount("steps", steps); err != nil {
		return profile{}, err
	}
	if err := verifyMeasure("duration", duration); err != nil {
		return profile{}, err
	}
	if err := verifyMeasure("weight", weight); err != nil {
		return profile{}, err
	}
	return profile{steps: steps, duration: duration, weight: weight, stride: stride}, nil
}

func verifyCount(field string, v int) error {
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func verifyMeasure(field string, v float64) error {
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

// Duration returns the session length in hours.
func (p *profile) Duration() float64 { return p.duration }

// Distance returns the kilometers covered.
func (p *profile) Distance() float64 {
	return float64(p.steps) * p.stride / metersPerKm
}

// MeanSpeed returns the mean speed in km/h. A zero-length session has
// no defined speed and yields ErrZeroDuration rather than Inf.
func (p *profile) MeanSpeed() (float64, error) {
	if p.duration == 0 {
		return 0, ErrZeroDuration
	}
	return p.Distance() / p.duration, nil
}

// Running is a running session.
type Running struct {
	profile
}

const (
	runSpeedCoefficient = 18
	runSpeedShift       = 1.79
)

func NewRunning(steps int, duration, weight float64) (*Running, error) {
	p, err := newProfile(steps, duration, weight, strideLen)
	if err != nil {
		return nil, err
	}
	return &Running{profile: p}, nil
}

func (r *Running) Name() string { return "Running" }

func (r *Running) Calories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runSpeedCoefficient*speed + runSpeedShift) *
		r.weight / metersPerKm * r.duration * minutesPerHour, nil
}

// Walking is a race-walking session.
type Walking struct {
	profile
	height float64 // cm
}

const (
	walkWeightCoefficient      = 0.035
	walkSpeedHeightCoefficient = 0.029
	kmhToMs                    = 0.278
	cmPerM                     = 100
)

func NewWalking(steps int, duration, weight, height float64) (*Walking, error) {
	p, err := newProfile(steps, duration, weight, strideLen)
	if err != nil {
		return nil, err
	}
	if err := verifyMeasure("height", height); err != nil {
		return nil, err
	}
	return &Walking{profile: p, height: height}, nil
}

func (w *Walking) Name() string { return "Walking" }

func (w *Walking) Calories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.height == 0 {
		return 0, invalid("height", "must be positive to compute calories")
	}
	ms := speed * kmhToMs
	return (walkWeightCoefficient*w.weight +
		ms*ms/(w.height/cmPerM)*walkSpeedHeightCoefficient*w.weight) *
		w.duration * minutesPerHour, nil
}

// Swimming is a pool swimming session. Distance derives from stroke
// count; speed derives from pool length and lap count instead.
type Swimming struct {
	profile
	poolLength float64 // m
	laps       int
}

const (
	swimWeightMultiplier = 2
	swimSpeedShift       = 1.1
)

func NewSwimming(strokes int, duration, weight, poolLength float64, laps int) (*Swimming, error) {
	p, err := newProfile(strokes, duration, weight, strokeLen)
	if err != nil {
		return nil, err
	}
	if err := verifyMeasure("pool length", poolLength); err != nil {
		return nil, err
	}
	if err := verifyCount("laps", laps); err != nil {
		return nil, err
	}
	return &Swimming{profile: p, poolLength: poolLength, laps: laps}, nil
}

func (s *Swimming) Name() string { return "Swimming" }

func (s *Swimming) MeanSpeed() (float64, error) {
	if s.duration == 0 {
		return 0, ErrZeroDuration
	}
	return s.poolLength * float64(s.laps) / metersPerKm / s.duration, nil
}

func (s *Swimming) Calories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimSpeedShift) * swimWeightMultiplier * s.weight * s.duration, nil
}
