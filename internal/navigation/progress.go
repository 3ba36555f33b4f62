package navigation

import "math"

const (
	// StepAdvanceMeters is how close to a step's end point the traveller must
	// be before the next step becomes current.
	StepAdvanceMeters = 20.0
	// DefaultOffRouteMeters is the off-route threshold used when none is given.
	DefaultOffRouteMeters = 50.0
	// DefaultArrivalMeters is the radius around a stop that counts as arrived.
	DefaultArrivalMeters = 30.0
)

// Step is a single routed maneuver.
type Step struct {
	Index           int    `json:"index"`
	Instruction     string `json:"instruction"`
	InstructionHTML string `json:"instructionHtml,omitempty"`
	Distance        int    `json:"distance"`
	DistanceText    string `json:"distanceText,omitempty"`
	Duration        int    `json:"duration"`
	DurationText    string `json:"durationText,omitempty"`
	Maneuver        string `json:"maneuver,omitempty"`
	StartLocation   LatLng `json:"startLocation"`
	EndLocation     LatLng `json:"endLocation"`
}

// Route is the routed path between two tour stops.
type Route struct {
	Steps             []Step   `json:"steps"`
	Polyline          []LatLng `json:"polyline"`
	TotalDistance     int      `json:"totalDistance"`
	TotalDistanceText string   `json:"totalDistanceText"`
	TotalDuration     int      `json:"totalDuration"`
	TotalDurationText string   `json:"totalDurationText"`
}

// Progress is the traveller's position on a route after one location update.
type Progress struct {
	CurrentStepIndex       int    `json:"currentStepIndex"`
	CurrentStep            *Step  `json:"currentStep"`
	NextStep               *Step  `json:"nextStep"`
	DistanceToManeuver     int    `json:"distanceToManeuver"`
	DistanceToManeuverText string `json:"distanceToManeuverText"`
	OffRoute               bool   `json:"isOffRoute"`
}

// ArrivalState tells whether the traveller has reached a stop.
type ArrivalState struct {
	DistanceToStop         int     `json:"distanceToStop"`
	IsWithinRange          bool    `json:"isWithinRange"`
	ArrivalThresholdMeters float64 `json:"arrivalThresholdMeters"`
}

// FindStep scans forward from index from and returns the step the
// traveller at loc is on. A step whose end point is closer than
// StepAdvanceMeters hands over to the following one, at most one step per
// call. The result is never lower than from.
func FindStep(steps []Step, from int, loc LatLng) int {
	if len(steps) == 0 {
		return 0
	}
	from = clampIndex(from, len(steps))
	last := len(steps) - 1

	for i := from; i <= last; i++ {
		end := steps[i].EndLocation
		if !end.Valid() {
			return i
		}
		d := Distance(loc, end)
		if d < StepAdvanceMeters && i < last {
			return i + 1
		}
		if d >= StepAdvanceMeters {
			return i
		}
	}
	return last
}

// OffRoute reports whether loc is farther than threshold meters from every
// point of the polyline. A distance equal to the threshold is on route.
// The scan stops early once a point within half the threshold is found.
// An empty or unusable polyline is never off route.
func OffRoute(polyline []LatLng, loc LatLng, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultOffRouteMeters
	}

	minDistance := math.Inf(1)
	seen := false
	for _, p := range polyline {
		if !p.Valid() {
			continue
		}
		seen = true
		if d := Distance(loc, p); d < minDistance {
			minDistance = d
		}
		if minDistance < threshold/2 {
			return false
		}
	}
	if !seen {
		return false
	}
	return minDistance > threshold
}

// Evaluate computes the progress for one location update. current is the
// step index the caller was on; it only ever moves forward. A nil or
// invalid sample leaves the index where it was and is never off route, and
// an empty route always yields step 0.
func Evaluate(route Route, current int, loc *Sample, threshold float64) Progress {
	n := len(route.Steps)
	if n == 0 {
		return Progress{DistanceToManeuverText: FormatDistance(0)}
	}
	current = clampIndex(current, n)

	var p Progress
	if loc != nil && loc.Valid() {
		if next := FindStep(route.Steps, current, loc.LatLng); next > current {
			current = next
		}
		if end := route.Steps[current].EndLocation; end.Valid() {
			p.DistanceToManeuver = int(math.Round(Distance(loc.LatLng, end)))
		}
		p.OffRoute = OffRoute(route.Polyline, loc.LatLng, threshold)
	}

	p.CurrentStepIndex = current
	step := route.Steps[current]
	p.CurrentStep = &step
	if current+1 < n {
		next := route.Steps[current+1]
		p.NextStep = &next
	}
	p.DistanceToManeuverText = FormatDistance(float64(p.DistanceToManeuver))
	return p
}

// Arrival measures the distance from loc to a stop against the arrival radius.
func Arrival(stop LatLng, loc *Sample, threshold float64) ArrivalState {
	if threshold <= 0 {
		threshold = DefaultArrivalMeters
	}
	state := ArrivalState{ArrivalThresholdMeters: threshold}
	if loc == nil || !loc.Valid() || !stop.Valid() {
		return state
	}
	d := Distance(loc.LatLng, stop)
	state.DistanceToStop = int(math.Round(d))
	state.IsWithinRange = d <= threshold
	return state
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
