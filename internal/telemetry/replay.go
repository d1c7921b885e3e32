package telemetry

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vdash/vdash/internal/errors"
	"github.com/vdash/vdash/internal/logger"
)

// Script is a recorded drive: a sequence of timed steps applied in order.
// Each step may set any subset of the five snapshot groups. A present group
// replaces that stream's snapshot wholesale — fields left out of it become
// absent readings. A group missing from a step leaves its stream untouched.
type Script struct {
	Loop  bool         `yaml:"loop"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep is one timed state change. Hold is how long the state stays
// before the next step; it defaults to one second.
type ScriptStep struct {
	Hold  ScriptDuration `yaml:"hold"`
	Main  *ScriptMain    `yaml:"main"`
	Fuel  *ScriptFuel    `yaml:"fuel"`
	Trip  *ScriptTrip    `yaml:"trip"`
	Tires *ScriptTires   `yaml:"tires"`
	Temps *ScriptTemps   `yaml:"temps"`
}

// ScriptDuration is a duration parsed from a YAML string like "500ms" or "2s".
type ScriptDuration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *ScriptDuration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid hold %q (use a duration string like \"2s\")", value.Line, value.Value)
	}
	if dur < 0 {
		return fmt.Errorf("line %d: hold %q is negative", value.Line, value.Value)
	}
	*d = ScriptDuration(dur)
	return nil
}

// ScriptMain sets the driving snapshot.
type ScriptMain struct {
	Gear  *string  `yaml:"gear"`
	Speed *float64 `yaml:"speed"`
	RPM   *int     `yaml:"rpm"`
}

// ScriptFuel sets the fuel snapshot.
type ScriptFuel struct {
	Volume         *float64 `yaml:"volume"`
	Capacity       *float64 `yaml:"capacity"`
	Range          *float64 `yaml:"range"`
	AvgConsumption *float64 `yaml:"avg_consumption"`
}

// ScriptTrip sets the trip snapshot.
type ScriptTrip struct {
	Odometer *float64 `yaml:"odometer"`
	Distance *float64 `yaml:"distance"`
	Duration *int     `yaml:"minutes"`
}

// ScriptWheel sets one tire reading.
type ScriptWheel struct {
	Pressure    *float64 `yaml:"pressure"`
	Temperature *float64 `yaml:"temperature"`
}

// ScriptTires sets the tire snapshot. A wheel left out reads as absent.
type ScriptTires struct {
	FrontLeft  *ScriptWheel `yaml:"front_left"`
	FrontRight *ScriptWheel `yaml:"front_right"`
	RearLeft   *ScriptWheel `yaml:"rear_left"`
	RearRight  *ScriptWheel `yaml:"rear_right"`
}

// ScriptTemps sets the temperature snapshot.
type ScriptTemps struct {
	Cabin   *float64 `yaml:"cabin"`
	Ambient *float64 `yaml:"ambient"`
}

func (m *ScriptMain) metrics() MainMetrics {
	out := MainMetrics{Speed: m.Speed, RPM: m.RPM}
	if m.Gear != nil {
		out.Gear = *m.Gear
	}
	return out
}

func (m *ScriptFuel) metrics() FuelMetrics {
	return FuelMetrics{
		Volume:         m.Volume,
		Capacity:       m.Capacity,
		Range:          m.Range,
		AvgConsumption: m.AvgConsumption,
	}
}

func (m *ScriptTrip) metrics() TripMetrics {
	return TripMetrics{Odometer: m.Odometer, Distance: m.Distance, Duration: m.Duration}
}

func (w *ScriptWheel) wheel() Wheel {
	if w == nil {
		return Wheel{}
	}
	return Wheel{Pressure: w.Pressure, Temperature: w.Temperature}
}

func (m *ScriptTires) metrics() TireMetrics {
	return TireMetrics{
		FrontLeft:  m.FrontLeft.wheel(),
		FrontRight: m.FrontRight.wheel(),
		RearLeft:   m.RearLeft.wheel(),
		RearRight:  m.RearRight.wheel(),
	}
}

func (m *ScriptTemps) metrics() TemperatureMetrics {
	return TemperatureMetrics{Cabin: m.Cabin, Ambient: m.Ambient}
}

// SampleScript is a small working drive script, written out by 'vdash init'
// when the replay source is selected.
const SampleScript = `# vdash drive script
# Each step holds for 'hold' (default 1s) and may set any of the groups
# main / fuel / trip / tires / temps. A group that is present replaces the
# stream's snapshot: fields left out of it render as absent. A group that
# is absent leaves the stream untouched.
steps:
  - hold: 2s
    main: {gear: P, speed: 0, rpm: 860}
    fuel: {volume: 36.5, capacity: 45, range: 540, avg_consumption: 6.1}
    trip: {odometer: 84213, distance: 0, minutes: 0}
    temps: {cabin: 18, ambient: 9}
  - hold: 2s
    main: {gear: D, speed: 32, rpm: 1650}
    tires:
      front_left: {pressure: 231, temperature: 24}
      front_right: {pressure: 229, temperature: 24}
      rear_left: {pressure: 234, temperature: 23}
      rear_right: {pressure: 196, temperature: 23}
  - hold: 3s
    main: {gear: D, speed: 104, rpm: 3350}
    fuel: {volume: 36.2, capacity: 45, range: 535, avg_consumption: 6.8}
    trip: {odometer: 84215, distance: 2.4, minutes: 4}
  - hold: 2s
    main: {gear: P, speed: 0, rpm: 850}
    temps: {cabin: 21}
`

// ParseScript parses a YAML drive script.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrReplay,
			"invalid drive script",
			"Fix the YAML; see the sample script written by 'vdash init'")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New(errors.ErrReplay,
			"drive script has no steps",
			"Add at least one entry under 'steps:'")
	}
	return &sc, nil
}

// LoadScript reads and parses a drive script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrReplay,
			fmt.Sprintf("cannot read drive script %s", path),
			"Check the path passed via --replay or source.replay_file")
	}
	return ParseScript(data)
}

// ReplaySource publishes a parsed drive script into a Store, one step per
// hold interval. After the final step it idles on the last state unless the
// script sets loop, in which case it starts over.
type ReplaySource struct {
	store  *Store
	script *Script
	log    logger.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// NewReplaySource creates a source that plays script into store.
func NewReplaySource(store *Store, script *Script, log logger.Logger) *ReplaySource {
	if log == nil {
		log = logger.Noop()
	}
	return &ReplaySource{
		store:  store,
		script: script,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Start begins playback. The first step is applied immediately.
func (r *ReplaySource) Start() {
	r.log.Debug("replay starting, %d steps, loop=%v", len(r.script.Steps), r.script.Loop)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			for i, st := range r.script.Steps {
				r.apply(st)
				hold := time.Duration(st.Hold)
				if hold <= 0 {
					hold = time.Second
				}
				select {
				case <-r.done:
					return
				case <-time.After(hold):
				}
				r.log.Debug("replay step %d/%d done", i+1, len(r.script.Steps))
			}
			if !r.script.Loop {
				r.log.Debug("replay finished, holding final state")
				<-r.done
				return
			}
		}
	}()
}

// Stop halts playback and waits for the goroutine to exit.
func (r *ReplaySource) Stop() {
	select {
	case <-r.done:
		return
	default:
	}
	close(r.done)
	r.wg.Wait()
}

func (r *ReplaySource) apply(st ScriptStep) {
	if st.Main != nil {
		r.store.PublishMain(st.Main.metrics())
	}
	if st.Fuel != nil {
		r.store.PublishFuel(st.Fuel.metrics())
	}
	if st.Trip != nil {
		r.store.PublishTrip(st.Trip.metrics())
	}
	if st.Tires != nil {
		r.store.PublishTires(st.Tires.metrics())
	}
	if st.Temps != nil {
		r.store.PublishTemps(st.Temps.metrics())
	}
}
