package telemetry

import (
	"math"
	"sync"
	"time"

	"github.com/vdash/vdash/internal/logger"
)

// DefaultDemoInterval is the publish cadence of the simulated drive.
const DefaultDemoInterval = 250 * time.Millisecond

const (
	demoIdleRPM       = 850
	demoStartFuel     = 36.5    // liters
	demoStartOdometer = 84213.0 // km
	demoStartCabin    = 17.5    // °C
	demoTireWarmup    = 24      // ticks before tire sensors report
	demoAmbientDelay  = 12      // ticks before the ambient sensor reports
)

// demoPhase is one leg of the simulated drive plan.
type demoPhase struct {
	gear   string
	target float64 // speed the leg eases toward, km/h
	hold   int     // ticks before advancing
}

// drivePlan loops forever: park, back out, a city leg, a fast leg with a
// sport-mode stretch, then slow down and park again.
var drivePlan = []demoPhase{
	{gear: "P", target: 0, hold: 16},
	{gear: "R", target: 8, hold: 10},
	{gear: "N", target: 0, hold: 6},
	{gear: "D", target: 52, hold: 48},
	{gear: "D", target: 108, hold: 70},
	{gear: "S", target: 121, hold: 28},
	{gear: "D", target: 36, hold: 40},
	{gear: "P", target: 0, hold: 20},
}

// DemoSource publishes a deterministic simulated drive into a Store. It is
// the default snapshot producer, so the dashboard runs without any vehicle
// attached. The simulation is tick-driven and free of randomness: the same
// tick always produces the same snapshot. Sensor warm-up is modeled — tire
// and ambient readings stay absent for the first moments.
type DemoSource struct {
	store    *Store
	interval time.Duration
	log      logger.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// NewDemoSource creates a simulated drive publishing into store every
// interval. A non-positive interval falls back to DefaultDemoInterval.
func NewDemoSource(store *Store, interval time.Duration, log logger.Logger) *DemoSource {
	if interval <= 0 {
		interval = DefaultDemoInterval
	}
	if log == nil {
		log = logger.Noop()
	}
	return &DemoSource{
		store:    store,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start begins publishing. The first snapshots are published synchronously
// so subscribers see data before the first tick.
func (d *DemoSource) Start() {
	d.log.Debug("demo source starting, interval=%s", d.interval)

	st := newDemoState()
	st.publish(d.store, 0, d.interval)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for tick := 1; ; tick++ {
			select {
			case <-d.done:
				return
			case <-ticker.C:
			}
			st.step(d.interval)
			st.publish(d.store, tick, d.interval)
		}
	}()
}

// Stop halts the simulation and waits for the publishing goroutine to exit.
func (d *DemoSource) Stop() {
	select {
	case <-d.done:
		return
	default:
	}
	close(d.done)
	d.wg.Wait()
	d.log.Debug("demo source stopped")
}

// demoState holds the evolving simulation values between ticks.
type demoState struct {
	tick     int
	phase    int
	phaseAge int

	speed       float64
	fuel        float64
	consumption float64
	odometer    float64
	tripDist    float64
	cabin       float64
}

func newDemoState() *demoState {
	return &demoState{
		fuel:        demoStartFuel,
		consumption: 6.2,
		odometer:    demoStartOdometer,
		cabin:       demoStartCabin,
	}
}

func (s *demoState) currentPhase() demoPhase {
	return drivePlan[s.phase]
}

// step advances the simulation by one tick of the given length.
func (s *demoState) step(interval time.Duration) {
	s.tick++
	s.phaseAge++
	if s.phaseAge >= s.currentPhase().hold {
		s.phaseAge = 0
		s.phase = (s.phase + 1) % len(drivePlan)
	}

	t := float64(s.tick)
	ph := s.currentPhase()

	// Speed eases toward the phase target; everything else follows it.
	s.speed += (ph.target - s.speed) * 0.12
	if s.speed < 0.05 && ph.target == 0 {
		s.speed = 0
	}

	s.consumption = 6.2 + 1.1*math.Sin(t/40)

	dist := s.speed * interval.Hours()
	s.odometer += dist
	s.tripDist += dist
	s.fuel -= s.consumption / 100 * dist
	if s.fuel < 0 {
		s.fuel = 0
	}

	s.cabin += (22 - s.cabin) * 0.01
}

// rpm derives engine speed from road speed: idle in park and neutral, a
// single fixed ratio otherwise, with a small wobble so the value is alive.
func (s *demoState) rpm() int {
	wobble := int(40 * math.Sin(float64(s.tick)/3))
	switch s.currentPhase().gear {
	case "P", "N":
		return demoIdleRPM + wobble
	default:
		return demoIdleRPM + int(s.speed*24) + wobble
	}
}

func (s *demoState) wheel(base, offset float64) Wheel {
	t := float64(s.tick)
	return Wheel{
		Pressure:    Float64(base + 2.5*math.Sin(t/50+offset)),
		Temperature: Float64(s.ambient() + 9 + s.speed*0.09 + 1.2*math.Sin(t/30+offset)),
	}
}

func (s *demoState) ambient() float64 {
	return 11 + 1.4*math.Sin(float64(s.tick)/90)
}

// publish pushes the current state into the store. Main publishes every
// tick; the slower groups publish on a staggered cadence and rely on the
// store to drop no-op updates.
func (s *demoState) publish(store *Store, tick int, interval time.Duration) {
	store.PublishMain(MainMetrics{
		Gear:  s.currentPhase().gear,
		Speed: Float64(math.Round(s.speed)),
		RPM:   Int(s.rpm()),
	})

	if tick%4 == 0 {
		fuel := FuelMetrics{
			Volume:         Float64(s.fuel),
			Capacity:       Float64(DefaultTankCapacity),
			AvgConsumption: Float64(s.consumption),
		}
		if s.consumption > 0 {
			fuel.Range = Float64(math.Round(s.fuel / s.consumption * 100))
		}
		store.PublishFuel(fuel)
	}

	if tick%4 == 2 || tick == 0 {
		minutes := int((time.Duration(tick) * interval).Minutes())
		store.PublishTrip(TripMetrics{
			Odometer: Float64(s.odometer),
			Distance: Float64(s.tripDist),
			Duration: Int(minutes),
		})
	}

	if tick%8 == 1 || tick == 0 {
		var tires TireMetrics
		if tick >= demoTireWarmup {
			tires = TireMetrics{
				FrontLeft:  s.wheel(231, 0),
				FrontRight: s.wheel(229, 1.3),
				RearLeft:   s.wheel(234, 2.6),
				RearRight:  s.wheel(226, 3.9),
			}
		}
		store.PublishTires(tires)
	}

	if tick%8 == 5 || tick == 0 {
		temps := TemperatureMetrics{Cabin: Float64(s.cabin)}
		if tick >= demoAmbientDelay {
			temps.Ambient = Float64(s.ambient())
		}
		store.PublishTemps(temps)
	}
}
