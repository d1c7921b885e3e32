package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemoSourceDefaults(t *testing.T) {
	store := NewStore()
	defer store.Close()

	src := NewDemoSource(store, 0, nil)
	assert.Equal(t, DefaultDemoInterval, src.interval, "non-positive interval falls back to default")
	assert.NotNil(t, src.log, "nil logger falls back to noop")

	src = NewDemoSource(store, 100*time.Millisecond, nil)
	assert.Equal(t, 100*time.Millisecond, src.interval)
}

func TestDemoSourcePublishesImmediately(t *testing.T) {
	store := NewStore()
	defer store.Close()

	// A huge interval keeps the ticker out of the picture: everything this
	// test sees is the synchronous first publish.
	src := NewDemoSource(store, time.Hour, nil)
	src.Start()
	defer src.Stop()

	main, ok := store.Main()
	require.True(t, ok, "driving snapshot published on start")
	assert.Equal(t, "P", main.Gear)
	assert.Equal(t, 0.0, *main.Speed)
	assert.Equal(t, 850, *main.RPM)

	fuel, ok := store.Fuel()
	require.True(t, ok, "fuel snapshot published on start")
	assert.Equal(t, 36.5, *fuel.Volume)
	assert.Equal(t, 45.0, *fuel.Capacity)
	assert.Equal(t, 589.0, *fuel.Range)

	trip, ok := store.Trip()
	require.True(t, ok, "trip snapshot published on start")
	assert.Equal(t, 84213.0, *trip.Odometer)
	assert.Equal(t, 0.0, *trip.Distance)
	assert.Equal(t, 0, *trip.Duration)

	tires, ok := store.Tires()
	require.True(t, ok, "tire snapshot published on start")
	assert.Nil(t, tires.FrontLeft.Pressure, "tire sensors have not warmed up yet")
	assert.Nil(t, tires.RearRight.Pressure)

	temps, ok := store.Temps()
	require.True(t, ok, "temperature snapshot published on start")
	assert.Equal(t, 17.5, *temps.Cabin)
	assert.Nil(t, temps.Ambient, "ambient sensor has not warmed up yet")
}

func TestDemoSourceTicks(t *testing.T) {
	store := NewStore()
	defer store.Close()

	ch := store.SubscribeMain()

	src := NewDemoSource(store, 10*time.Millisecond, nil)
	src.Start()
	defer src.Stop()

	// First delivery is the synchronous start snapshot
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no start snapshot")
	}

	// The RPM wobble makes every tick a distinct snapshot
	select {
	case got := <-ch:
		require.NotNil(t, got.RPM)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick snapshot")
	}
}

func TestDemoSourceStopIdempotent(t *testing.T) {
	store := NewStore()
	defer store.Close()

	src := NewDemoSource(store, 10*time.Millisecond, nil)
	src.Start()

	src.Stop()
	src.Stop() // second call is a no-op
}

func TestDemoSourceStopWithoutStart(t *testing.T) {
	store := NewStore()
	defer store.Close()

	src := NewDemoSource(store, 10*time.Millisecond, nil)
	src.Stop() // nothing running, should not hang
}

func TestDemoStatePhaseAdvance(t *testing.T) {
	st := newDemoState()
	assert.Equal(t, "P", st.currentPhase().gear)

	// The opening park phase holds for 16 ticks
	for i := 0; i < 16; i++ {
		st.step(DefaultDemoInterval)
	}
	assert.Equal(t, "R", st.currentPhase().gear)
}

func TestDemoStatePlanLoops(t *testing.T) {
	st := newDemoState()

	total := 0
	for _, ph := range drivePlan {
		total += ph.hold
	}
	for i := 0; i < total; i++ {
		st.step(DefaultDemoInterval)
	}

	// After one full plan the phase index is back at the start
	assert.Equal(t, 0, st.phase)
	assert.Equal(t, "P", st.currentPhase().gear)
}

func TestDemoStateDeterministic(t *testing.T) {
	a := newDemoState()
	b := newDemoState()

	for i := 0; i < 100; i++ {
		a.step(DefaultDemoInterval)
		b.step(DefaultDemoInterval)
	}

	assert.Equal(t, a.speed, b.speed)
	assert.Equal(t, a.fuel, b.fuel)
	assert.Equal(t, a.odometer, b.odometer)
	assert.Equal(t, a.rpm(), b.rpm())
}

func TestDemoStateFuelNeverNegative(t *testing.T) {
	st := newDemoState()
	st.fuel = 0.001

	for i := 0; i < 500; i++ {
		st.step(DefaultDemoInterval)
		assert.GreaterOrEqual(t, st.fuel, 0.0)
	}
}

func TestDemoStateRPMIdlesInPark(t *testing.T) {
	st := newDemoState()

	// Phase 0 is park: revs stay near idle regardless of the wobble
	rpm := st.rpm()
	assert.InDelta(t, demoIdleRPM, rpm, 40)
}
