package telemetry

import "sync"

// snapshot is the constraint for stream payloads: a value type that can
// compare itself against another of the same kind.
type snapshot[T any] interface {
	Equal(T) bool
}

// stream holds the latest snapshot of one metric group and its subscribers.
// Channels are buffered to one element and carry only the newest value: a
// publish drops the stale buffered snapshot before sending, so a consumer
// that falls behind skips intermediate states instead of queueing them.
type stream[T snapshot[T]] struct {
	latest T
	has    bool
	subs   []chan T
}

// publish stores v and fans it out. Publishing a snapshot equal to the
// current one is a no-op; streams emit on change only.
func (s *stream[T]) publish(v T) bool {
	if s.has && v.Equal(s.latest) {
		return false
	}
	s.latest = v
	s.has = true
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
	return true
}

// subscribe registers a new latest-only channel, pre-seeded with the current
// snapshot when one exists.
func (s *stream[T]) subscribe() chan T {
	ch := make(chan T, 1)
	if s.has {
		ch <- s.latest
	}
	s.subs = append(s.subs, ch)
	return ch
}

func (s *stream[T]) close() {
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

// Store is the view-model boundary between telemetry producers and the
// dashboard: five independently subscribable snapshot streams, one per
// metric group. Producers publish complete snapshots; the store suppresses
// no-op publishes and delivers the latest state to every subscriber.
type Store struct {
	mu     sync.RWMutex
	closed bool

	main  stream[MainMetrics]
	fuel  stream[FuelMetrics]
	trip  stream[TripMetrics]
	tires stream[TireMetrics]
	temps stream[TemperatureMetrics]
}

// NewStore returns an empty store with no snapshots recorded.
func NewStore() *Store {
	return &Store{}
}

// PublishMain records a driving snapshot and notifies subscribers.
// Publishing after Close is a no-op.
func (s *Store) PublishMain(m MainMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.main.publish(m)
}

// PublishFuel records a fuel snapshot and notifies subscribers.
func (s *Store) PublishFuel(m FuelMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.fuel.publish(m)
}

// PublishTrip records a trip snapshot and notifies subscribers.
func (s *Store) PublishTrip(m TripMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.trip.publish(m)
}

// PublishTires records a tire snapshot and notifies subscribers.
func (s *Store) PublishTires(m TireMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.tires.publish(m)
}

// PublishTemps records a temperature snapshot and notifies subscribers.
func (s *Store) PublishTemps(m TemperatureMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.temps.publish(m)
}

// SubscribeMain returns a latest-only channel of driving snapshots. When a
// snapshot already exists it is waiting on the channel. The channel closes
// when the store closes.
func (s *Store) SubscribeMain() <-chan MainMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return closedChan[MainMetrics]()
	}
	return s.main.subscribe()
}

// SubscribeFuel returns a latest-only channel of fuel snapshots.
func (s *Store) SubscribeFuel() <-chan FuelMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return closedChan[FuelMetrics]()
	}
	return s.fuel.subscribe()
}

// SubscribeTrip returns a latest-only channel of trip snapshots.
func (s *Store) SubscribeTrip() <-chan TripMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return closedChan[TripMetrics]()
	}
	return s.trip.subscribe()
}

// SubscribeTires returns a latest-only channel of tire snapshots.
func (s *Store) SubscribeTires() <-chan TireMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return closedChan[TireMetrics]()
	}
	return s.tires.subscribe()
}

// SubscribeTemps returns a latest-only channel of temperature snapshots.
func (s *Store) SubscribeTemps() <-chan TemperatureMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return closedChan[TemperatureMetrics]()
	}
	return s.temps.subscribe()
}

// Main returns the current driving snapshot and whether one has been
// published yet.
func (s *Store) Main() (MainMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.main.latest, s.main.has
}

// Fuel returns the current fuel snapshot.
func (s *Store) Fuel() (FuelMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuel.latest, s.fuel.has
}

// Trip returns the current trip snapshot.
func (s *Store) Trip() (TripMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trip.latest, s.trip.has
}

// Tires returns the current tire snapshot.
func (s *Store) Tires() (TireMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tires.latest, s.tires.has
}

// Temps returns the current temperature snapshot.
func (s *Store) Temps() (TemperatureMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temps.latest, s.temps.has
}

// Close closes every subscriber channel and drops future publishes. Safe to
// call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.main.close()
	s.fuel.close()
	s.trip.close()
	s.tires.close()
	s.temps.close()
}

func closedChan[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}
