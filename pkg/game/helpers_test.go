package game

import (
	"math/rand"

	"flappy/pkg/config"
)

// seqRand replays a fixed list of values, reduced modulo n
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.StartInMenu = false
	return cfg
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// recorder counts events by type
type recorder struct {
	counts map[EventType]int
	last   Event
}

func record(bus *EventBus) *recorder {
	r := &recorder{counts: map[EventType]int{}}
	bus.SubscribeAll(func(e Event) {
		r.counts[e.Type]++
		r.last = e
	})
	return r
}
