package testutil

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/giftstore/table"
)

var (
	names      = []string{"Bike", "Lamp", "Bookcase", "Cube Stools", "Kettle", "Desk", "Rug", "Mirror"}
	categories = []string{"Living", "Bedroom", "Kitchen", "Office", "Outdoor"}
	conditions = []string{"New", "Like New", "Older"}
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Gift returns one gift record with the given id.
func (r *RNG) Gift(id string) table.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gift(id)
}

// Gifts returns n gift records with unique ids "gift-000".."gift-<n-1>" in
// shuffled order, so dataset order differs from key order.
func (r *RNG) Gifts(n int) []table.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := make([]table.Record, n)
	for i, p := range r.rand.Perm(n) {
		recs[i] = r.gift(fmt.Sprintf("gift-%03d", p))
	}
	return recs
}

func (r *RNG) gift(id string) table.Record {
	return table.Record{
		"id":        id,
		"name":      names[r.rand.Intn(len(names))],
		"category":  categories[r.rand.Intn(len(categories))],
		"condition": conditions[r.rand.Intn(len(conditions))],
		"zipcode":   fmt.Sprintf("%05d", 10000+r.rand.Intn(90000)),
		"age_days":  r.rand.Intn(3650),
	}
}

// SeedDocument encodes recs as a {"docs":[...]} seed document.
func SeedDocument(recs []table.Record) []byte {
	if recs == nil {
		recs = []table.Record{}
	}
	data, err := json.Marshal(map[string]any{"docs": recs})
	if err != nil {
		panic(fmt.Sprintf("testutil: encode seed document: %v", err))
	}
	return data
}

// IDs returns the "id" attribute of each record, in order.
func IDs(recs []table.Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = fmt.Sprint(rec["id"])
	}
	return out
}
