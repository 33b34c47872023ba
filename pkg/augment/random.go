package augment

import (
	"math/rand"
	"time"

	"github.com/askiada/go-augment/pkg/transform"
)

// Source is the generator owned by an Orchestrator. *math/rand.Rand implements it.
type Source interface {
	transform.Source
	// Int63 seeds the generators of concurrent workers.
	Int63() int64
}

func newDefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // augmentation is not security sensitive
}

// workerSources derives one generator per worker from src.
func workerSources(src Source, workers int) []transform.Source {
	res := make([]transform.Source, workers)
	for i := range res {
		res[i] = rand.New(rand.NewSource(src.Int63())) //nolint:gosec // augmentation is not security sensitive
	}

	return res
}
