package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"witt-interpreter-be/internal/entity"
)

// RunRepository holds interpretation snapshots in process memory. Snapshots
// are stored whole; callers never mutate a stored value in place.
type RunRepository struct {
	cache *cache.Cache
}

func NewRunRepository() *RunRepository {
	// Runs are short-lived; an hour of retention covers polling and retries,
	// expired entries are purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &RunRepository{
		cache: c,
	}
}

func (r *RunRepository) Save(snapshot *entity.Interpretation) {
	r.cache.Set(snapshot.RunId.String(), snapshot, cache.DefaultExpiration)
}

func (r *RunRepository) Get(runId uuid.UUID) (*entity.Interpretation, bool) {
	if x, found := r.cache.Get(runId.String()); found {
		return x.(*entity.Interpretation), true
	}
	return nil, false
}

func (r *RunRepository) Delete(runId uuid.UUID) {
	r.cache.Delete(runId.String())
}
