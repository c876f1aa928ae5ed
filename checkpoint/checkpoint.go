// Package checkpoint provides bbolt-backed persistence for long
// null-model runs, so an interrupted run can resume at the recorded
// trial instead of restarting.
package checkpoint

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the package logging variable.
var log = logging.MustGetLogger("checkpoint")

// MAIN is the bucket name for all checkpoint data.
var MAIN = []byte("main")

// State stores the progress of a null-model run: the number of
// finished trials, the finite trial values and the count of
// degenerate trials (kept separate: NaN does not survive JSON).
type State struct {
	Trials     int       `json:"trials"`
	Values     []float64 `json:"values"`
	Degenerate int       `json:"degenerate"`
}

// IO saves and loads run state with a minimum interval between saves.
type IO struct {
	db      *bolt.DB
	key     []byte
	last    time.Time
	seconds float64
}

// Open opens (creating if needed) a checkpoint database file.
func Open(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0666, &bolt.Options{Timeout: time.Second})
}

// NewIO creates a new IO writing under the given key at most once per
// the given number of seconds.
func NewIO(db *bolt.DB, key []byte, seconds float64) *IO {
	return &IO{db: db, key: key, seconds: seconds}
}

// Old returns true if the last save is older than the save interval.
func (s *IO) Old() bool {
	return time.Since(s.last).Seconds() >= s.seconds
}

// Save saves the state unconditionally.
func (s *IO) Save(state *State) error {
	// Even if saving fails, we do not want to run this code too often.
	s.last = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		log.Error("Error serializing checkpoint:", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}
		return b.Put(s.key, data)
	})
	if err != nil {
		log.Error("Error saving checkpoint:", err)
	}
	return err
}

// MaybeSave saves the state if the save interval has passed.
func (s *IO) MaybeSave(state *State) {
	if s.Old() {
		_ = s.Save(state)
	}
}

// Load returns the stored state, or nil if nothing was saved under
// the key.
func (s *IO) Load() (*State, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}
		if v := b.Get(s.key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}
	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}
