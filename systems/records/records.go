// Package records keeps each level's best clear on disk.
package records

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/bastion/config"
	"github.com/quasilyte/gdata"
)

// LevelRecord is the best result stored on disk for one level
type LevelRecord struct {
	Clears    int     `json:"clears"`
	BestTime  float64 `json:"bestTime"`  // Seconds of battle time, lower is better
	BestShots int     `json:"bestShots"` // Shots fired during the best clear
}

// itemStore is the part of *gdata.Manager the records use
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var recordStore itemStore

// Init opens the gdata store for level records
func Init() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	recordStore = m
	return nil
}

func recordKey(level string) string {
	return "record_" + level
}

// Load returns the stored record for level, or nil when there is none
func Load(level string) (*LevelRecord, error) {
	if recordStore == nil {
		return nil, nil
	}

	data, err := recordStore.LoadItem(recordKey(level))
	if err != nil {
		log.Printf("Warning: Could not load record for %s: %v", level, err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record LevelRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse record for %s: %v", level, err)
		return nil, err
	}
	return &record, nil
}

// Clear merges a finished battle into the stored record for level.
// It returns the updated record and whether the clear set a new best time.
func Clear(level string, elapsed float64, shots int) (LevelRecord, bool) {
	var prev LevelRecord
	if r, err := Load(level); err == nil && r != nil {
		prev = *r
	}

	record, best := prev.Merge(elapsed, shots)
	if recordStore == nil {
		return record, best
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize record for %s: %v", level, err)
		return record, best
	}
	if err := recordStore.SaveItem(recordKey(level), data); err != nil {
		log.Printf("Warning: Could not save record for %s: %v", level, err)
	}
	return record, best
}

// Merge counts one more clear and keeps the faster of the two times
func (r LevelRecord) Merge(elapsed float64, shots int) (LevelRecord, bool) {
	r.Clears++
	if r.Clears == 1 || elapsed < r.BestTime {
		r.BestTime = elapsed
		r.BestShots = shots
		return r, true
	}
	return r, false
}
