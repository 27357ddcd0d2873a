package engine

import "github.com/dreamerjackson/moonbag/rowparse"

// Storage persists the normalized records of one feed run.
type Storage interface {
	Save(feed string, runID int64, set *rowparse.RecordSet) error
}

type EmptyStorage struct{}

func (EmptyStorage) Save(string, int64, *rowparse.RecordSet) error {
	return nil
}
