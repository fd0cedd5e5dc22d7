package contract

// maintaining index keys for querying tokens per owner

import (
	"encoding/json"
	"fmt"
)

// addIDToIndex ensures id exists in the JSON array at indexKey (no duplicates)
func addIDToIndex(store Store, indexKey string, id string) error {
	ptr := store.Get(indexKey)
	var ids []string
	if ptr != nil && *ptr != "" {
		if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
			return fmt.Errorf("unmarshal index %s: %w", indexKey, err)
		}
	}
	// check duplicate
	for _, e := range ids {
		if e == id {
			return nil
		}
	}
	ids = append(ids, id)
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	store.Set(indexKey, string(b))
	return nil
}

// removeIDFromIndex removes id from the JSON array at indexKey (if present)
func removeIDFromIndex(store Store, indexKey string, id string) error {
	ptr := store.Get(indexKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return fmt.Errorf("unmarshal index %s: %w", indexKey, err)
	}
	newIds := make([]string, 0, len(ids))
	found := false
	for _, e := range ids {
		if e == id {
			found = true
			continue
		}
		newIds = append(newIds, e)
	}
	if !found {
		// nothing to do
		return nil
	}
	b, err := json.Marshal(newIds)
	if err != nil {
		return err
	}
	store.Set(indexKey, string(b))
	return nil
}

// getIDsFromIndex returns the array of ids stored at indexKey
func getIDsFromIndex(store Store, indexKey string) ([]string, error) {
	ptr := store.Get(indexKey)
	if ptr == nil || *ptr == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return nil, fmt.Errorf("unmarshal index %s: %w", indexKey, err)
	}
	return ids, nil
}
