package emote

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// catalogEntry is the on-disk shape of a cached global emote, matching
// the BetterTTV global-emotes payload. The fields are mapped explicitly
// rather than decoding straight into Emote, so a provider schema change
// surfaces here instead of propagating malformed records downstream.
type catalogEntry struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	ImageType string `json:"imageType"`
	UserID    string `json:"userId,omitempty"`
}

// LoadCatalog reads the cached global-emote file into canonical records.
// A missing or corrupt file is an error; the bot treats it as fatal at
// startup since it must not serve without its baseline catalog.
func LoadCatalog(path string) ([]Emote, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	emotes := make([]Emote, 0, len(entries))
	for _, e := range entries {
		if e.Code == "" {
			continue
		}
		emotes = append(emotes, Emote{
			ID:        e.ID,
			Code:      e.Code,
			ImageType: ImageType(e.ImageType),
			OwnerID:   e.UserID,
		})
	}
	return emotes, nil
}

// WriteCatalog replaces the cache file with the given set. The write
// goes through a temp file in the same directory followed by a rename,
// so a reader never observes a partially written catalog. Only the
// offline refresh job writes; the serving process reads once at start.
func WriteCatalog(path string, emotes []Emote) error {
	entries := make([]catalogEntry, 0, len(emotes))
	for _, e := range emotes {
		entries = append(entries, catalogEntry{
			ID:        e.ID,
			Code:      e.Code,
			ImageType: string(e.ImageType),
			UserID:    e.OwnerID,
		})
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "emotes-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace catalog %s: %w", path, err)
	}
	return nil
}
