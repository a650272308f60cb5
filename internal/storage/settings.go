package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"studentlife/internal/sim"
)

// Settings is the player preference record, persisted separately from
// the save. Volume and dark mode are stored for compatibility; only
// difficulty and notifications drive behavior here.
type Settings struct {
	Volume        int    `json:"volume"`
	Difficulty    string `json:"difficulty"`
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		Volume:        100,
		Difficulty:    string(sim.DefaultDifficulty),
		Notifications: true,
	}
}

// EncodeSettings serializes the settings record.
func EncodeSettings(set Settings) (string, error) {
	raw, err := json.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(raw), nil
}

// DecodeSettings deserializes a settings record.
func DecodeSettings(raw string) (Settings, error) {
	set := DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	return set, nil
}

// LoadSettings reads the settings record, falling back to defaults when
// absent.
func LoadSettings(ctx context.Context, s *Store) (Settings, error) {
	raw, ok, err := s.Get(ctx, SettingsKey)
	if err != nil {
		return DefaultSettings(), err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	return DecodeSettings(raw)
}

// SaveSettings encodes and writes the settings record.
func SaveSettings(ctx context.Context, s *Store, set Settings) error {
	raw, err := EncodeSettings(set)
	if err != nil {
		return err
	}
	return s.Set(ctx, SettingsKey, raw)
}
