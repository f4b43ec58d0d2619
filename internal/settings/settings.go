// Package settings stores the user preference record: theme, source and
// target language, and the notification flag. Reads always come back fully
// populated, with hard-coded defaults filling whatever the stored partial
// record lacks.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/alebedenko/lingualink/internal/kvstore"
)

const settingsKey = "settings"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings is the full preference record.
type Settings struct {
	Theme          string `json:"theme"`
	Language       string `json:"language"`
	TargetLanguage string `json:"targetLanguage"`
	Notifications  bool   `json:"notifications"`
}

// Patch carries optional field updates for Save. Nil fields are left
// untouched, so Save(Patch{}) returns the current record unchanged.
type Patch struct {
	Theme          *string `json:"theme,omitempty"`
	Language       *string `json:"language,omitempty"`
	TargetLanguage *string `json:"targetLanguage,omitempty"`
	Notifications  *bool   `json:"notifications,omitempty"`
}

// Defaults returns the record used when nothing is stored yet.
func Defaults() Settings {
	return Settings{
		Theme:          ThemeDark,
		Language:       "en",
		TargetLanguage: "es",
		Notifications:  true,
	}
}

// supportedLanguages is the fixed table of translation language codes the
// product offers.
var supportedLanguages = []string{
	"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh", "ar", "hi", "nl", "pl", "tr",
}

// Languages returns the supported-language table.
func Languages() []string {
	return slices.Clone(supportedLanguages)
}

// Supported reports whether code is in the supported-language table.
func Supported(code string) bool {
	return slices.Contains(supportedLanguages, code)
}

type Service struct {
	kv kvstore.Store
}

func NewService(kv kvstore.Store) *Service {
	return &Service{kv: kv}
}

// Get reads the stored partial record and merges it over the defaults.
// Absent or malformed stored data falls back fully to the defaults.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	out := Defaults()

	b, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		return out, fmt.Errorf("error reading settings: %w", err)
	}
	if len(b) == 0 {
		return out, nil
	}

	var stored Patch
	if err := json.Unmarshal(b, &stored); err != nil {
		return Defaults(), nil
	}

	apply(&out, stored)
	return out, nil
}

// Save merges the patch over the current full record (not over the raw
// defaults), persists the merged record, and returns it.
func (s *Service) Save(ctx context.Context, patch Patch) (Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return current, err
	}

	apply(&current, patch)

	b, err := json.Marshal(current)
	if err != nil {
		return current, fmt.Errorf("error encoding settings: %w", err)
	}
	if err := s.kv.Set(ctx, settingsKey, b); err != nil {
		return current, fmt.Errorf("error writing settings: %w", err)
	}
	return current, nil
}

func apply(s *Settings, p Patch) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.TargetLanguage != nil {
		s.TargetLanguage = *p.TargetLanguage
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
}
