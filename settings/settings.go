// Package settings persists player preferences between sessions.
package settings

import (
	"fmt"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
)

const (
	playerNameKey = "player_name"
	noGhostKey    = "no_ghost"
	languageKey   = "language"
)

// Settings wraps its own viper instance, so independent reads don't
// share state through the package globals.
type Settings struct {
	v *viper.Viper
}

// ReadSettings loads settings.json from the config directory, creating
// it on first run.
func ReadSettings() (*Settings, error) {
	return ReadSettingsFrom(configdir.LocalConfig("tetris"))
}

// ReadSettingsFrom loads settings.json from an explicit directory.
func ReadSettingsFrom(configPath string) (*Settings, error) {
	if err := configdir.MakePath(configPath); err != nil {
		return nil, fmt.Errorf("unable to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("json")
	v.AddConfigPath(configPath)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := v.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &Settings{v: v}, nil
}

func (s *Settings) GetPlayerName() string {
	name := s.v.GetString(playerNameKey)
	if name == "" {
		return "player"
	}
	return name
}

func (s *Settings) SetPlayerName(name string) error {
	s.v.Set(playerNameKey, name)
	return s.v.WriteConfig()
}

// GetNoGhost reports whether the ghost piece is hidden.
func (s *Settings) GetNoGhost() bool {
	return s.v.GetBool(noGhostKey)
}

func (s *Settings) SetNoGhost(noGhost bool) error {
	s.v.Set(noGhostKey, noGhost)
	return s.v.WriteConfig()
}

func (s *Settings) GetLanguage() string {
	lang := s.v.GetString(languageKey)
	if lang == "" {
		return "en"
	}
	return lang
}

func (s *Settings) SetLanguage(lang string) error {
	s.v.Set(languageKey, lang)
	return s.v.WriteConfig()
}
