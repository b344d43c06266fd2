package factory

import (
	"fmt"

	"github.com/automoto/fps01/archetypes"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// CreateArena populates the world from an arena description: props,
// platforms, the light, the input and diagnostics singletons and finally the
// player at the arena spawn (or the configured one).
func CreateArena(w donburi.World, space physics.Adapter, arena *leveldata.Arena) (*donburi.Entry, error) {
	for _, prop := range arena.Props {
		if _, err := CreateProp(w, space, prop); err != nil {
			return nil, err
		}
	}
	for _, p := range arena.Platforms {
		if _, err := CreatePlatform(w, space, p); err != nil {
			return nil, err
		}
	}

	CreateLight(w)
	archetypes.Input.Spawn(w)
	archetypes.Diagnostics.Spawn(w)

	spawn := cfg.Player.Spawn
	if arena.HasSpawn {
		spawn = arena.Spawn
	}
	player, err := CreatePlayer(w, space, spawn)
	if err != nil {
		return nil, fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	log.Info().
		Str("subsystem", "arena").
		Str("arena", arena.Name).
		Int("props", len(arena.Props)).
		Int("platforms", len(arena.Platforms)).
		Msg("arena created")

	return player, nil
}
