package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/takkar/brimstone/internal/model"
)

// Key layout: one namespace per character, one entry per concern.
func statsKey(character string) string   { return "character:" + character + ":stats" }
func loadoutKey(character string) string { return "character:" + character + ":loadout" }

// SaveStats seals and stores a character's stat snapshot.
func SaveStats(ctx context.Context, store Store, codec *Codec, character string, stats *model.StatBlock) error {
	payload, err := json.Marshal(stats.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding stat snapshot: %w", err)
	}
	sealed, err := codec.Seal(payload)
	if err != nil {
		return err
	}
	return store.Save(ctx, statsKey(character), sealed)
}

// LoadStats restores a character's stat snapshot. found is false when no
// save exists for the character.
func LoadStats(ctx context.Context, store Store, codec *Codec, character string, stats *model.StatBlock) (found bool, err error) {
	sealed, err := store.Load(ctx, statsKey(character))
	if err != nil {
		return false, err
	}
	if sealed == nil {
		return false, nil
	}
	payload, err := codec.Open(sealed)
	if err != nil {
		return false, err
	}
	var snap model.StatSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return false, fmt.Errorf("decoding stat snapshot: %w", err)
	}
	stats.RestoreSnapshot(snap)
	return true, nil
}

// SaveLoadout stores the character's selected skill ids.
func SaveLoadout(ctx context.Context, store Store, codec *Codec, character string, skillIDs []string) error {
	payload, err := json.Marshal(skillIDs)
	if err != nil {
		return fmt.Errorf("encoding loadout: %w", err)
	}
	sealed, err := codec.Seal(payload)
	if err != nil {
		return err
	}
	return store.Save(ctx, loadoutKey(character), sealed)
}

// LoadLoadout restores the character's selected skill ids, or nil when no
// loadout was saved.
func LoadLoadout(ctx context.Context, store Store, codec *Codec, character string) ([]string, error) {
	sealed, err := store.Load(ctx, loadoutKey(character))
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}
	payload, err := codec.Open(sealed)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(payload, &ids); err != nil {
		return nil, fmt.Errorf("decoding loadout: %w", err)
	}
	return ids, nil
}
