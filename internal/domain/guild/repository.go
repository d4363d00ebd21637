package guild

import "context"

// SettingsRepository stores per-guild configuration. Read before any ticket
// operation; written only by setup operations and the join/leave lifecycle.
type SettingsRepository interface {
	Save(ctx context.Context, s *Settings) error
	Update(ctx context.Context, s *Settings) error
	FindByGuild(ctx context.Context, guildID string) (*Settings, error)
	DeleteByGuild(ctx context.Context, guildID string) error
}
