// Package guild holds the per-guild configuration the bot operates under.
package guild

import (
	"fmt"
	"time"
)

// Settings is the per-guild configuration record: the intake channel where
// ticket commands are accepted, the archive channel transcripts are delivered
// to, and the moderator role granted visibility into ticket channels. All
// three start unset and are populated incrementally by setup commands.
type Settings struct {
	dbID            uint
	guildID         string
	guildName       string
	intakeChannelID string
	archiveChannelID string
	moderatorRoleID string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSettings creates the empty configuration row for a freshly joined guild.
func NewSettings(guildID, guildName string) (*Settings, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}

	now := time.Now().UTC()
	return &Settings{
		guildID:   guildID,
		guildName: guildName,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSettings rebuilds guild settings from their persisted state.
func ReconstructSettings(
	dbID uint,
	guildID, guildName string,
	intakeChannelID, archiveChannelID, moderatorRoleID string,
	createdAt, updatedAt time.Time,
) (*Settings, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("settings database ID cannot be zero")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}

	return &Settings{
		dbID:             dbID,
		guildID:          guildID,
		guildName:        guildName,
		intakeChannelID:  intakeChannelID,
		archiveChannelID: archiveChannelID,
		moderatorRoleID:  moderatorRoleID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (s *Settings) DBID() uint               { return s.dbID }
func (s *Settings) GuildID() string          { return s.guildID }
func (s *Settings) GuildName() string        { return s.guildName }
func (s *Settings) IntakeChannelID() string  { return s.intakeChannelID }
func (s *Settings) ArchiveChannelID() string { return s.archiveChannelID }
func (s *Settings) ModeratorRoleID() string  { return s.moderatorRoleID }
func (s *Settings) CreatedAt() time.Time     { return s.createdAt }
func (s *Settings) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Settings) SetDBID(dbID uint) error {
	if s.dbID != 0 {
		return fmt.Errorf("settings database ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("settings database ID cannot be zero")
	}
	s.dbID = dbID
	return nil
}

// HasIntakeChannel reports whether an intake channel has been configured.
func (s *Settings) HasIntakeChannel() bool { return s.intakeChannelID != "" }

// HasModeratorRole reports whether a moderator role has been configured.
func (s *Settings) HasModeratorRole() bool { return s.moderatorRoleID != "" }

// HasArchiveChannel reports whether an archive channel has been configured.
// Archival is best-effort and skipped when unset.
func (s *Settings) HasArchiveChannel() bool { return s.archiveChannelID != "" }

// CanOpenTickets reports whether ticket creation is permitted: both the
// intake channel and the moderator role must be set.
func (s *Settings) CanOpenTickets() bool {
	return s.HasIntakeChannel() && s.HasModeratorRole()
}

// SetIntakeChannel points the guild at a new intake channel. Idempotent:
// a later valid value overwrites the prior one.
func (s *Settings) SetIntakeChannel(channelID string) error {
	if channelID == "" {
		return fmt.Errorf("intake channel ID cannot be empty")
	}
	s.intakeChannelID = channelID
	s.updatedAt = time.Now().UTC()
	return nil
}

// SetArchiveChannel points the guild at a new archive channel.
func (s *Settings) SetArchiveChannel(channelID string) error {
	if channelID == "" {
		return fmt.Errorf("archive channel ID cannot be empty")
	}
	s.archiveChannelID = channelID
	s.updatedAt = time.Now().UTC()
	return nil
}

// SetModeratorRole points the guild at a new moderator role.
func (s *Settings) SetModeratorRole(roleID string) error {
	if roleID == "" {
		return fmt.Errorf("moderator role ID cannot be empty")
	}
	s.moderatorRoleID = roleID
	s.updatedAt = time.Now().UTC()
	return nil
}
