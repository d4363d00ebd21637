package usecases

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SetModeratorRoleCommand struct {
	GuildID   string
	GuildName string
	// RoleRef is the raw user input: either a role mention like <@&123> or a
	// bare role ID.
	RoleRef string
}

type SetModeratorRoleResult struct {
	RoleID   string
	RoleName string
}

// SetModeratorRoleUseCase designates the role granted access to every ticket
// channel. The referenced role must resolve on the platform; an invalid
// reference leaves the prior value intact.
type SetModeratorRoleUseCase struct {
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewSetModeratorRoleUseCase(
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *SetModeratorRoleUseCase {
	return &SetModeratorRoleUseCase{
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *SetModeratorRoleUseCase) Execute(ctx context.Context, cmd SetModeratorRoleCommand) (*SetModeratorRoleResult, error) {
	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}
	if cmd.RoleRef == "" {
		return nil, errors.NewValidationError("role is required")
	}

	roleID := unwrapRoleMention(cmd.RoleRef)

	role, err := uc.gateway.FetchRole(ctx, cmd.GuildID, roleID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Role %s not found", cmd.RoleRef))
	}

	settings, err := loadOrCreateSettings(ctx, uc.settingsRepo, cmd.GuildID, cmd.GuildName, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := settings.SetModeratorRole(role.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		uc.logger.Errorw("failed to persist moderator role", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to save guild settings")
	}

	uc.logger.Infow("moderator role configured",
		"guild_id", cmd.GuildID, "role_id", role.ID, "role_name", role.Name)

	return &SetModeratorRoleResult{RoleID: role.ID, RoleName: role.Name}, nil
}

// unwrapRoleMention extracts the role ID from a <@&id> mention, passing bare
// IDs through unchanged.
func unwrapRoleMention(ref string) string {
	if strings.HasPrefix(ref, "<@&") && strings.HasSuffix(ref, ">") {
		return ref[3 : len(ref)-1]
	}
	return ref
}
