package usecases

import "context"

type RegisterGuildExecutor interface {
	Execute(ctx context.Context, cmd RegisterGuildCommand) (*RegisterGuildResult, error)
}

type RemoveGuildExecutor interface {
	Execute(ctx context.Context, cmd RemoveGuildCommand) (*RemoveGuildResult, error)
}

type SetIntakeChannelExecutor interface {
	Execute(ctx context.Context, cmd SetIntakeChannelCommand) (*SetIntakeChannelResult, error)
}

type SetArchiveChannelExecutor interface {
	Execute(ctx context.Context, cmd SetArchiveChannelCommand) (*SetArchiveChannelResult, error)
}

type SetModeratorRoleExecutor interface {
	Execute(ctx context.Context, cmd SetModeratorRoleCommand) (*SetModeratorRoleResult, error)
}
