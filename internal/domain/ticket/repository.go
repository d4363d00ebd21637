package ticket

import "context"

// TicketRepository is the registry of tickets. It is the source of truth for
// "is this channel an open ticket"; callers always re-read instead of
// holding private copies.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// FindOpenByChannel returns the open ticket bound to the channel, or a
	// not-found error. At most one ticket exists per channel.
	FindOpenByChannel(ctx context.Context, channelID string) (*Ticket, error)
	// FindByChannel returns the ticket bound to the channel regardless of
	// its open flag.
	FindByChannel(ctx context.Context, channelID string) (*Ticket, error)
	FindByTicketID(ctx context.Context, ticketID string) (*Ticket, error)
	ListByGuild(ctx context.Context, guildID string) ([]*Ticket, error)
	DeleteByGuild(ctx context.Context, guildID string) error
}

// MessageRepository stores messages captured while a ticket is open.
type MessageRepository interface {
	Save(ctx context.Context, m *TranscriptMessage) error
	// ListByChannel returns all captured messages for the channel ordered by
	// creation time ascending, stable on ties.
	ListByChannel(ctx context.Context, channelID string) ([]*TranscriptMessage, error)
	DeleteByChannels(ctx context.Context, channelIDs []string) error
}
