package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"helpdesk/internal/shared/logger"
)

// Bot owns the gateway connection: it wires the event handlers onto the
// session, opens it, and keeps the registered slash commands in sync.
type Bot struct {
	session  *discordgo.Session
	handlers *EventHandlers
	logger   logger.Interface
}

func NewBot(session *discordgo.Session, handlers *EventHandlers, logger logger.Interface) *Bot {
	return &Bot{
		session:  session,
		handlers: handlers,
		logger:   logger,
	}
}

// NewSession builds a discordgo session with the intents the ticket
// lifecycle needs: guild membership, messages with content, and reactions.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMessageReactions

	return session, nil
}

// Start connects to the gateway and overwrites the application's global
// slash commands with the current set.
func (b *Bot) Start() error {
	b.session.AddHandler(b.handlers.OnReady)
	b.session.AddHandler(b.handlers.OnInteractionCreate)
	b.session.AddHandler(b.handlers.OnMessageCreate)
	b.session.AddHandler(b.handlers.OnMessageReactionAdd)
	b.session.AddHandler(b.handlers.OnGuildCreate)
	b.session.AddHandler(b.handlers.OnGuildDelete)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	b.logger.Infow("refreshing application commands")
	appID := b.session.State.User.ID
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, "", Commands()); err != nil {
		b.closeQuietly()
		return fmt.Errorf("failed to register application commands: %w", err)
	}
	b.logger.Infow("application commands refreshed", "count", len(Commands()))

	return nil
}

// Stop disconnects from the gateway. Registered commands are left in place
// so a restart does not flicker them for users.
func (b *Bot) Stop() {
	b.closeQuietly()
}

func (b *Bot) closeQuietly() {
	if err := b.session.Close(); err != nil {
		b.logger.Errorw("failed to close discord session", "error", err)
	}
}
