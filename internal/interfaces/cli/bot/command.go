package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	guilduc "helpdesk/internal/application/guild/usecases"
	ticketuc "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/application/transcript"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/scheduler"
	"helpdesk/internal/interfaces/discord"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/markdown"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Start the Discord bot",
		Long:  `Connect to the Discord gateway and serve the ticket lifecycle until interrupted.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(loggerOptions(cfg)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	conn := database.Get()
	if err := migration.NewManager(&cfg.Database).Migrate(conn, migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	policy, err := ticketuc.ParseRatingPolicy(cfg.Tickets.RatingPolicy)
	if err != nil {
		return err
	}

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}

	gateway := discord.NewGateway(session, log.Named("discord.gateway"))

	ticketRepo := repository.NewTicketRepository(conn)
	messageRepo := repository.NewTranscriptMessageRepository(conn)
	deletionRepo := repository.NewPendingDeletionRepository(conn)
	settingsRepo := repository.NewGuildSettingsRepository(conn)
	txManager := shareddb.NewTransactionManager(conn)

	generator, err := transcript.NewGenerator(markdown.NewService())
	if err != nil {
		return fmt.Errorf("failed to build transcript generator: %w", err)
	}
	archiver := transcript.NewArchiver(settingsRepo, gateway, log.Named("transcript.archiver"))

	handlers := discord.NewEventHandlers(
		ticketuc.NewOpenTicketUseCase(ticketRepo, settingsRepo, gateway, log.Named("usecase.open_ticket")),
		ticketuc.NewCaptureMessageUseCase(ticketRepo, messageRepo, log.Named("usecase.capture_message")),
		ticketuc.NewRequestCloseUseCase(ticketRepo, gateway, log.Named("usecase.request_close")),
		ticketuc.NewRecordRatingUseCase(
			ticketRepo,
			messageRepo,
			deletionRepo,
			gateway,
			generator,
			archiver,
			ticketuc.LifecycleConfig{DeletionDelay: cfg.Tickets.DeletionDelay, Policy: policy},
			log.Named("usecase.record_rating"),
		),
		guilduc.NewRegisterGuildUseCase(settingsRepo, gateway, log.Named("usecase.register_guild")),
		guilduc.NewRemoveGuildUseCase(ticketRepo, messageRepo, deletionRepo, settingsRepo, log.Named("usecase.remove_guild")),
		guilduc.NewSetIntakeChannelUseCase(settingsRepo, gateway, log.Named("usecase.set_intake_channel")),
		guilduc.NewSetArchiveChannelUseCase(settingsRepo, gateway, log.Named("usecase.set_archive_channel")),
		guilduc.NewSetModeratorRoleUseCase(settingsRepo, gateway, log.Named("usecase.set_moderator_role")),
		txManager,
		log.Named("discord.handlers"),
	)

	b := discord.NewBot(session, handlers, log.Named("discord.bot"))
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Deletions scheduled before a restart are picked up by the first sweep.
	reaperCtx, cancelReaper := context.WithCancel(context.Background())
	defer cancelReaper()

	reaper := scheduler.NewDeletionReaper(deletionRepo, gateway, cfg.Tickets.SweepInterval, log.Named("scheduler.reaper"))
	goroutine.SafeGo(log, "deletion_reaper", func() {
		reaper.Start(reaperCtx)
	})
	defer reaper.Stop()

	log.Infow("bot is running, press ctrl+c to exit")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")
	return nil
}

func loggerOptions(cfg *config.Config) logger.Options {
	format := "text"
	if cfg.Logger.Format == "json" {
		format = "json"
	}
	return logger.Options{
		Level:      cfg.Logger.Level,
		Format:     format,
		OutputPath: cfg.Logger.OutputPath,
	}
}
