package discord

import "github.com/bwmarrin/discordgo"

// Slash command names. The interaction dispatcher switches on these
// constants so a rename here is caught at compile time everywhere.
const (
	cmdTicket           = "ticket"
	cmdFinish           = "finish"
	cmdSetupTicket      = "setup_ticket_channel"
	cmdSetupModerator   = "setup_moderator_role"
	cmdSetupFileChannel = "setup_file_channel"
)

const (
	optMessage   = "message"
	optChannelID = "channel_id"
	optRole      = "role"
)

// Commands returns the full slash command set the bot registers globally.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdTicket,
			Description: "Create a new ticket.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optMessage,
					Description: "The message of your ticket",
					Required:    true,
				},
			},
		},
		{
			Name:        cmdFinish,
			Description: "Finish current ticket, this action can not be undoned.",
		},
		{
			Name:        cmdSetupTicket,
			Description: "Setup a channel to create your tickets.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optChannelID,
					Description: "Insert the channel id.",
					Required:    true,
				},
			},
		},
		{
			Name:        cmdSetupModerator,
			Description: "Setup a role to handle open tickets.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optRole,
					Description: "Insert the role",
					Required:    true,
				},
			},
		},
		{
			Name:        cmdSetupFileChannel,
			Description: "Setup a channel to receive ticket history files.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optChannelID,
					Description: "Insert the channel id.",
					Required:    true,
				},
			},
		},
	}
}
