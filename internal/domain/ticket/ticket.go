package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/id"
)

// Channel name prefixes. Lowercase by construction: Discord normalizes text
// channel names to lowercase, and keeping the stored prefix lowercase makes
// the open->closed substring rename deterministic.
const (
	OpenChannelPrefix   = "open-"
	closedNameSubstring = "closed"
	openNameSubstring   = "open"
)

// Ticket is a unit of support work bound 1:1 to a dedicated channel, with
// exactly one open period and one closure outcome. A closed ticket is never
// reopened.
type Ticket struct {
	dbID          uint
	ticketID      string
	requesterID   string
	requesterName string
	guildID       string
	channelID     string
	open          bool
	rating        *vo.Rating
	createdAt     time.Time
	closedAt      *time.Time
}

// NewTicket creates an open ticket for the requester. The ticket ID is
// derived as "{requester-username}-{random-suffix}"; collisions are treated
// as negligible and not re-checked. The channel is bound separately once
// provisioned (see BindChannel).
func NewTicket(requesterID, requesterName, guildID string) (*Ticket, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("requester ID is required")
	}
	if requesterName == "" {
		return nil, fmt.Errorf("requester name is required")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}

	suffix, err := id.NewTicketSuffix()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket suffix: %w", err)
	}

	return &Ticket{
		ticketID:      fmt.Sprintf("%s-%s", strings.ToLower(requesterName), suffix),
		requesterID:   requesterID,
		requesterName: requesterName,
		guildID:       guildID,
		open:          true,
		createdAt:     time.Now().UTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket from its persisted state.
func ReconstructTicket(
	dbID uint,
	ticketID string,
	requesterID, requesterName string,
	guildID, channelID string,
	open bool,
	rating *vo.Rating,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("ticket database ID cannot be zero")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if rating != nil && !rating.IsValid() {
		return nil, fmt.Errorf("invalid rating: %q", *rating)
	}

	return &Ticket{
		dbID:          dbID,
		ticketID:      ticketID,
		requesterID:   requesterID,
		requesterName: requesterName,
		guildID:       guildID,
		channelID:     channelID,
		open:          open,
		rating:        rating,
		createdAt:     createdAt,
		closedAt:      closedAt,
	}, nil
}

func (t *Ticket) DBID() uint             { return t.dbID }
func (t *Ticket) TicketID() string       { return t.ticketID }
func (t *Ticket) RequesterID() string    { return t.requesterID }
func (t *Ticket) RequesterName() string  { return t.requesterName }
func (t *Ticket) GuildID() string        { return t.guildID }
func (t *Ticket) ChannelID() string      { return t.channelID }
func (t *Ticket) IsOpen() bool           { return t.open }
func (t *Ticket) Rating() *vo.Rating     { return t.rating }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) ClosedAt() *time.Time   { return t.closedAt }

// RequesterLabel is the "username<id>" form used in transcripts.
func (t *Ticket) RequesterLabel() string {
	return fmt.Sprintf("%s<%s>", t.requesterName, t.requesterID)
}

// ChannelName returns the name the ticket's channel is provisioned under.
func (t *Ticket) ChannelName() string {
	return OpenChannelPrefix + t.ticketID
}

// SetDBID records the database key after the first save.
func (t *Ticket) SetDBID(dbID uint) error {
	if t.dbID != 0 {
		return fmt.Errorf("ticket database ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("ticket database ID cannot be zero")
	}
	t.dbID = dbID
	return nil
}

// BindChannel associates the ticket with its provisioned channel.
func (t *Ticket) BindChannel(channelID string) error {
	if t.channelID != "" {
		return fmt.Errorf("ticket is already bound to channel %s", t.channelID)
	}
	if channelID == "" {
		return fmt.Errorf("channel ID cannot be empty")
	}
	t.channelID = channelID
	return nil
}

// Close performs the single authoritative open->closed transition: it sets
// the rating, stamps the closure time, and clears the open flag. Closing an
// already-closed ticket is rejected.
func (t *Ticket) Close(rating vo.Rating) error {
	if !rating.IsValid() {
		return fmt.Errorf("invalid rating: %q", rating)
	}
	if !t.open {
		return fmt.Errorf("ticket %s is already closed", t.ticketID)
	}

	now := time.Now().UTC()
	t.open = false
	t.rating = &rating
	t.closedAt = &now
	return nil
}

// OverrideRating replaces the stored rating on an already-closed ticket.
// Used only under the last-wins rating policy; it does not touch the closure
// timestamp or re-run closure side effects.
func (t *Ticket) OverrideRating(rating vo.Rating) error {
	if !rating.IsValid() {
		return fmt.Errorf("invalid rating: %q", rating)
	}
	if t.open {
		return fmt.Errorf("ticket %s is still open", t.ticketID)
	}
	t.rating = &rating
	return nil
}

// ClosedChannelName derives the post-closure channel name by replacing the
// first occurrence of "open" with "closed". Case-sensitive: creation always
// produces a lowercase "open-" prefix, so the substring is present by
// construction. A name without the substring is returned unchanged.
func ClosedChannelName(name string) string {
	return strings.Replace(name, openNameSubstring, closedNameSubstring, 1)
}
