package valueobjects

import "fmt"

// Rating is the binary closure outcome recorded from the requester's
// feedback reaction.
type Rating string

const (
	RatingPositive Rating = "positive"
	RatingNegative Rating = "negative"
)

// Reaction emoji recognized as rating glyphs on the feedback prompt.
const (
	EmojiThumbsUp   = "👍"
	EmojiThumbsDown = "👎"
)

var validRatings = map[Rating]bool{
	RatingPositive: true,
	RatingNegative: true,
}

// RatingFromEmoji maps a reaction emoji to a rating. Any emoji other than
// the two recognized glyphs yields ok=false and must leave the ticket open.
func RatingFromEmoji(emoji string) (Rating, bool) {
	switch emoji {
	case EmojiThumbsUp:
		return RatingPositive, true
	case EmojiThumbsDown:
		return RatingNegative, true
	}
	return "", false
}

func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid rating: %q", s)
	}
	return r, nil
}

func (r Rating) String() string {
	return string(r)
}

func (r Rating) IsValid() bool {
	return validRatings[r]
}

// Display returns the human-readable form used in transcripts and
// acknowledgement messages.
func (r Rating) Display() string {
	switch r {
	case RatingPositive:
		return "Positive"
	case RatingNegative:
		return "Negative"
	}
	return string(r)
}
