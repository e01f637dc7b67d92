package store

import "time"

// Platform identifies the streaming service an artist is featured on.
type Platform string

// Supported platforms.
const (
	PlatformYouTube    Platform = "YouTube"
	PlatformSpotify    Platform = "Spotify"
	PlatformDeezer     Platform = "Deezer"
	PlatformSoundCloud Platform = "SoundCloud"
	PlatformAppleMusic Platform = "Apple Music"
)

// User is an account able to rate artists and accrue rewards. PasswordHash
// holds a bcrypt hash; plain passwords are never persisted.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Artist is one entry of the fixed ratable catalog.
type Artist struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ImageURL  string   `json:"imageUrl"`
	Platform  Platform `json:"platform"`
	Genre     string   `json:"genre,omitempty"`
	Followers int64    `json:"followers,omitempty"`
}

// Rating records a user's score for an artist. At most one rating exists per
// (user, artist) pair; resubmitting the pair overwrites the stored record.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ArtistID  string    `json:"artistId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransactionType distinguishes reward credits from payout debits.
type TransactionType string

// Transaction types.
const (
	TransactionRating     TransactionType = "rating"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus tracks whether the external side of a transaction has
// settled.
type TransactionStatus string

// Transaction statuses.
const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
)

// Transaction is one ledger row. Amounts are signed: credits positive,
// debits negative. ArtistID is set only for rating credits.
type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Amount    float64           `json:"amount"`
	Type      TransactionType   `json:"type"`
	ArtistID  string            `json:"artistId,omitempty"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// DailyRatingLimit counts the new ratings a user created on one local
// calendar day. One record exists per (user, date).
type DailyRatingLimit struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Count  int    `json:"count"`
}
