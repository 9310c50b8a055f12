package entity

// Record is a catalog document (game, player or session) passed through
// from the store untouched.
type Record map[string]any

// Catalog collections.
const (
	CollectionGames    = "games"
	CollectionPlayers  = "player"
	CollectionSessions = "session"
	CollectionUsers    = "users"
)
