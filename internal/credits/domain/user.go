package domain

import "time"

// User carries the engine-relevant slice of a platform account. Identity and
// authentication live in the auth service; this row exists so the engine can
// enforce daily limits and reject grants to unknown users.
type User struct {
	ID          string
	DisplayName string
	DailyLimit  int64 // credits per UTC day; 0 = uncapped
	IsAdmin     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
