package session

import "context"

// Store maps a conversation id to its current State.
//
// Get returns Idle for an unknown id. Set overwrites unconditionally; callers
// serialize writers per id with a Locker.
type Store interface {
	Get(ctx context.Context, conversationID int64) (State, error)
	Set(ctx context.Context, conversationID int64, st State) error
}
