package service

import "errors"

// Service-level errors exposed to the application layer. Storage taxonomy
// errors are translated into these where the cause is unambiguous.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrRoomNameTaken = errors.New("room name already taken")
	ErrAlreadyMember = errors.New("user is already a member of this room")
	ErrWrongPassword = errors.New("wrong room password")

	// ErrDanglingReference is returned when a write names a room or user that
	// no longer exists and the engine cannot tell which endpoint is missing.
	ErrDanglingReference = errors.New("room or user does not exist")

	ErrEmptyUsername = errors.New("username must not be empty")
	ErrEmptyRoomName = errors.New("room name must not be empty")
	ErrEmptyMessage  = errors.New("message content must not be empty")
)
