package models

import "errors"

var (
	// ErrUnsupportedGameType is returned when a game-log ingestion is requested
	// for anything other than regular-season games. The rejection happens
	// before any network call.
	ErrUnsupportedGameType = errors.New("unsupported game type")

	// ErrInvalidSide is returned when a lineup is requested for a side other
	// than Home or Visiting
	ErrInvalidSide = errors.New("invalid side")
)
