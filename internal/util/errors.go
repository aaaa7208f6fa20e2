package util

import "errors"

var (
	ErrUserSkillNotFound   = errors.New("User skill not found")
	ErrInvalidChapterIndex = errors.New("Invalid chapter index")
	ErrScoreOutOfRange     = errors.New("Score must be between 0 and 20")
)
