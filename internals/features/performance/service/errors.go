package service

import "errors"

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidOtp       = errors.New("invalid or expired OTP")
)
