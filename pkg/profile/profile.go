package profile

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinTargetSleep = 4
	MaxTargetSleep = 10
	MinTargetStudy = 1
	MaxTargetStudy = 8

	maxNameLength = 100
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile holds the user's name and the daily targets advice is measured against.
// Targets are whole hours.
type Profile struct {
	Name        string
	TargetSleep int
	TargetStudy int
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile %s: %s", e.Field, e.Reason)
}

// Validate checks the targets against their allowed ranges and trims the name.
func Validate(p Profile) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if len([]rune(p.Name)) > maxNameLength {
		return Profile{}, &ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	if p.TargetSleep < MinTargetSleep || p.TargetSleep > MaxTargetSleep {
		return Profile{}, &ValidationError{
			Field:  "targetSleep",
			Reason: fmt.Sprintf("%d is outside of [%d, %d]", p.TargetSleep, MinTargetSleep, MaxTargetSleep),
		}
	}
	if p.TargetStudy < MinTargetStudy || p.TargetStudy > MaxTargetStudy {
		return Profile{}, &ValidationError{
			Field:  "targetStudy",
			Reason: fmt.Sprintf("%d is outside of [%d, %d]", p.TargetStudy, MinTargetStudy, MaxTargetStudy),
		}
	}
	return p, nil
}
