package types

import "strings"

// BirdKind names a Flyer specialization that can be trained.
type BirdKind string

const (
	BirdKindBird    BirdKind = "bird"
	BirdKindEagle   BirdKind = "eagle"
	BirdKindPenguin BirdKind = "penguin"
)

// ParseBirdKind normalises s and reports whether it names a known kind.
func ParseBirdKind(s string) (BirdKind, bool) {
	k := BirdKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case BirdKindBird, BirdKindEagle, BirdKindPenguin:
		return k, true
	}
	return "", false
}

// String returns the string form of the kind.
func (k BirdKind) String() string { return string(k) }
