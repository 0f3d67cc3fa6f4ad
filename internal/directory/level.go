// Package directory holds the member-directory rules: membership labels,
// view modes and the home page spotlight selection.
package directory

// Level is the display form of a membership rank.
type Level struct {
	Name  string
	Class string
}

var levels = map[int]Level{
	1: {Name: "Bronze", Class: "bronze"},
	2: {Name: "Silver", Class: "silver"},
	3: {Name: "Gold", Class: "gold"},
}

// GenericLevel is used for any rank outside 1..3.
var GenericLevel = Level{Name: "Member", Class: "member"}

// LevelOf maps a rank to its label. It never fails.
func LevelOf(rank int) Level {
	if l, ok := levels[rank]; ok {
		return l
	}
	return GenericLevel
}

// Featured reports whether a rank qualifies for the spotlight (Silver or Gold).
func Featured(rank int) bool {
	return rank == 2 || rank == 3
}
