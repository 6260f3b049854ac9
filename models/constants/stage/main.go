package stage

import (
	"gohan/maf/models/constants"
	"strings"
)

const (
	Unknown constants.Stage = "Unknown"

	StageI   constants.Stage = "StageI"
	StageII  constants.Stage = "StageII"
	StageIII constants.Stage = "StageIII"
	StageIV  constants.Stage = "StageIV"
)

var Defaults = []constants.Stage{StageI, StageII, StageIII, StageIV}

func FromStrings(labels []string) []constants.Stage {
	stages := make([]constants.Stage, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		stages = append(stages, constants.Stage(l))
	}
	return stages
}

// CastToStage matches text case-insensitively against the given labels
// and returns the configured spelling.
func CastToStage(text string, known []constants.Stage) constants.Stage {
	for _, s := range known {
		if strings.EqualFold(string(s), strings.TrimSpace(text)) {
			return s
		}
	}
	return Unknown
}

func IsKnownStage(text string, known []constants.Stage) bool {
	return CastToStage(text, known) != Unknown
}

// Rank is the position of s in the configured order, or len(order)
// for labels that are not configured.
func Rank(s constants.Stage, order []constants.Stage) int {
	for i, o := range order {
		if o == s {
			return i
		}
	}
	return len(order)
}
