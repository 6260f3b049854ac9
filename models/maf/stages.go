package maf

import (
	"gohan/maf/models/constants"
	st "gohan/maf/models/constants/stage"

	. "github.com/ahmetb/go-linq"
)

// OrderStageCounts groups stage labels and counts them. Configured stages
// come first in their configured order, any other label follows
// lexicographically.
func OrderStageCounts(labels []string, order []constants.Stage) []StageCount {
	var counts []StageCount

	From(labels).
		GroupByT(
			func(label string) string { return label },
			func(label string) string { return label },
		).
		SelectT(func(g Group) StageCount {
			return StageCount{
				Stage: constants.Stage(g.Key.(string)),
				Count: len(g.Group),
			}
		}).
		OrderByT(func(sc StageCount) int {
			return st.Rank(sc.Stage, order)
		}).
		ThenByT(func(sc StageCount) string {
			return string(sc.Stage)
		}).
		ToSlice(&counts)

	return counts
}

// OrderedStages returns the distinct stage labels in reporting order.
func OrderedStages(labels []string, order []constants.Stage) []constants.Stage {
	var stages []constants.Stage
	From(OrderStageCounts(labels, order)).
		SelectT(func(sc StageCount) constants.Stage { return sc.Stage }).
		ToSlice(&stages)
	return stages
}
