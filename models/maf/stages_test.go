package maf

import (
	"testing"

	"gohan/maf/models/constants"
	st "gohan/maf/models/constants/stage"

	"github.com/stretchr/testify/assert"
)

func TestOrderStageCounts(t *testing.T) {
	t.Run("should count and order by the configured stages", func(t *testing.T) {
		labels := []string{"StageIV", "StageI", "StageII", "StageI", "StageIV", "StageI"}

		counts := OrderStageCounts(labels, st.Defaults)

		assert.Equal(t, []StageCount{
			{Stage: st.StageI, Count: 3},
			{Stage: st.StageII, Count: 1},
			{Stage: st.StageIV, Count: 2},
		}, counts)
	})

	t.Run("should put unconfigured stages last, alphabetically", func(t *testing.T) {
		labels := []string{"Zeta", "StageII", "Alpha", "Zeta"}

		assert.Equal(t,
			[]constants.Stage{st.StageII, "Alpha", "Zeta"},
			OrderedStages(labels, st.Defaults))
	})

	t.Run("should return nothing for no labels", func(t *testing.T) {
		assert.Empty(t, OrderStageCounts(nil, st.Defaults))
	})
}
