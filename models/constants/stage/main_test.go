package stage

import (
	"testing"

	"gohan/maf/models/constants"

	"github.com/stretchr/testify/assert"
)

func TestStages(t *testing.T) {
	t.Run("should build stages from configured labels", func(t *testing.T) {
		assert.Equal(t, Defaults, FromStrings([]string{"StageI", " StageII", "", "StageIII", "StageIV "}))
	})

	t.Run("should cast case-insensitively to the configured spelling", func(t *testing.T) {
		assert.Equal(t, StageIII, CastToStage("stageiii", Defaults))
		assert.Equal(t, Unknown, CastToStage("StageV", Defaults))
		assert.True(t, IsKnownStage("STAGEIV", Defaults))
		assert.False(t, IsKnownStage("", Defaults))
	})

	t.Run("should rank unknown stages last", func(t *testing.T) {
		assert.Equal(t, 0, Rank(StageI, Defaults))
		assert.Equal(t, 3, Rank(StageIV, Defaults))
		assert.Equal(t, len(Defaults), Rank(constants.Stage("StageX"), Defaults))
	})
}
