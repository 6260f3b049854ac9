package variantClassification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList(t *testing.T) {
	al := NewAllowList(DefaultCodingVariants())

	t.Run("should contain every coding variant", func(t *testing.T) {
		for _, c := range CodingVariants {
			assert.True(t, al.Contains(string(c)), c)
		}
		assert.Len(t, al, len(CodingVariants))
	})

	t.Run("should not contain non-coding variants", func(t *testing.T) {
		for _, c := range []string{"Silent", "Intron", "3'UTR", "IGR", "", "missense_mutation"} {
			assert.False(t, al.Contains(c), c)
		}
	})
}
