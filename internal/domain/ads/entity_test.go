package ads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCTRByAdGroup(t *testing.T) {
	t.Run("builds a lookup keyed by ad group name", func(t *testing.T) {
		stats := []AdGroupStat{
			{AdGroupName: "ag1", CTR: 0.5},
			{AdGroupName: "ag2", CTR: 0.25},
		}

		baselines := CTRByAdGroup(stats)

		assert.Equal(t, 0.5, baselines["ag1"])
		assert.Equal(t, 0.25, baselines["ag2"])
	})

	t.Run("later duplicate wins", func(t *testing.T) {
		stats := []AdGroupStat{
			{AdGroupName: "ag1", CTR: 0.5},
			{AdGroupName: "ag1", CTR: 0.75},
		}

		baselines := CTRByAdGroup(stats)

		assert.Equal(t, 0.75, baselines["ag1"])
	})

	t.Run("missing ad group reads as zero", func(t *testing.T) {
		baselines := CTRByAdGroup(nil)

		assert.Equal(t, 0.0, baselines["anything"])
	})
}
