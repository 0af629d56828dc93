package kraken

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleUnmarshal(t *testing.T) {
	var c Candle

	err := json.Unmarshal([]byte(`[1688671200,"30306.1","30306.2","30305.7","30305.7","30306.1","3.39243896",23]`), &c)
	require.NoError(t, err)

	assert.True(t, c.StartTime().Equal(time.Unix(1688671200, 0)))
	assert.Equal(t, "30306.1", c.Open().String())
	assert.Equal(t, "30306.2", c.High().String())
	assert.Equal(t, "30305.7", c.Low().String())
	assert.Equal(t, "30305.7", c.Close().String())
	assert.Equal(t, "30306.1", c.VWAP().String())
	assert.Equal(t, "3.39243896", c.Volume().String())
	assert.Equal(t, 23, c.Count())
}

func TestCandleUnmarshalRejectsBadRows(t *testing.T) {
	rows := []string{
		`[1688671200,"30306.1"]`,
		`["1688671200","30306.1","30306.2","30305.7","30305.7","30306.1","3.39243896",23]`,
		`[1688671200,30306.1,"30306.2","30305.7","30305.7","30306.1","3.39243896",23]`,
		`[1688671200,"abc","30306.2","30305.7","30305.7","30306.1","3.39243896",23]`,
		`[1688671200,"30306.1","30306.2","30305.7","30305.7","30306.1","3.39243896","23"]`,
		`{"open":"1"}`,
	}

	for _, row := range rows {
		var c Candle

		assert.Error(t, json.Unmarshal([]byte(row), &c), "Row %s should not have parsed.", row)
	}
}
