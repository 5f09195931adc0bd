package button

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultThresholdsAreValid(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
}

func TestThresholdValidation(t *testing.T) {
	valid := DefaultThresholds()

	tt := []struct {
		name   string
		mutate func(*Thresholds)
		ok     bool
	}{
		{
			"defaults",
			func(*Thresholds) {},
			true,
		},
		{
			"zero debounce",
			func(th *Thresholds) { th.Debounce = 0 },
			false,
		},
		{
			"negative window",
			func(th *Thresholds) { th.DoubleClickWindow = -time.Second },
			false,
		},
		{
			"zero long press",
			func(th *Thresholds) { th.LongPress = 0 },
			false,
		},
		{
			"tier 1 equal to long press",
			func(th *Thresholds) { th.ExtraLongPress1 = th.LongPress },
			false,
		},
		{
			"tier 2 below tier 1",
			func(th *Thresholds) { th.ExtraLongPress2 = th.ExtraLongPress1 - time.Millisecond },
			false,
		},
		{
			"tight but ordered",
			func(th *Thresholds) {
				th.LongPress = 10 * time.Millisecond
				th.ExtraLongPress1 = 11 * time.Millisecond
				th.ExtraLongPress2 = 12 * time.Millisecond
			},
			true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			th := valid
			tc.mutate(&th)
			err := th.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
