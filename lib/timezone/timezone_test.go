package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentSeason(t *testing.T) {
	cases := []struct {
		now    time.Time
		expect int
	}{
		{time.Date(2024, time.January, 15, 0, 0, 0, 0, Location), 2023},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, Location), 2023},
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, Location), 2024},
		{time.Date(2024, time.July, 10, 0, 0, 0, 0, Location), 2024},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, Location), 2024},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, CurrentSeason(test.now), "at %s", test.now)
	}
}
