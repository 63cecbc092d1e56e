package filetest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boop-lang/boop/internal/filetest"
)

func TestScenarios(t *testing.T) {
	scenarios, err := filetest.LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			assert.Equal(t, sc.Want, filetest.Run(sc))
		})
	}
}
