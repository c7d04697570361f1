package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_KeepsAllowedFlagsAndValues(t *testing.T) {
	args := []string{"-d", "demo.db", "-x", "junk", "--l=debug", "-l", "warn"}

	got := FilterArgs(args, []string{"-d", "-l", "--l"})

	assert.Equal(t, []string{"-d", "demo.db", "--l=debug", "-l", "warn"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	args := []string{"-d", "-l", "debug"}

	got := FilterArgs(args, []string{"-d", "-l"})

	assert.Equal(t, []string{"-d", "-l", "debug"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	assert.Empty(t, FilterArgs(nil, []string{"-d"}))
	assert.Empty(t, FilterArgs([]string{"-x", "1"}, []string{"-d"}))
}
