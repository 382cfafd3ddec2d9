package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDMap(t *testing.T) {
	m := NewIdMap()

	assert.Equal(t, 0, m.GetID("jqt"))
	assert.Equal(t, 1, m.GetID("rhn"))
	assert.Equal(t, 0, m.GetID("jqt"))
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, "rhn", m.GetStr(1))

	_, ok := m.Lookup("xhk")
	assert.False(t, ok)

	assert.Equal(t, []string{"jqt", "rhn"}, m.Labels())
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, int64(3), Min(int64(3), int64(7)))
	assert.Equal(t, 7, Max(3, 7))
}
