package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kodflow/meshbus/internal/domain/bus"
)

func TestNewRoutingKey_PacksCompoundForm(t *testing.T) {
	t.Parallel()

	k := bus.NewRoutingKey(0x12, 0x34)
	assert.Equal(t, uint8(0x12), k.SourceNodeID())
	assert.Equal(t, uint8(0x34), k.TopicID())
	assert.Equal(t, bus.RoutingKey(0x1234), k)
}

func TestTrafficClass_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "best-effort", bus.BestEffort.String())
	assert.Equal(t, "SRT", bus.SoftRealTime.String())
	assert.Equal(t, "HRT", bus.HardRealTime.String())
	assert.Equal(t, "unknown", bus.TrafficClass(99).String())
}
