package tg

import (
	"fmt"
	"sync/atomic"
)

// IndexType selects how the segments of a [Line] or [Ring] are indexed.
type IndexType int

const (
	// Default uses the package-wide default, see [SetDefaultIndex].
	Default IndexType = iota
	// None builds no index. Queries scan every segment.
	None
	// Natural groups segments in vertex order.
	Natural
	// YStripes regroups segments into horizontal stripes before leveling,
	// which gives tighter rectangles for data that doesn't follow a
	// compact path.
	YStripes
)

func (ix IndexType) String() string {
	switch ix {
	case Default:
		return "Default"
	case None:
		return "None"
	case Natural:
		return "Natural"
	case YStripes:
		return "YStripes"
	default:
		return fmt.Sprintf("IndexType(%d)", int(ix))
	}
}

const (
	minSpread     = 2
	maxSpread     = 4096
	defaultSpread = 16
)

var (
	indexSetting  atomic.Int64
	spreadSetting atomic.Int64
)

func init() {
	indexSetting.Store(int64(Natural))
	spreadSetting.Store(defaultSpread)
}

// SetDefaultIndex sets the index type used by curves constructed with
// [Default]. Passing Default restores the initial setting, Natural.
//
// It panics if ix is not a known index type.
func SetDefaultIndex(ix IndexType) {
	switch ix {
	case Default:
		ix = Natural
	case None, Natural, YStripes:
	default:
		panic(fmt.Sprintf("invalid index type %v", ix))
	}
	indexSetting.Store(int64(ix))
}

// DefaultIndex returns the index type that [Default] currently resolves to.
func DefaultIndex() IndexType {
	return IndexType(indexSetting.Load())
}

// SetIndexSpread sets the number of children per index rectangle for curves
// constructed afterwards. The value is clamped to [2, 4096]. Passing a value
// <= 0 restores the initial setting of 16.
func SetIndexSpread(spread int) {
	if spread <= 0 {
		spread = defaultSpread
	}
	spreadSetting.Store(int64(clampSpread(spread)))
}

// IndexSpread returns the spread used for newly constructed curves.
func IndexSpread() int {
	return int(spreadSetting.Load())
}

func clampSpread(spread int) int {
	return min(max(spread, minSpread), maxSpread)
}

// resolveIndex maps Default to the package default and rejects unknown types.
func resolveIndex(ix IndexType) IndexType {
	switch ix {
	case Default:
		return DefaultIndex()
	case None, Natural, YStripes:
		return ix
	default:
		panic(fmt.Sprintf("invalid index type %v", ix))
	}
}
