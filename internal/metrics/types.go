package metrics

import (
	"math"
)

// bytesPerGB is the decimal-ish divisor the overlay has always used for VRAM.
// It is neither 1e9 nor 2^30; keep it so readings match earlier releases.
const bytesPerGB = 1024000000.0

// GPUSnapshot holds the GPU readings taken during one collection.
type GPUSnapshot struct {
	Name              string
	MemoryUsedGB      float32
	MemoryTotalGB     float32
	MemoryUsedPercent int8    // Rounded used/total, see UsedPercent
	Temperature       uint32  // GPU core sensor in Celsius
	CoreClock         uint32  // Graphics clock in MHz
	MemoryClock       uint32  // Memory clock in MHz
	FanSpeed          uint32  // Fan 0 speed in percent
	PowerUsage        float64 // Board power in watts
}

// CPUSnapshot holds the CPU readings taken in the same collection as the
// GPUSnapshot it is paired with.
type CPUSnapshot struct {
	UsagePercent int8
	Temperature  *float32 // nil when the host cannot report it
	FanSpeed     *uint32  // reserved, never populated
}

// TemperatureC returns the CPU temperature and whether one was reported.
func (c CPUSnapshot) TemperatureC() (float32, bool) {
	if c.Temperature == nil {
		return 0, false
	}
	return *c.Temperature, true
}

// MemoryInfo is the raw memory reading of a GPU in bytes.
type MemoryInfo struct {
	Total uint64
	Used  uint64
}

// TemperatureSensor selects which on-board sensor to read.
type TemperatureSensor int

const (
	SensorGPU TemperatureSensor = iota
)

// ClockKind selects which clock domain to read.
type ClockKind int

const (
	ClockGraphics ClockKind = iota
	ClockMemory
)

func (k ClockKind) String() string {
	switch k {
	case ClockGraphics:
		return "graphics"
	case ClockMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// GPUDevice exposes the per-device getters. Each may fail independently.
type GPUDevice interface {
	Name() (string, error)
	MemoryInfo() (MemoryInfo, error)
	Temperature(sensor TemperatureSensor) (uint32, error)
	Clock(kind ClockKind) (uint32, error)
	FanSpeed(fan int) (uint32, error)
	PowerUsage() (uint32, error) // milliwatts
}

// GPUProvider hands out device handles by index.
type GPUProvider interface {
	Device(index int) (GPUDevice, error)
}

// CPUProvider is a refreshable view of system CPU telemetry.
type CPUProvider interface {
	Refresh() error
	GlobalUsage() float64
	Temperature() (float32, bool)
}

// BytesToGB converts a byte count to the gigabytes shown on the panel.
func BytesToGB(bytes uint64) float32 {
	return float32(float64(bytes) / bytesPerGB)
}

// UsedPercent returns round(used/total*100) squeezed into an int8.
// A zero total is an error rather than a NaN.
func UsedPercent(used, total uint64) (int8, error) {
	if total == 0 {
		return 0, ErrZeroMemoryTotal
	}
	return ClampInt8(math.Round(float64(used) / float64(total) * 100)), nil
}

// ClampInt8 saturates v into the int8 range. It is lossy on purpose: the
// values it feeds are display-only percentages. NaN becomes 0.
func ClampInt8(v float64) int8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt8:
		return math.MaxInt8
	case v <= math.MinInt8:
		return math.MinInt8
	default:
		return int8(v)
	}
}
