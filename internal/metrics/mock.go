package metrics

import (
	"math/rand"
	"time"
)

// MockGPU simulates a single RTX 4090 with jittering readings.
type MockGPU struct {
	rng *rand.Rand
}

func NewMockGPU() *MockGPU {
	return &MockGPU{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *MockGPU) Device(index int) (GPUDevice, error) {
	if index != 0 {
		return nil, ErrNoDevice
	}
	return mockDevice{rng: m.rng}, nil
}

type mockDevice struct {
	rng *rand.Rand
}

func (d mockDevice) Name() (string, error) {
	return "NVIDIA GeForce RTX 4090", nil
}

func (d mockDevice) MemoryInfo() (MemoryInfo, error) {
	total := uint64(24576) * 1024 * 1024
	used := uint64(8+d.rng.Intn(4)) * 1024 * 1024 * 1024
	return MemoryInfo{Total: total, Used: used}, nil
}

func (d mockDevice) Temperature(TemperatureSensor) (uint32, error) {
	return uint32(60 + d.rng.Intn(10)), nil
}

func (d mockDevice) Clock(kind ClockKind) (uint32, error) {
	if kind == ClockMemory {
		return 10501, nil
	}
	return uint32(2400 + d.rng.Intn(200)), nil
}

func (d mockDevice) FanSpeed(int) (uint32, error) {
	return uint32(40 + d.rng.Intn(10)), nil
}

func (d mockDevice) PowerUsage() (uint32, error) {
	return uint32(150000 + d.rng.Intn(50000)), nil // mW
}

// MockCPU simulates an 8-core host at 20-30% load.
type MockCPU struct {
	rng   *rand.Rand
	usage float64
}

func NewMockCPU() *MockCPU {
	return &MockCPU{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *MockCPU) Refresh() error {
	m.usage = 20 + m.rng.Float64()*10
	return nil
}

func (m *MockCPU) GlobalUsage() float64 {
	return m.usage
}

func (m *MockCPU) Temperature() (float32, bool) {
	return 0, true
}
