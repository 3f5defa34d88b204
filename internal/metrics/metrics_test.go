package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	name    string
	mem     MemoryInfo
	temp    uint32
	core    uint32
	memClk  uint32
	fan     uint32
	powerMW uint32
	failOn  string
}

func (d *fakeDevice) fail(q string) error {
	if d.failOn == q {
		return errors.New(q + " unsupported")
	}
	return nil
}

func (d *fakeDevice) Name() (string, error) { return d.name, d.fail("name") }

func (d *fakeDevice) MemoryInfo() (MemoryInfo, error) { return d.mem, d.fail("memory") }

func (d *fakeDevice) Temperature(TemperatureSensor) (uint32, error) {
	return d.temp, d.fail("temperature")
}

func (d *fakeDevice) Clock(kind ClockKind) (uint32, error) {
	if kind == ClockMemory {
		return d.memClk, d.fail("memory clock")
	}
	return d.core, d.fail("graphics clock")
}

func (d *fakeDevice) FanSpeed(int) (uint32, error) { return d.fan, d.fail("fan") }

func (d *fakeDevice) PowerUsage() (uint32, error) { return d.powerMW, d.fail("power") }

type fakeGPU struct {
	dev *fakeDevice
}

func (g fakeGPU) Device(index int) (GPUDevice, error) {
	if g.dev == nil || index != 0 {
		return nil, ErrNoDevice
	}
	return g.dev, nil
}

type fakeCPU struct {
	usage      float64
	temp       float32
	hasTemp    bool
	refreshErr error
	refreshes  int
}

func (c *fakeCPU) Refresh() error {
	c.refreshes++
	return c.refreshErr
}

func (c *fakeCPU) GlobalUsage() float64 { return c.usage }

func (c *fakeCPU) Temperature() (float32, bool) { return c.temp, c.hasTemp }

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		name:    "Test GPU",
		mem:     MemoryInfo{Used: 2048000000, Total: 8192000000},
		temp:    64,
		core:    1950,
		memClk:  9501,
		fan:     42,
		powerMW: 215500,
	}
}

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, float32(1.0), BytesToGB(1024000000))
	assert.Equal(t, float32(0), BytesToGB(0))
	assert.InDelta(t, 8.0, BytesToGB(8192000000), 1e-6)
}

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		used, total uint64
		want        int8
	}{
		{0, 100, 0},
		{25, 100, 25},
		{2048000000, 8192000000, 25},
		{1, 3, 33},
		{2, 3, 67},
		{100, 100, 100},
		{5, 1000, 1}, // 0.5 rounds away from zero
	}

	for _, tt := range tests {
		got, err := UsedPercent(tt.used, tt.total)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "UsedPercent(%d, %d)", tt.used, tt.total)
	}
}

func TestUsedPercentZeroTotal(t *testing.T) {
	_, err := UsedPercent(10, 0)
	assert.ErrorIs(t, err, ErrZeroMemoryTotal)
}

func TestClampInt8(t *testing.T) {
	assert.Equal(t, int8(127), ClampInt8(200))
	assert.Equal(t, int8(-128), ClampInt8(-500))
	assert.Equal(t, int8(0), ClampInt8(math.NaN()))
	assert.Equal(t, int8(127), ClampInt8(math.Inf(1)))
	assert.Equal(t, int8(42), ClampInt8(42))
}

func TestCollect(t *testing.T) {
	cpu := &fakeCPU{usage: 37.9, temp: 0, hasTemp: true}
	c := NewCollector(fakeGPU{dev: newFakeDevice()}, cpu)

	gpu, cpuSnap, err := c.Collect()
	require.NoError(t, err)

	assert.Equal(t, "Test GPU", gpu.Name)
	assert.InDelta(t, 2.0, gpu.MemoryUsedGB, 1e-6)
	assert.InDelta(t, 8.0, gpu.MemoryTotalGB, 1e-6)
	assert.Equal(t, int8(25), gpu.MemoryUsedPercent)
	assert.Equal(t, uint32(64), gpu.Temperature)
	assert.Equal(t, uint32(1950), gpu.CoreClock)
	assert.Equal(t, uint32(9501), gpu.MemoryClock)
	assert.Equal(t, uint32(42), gpu.FanSpeed)
	assert.InDelta(t, 215.5, gpu.PowerUsage, 1e-9)

	assert.Equal(t, int8(37), cpuSnap.UsagePercent)
	temp, ok := cpuSnap.TemperatureC()
	assert.True(t, ok)
	assert.Equal(t, float32(0), temp)
	assert.Nil(t, cpuSnap.FanSpeed)
	assert.Equal(t, 1, cpu.refreshes)
}

func TestCollectOmitsAbsentCPUTemperature(t *testing.T) {
	c := NewCollector(fakeGPU{dev: newFakeDevice()}, &fakeCPU{usage: 5})

	_, cpuSnap, err := c.Collect()
	require.NoError(t, err)

	_, ok := cpuSnap.TemperatureC()
	assert.False(t, ok)
	assert.Nil(t, cpuSnap.Temperature)
}

func TestCollectIsAllOrNothing(t *testing.T) {
	for _, query := range []string{"name", "memory", "temperature", "graphics clock", "memory clock", "fan", "power"} {
		t.Run(query, func(t *testing.T) {
			dev := newFakeDevice()
			dev.failOn = query
			c := NewCollector(fakeGPU{dev: dev}, &fakeCPU{usage: 50})

			gpu, cpuSnap, err := c.Collect()
			require.Error(t, err)

			var ce *CollectionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, GPUSnapshot{}, gpu)
			assert.Equal(t, CPUSnapshot{}, cpuSnap)
		})
	}
}

func TestCollectNoDevice(t *testing.T) {
	c := NewCollector(fakeGPU{}, &fakeCPU{})

	_, _, err := c.Collect()
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestCollectZeroMemoryTotal(t *testing.T) {
	dev := newFakeDevice()
	dev.mem = MemoryInfo{Used: 0, Total: 0}
	c := NewCollector(fakeGPU{dev: dev}, &fakeCPU{})

	_, _, err := c.Collect()
	assert.ErrorIs(t, err, ErrZeroMemoryTotal)
}

func TestCollectCPURefreshFailure(t *testing.T) {
	cpu := &fakeCPU{refreshErr: errors.New("proc unavailable")}
	c := NewCollector(fakeGPU{dev: newFakeDevice()}, cpu)

	gpu, _, err := c.Collect()
	require.Error(t, err)
	assert.Equal(t, GPUSnapshot{}, gpu)
	assert.Contains(t, err.Error(), "cpu usage")
}

func TestParseCPUTemperatureSource(t *testing.T) {
	src, err := ParseCPUTemperatureSource("")
	require.NoError(t, err)
	assert.Equal(t, TemperaturePlaceholder, src)

	src, err = ParseCPUTemperatureSource("Sensors")
	require.NoError(t, err)
	assert.Equal(t, TemperatureSensors, src)

	_, err = ParseCPUTemperatureSource("thermal-camera")
	assert.Error(t, err)
}

func TestMockProviders(t *testing.T) {
	c := NewCollector(NewMockGPU(), NewMockCPU())

	gpu, cpu, err := c.Collect()
	require.NoError(t, err)

	assert.NotEmpty(t, gpu.Name)
	assert.True(t, gpu.MemoryUsedPercent >= 0 && gpu.MemoryUsedPercent <= 100)
	assert.True(t, cpu.UsagePercent >= 20 && cpu.UsagePercent <= 30, "usage %d", cpu.UsagePercent)

	_, err = NewMockGPU().Device(1)
	assert.ErrorIs(t, err, ErrNoDevice)
}
