package metrics

import "math"

// gpuIndex is the only device the overlay reads.
const gpuIndex = 0

// Collector reads one GPU and the host CPU into a pair of snapshots.
// It keeps no state between calls.
type Collector struct {
	gpu GPUProvider
	cpu CPUProvider
}

func NewCollector(gpu GPUProvider, cpu CPUProvider) *Collector {
	return &Collector{gpu: gpu, cpu: cpu}
}

// Collect queries every provider and returns both snapshots, or an error and
// zero snapshots if any single query fails.
func (c *Collector) Collect() (GPUSnapshot, CPUSnapshot, error) {
	gpu, err := c.collectGPU()
	if err != nil {
		return GPUSnapshot{}, CPUSnapshot{}, err
	}

	cpu, err := c.collectCPU()
	if err != nil {
		return GPUSnapshot{}, CPUSnapshot{}, err
	}

	return gpu, cpu, nil
}

func (c *Collector) collectGPU() (GPUSnapshot, error) {
	dev, err := c.gpu.Device(gpuIndex)
	if err != nil {
		return GPUSnapshot{}, collectionErr("device", err)
	}
	if dev == nil {
		return GPUSnapshot{}, collectionErr("device", ErrNoDevice)
	}

	name, err := dev.Name()
	if err != nil {
		return GPUSnapshot{}, collectionErr("name", err)
	}

	mem, err := dev.MemoryInfo()
	if err != nil {
		return GPUSnapshot{}, collectionErr("memory", err)
	}
	pct, err := UsedPercent(mem.Used, mem.Total)
	if err != nil {
		return GPUSnapshot{}, collectionErr("memory", err)
	}

	temp, err := dev.Temperature(SensorGPU)
	if err != nil {
		return GPUSnapshot{}, collectionErr("temperature", err)
	}

	core, err := dev.Clock(ClockGraphics)
	if err != nil {
		return GPUSnapshot{}, collectionErr("graphics clock", err)
	}

	memClock, err := dev.Clock(ClockMemory)
	if err != nil {
		return GPUSnapshot{}, collectionErr("memory clock", err)
	}

	fan, err := dev.FanSpeed(0)
	if err != nil {
		return GPUSnapshot{}, collectionErr("fan speed", err)
	}

	mw, err := dev.PowerUsage()
	if err != nil {
		return GPUSnapshot{}, collectionErr("power usage", err)
	}

	return GPUSnapshot{
		Name:              name,
		MemoryUsedGB:      BytesToGB(mem.Used),
		MemoryTotalGB:     BytesToGB(mem.Total),
		MemoryUsedPercent: pct,
		Temperature:       temp,
		CoreClock:         core,
		MemoryClock:       memClock,
		FanSpeed:          fan,
		PowerUsage:        float64(mw) / 1000.0,
	}, nil
}

func (c *Collector) collectCPU() (CPUSnapshot, error) {
	if err := c.cpu.Refresh(); err != nil {
		return CPUSnapshot{}, collectionErr("cpu usage", err)
	}

	// Truncated toward zero, not rounded.
	snap := CPUSnapshot{
		UsagePercent: ClampInt8(math.Trunc(c.cpu.GlobalUsage())),
	}
	if t, ok := c.cpu.Temperature(); ok {
		snap.Temperature = &t
	}
	return snap, nil
}
