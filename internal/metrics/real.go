package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// nvmlError carries an NVML return code as an error.
type nvmlError struct {
	ret nvml.Return
}

func (e nvmlError) Error() string {
	return nvml.ErrorString(e.ret)
}

func newNVMLError(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return nvmlError{ret: ret}
}

// NVML is the GPU provider backed by the NVIDIA management library.
type NVML struct{}

// OpenNVML initializes NVML. Failure here means there is nothing to show.
func OpenNVML() (*NVML, error) {
	if err := newNVMLError(nvml.Init()); err != nil {
		return nil, fmt.Errorf("%w: nvml: %v", ErrInitFailed, err)
	}
	return &NVML{}, nil
}

func (n *NVML) Device(index int) (GPUDevice, error) {
	dev, ret := nvml.DeviceGetHandleByIndex(index)
	if err := deviceError(ret, index); err != nil {
		return nil, err
	}
	return nvmlDevice{dev: dev}, nil
}

// deviceError reports a handle lookup that found no GPU as ErrNoDevice.
func deviceError(ret nvml.Return, index int) error {
	switch ret {
	case nvml.SUCCESS:
		return nil
	case nvml.ERROR_INVALID_ARGUMENT, nvml.ERROR_NOT_FOUND:
		return fmt.Errorf("%w: index %d", ErrNoDevice, index)
	default:
		return newNVMLError(ret)
	}
}

func (n *NVML) Shutdown() error {
	return newNVMLError(nvml.Shutdown())
}

type nvmlDevice struct {
	dev nvml.Device
}

func (d nvmlDevice) Name() (string, error) {
	name, ret := d.dev.GetName()
	return name, newNVMLError(ret)
}

func (d nvmlDevice) MemoryInfo() (MemoryInfo, error) {
	mem, ret := d.dev.GetMemoryInfo()
	if err := newNVMLError(ret); err != nil {
		return MemoryInfo{}, err
	}
	return MemoryInfo{Total: mem.Total, Used: mem.Used}, nil
}

func (d nvmlDevice) Temperature(sensor TemperatureSensor) (uint32, error) {
	if sensor != SensorGPU {
		return 0, fmt.Errorf("unsupported temperature sensor %d", sensor)
	}
	temp, ret := d.dev.GetTemperature(nvml.TEMPERATURE_GPU)
	return temp, newNVMLError(ret)
}

func (d nvmlDevice) Clock(kind ClockKind) (uint32, error) {
	var clockType nvml.ClockType
	switch kind {
	case ClockGraphics:
		clockType = nvml.CLOCK_GRAPHICS
	case ClockMemory:
		clockType = nvml.CLOCK_MEM
	default:
		return 0, fmt.Errorf("unsupported clock %s", kind)
	}
	mhz, ret := d.dev.GetClockInfo(clockType)
	return mhz, newNVMLError(ret)
}

func (d nvmlDevice) FanSpeed(fan int) (uint32, error) {
	speed, ret := d.dev.GetFanSpeed_v2(fan)
	return speed, newNVMLError(ret)
}

func (d nvmlDevice) PowerUsage() (uint32, error) {
	mw, ret := d.dev.GetPowerUsage()
	return mw, newNVMLError(ret)
}

// CPUTemperatureSource picks where CPUSnapshot.Temperature comes from.
type CPUTemperatureSource int

const (
	// TemperaturePlaceholder always reports 0.0 as present. This is what
	// the overlay has shipped with; it is not a real reading.
	TemperaturePlaceholder CPUTemperatureSource = iota
	// TemperatureSensors averages the host's package/core sensors and
	// reports nothing when none are exposed.
	TemperatureSensors
)

// ParseCPUTemperatureSource maps a config/flag value to a source.
func ParseCPUTemperatureSource(s string) (CPUTemperatureSource, error) {
	switch strings.ToLower(s) {
	case "", "placeholder":
		return TemperaturePlaceholder, nil
	case "sensors":
		return TemperatureSensors, nil
	default:
		return 0, fmt.Errorf("unknown cpu temperature source %q", s)
	}
}

// SystemCPU is the CPU provider backed by gopsutil.
type SystemCPU struct {
	source  CPUTemperatureSource
	usage   float64
	temp    float32
	hasTemp bool
}

// NewSystemCPU primes the usage counters so the first Refresh has a baseline.
func NewSystemCPU(source CPUTemperatureSource) (*SystemCPU, error) {
	if _, err := cpu.Percent(0, false); err != nil {
		return nil, fmt.Errorf("%w: cpu: %v", ErrInitFailed, err)
	}
	return &SystemCPU{source: source}, nil
}

func (s *SystemCPU) Refresh() error {
	pct, err := cpu.Percent(0, false)
	if err != nil {
		return err
	}
	if len(pct) == 0 {
		return errors.New("no cpu usage reported")
	}
	s.usage = pct[0]

	if s.source == TemperatureSensors {
		// gopsutil may return readings together with a warnings error, so
		// readings win.
		temps, _ := host.SensorsTemperatures()
		s.temp, s.hasTemp = sensorTemperature(temps)
	}
	return nil
}

func (s *SystemCPU) GlobalUsage() float64 {
	return s.usage
}

func (s *SystemCPU) Temperature() (float32, bool) {
	switch s.source {
	case TemperatureSensors:
		return s.temp, s.hasTemp
	default:
		return 0, true
	}
}

// sensorTemperature averages the CPU package or core sensors. Readings at
// or below zero are unpopulated sensors.
func sensorTemperature(temps []host.TemperatureStat) (float32, bool) {
	var sum float64
	var n int
	for _, t := range temps {
		key := strings.ToLower(t.SensorKey)
		if !strings.Contains(key, "core") && !strings.Contains(key, "package") &&
			!strings.HasPrefix(key, "k10temp") && !strings.HasPrefix(key, "coretemp") {
			continue
		}
		if t.Temperature <= 0 {
			continue
		}
		sum += t.Temperature
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float32(sum / float64(n)), true
}
