package metrics

import (
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
)

func TestSensorTemperature(t *testing.T) {
	tests := []struct {
		name    string
		temps   []host.TemperatureStat
		want    float32
		present bool
	}{
		{
			name: "mixed keys average cpu sensors only",
			temps: []host.TemperatureStat{
				{SensorKey: "coretemp_package_id_0", Temperature: 50},
				{SensorKey: "coretemp_core_0", Temperature: 46},
				{SensorKey: "nvme_composite", Temperature: 38},
				{SensorKey: "acpitz", Temperature: 27.8},
				{SensorKey: "Core 1", Temperature: 48},
			},
			want:    48,
			present: true,
		},
		{
			name: "k10temp prefix",
			temps: []host.TemperatureStat{
				{SensorKey: "k10temp_tctl", Temperature: 61},
				{SensorKey: "k10temp_tccd1", Temperature: 55},
				{SensorKey: "amdgpu_edge", Temperature: 70},
			},
			want:    58,
			present: true,
		},
		{
			name: "unpopulated readings skipped",
			temps: []host.TemperatureStat{
				{SensorKey: "coretemp_core_0", Temperature: 0},
				{SensorKey: "coretemp_core_1", Temperature: -1},
				{SensorKey: "coretemp_core_2", Temperature: 44},
			},
			want:    44,
			present: true,
		},
		{
			name: "no cpu sensors",
			temps: []host.TemperatureStat{
				{SensorKey: "nvme_composite", Temperature: 38},
				{SensorKey: "acpitz", Temperature: 27.8},
				{SensorKey: "iwlwifi_1", Temperature: 41},
			},
		},
		{
			name: "only zero readings",
			temps: []host.TemperatureStat{
				{SensorKey: "coretemp_package_id_0", Temperature: 0},
			},
		},
		{name: "nothing reported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sensorTemperature(tt.temps)
			assert.Equal(t, tt.present, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestDeviceError(t *testing.T) {
	assert.NoError(t, deviceError(nvml.SUCCESS, 0))

	for _, ret := range []nvml.Return{nvml.ERROR_NOT_FOUND, nvml.ERROR_INVALID_ARGUMENT} {
		err := deviceError(ret, 0)
		assert.ErrorIs(t, err, ErrNoDevice, "return code %d", ret)
	}

	err := deviceError(nvml.ERROR_GPU_IS_LOST, 0)
	assert.NotErrorIs(t, err, ErrNoDevice)
	var ne nvmlError
	if assert.ErrorAs(t, err, &ne) {
		assert.Equal(t, nvml.ERROR_GPU_IS_LOST, ne.ret)
	}
}
