package ftracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/ftracker"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	val, err := ftracker.Content.ReadFile(ftracker.DefaultConfig)
	require.NoError(t, err)
	cfg, err := ftracker.NewConfig(ftracker.DefaultConfig, val)
	require.NoError(t, err)
	a.Equal([]ftracker.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}, cfg.Packages)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		file     string
		data     string
		packages []ftracker.Package
		err      bool
	}{
		{
			name:     "json",
			file:     "packages.json",
			data:     `{"packages": [{"type": "RUN", "data": [15000, 1, 75]}]}`,
			packages: []ftracker.Package{{Type: "RUN", Data: []float64{15000, 1, 75}}},
		},
		{
			name: "yaml",
			file: "packages.yaml",
			data: `
packages:
  - type: WLK
    data: [9000, 1, 75, 180]
  - type: SWM
    data: [720, 1, 80, 25, 40]
`,
			packages: []ftracker.Package{
				{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
				{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			},
		},
		{
			name:     "yml",
			file:     "PACKAGES.YML",
			data:     "packages: [{type: RUN, data: [1, 2, 3]}]",
			packages: []ftracker.Package{{Type: "RUN", Data: []float64{1, 2, 3}}},
		},
		{
			name: "invalid json",
			file: "packages.json",
			data: `{"packages": [`,
			err:  true,
		},
		{
			name: "invalid yaml",
			file: "packages.yaml",
			data: "packages: {type: [",
			err:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			cfg, err := ftracker.NewConfig(tt.file, []byte(tt.data))
			if tt.err {
				a.Error(err)
				a.Nil(cfg)
				return
			}
			a.NoError(err)
			a.Equal(tt.packages, cfg.Packages)
		})
	}
}
