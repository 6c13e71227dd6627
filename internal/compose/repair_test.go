package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFixRestart(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{"always", map[string]interface{}{"Name": "always", "MaximumRetryCount": 0}, "always"},
		{"unless-stopped", map[string]interface{}{"Name": "unless-stopped", "MaximumRetryCount": 0}, "unless-stopped"},
		{"no", map[string]interface{}{"Name": "no", "MaximumRetryCount": 0}, "no"},
		{"on-failure with count", map[string]interface{}{"Name": "on-failure", "MaximumRetryCount": 5}, "on-failure:5"},
		{"on-failure zero", map[string]interface{}{"Name": "on-failure", "MaximumRetryCount": 0}, "on-failure:0"},
		{"already compact", "on-failure:3", "on-failure:3"},
		{"plain string", "always", "always"},
		{"missing count", map[string]interface{}{"Name": "on-failure"}, map[string]interface{}{"Name": "on-failure"}},
		{"unrecognised shape", []interface{}{"x"}, []interface{}{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FixRestart(tt.input))
		})
	}
}

func TestFixNetwork(t *testing.T) {
	network := map[string]interface{}{
		"external":      map[string]interface{}{"name": "shared"},
		"external_name": "shared",
	}
	fixed := FixNetwork(network).(map[string]interface{})
	assert.NotContains(t, fixed, "external_name")
	assert.Contains(t, fixed, "external")

	assert.Nil(t, FixNetwork(nil), "a network declared with no body stays empty")
	assert.Equal(t, map[string]interface{}{"driver": "bridge"}, FixNetwork(map[string]interface{}{"driver": "bridge"}))
}

const brokenConfig = `
version: '2'
services:
  web:
    image: nginx
    restart:
      Name: on-failure
      MaximumRetryCount: 3
  worker:
    image: busybox
    restart:
      Name: always
      MaximumRetryCount: 0
  db:
    image: postgres
networks:
  front:
    external:
      name: shared_front
    external_name: shared_front
  back:
    driver: bridge
`

func TestRepair(t *testing.T) {
	out, err := Repair([]byte(brokenConfig))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	services := doc["services"].(map[string]interface{})
	assert.Equal(t, "on-failure:3", services["web"].(map[string]interface{})["restart"])
	assert.Equal(t, "always", services["worker"].(map[string]interface{})["restart"])
	assert.NotContains(t, services["db"].(map[string]interface{}), "restart")

	networks := doc["networks"].(map[string]interface{})
	assert.NotContains(t, networks["front"].(map[string]interface{}), "external_name")
	assert.Equal(t, "bridge", networks["back"].(map[string]interface{})["driver"])
}

func TestRepair_OutputFormat(t *testing.T) {
	out, err := Repair([]byte("services:\n  b: {image: two}\n  a: {image: one, restart: {Name: always, MaximumRetryCount: 0}}\n"))
	require.NoError(t, err)

	expected := `services:
    a:
        image: one
        restart: always
    b:
        image: two
`
	assert.Equal(t, expected, string(out))
}

func TestRepair_Deterministic(t *testing.T) {
	first, err := Repair([]byte(brokenConfig))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Repair([]byte(brokenConfig))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Repairing already repaired output is a no-op.
	twice, err := Repair(first)
	require.NoError(t, err)
	assert.Equal(t, first, twice)
}

func TestRepair_MissingSections(t *testing.T) {
	out, err := Repair([]byte("volumes:\n  data: {}\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "volumes:")
	assert.NotContains(t, string(out), "services")
}

func TestRepair_Errors(t *testing.T) {
	_, err := Repair([]byte(""))
	assert.ErrorContains(t, err, "empty")

	_, err = Repair([]byte("services: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse merged configuration")
}
