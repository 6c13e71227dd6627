package compose

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Restart policy names that carry no retry count.
var plainRestartPolicies = map[string]bool{
	"always":         true,
	"unless-stopped": true,
	"no":             true,
}

// FixRestart converts the internal {Name, MaximumRetryCount} restart form
// back to the compose file form. Anything else is returned unchanged.
func FixRestart(restart interface{}) interface{} {
	policy, ok := restart.(map[string]interface{})
	if !ok {
		return restart
	}
	name, ok := policy["Name"].(string)
	if !ok {
		return restart
	}
	if plainRestartPolicies[name] {
		return name
	}
	mrc, ok := policy["MaximumRetryCount"]
	if !ok {
		return restart
	}
	return fmt.Sprintf("%s:%v", name, mrc)
}

// FixNetwork drops the derived external_name field from a network definition.
func FixNetwork(network interface{}) interface{} {
	if def, ok := network.(map[string]interface{}); ok {
		delete(def, "external_name")
	}
	return network
}

// Repair applies FixRestart to every service and FixNetwork to every
// network of a merged configuration and re-encodes it deterministically.
func Repair(merged []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(merged, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse merged configuration: %w", err)
	}
	if doc == nil {
		return nil, errors.New("merged configuration is empty")
	}

	if services, ok := doc["services"].(map[string]interface{}); ok {
		for _, svc := range services {
			service, ok := svc.(map[string]interface{})
			if !ok {
				continue
			}
			if restart, ok := service["restart"]; ok {
				service["restart"] = FixRestart(restart)
			}
		}
	}

	if networks, ok := doc["networks"].(map[string]interface{}); ok {
		for name, network := range networks {
			networks[name] = FixNetwork(network)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode merged configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode merged configuration: %w", err)
	}
	return buf.Bytes(), nil
}
