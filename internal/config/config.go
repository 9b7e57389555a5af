// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for svccall with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. Service definitions in
// the file are translated into svccall descriptors on demand.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	svcerrors "github.com/sirseerhq/sirseer-svccall/internal/errors"
	"github.com/sirseerhq/sirseer-svccall/pkg/svccall"
)

// Environment variables recognized by the package.
const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "SVCCALL_CONFIG"

	// EnvDefaultService overrides the config file's default service.
	EnvDefaultService = "SVCCALL_DEFAULT_SERVICE"
)

// LoadConfig loads configuration and applies sources in precedence order.
// If configPath is provided it loads from that specific file. Otherwise it
// consults SVCCALL_CONFIG and then searches standard locations:
//   - .svccall.yaml (current directory)
//   - .svccall.yml (current directory)
//   - ~/.svccall/config.yaml
//   - ~/.svccall/config.yml
//
// Returns an error if an explicitly specified config file cannot be
// loaded, but succeeds with defaults when no file is found in standard
// locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".svccall.yaml",
			".svccall.yml",
			filepath.Join(os.Getenv("HOME"), ".svccall", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".svccall", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if name := os.Getenv(EnvDefaultService); name != "" {
		cfg.DefaultService = name
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file into cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Descriptor resolves a named service into a validated svccall descriptor,
// merging the configuration defaults into the service definition.
func (c *Config) Descriptor(name string) (svccall.Descriptor, error) {
	svc, ok := c.Services[name]
	if !ok {
		return svccall.Descriptor{}, fmt.Errorf("service %q: %w", name, svcerrors.ErrServiceNotFound)
	}

	headers := make(map[string]string, len(c.Defaults.Headers)+len(svc.Headers))
	for k, v := range c.Defaults.Headers {
		headers[k] = v
	}
	for k, v := range svc.Headers {
		headers[k] = v
	}

	maxBytes := svc.MaxResponseBytes
	if maxBytes == 0 {
		maxBytes = c.Defaults.MaxResponseBytes
	}

	desc := svccall.Descriptor{
		URL:              svc.URL,
		Method:           svccall.Method(svc.Method),
		Credentials:      svccall.Credentials(svc.Credentials),
		Keepalive:        svc.Keepalive,
		Mode:             svccall.Mode(svc.Mode),
		Redirect:         svccall.Redirect(svc.Redirect),
		Headers:          headers,
		MaxResponseBytes: maxBytes,
	}

	if err := desc.Validate(); err != nil {
		return svccall.Descriptor{}, fmt.Errorf("service %q: %v: %w", name, err, svcerrors.ErrInvalidDescriptor)
	}

	return desc, nil
}
