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

package config

// Config is the root configuration structure for svccall. It maps service
// names to endpoint definitions so callers can refer to endpoints by name
// instead of repeating URLs and transport options.
type Config struct {
	// DefaultService is used when the CLI is invoked without a service name.
	DefaultService string `yaml:"default_service"`

	// Defaults apply to every service unless overridden per service.
	Defaults Defaults `yaml:"defaults"`

	// Services maps a service name to its endpoint definition.
	Services map[string]Service `yaml:"services"`
}

// Defaults holds settings shared by all services.
type Defaults struct {
	// Headers are merged into every service's headers. A header set on
	// the service wins over the same header set here.
	Headers map[string]string `yaml:"headers"`

	// MaxResponseBytes bounds response bodies for services that don't
	// set their own bound. Zero means unlimited.
	MaxResponseBytes int64 `yaml:"max_response_bytes"`
}

// Service is the YAML form of one service descriptor.
type Service struct {
	URL              string            `yaml:"url"`
	Method           string            `yaml:"method"`
	Credentials      string            `yaml:"credentials"`
	Keepalive        bool              `yaml:"keepalive"`
	Mode             string            `yaml:"mode"`
	Redirect         string            `yaml:"redirect"`
	Headers          map[string]string `yaml:"headers"`
	MaxResponseBytes int64             `yaml:"max_response_bytes"`
}

// DefaultConfig returns the built-in configuration used when no config
// file is found.
func DefaultConfig() *Config {
	return &Config{
		Services: make(map[string]Service),
	}
}
