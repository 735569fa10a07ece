package svn

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProxyConfig carries HTTP proxy settings for repository access.
type ProxyConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SSLConfig carries certificate handling settings.
type SSLConfig struct {
	TrustServerCert    bool   `yaml:"trust_server_cert"`
	ClientCertFile     string `yaml:"client_cert_file"`
	ClientCertPassword string `yaml:"client_cert_password"`
}

// ExecContext is the execution environment applied to every invocation:
// proxy, SSL and timeout settings translated into client flags. The zero
// value adds only --non-interactive, which a non-terminal caller always
// wants - a password prompt would hang the subprocess forever.
type ExecContext struct {
	Proxy          *ProxyConfig `yaml:"proxy"`
	SSL            *SSLConfig   `yaml:"ssl"`
	TimeoutSeconds int          `yaml:"timeout_seconds"`
}

// LoadExecContext reads an ExecContext from a YAML file. A missing file
// yields the zero value; a present but malformed file is an error.
func LoadExecContext(path string) (ExecContext, error) {
	var ec ExecContext

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ec, nil
		}
		return ec, err
	}

	if err := yaml.Unmarshal(data, &ec); err != nil {
		return ExecContext{}, fmt.Errorf("invalid execution context %s: %w", path, err)
	}
	return ec, nil
}

// GlobalArgs translates the context into the flags prepended to every
// client invocation.
func (ec ExecContext) GlobalArgs() []string {
	args := []string{"--non-interactive"}

	if p := ec.Proxy; p != nil && p.Host != "" {
		args = append(args,
			"--config-option", "servers:global:http-proxy-host="+p.Host,
			"--config-option", fmt.Sprintf("servers:global:http-proxy-port=%d", p.Port))
		if p.Username != "" {
			args = append(args,
				"--config-option", "servers:global:http-proxy-username="+p.Username,
				"--config-option", "servers:global:http-proxy-password="+p.Password)
		}
	}

	if s := ec.SSL; s != nil {
		if s.TrustServerCert {
			args = append(args,
				"--trust-server-cert-failures",
				"unknown-ca,cn-mismatch,expired,not-yet-valid,other")
		}
		if s.ClientCertFile != "" {
			args = append(args,
				"--config-option", "servers:global:ssl-client-cert-file="+s.ClientCertFile)
			if s.ClientCertPassword != "" {
				args = append(args,
					"--config-option", "servers:global:ssl-client-cert-password="+s.ClientCertPassword)
			}
		}
	}

	if ec.TimeoutSeconds > 0 {
		args = append(args,
			"--config-option", fmt.Sprintf("servers:global:http-timeout=%d", ec.TimeoutSeconds))
	}

	return args
}
