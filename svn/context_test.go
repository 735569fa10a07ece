package svn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecContext_ZeroValue(t *testing.T) {
	args := ExecContext{}.GlobalArgs()
	if len(args) != 1 || args[0] != "--non-interactive" {
		t.Errorf("zero-value args = %v, want only --non-interactive", args)
	}
}

func TestExecContext_ProxyFlags(t *testing.T) {
	ec := ExecContext{Proxy: &ProxyConfig{
		Host: "proxy.corp", Port: 3128, Username: "svc", Password: "hunter2",
	}}

	joined := strings.Join(ec.GlobalArgs(), " ")
	for _, want := range []string{
		"servers:global:http-proxy-host=proxy.corp",
		"servers:global:http-proxy-port=3128",
		"servers:global:http-proxy-username=svc",
		"servers:global:http-proxy-password=hunter2",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %q", want, joined)
		}
	}
}

func TestExecContext_ProxyWithoutCredentials(t *testing.T) {
	ec := ExecContext{Proxy: &ProxyConfig{Host: "proxy.corp", Port: 3128}}

	joined := strings.Join(ec.GlobalArgs(), " ")
	if strings.Contains(joined, "proxy-username") || strings.Contains(joined, "proxy-password") {
		t.Errorf("credential flags should be omitted: %q", joined)
	}
}

func TestExecContext_SSLFlags(t *testing.T) {
	ec := ExecContext{SSL: &SSLConfig{
		TrustServerCert: true,
		ClientCertFile:  "/etc/certs/client.p12",
	}}

	joined := strings.Join(ec.GlobalArgs(), " ")
	if !strings.Contains(joined, "--trust-server-cert-failures") {
		t.Errorf("trust flag missing: %q", joined)
	}
	if !strings.Contains(joined, "servers:global:ssl-client-cert-file=/etc/certs/client.p12") {
		t.Errorf("client cert flag missing: %q", joined)
	}
}

func TestExecContext_TimeoutFlag(t *testing.T) {
	ec := ExecContext{TimeoutSeconds: 30}

	joined := strings.Join(ec.GlobalArgs(), " ")
	if !strings.Contains(joined, "servers:global:http-timeout=30") {
		t.Errorf("timeout flag missing: %q", joined)
	}
}

func TestLoadExecContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.yaml")
	content := `
proxy:
  host: proxy.corp
  port: 8080
ssl:
  trust_server_cert: true
timeout_seconds: 60
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	ec, err := LoadExecContext(path)
	if err != nil {
		t.Fatalf("LoadExecContext failed: %v", err)
	}
	if ec.Proxy == nil || ec.Proxy.Host != "proxy.corp" || ec.Proxy.Port != 8080 {
		t.Errorf("proxy = %+v, want proxy.corp:8080", ec.Proxy)
	}
	if ec.SSL == nil || !ec.SSL.TrustServerCert {
		t.Errorf("ssl = %+v, want trust_server_cert true", ec.SSL)
	}
	if ec.TimeoutSeconds != 60 {
		t.Errorf("timeout = %d, want 60", ec.TimeoutSeconds)
	}
}

func TestLoadExecContext_MissingFileIsZeroValue(t *testing.T) {
	ec, err := LoadExecContext(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadExecContext failed: %v", err)
	}
	if ec.Proxy != nil || ec.SSL != nil || ec.TimeoutSeconds != 0 {
		t.Errorf("got %+v, want zero value", ec)
	}
}

func TestLoadExecContext_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("proxy: [not a map"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadExecContext(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
