package cmd

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// commandRunner executes one shell command line with the child's stdout and
// stderr routed to the given writers and returns its exit status.
type commandRunner interface {
	run(line string, stdout, stderr io.Writer, timeout time.Duration) (int, error)
	// where names the executor in logs and reports.
	where() string
	Close() error
}

// localRunner runs commands through the local sh.
type localRunner struct {
	dir string
}

func (r localRunner) run(line string, stdout, stderr io.Writer, timeout time.Duration) (int, error) {
	return runLocalCommandFunc(r.dir, line, stdout, stderr, timeout)
}

func (r localRunner) where() string { return "local" }

func (r localRunner) Close() error { return nil }

// remoteRunner runs commands on a build host over one SSH connection, one
// session per command.
type remoteRunner struct {
	addr   string
	dir    string
	client *ssh.Client
}

func (r *remoteRunner) run(line string, stdout, stderr io.Writer, timeout time.Duration) (int, error) {
	if r.dir != "" {
		line = "cd " + shellQuote(r.dir) + " && " + line
	}
	return runRemoteCommandFunc(sshClientWrapper{r.client}, line, stdout, stderr, timeout)
}

func (r *remoteRunner) where() string { return r.addr }

func (r *remoteRunner) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// newCommandRunner builds the executor selected by --remote.
func newCommandRunner() (commandRunner, error) {
	if cfgRemote == "" {
		return localRunner{dir: cfgWorkdir}, nil
	}
	if cfgUser == "" {
		return nil, errors.New("--user is required with --remote")
	}
	addr := cfgRemote
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "22")
	}
	client, err := dialSSHFunc(addr, cfgUser, cfgPassword, cfgKeyPath, cfgPassphrase, cfgKnownHosts,
		cfgStrictHost, cfgConnTimeout)
	if err != nil {
		return nil, fmt.Errorf("ssh connection failed: %w", err)
	}
	return &remoteRunner{addr: addr, dir: cfgWorkdir, client: client}, nil
}
