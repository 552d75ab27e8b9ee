package sshserv

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestStart_ExecSplitsStreamsAndReportsStatus(t *testing.T) {
	addr, stop, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	defer stop()

	cfg := &ssh.ClientConfig{User: "anyone", HostKeyCallback: ssh.InsecureIgnoreHostKey(), Timeout: 3 * time.Second}
	client, err := ssh.Dial("tcp", addr, cfg)
	require.NoError(t, err)
	defer client.Close()

	s, err := client.NewSession()
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	s.Stdout = &stdout
	s.Stderr = &stderr
	err = s.Run("echo out; echo err >&2; exit 6")
	var ee *ssh.ExitError
	require.True(t, errors.As(err, &ee), "got %v", err)
	require.Equal(t, 6, ee.ExitStatus())
	require.Equal(t, "out\n", stdout.String())
	require.Equal(t, "err\n", stderr.String())
}

// dial connects to a fresh server and returns the client.
func dial(t *testing.T) *ssh.Client {
	t.Helper()
	addr, stop, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(stop)
	cfg := &ssh.ClientConfig{User: "anyone", HostKeyCallback: ssh.InsecureIgnoreHostKey(), Timeout: 3 * time.Second}
	client, err := ssh.Dial("tcp", addr, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStart_ClientHangupKillsCommand(t *testing.T) {
	client := dial(t)
	s, err := client.NewSession()
	require.NoError(t, err)
	out, err := s.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, s.Start("echo $$; exec sleep 30"))

	line, err := bufio.NewReader(out).ReadString('\n')
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(line))
	require.NoError(t, err)
	require.NoError(t, syscall.Kill(pid, 0))

	require.NoError(t, s.Close())
	require.Eventually(t, func() bool {
		return errors.Is(syscall.Kill(pid, 0), syscall.ESRCH)
	}, 5*time.Second, 20*time.Millisecond)
}

func TestExecPayload(t *testing.T) {
	line, ok := execPayload(ssh.Marshal(struct{ Command string }{"make unit-test"}))
	require.True(t, ok)
	require.Equal(t, "make unit-test", line)

	_, ok = execPayload([]byte{0, 0})
	require.False(t, ok)
	_, ok = execPayload([]byte{0, 0, 0, 9, 'x'})
	require.False(t, ok)
}
