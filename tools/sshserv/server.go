// Package sshserv is a throwaway SSH build host for tests and local
// experiments with test-all --remote.
package sshserv

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"errors"
	"net"
	"os/exec"
	"time"

	"golang.org/x/crypto/ssh"
)

// Start launches a test SSH server on listenAddr (use 127.0.0.1:0 for a free
// port) and returns the address it bound. It accepts any user without
// authentication. Each exec request runs its command through the local
// sh -c with stdout and stderr sent on their own streams, followed by the
// command's exit-status. The returned stop function closes the listener and
// waits for the accept loop to finish.
func Start(listenAddr string) (string, func(), error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		return "", nil, err
	}
	cfg := &ssh.ServerConfig{NoClientAuth: true}
	cfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				continue
			}
			go handleConn(conn, cfg)
		}
	}()

	stop := func() {
		_ = ln.Close()
		<-done
	}
	return ln.Addr().String(), stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	_, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, reqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, reqs)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer ch.Close()
	for req := range in {
		switch req.Type {
		case "env":
			_ = req.Reply(true, nil)
		case "exec":
			line, ok := execPayload(req.Payload)
			_ = req.Reply(ok, nil)
			if !ok {
				return
			}
			// The request stream ends when the client closes the channel;
			// the command dies with it.
			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				for r := range in {
					if r.WantReply {
						_ = r.Reply(false, nil)
					}
				}
				cancel()
			}()
			status := runShell(ctx, ch, line)
			cancel()
			_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{status}))
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// execPayload decodes the string command of an exec request.
func execPayload(p []byte) (string, bool) {
	if len(p) < 4 {
		return "", false
	}
	n := binary.BigEndian.Uint32(p)
	if int(n) > len(p)-4 {
		return "", false
	}
	return string(p[4 : 4+n]), true
}

func runShell(ctx context.Context, ch ssh.Channel, line string) uint32 {
	c := exec.CommandContext(ctx, "sh", "-c", line)
	c.Stdout = ch
	c.Stderr = ch.Stderr()
	c.WaitDelay = time.Second
	err := c.Run()
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() > 0 {
		return uint32(ee.ExitCode())
	}
	return 255
}
