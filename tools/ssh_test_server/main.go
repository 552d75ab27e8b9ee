package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	srv "test-all/tools/sshserv"
)

func main() {
	listen := flag.String("listen", "127.0.0.1:20222", "address to listen on")
	flag.Parse()

	addr, stop, err := srv.Start(*listen)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintf(os.Stderr, "test ssh server listening on %s (try: test-all --remote %s --user $USER --strict-host-key=false)\n", addr, addr)
	defer stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
