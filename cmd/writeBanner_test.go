package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteStartBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStartBanner(&buf, 2, 5, manifestEntry{Package: "SimpleL2", Target: "foo"}))
	require.Equal(t,
		"------------------------------------------------------\n"+
			"| [2/5] => start test package: SimpleL2 target: foo\n"+
			"------------------------------------------------------\n",
		buf.String())
}

func TestWriteSuccessBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSuccessBanner(&buf, 5, 5, manifestEntry{Package: "SimpleL2", Target: "foo"}))
	require.Equal(t,
		"---------------------------------------------------------\n"+
			"| [5/5] => test SUCCESS! package: SimpleL2 target: foo  \n"+
			"---------------------------------------------------------\n"+
			"\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteBanner_WriterError(t *testing.T) {
	e := manifestEntry{Package: "SimpleL2", Target: "foo"}
	require.Error(t, writeStartBanner(failingWriter{}, 1, 1, e))
	require.Error(t, writeSuccessBanner(failingWriter{}, 1, 1, e))
}
