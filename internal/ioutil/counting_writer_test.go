package ioutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errtrace.Wrap(errors.New("write failed"))
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errtrace.Wrap(errors.New("write failed"))
	}
	return n, nil
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		write   func(cw *ioutil.CountingWriter)
		wantNum int
		wantOut string
	}{
		{
			name: "write",
			write: func(cw *ioutil.CountingWriter) {
				cw.Write([]byte("hello"))  //nolint:errcheck
				cw.Write([]byte(" world")) //nolint:errcheck
			},
			wantNum: 11,
			wantOut: "hello world",
		},
		{
			name: "write string",
			write: func(cw *ioutil.CountingWriter) {
				cw.WriteString("test") //nolint:errcheck
			},
			wantNum: 4,
			wantOut: "test",
		},
		{
			name: "fprint",
			write: func(cw *ioutil.CountingWriter) {
				cw.Fprint("bytes", "=", "0-499") //nolint:errcheck
			},
			wantNum: 11,
			wantOut: "bytes=0-499",
		},
		{
			name: "fprintf",
			write: func(cw *ioutil.CountingWriter) {
				cw.Fprintf("%d-%d", 0, 99) //nolint:errcheck
			},
			wantNum: 4,
			wantOut: "0-99",
		},
		{
			name: "call chain",
			write: func(cw *ioutil.CountingWriter) {
				render := func(s string) func(io.Writer) (int, error) {
					return func(w io.Writer) (int, error) {
						return errtrace.Wrap2(fmt.Fprint(w, s))
					}
				}
				cw.Call(render("a")).Call(render("b"))
			},
			wantNum: 2,
			wantOut: "ab",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			cw := ioutil.NewCountingWriter(buf)
			c.write(cw)

			num, err := cw.Result()
			if err != nil {
				t.Fatalf("cw.Result() error = %v, want nil", err)
			}
			if num != c.wantNum {
				t.Errorf("cw.Result() num = %d, want %d", num, c.wantNum)
			}
			if got := buf.String(); got != c.wantOut {
				t.Errorf("buf.String() = %q, want %q", got, c.wantOut)
			}
		})
	}
}

func TestCountingWriterErrorPropagation(t *testing.T) {
	t.Parallel()

	ew := &errorWriter{failAfter: 5}
	cw := ioutil.NewCountingWriter(ew)

	n, err := cw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("cw.Write() error = %v, want nil", err)
	}
	if n != 5 {
		t.Errorf("cw.Write() n = %d, want 5", n)
	}

	if _, err = cw.Write([]byte(" world")); err == nil {
		t.Fatal("cw.Write() error = nil, want write failure")
	}

	// Later writes return the cached error without touching the writer.
	n, err = cw.Write([]byte("test"))
	if err == nil {
		t.Fatal("cw.Write() error = nil, want cached error")
	}
	if n != 0 {
		t.Errorf("cw.Write() n = %d, want 0", n)
	}
	if cw.Count() != 5 {
		t.Errorf("cw.Count() = %d, want 5", cw.Count())
	}
}

func TestCountingWriterCallErrorStopsChain(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(fmt.Fprint(w, "a"))
	}).Call(func(io.Writer) (int, error) {
		return 0, errtrace.Wrap(errors.New("render error"))
	}).Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(fmt.Fprint(w, "b"))
	})

	num, err := cw.Result()
	if err == nil {
		t.Fatal("cw.Result() error = nil, want render error")
	}
	if num != 1 {
		t.Errorf("cw.Result() num = %d, want 1", num)
	}
	if buf.String() != "a" {
		t.Errorf("buf.String() = %q, want %q", buf.String(), "a")
	}
}
