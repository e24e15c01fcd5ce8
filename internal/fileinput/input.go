package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a byte position within an Input stream.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col) }

// Input implements sequential byte reading through a Queue of one or more
// input streams, tracking the Location of the last byte read to facilitate
// user feedback.
type Input struct {
	cur   io.Reader
	br    io.ByteReader
	Queue []io.Reader
	Loc   Location

	nextLine bool
}

// Named wraps a reader with a name for Location reporting.
func Named(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// ReadByte reads one byte from the current input stream, moving on to the
// next queued stream at end of file. Returns io.EOF only after the last
// queued stream is exhausted.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return 0, io.EOF
		}
		b, err := in.br.ReadByte()
		if err == nil {
			in.advance(b)
			return b, nil
		}
		if err != io.EOF {
			return 0, fmt.Errorf("read %v: %w", in.Loc.Name, err)
		}
		in.closeIn()
	}
}

func (in *Input) advance(b byte) {
	if in.nextLine {
		in.Loc.Line++
		in.Loc.Col = 0
		in.nextLine = false
	}
	in.Loc.Col++
	if b == '\n' {
		in.nextLine = true
	}
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.br = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur, in.br = r, newByteReader(r)
		in.Loc = Location{Name: nameOf(r), Line: 1}
		in.nextLine = false
	}
	return in.br != nil
}

func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
