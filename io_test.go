package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_bytereader_test.go io ByteReader
//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_flushio_test.go github.com/jcorbin/tapevm/internal/flushio WriteFlusher

func TestVM_ioOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	in := NewMockByteReader(ctrl)
	out := NewMockWriteFlusher(ctrl)

	// pending output is flushed before every read, and once more at halt
	gomock.InOrder(
		out.EXPECT().Flush().Return(nil),
		in.EXPECT().ReadByte().Return(byte('a'), nil),
		out.EXPECT().Write([]byte{'a'}).Return(1, nil),
		out.EXPECT().Flush().Return(nil),
		in.EXPECT().ReadByte().Return(byte('b'), nil),
		out.EXPECT().Write([]byte{'b'}).Return(1, nil),
		out.EXPECT().Flush().Return(nil),
	)

	prog, err := Lex([]byte(",.,."))
	require.NoError(t, err)
	vm := New(WithByteInput(in), WithOutput(out))
	assert.NoError(t, vm.Execute(context.Background(), prog))
}

func TestVM_ioEOF(t *testing.T) {
	ctrl := gomock.NewController(t)
	in := NewMockByteReader(ctrl)
	out := NewMockWriteFlusher(ctrl)

	gomock.InOrder(
		out.EXPECT().Flush().Return(nil),
		in.EXPECT().ReadByte().Return(byte(0), io.EOF),
		out.EXPECT().Write([]byte{0xff}).Return(1, nil),
		out.EXPECT().Flush().Return(nil),
	)

	prog, err := Lex([]byte(",."))
	require.NoError(t, err)
	vm := New(WithByteInput(in), WithOutput(out), WithEOF(EOFMax))
	assert.NoError(t, vm.Execute(context.Background(), prog))
}

func TestVM_ioErrors(t *testing.T) {
	errBroken := errors.New("broken pipe")

	for _, tc := range []struct {
		name  string
		src   string
		setup func(in *MockByteReader, out *MockWriteFlusher)
	}{
		{"write", "+.+.", func(in *MockByteReader, out *MockWriteFlusher) {
			gomock.InOrder(
				out.EXPECT().Write([]byte{1}).Return(0, errBroken),
				out.EXPECT().Flush().Return(nil),
			)
		}},
		{"short write", "+.", func(in *MockByteReader, out *MockWriteFlusher) {
			gomock.InOrder(
				out.EXPECT().Write([]byte{1}).Return(0, nil),
				out.EXPECT().Flush().Return(errBroken),
			)
		}},
		{"read", ",.", func(in *MockByteReader, out *MockWriteFlusher) {
			gomock.InOrder(
				out.EXPECT().Flush().Return(nil),
				in.EXPECT().ReadByte().Return(byte(0), errBroken),
				out.EXPECT().Flush().Return(nil),
			)
		}},
		{"flush before read", ",.", func(in *MockByteReader, out *MockWriteFlusher) {
			gomock.InOrder(
				out.EXPECT().Flush().Return(errBroken),
				out.EXPECT().Flush().Return(nil),
			)
		}},
		{"flush at halt", "", func(in *MockByteReader, out *MockWriteFlusher) {
			out.EXPECT().Flush().Return(errBroken)
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			in := NewMockByteReader(ctrl)
			out := NewMockWriteFlusher(ctrl)
			tc.setup(in, out)

			prog, err := Lex([]byte(tc.src))
			require.NoError(t, err)
			vm := New(WithByteInput(in), WithOutput(out))
			err = vm.Execute(context.Background(), prog)
			if tc.name == "short write" {
				assert.True(t, errors.Is(err, io.ErrShortWrite), "expected short write error, got %v", err)
			} else {
				assert.True(t, errors.Is(err, errBroken), "expected broken pipe error, got %v", err)
			}
		})
	}
}

func TestVM_concurrent(t *testing.T) {
	prog, err := Lex([]byte(",[.-]"))
	require.NoError(t, err)

	var (
		eg   errgroup.Group
		outs = make([]strings.Builder, 8)
	)
	for i := range outs {
		vm := New(
			WithInput(bytes.NewReader([]byte{byte(i + 1)})),
			WithOutput(&outs[i]),
		)
		eg.Go(func() error { return vm.Execute(context.Background(), prog) })
	}
	require.NoError(t, eg.Wait())

	for i := range outs {
		var expect []byte
		for n := i + 1; n > 0; n-- {
			expect = append(expect, byte(n))
		}
		assert.Equal(t, string(expect), outs[i].String(), fmt.Sprintf("expected countdown from VM #%v", i))
	}
}
