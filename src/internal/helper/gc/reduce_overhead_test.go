// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainBuffer satisfies Buffer without coming from bytebufferpool.
type plainBuffer struct{ bytes.Buffer }

// errorReader is an io.Reader that always fails.
type errorReader struct{ err error }

func (e *errorReader) Read(p []byte) (int, error) { return 0, e.err }

func TestBufferReadFrom(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Small data", data: "Hello, World!"},
		{name: "Empty reader", data: ""},
		{name: "Large data (10KB)", data: strings.Repeat("0123456789", 1024)},
		{name: "PEM armor", data: "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			n, err := buf.ReadFrom(strings.NewReader(tt.data))
			require.NoError(t, err, "ReadFrom() should not return error")

			assert.Equal(t, int64(len(tt.data)), n, "ReadFrom() read bytes")
			assert.Equal(t, tt.data, buf.String(), "ReadFrom() result")
			assert.Equal(t, len(tt.data), buf.Len())
		})
	}
}

func TestBufferReadFromError(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	wantErr := errors.New("permission denied")
	_, err := buf.ReadFrom(&errorReader{err: wantErr})
	assert.ErrorIs(t, err, wantErr)
}

func TestPoolGetPut(t *testing.T) {
	buf1 := Default.Get()
	require.NotNil(t, buf1, "Get() returned nil buffer")

	buf1.WriteString("test data")
	assert.Equal(t, 9, buf1.Len(), "WriteString() length")
	buf1.Reset()
	assert.Equal(t, 0, buf1.Len(), "Reset() failed")

	// buf1 must not be accessed after this
	Default.Put(buf1)

	buf2 := Default.Get()
	require.NotNil(t, buf2, "Get() returned nil buffer after Put()")
	assert.Equal(t, 0, buf2.Len(), "Buffer from pool should be empty")

	buf2.Reset()
	Default.Put(buf2)
}

func TestBufferWriteMethods(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	_, err := buf.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = buf.WriteString(" test")
	require.NoError(t, err)
	require.NoError(t, buf.WriteByte('!'))

	assert.Equal(t, "hello test!", buf.String())
	assert.Equal(t, []byte("hello test!"), buf.Bytes())
}

func TestGoroutineCooking(t *testing.T) {
	const goroutines = 100
	const iterations = 1000

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for range iterations {
				buf := Default.Get()

				buf.WriteString("goroutine #")
				buf.WriteByte(byte('0' + (id % 10)))
				buf.WriteString(" is decoding certificates")

				assert.GreaterOrEqual(t, buf.Len(), 10, "Buffer should be large enough")

				buf.Reset()
				Default.Put(buf)
			}
		}(i)
	}

	wg.Wait()
}

func TestPoolPutNonByteBuffer(t *testing.T) {
	assert.NotPanics(t, func() { Default.Put(&plainBuffer{}) })
}

func TestPlainBufferImplementsBuffer(t *testing.T) {
	var _ Buffer = &plainBuffer{}
	var _ io.ReaderFrom = &plainBuffer{}
}
