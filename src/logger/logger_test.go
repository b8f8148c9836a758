// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/cert-decoder/src/logger"
	"github.com/stretchr/testify/assert"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("test message: %s", "hello")

				assert.Equal(t, "test message: hello\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("test", "message")

				assert.Contains(t, buf.String(), "test message", "expected output to contain 'test message'")
			},
		},
		{
			name: "NoTimestampPrefix",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("Error: path given as argument is not a regular file, it must be a path to a certificate!")

				assert.True(t, strings.HasPrefix(buf.String(), "Error: "), "expected message without prefix, got %q", buf.String())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first", "expected buf1 to contain 'first'")
				assert.Contains(t, buf2.String(), "second", "expected buf2 to contain 'second'")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("before")
				log.SetOutput(nil)
				log.Println("after")

				assert.Contains(t, buf.String(), "before")
				assert.NotContains(t, buf.String(), "after", "should not contain 'after' after setting nil output")
			},
		},
		{
			name: "NewDefault",
			testFunc: func(t *testing.T) {
				log := logger.NewCLILogger()
				assert.NotNil(t, log, "NewCLILogger() returned nil")
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				const numGoroutines = 100
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)

				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", id, j)
						}
					}(i)
				}

				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, numGoroutines*messagesPerGoroutine, "unexpected number of log lines")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestCLILogger_ImplementsLogger(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
}
