// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"testing"

	"github.com/H0llyW00dzZ/cert-decoder/src/logger"
)

func BenchmarkCLILogger_Printf(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Benchmark message %d", i)
	}
}

func BenchmarkCLILogger_Println(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Println("Benchmark message", i)
	}
}
