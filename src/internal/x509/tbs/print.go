// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tbs

import (
	"bytes"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/H0llyW00dzZ/cert-decoder/src/internal/helper/gc"
)

// printer renders views without pointer addresses or capacities, which would
// otherwise differ from run to run.
var printer = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Fprint writes the debug dump of tbs to w followed by a single newline.
// The dump is rendered in full before anything is written.
func Fprint(w io.Writer, tbs *Certificate) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	printer.Fdump(buf, tbs)

	out := append(bytes.TrimRight(buf.Bytes(), "\n"), '\n')
	_, err := w.Write(out)
	return err
}
