// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	md5rfc "github.com/minio/md5-rfc"
)

var errNoInput = errors.New("usage: md5sum [options] file... (use - for standard input, -s for a string)")

// input is one message and the name its digest is listed under.
type input struct {
	name string
	data []byte
}

// collectInputs gathers the strings given with --string followed by the
// named files, reading "-" from stdin. Every "-" gets the same data.
func collectInputs(cfg *config, args []string, stdin io.Reader) ([]input, error) {
	var (
		stdinData []byte
		stdinRead bool
	)
	inputs := make([]input, 0, len(cfg.Strings)+len(args))
	for _, s := range cfg.Strings {
		inputs = append(inputs, input{name: strconv.Quote(s), data: []byte(s)})
	}
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		switch {
		case name == "-" && stdinRead:
			// Standard input can only be consumed once; repeat its digest.
			data = stdinData
		case name == "-":
			data, err = io.ReadAll(stdin)
			stdinData, stdinRead = data, true
		default:
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		mainLog.Debugf("Read %d bytes from %s", len(data), name)
		inputs = append(inputs, input{name: name, data: data})
	}
	if len(inputs) == 0 {
		return nil, errNoInput
	}
	return inputs, nil
}

// formatDigest renders sum as lowercase hex, or URL-safe base64.
func formatDigest(sum [md5rfc.Size]byte, b64 bool) string {
	if b64 {
		return base64.URLEncoding.EncodeToString(sum[:])
	}
	return hex.EncodeToString(sum[:])
}

// run digests every input and writes one md5sum formatted line per input
// to stdout, in input order.
func run(ctx context.Context, cfg *config, args []string, stdin io.Reader, stdout io.Writer) error {
	inputs, err := collectInputs(cfg, args, stdin)
	if err != nil {
		return err
	}

	server := md5rfc.NewServerSize(cfg.Jobs)
	defer server.Close()

	msgs := make([][]byte, len(inputs))
	for i := range inputs {
		msgs[i] = inputs[i].data
	}
	sums, err := server.SumAll(ctx, msgs)
	if err != nil {
		return fmt.Errorf("digest interrupted: %w", err)
	}

	w := bufio.NewWriter(stdout)
	for i, in := range inputs {
		fmt.Fprintf(w, "%s  %s\n", formatDigest(sums[i], cfg.Base64), in.name)
	}
	return w.Flush()
}
