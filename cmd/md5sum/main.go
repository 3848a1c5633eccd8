// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Command md5sum prints the MD5 digest of files, standard input or literal
// strings in the format of the standard md5sum tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	flags "github.com/jessevdk/go-flags"
)

func md5sumMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	if cfg.ShowVersion {
		fmt.Println(appName, "version", version())
		return nil
	}
	mainLog.Debugf("Version %s (Go version %s)", version(), runtime.Version())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, cfg, args, os.Stdin, os.Stdout)
}

func main() {
	// Work around defer not working after os.Exit()
	if err := md5sumMain(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			// Already printed by the parser.
			if flagErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
