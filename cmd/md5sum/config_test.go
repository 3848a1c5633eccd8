// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlags(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "none.conf")
	cfg, args, err := loadConfig([]string{
		"-C", cfgFile, "-s", "abc", "--string", "def", "--base64", "-j", "3", "a.txt", "-",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, cfg.Strings)
	assert.True(t, cfg.Base64)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, []string{"a.txt", "-"}, args)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "md5sum.conf")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[Application Options]\njobs=5\nbase64=true\n"), 0600))

	cfg, _, err := loadConfig([]string{"-C", cfgFile})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jobs)
	assert.True(t, cfg.Base64)

	// The command line wins over the file.
	cfg, _, err = loadConfig([]string{"-C", cfgFile, "-j", "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoadConfigInvalid(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "none.conf")

	_, _, err := loadConfig([]string{"-C", cfgFile, "-j", "-1"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"-C", cfgFile, "-d", "loud"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"-C", cfgFile, "--no-such-flag"})
	assert.Error(t, err)
}

func TestLoadConfigVersion(t *testing.T) {
	cfg, _, err := loadConfig([]string{"-V"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestLoadConfigLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfgFile := filepath.Join(t.TempDir(), "none.conf")
	_, _, err := loadConfig([]string{"-C", cfgFile, "--logdir", dir})
	require.NoError(t, err)
	t.Cleanup(func() {
		logRotator.Close()
		logRotator = nil
	})
	mainLog.Infof("log file test")

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestLoadConfigBadLevelLeavesNoLogFile(t *testing.T) {
	t.Cleanup(func() { setLogLevels(defaultLogLevel) })
	dir := filepath.Join(t.TempDir(), "logs")
	cfgFile := filepath.Join(t.TempDir(), "none.conf")
	_, _, err := loadConfig([]string{"-C", cfgFile, "--logdir", dir, "-d", "loud"})
	require.Error(t, err)
	assert.Nil(t, logRotator)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log directory created: %v", err)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	t.Cleanup(func() { setLogLevels(defaultLogLevel) })

	require.NoError(t, parseAndSetDebugLevels("debug"))
	assert.Equal(t, slog.LevelDebug, mainLog.Level())
	assert.Equal(t, slog.LevelDebug, md5sLog.Level())

	require.NoError(t, parseAndSetDebugLevels("MAIN=trace,MD5S=error"))
	assert.Equal(t, slog.LevelTrace, mainLog.Level())
	assert.Equal(t, slog.LevelError, md5sLog.Level())

	assert.Error(t, parseAndSetDebugLevels("MAIN=trace,bogus"))
	assert.Error(t, parseAndSetDebugLevels("NOPE=info"))
	assert.Error(t, parseAndSetDebugLevels("MAIN=loud"))
	assert.Equal(t, []string{"MAIN", "MD5S"}, supportedSubsystems())
}
