/*
Copyright (c) 2025 fluidos-contrib
Distributed under the terms of the MIT license
*/

//revive:disable:var-naming
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Run executes the provided command within this context and returns its
// combined output.
func Run(cmd *exec.Cmd) (string, error) {
	dir, _ := GetProjectDir()
	cmd.Dir = dir

	if err := os.Chdir(cmd.Dir); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "chdir dir: %s\n", err)
	}

	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	command := strings.Join(cmd.Args, " ")
	_, _ = fmt.Fprintf(os.Stderr, "running: %s\n", command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%s failed with error: (%v) %s", command, err, string(output))
	}

	return string(output), nil
}

// GetNonEmptyLines converts given command output string into individual objects
// according to line breakers, and ignores the empty elements in it.
func GetNonEmptyLines(output string) []string {
	var res []string
	elements := strings.Split(output, "\n")
	for _, element := range elements {
		if element != "" {
			res = append(res, element)
		}
	}

	return res
}

// GetProjectDir will return the directory where the project is
func GetProjectDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return wd, err
	}
	wd = strings.ReplaceAll(wd, "/test/e2e", "")
	return wd, nil
}

// WaitForCondition polls the given check until it succeeds or the timeout
// elapses.
func WaitForCondition(check func() error, timeout, interval time.Duration) error {
	deadline := time.Now().Add(timeout)

	var err error
	for time.Now().Before(deadline) {
		if err = check(); err == nil {
			return nil
		}
		time.Sleep(interval)
	}

	return fmt.Errorf("condition not met within %s: %w", timeout, err)
}
