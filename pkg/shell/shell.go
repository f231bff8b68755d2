// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package shell runs external commands (gcloud, kubectl) and captures their
// output for inspection.
package shell

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"os/exec"
	"strings"
	"time"
)

// Result holds the captured outcome of an executed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Command is an external command with optional stdin input.
type Command struct {
	name  string
	args  []string
	input string
}

// NewCommand prepares a command for execution.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// SetInput sets the content piped to the command's stdin.
func (c *Command) SetInput(input string) {
	c.input = input
}

// Execute runs the command and waits for it to finish.
func (c *Command) Execute() Result {
	return c.ExecuteContext(context.Background())
}

// ExecuteContext runs the command, killing it if ctx is canceled. A command
// that could not be started at all is reported with exit code -1.
func (c *Command) ExecuteContext(ctx context.Context) Result {
	cmd := exec.CommandContext(ctx, c.name, c.args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.input != "" {
		cmd.Stdin = strings.NewReader(c.input)
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}
	return res
}

// ExecuteCommand runs a command with the given arguments and waits for it to
// finish.
func ExecuteCommand(name string, args ...string) Result {
	return NewCommand(name, args...).Execute()
}

// RandomString generates a random lowercase string of the specified length.
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz"
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
