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

package shell

import (
	"strings"
	"testing"
)

func TestExecuteCommand(t *testing.T) {
	res := ExecuteCommand("echo", "hello")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.ExitCode, res.Stderr)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("stdout = %q, want %q", res.Stdout, "hello")
	}
}

func TestCommandInput(t *testing.T) {
	cmd := NewCommand("cat")
	cmd.SetInput("kind: Job\n")
	res := cmd.Execute()
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.ExitCode, res.Stderr)
	}
	if res.Stdout != "kind: Job\n" {
		t.Errorf("stdout = %q, want the piped input", res.Stdout)
	}
}

func TestExecuteCommandExitCode(t *testing.T) {
	res := ExecuteCommand("sh", "-c", "exit 3")
	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
}

func TestExecuteCommandMissingBinary(t *testing.T) {
	res := ExecuteCommand("definitely-not-a-binary-anywhere")
	if res.ExitCode != -1 {
		t.Errorf("exit code = %d, want -1", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Error("expected stderr to carry the start failure")
	}
}

func TestRandomString(t *testing.T) {
	s := RandomString(8)
	if len(s) != 8 {
		t.Fatalf("length = %d, want 8", len(s))
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			t.Errorf("unexpected character %q", r)
		}
	}
}
