package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/calebmoore/sb/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// useVault points the global --path/--config flags at a fresh test vault
// and restores them afterwards.
func useVault(t *testing.T) *testutil.TestVault {
	t.Helper()

	v := testutil.NewTestVault(t).Build()

	prevPath := vaultPathFlag
	prevConfig := configFlag
	t.Cleanup(func() {
		vaultPathFlag = prevPath
		configFlag = prevConfig
	})

	vaultPathFlag = v.Path
	configFlag = filepath.Join(t.TempDir(), "no_such_config.yml")

	return v
}

// fakePrompter returns scripted answers and records the questions asked.
type fakePrompter struct {
	confirms []bool
	inputs   []string

	confirmMsgs []string
	inputMsgs   []string
}

func (p *fakePrompter) Confirm(message string, def bool) bool {
	p.confirmMsgs = append(p.confirmMsgs, message)
	if len(p.confirms) == 0 {
		return def
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer
}

func (p *fakePrompter) Input(message string) (string, error) {
	p.inputMsgs = append(p.inputMsgs, message)
	if len(p.inputs) == 0 {
		return "", nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

// usePrompter installs a scripted prompter and restores the terminal one
// afterwards.
func usePrompter(t *testing.T, p *fakePrompter) {
	t.Helper()
	prev := prompter
	t.Cleanup(func() { prompter = prev })
	prompter = p
}
