package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ReadUserInput prints prompt on out and reads one line from in, trimmed.
// A SIGINT while waiting returns an empty answer instead of killing the
// process mid-prompt.
func ReadUserInput(out io.Writer, in io.Reader, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	defer signal.Stop(sigChan)

	inputChan := make(chan string)
	errChan := make(chan error)
	go func() {
		reader := bufio.NewReader(in)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- input
	}()

	select {
	case <-sigChan:
		return "", nil
	case err := <-errChan:
		return "", err
	case input := <-inputChan:
		return strings.TrimSpace(input), nil
	}
}
