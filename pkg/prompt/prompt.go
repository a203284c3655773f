// Package prompt asks the operator for the log file path.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Question is shown before the path input.
const Question = "Enter the path to the log file: "

var (
	// ErrCancelled is returned when the operator aborts the prompt.
	ErrCancelled = errors.New("prompt cancelled")
	// ErrEmptyPath is returned when the answer is blank.
	ErrEmptyPath = errors.New("no log file path given")
)

// Ask reads a path from in. A terminal gets an interactive Bubble Tea
// prompt; any other reader is read line by line.
func Ask(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	var answer string
	var err error
	if isTerminal(in) {
		answer, err = askInteractive(ctx, in, out)
	} else {
		answer, err = askLine(in, out)
	}
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrEmptyPath
	}
	return answer, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func askInteractive(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(NewModel(Question),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

func askLine(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, Question); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrCancelled
	}
	return line, nil
}
