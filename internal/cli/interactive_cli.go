// Package cli implements the interactive terminal games and reports.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// InteractiveCLI contains shared logic for interactive game CLIs
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewInteractiveCLI creates a CLI reading answers from in and writing to out.
func NewInteractiveCLI(in io.Reader, out io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session plays one round. Returning errEnd finishes the game without error.
type Session interface {
	Session(context context.Context) error
}

// Run plays rounds until the session ends, fails, or the user interrupts.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	result := make(chan error, 1)
	go func() {
		result <- cli.playRounds(ctx, session)
	}()

	select {
	case <-ctx.Done():
		cli.println("Received interrupt signal, exiting...")
		return nil
	case err := <-result:
		if err != nil {
			return fmt.Errorf("session.Session() > %w", err)
		}
		return nil
	}
}

func (cli *InteractiveCLI) playRounds(ctx context.Context, session Session) error {
	for ctx.Err() == nil {
		err := session.Session(ctx)
		if errors.Is(err, errEnd) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readLine returns the next trimmed answer. A closed input ends the game.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return "", errEnd
		}
	}
	return strings.TrimSpace(line), nil
}

func (cli *InteractiveCLI) printf(format string, args ...any) {
	fmt.Fprintf(cli.stdoutWriter, format, args...)
}

func (cli *InteractiveCLI) println(args ...any) {
	fmt.Fprintln(cli.stdoutWriter, args...)
}
