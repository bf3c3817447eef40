package platform

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

const (
	promptCommand = "Enter a command (search, add, buy, view, exit):"
	promptKeyword = "Enter a keyword to search:"
	promptID      = "Enter the product ID to add to cart:"

	msgInvalid  = "Invalid command."
	msgFarewell = "Exiting the platform."

	labelInvalid = "invalid"
)

var errExit = errors.New("exit requested")

type handler func(ctx context.Context, s *Session, arg string) error

// command is one entry of the dispatch table. Commands with a non-empty
// prompt read exactly one argument line after printing it.
type command struct {
	prompt string
	run    handler
}

var commands = map[string]command{
	"search": {
		prompt: promptKeyword,
		run: func(ctx context.Context, s *Session, arg string) error {
			_, err := s.Search(ctx, arg)
			return err
		},
	},
	"add": {
		prompt: promptID,
		run: func(ctx context.Context, s *Session, arg string) error {
			_, _, err := s.AddToCart(ctx, arg)
			return err
		},
	},
	"buy": {
		run: func(ctx context.Context, s *Session, _ string) error {
			_, _, err := s.Checkout(ctx)
			return err
		},
	},
	"view": {
		run: func(_ context.Context, s *Session, _ string) error {
			s.ViewCart()
			return nil
		},
	},
	"exit": {
		run: func(_ context.Context, s *Session, _ string) error {
			s.println(msgFarewell)
			return errExit
		},
	},
}

// Run reads commands from in until "exit", end of input or ctx is done.
// Unknown commands are reported and the loop continues. End of input ends
// the session like "exit" but without the farewell line.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	br := bufio.NewReader(in)
	log := s.logger()

	log.Info("session started")
	defer func() { log.Info("session ended", zap.Int("cart_items", s.Cart.Len())) }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(promptCommand)
		name, ok, err := readLine(br)
		if !ok {
			return err
		}

		cmd, known := commands[name]
		if !known {
			s.Metrics.command(labelInvalid)
			log.Debug("invalid command", zap.String("input", name))
			s.println(msgInvalid)
			continue
		}
		s.Metrics.command(name)

		var arg string
		if cmd.prompt != "" {
			s.println(cmd.prompt)
			if arg, ok, err = readLine(br); !ok {
				return err
			}
		}

		if err := cmd.run(ctx, s, arg); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			log.Error("command failed", zap.String("command", name), zap.Error(err))
			return errors.Wrapf(err, "command %s", name)
		}
	}
}

// readLine returns the next line without its terminator, of any length.
// ok is false once input is exhausted; err is nil for a clean end of input.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, errors.Wrap(err, "read line")
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
