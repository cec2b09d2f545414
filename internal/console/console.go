package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// CommandHandler is called for each command line and returns a reply.
type CommandHandler func(command string) string

// Run reads commands line by line until EOF, "/quit", or ctx is cancelled.
// When prompt is non-empty it is written before each read.
func Run(ctx context.Context, in io.Reader, out io.Writer, prompt string, handler CommandHandler) error {
	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] console stopped")
			return nil
		default:
		}

		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "quit" {
			return nil
		}
		if reply := handler(text); reply != "" {
			fmt.Fprintln(out, reply)
		}
	}
}
