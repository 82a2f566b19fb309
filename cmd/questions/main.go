package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-questions/config"
	"github.com/gcbaptista/go-questions/internal/engine"
	internalErrors "github.com/gcbaptista/go-questions/internal/errors"
	"github.com/gcbaptista/go-questions/internal/tokenizer"
	"github.com/gcbaptista/go-questions/store"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s corpus\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1], config.Load(), os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run answers one question read from in against the corpus in dir and
// returns the process exit status. Answers go to out, logs to errOut.
func run(ctx context.Context, dir string, settings *config.Settings, in io.Reader, out, errOut io.Writer) int {
	// Setup Logging
	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "questions")

	if conflicts := settings.Validate(); len(conflicts) > 0 {
		entry.Errorf("Invalid configuration: %s", strings.Join(conflicts, "; "))
		return 1
	}
	level, _ := logrus.ParseLevel(settings.LogLevel)
	logger.SetLevel(level)

	// 1. Corpus
	docs, err := store.Load(dir, settings.Extensions, entry)
	if err != nil {
		entry.Errorf("Failed to load corpus: %v", err)
		return 1
	}

	// 2. Document statistics
	tok := tokenizer.New(tokenizer.Options{Stem: settings.Stem})
	eng, err := engine.New(docs, settings, tok, entry)
	if err != nil {
		entry.Errorf("Failed to initialize engine: %v", err)
		return 1
	}

	// 3. Question
	fmt.Fprint(out, "Query: ")
	question, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		entry.Errorf("Failed to read question: %v", err)
		return 1
	}

	// 4. Answer
	answer, err := eng.Answer(ctx, strings.TrimSpace(question))
	if errors.Is(err, internalErrors.ErrNoMatch) {
		fmt.Fprintln(out, "No answer found.")
		return 0
	}
	if err != nil {
		entry.Errorf("Failed to answer question: %v", err)
		return 1
	}

	for _, sentence := range answer.Sentences {
		fmt.Fprintln(out, sentence)
	}
	return 0
}
