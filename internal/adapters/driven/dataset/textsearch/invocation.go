// Package textsearch implements the lazy catalog backends driven by an
// external line-search tool. Instead of loading the whole catalog into
// memory, each query spawns one tool invocation against the
// pipe-delimited dataset file and parses only the matching lines.
//
// Two variants exist: Full parses every field into rich entries and
// supports multi-word hit reporting; Fast parses only the fixed fields
// plus a pre-joined display string, minimising per-line work.
package textsearch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// regexMetachars are escaped in prompts so the literal text is matched,
// never interpreted as a pattern.
const regexMetachars = `^$()%.[]*+-?`

// escapeTerm backslash-escapes every regex metacharacter in a term.
func escapeTerm(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		if strings.ContainsRune(regexMetachars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildInvocation constructs the external-tool command line for one
// needle. Returns nil for an empty prompt: no search is performed rather
// than scanning the whole file.
func buildInvocation(command, prompt, path string) *driven.Invocation {
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	return &driven.Invocation{
		Command: command,
		Args: []string{
			"--no-heading",
			"--line-number",
			"-i",
			"-e", escapeTerm(prompt),
			path,
		},
	}
}

// runInvocation executes the tool and returns its output lines. An exit
// status of 1 means no matches, which is an empty result, not an error.
// The context cancels the process, superseding a stale search.
func runInvocation(ctx context.Context, inv *driven.Invocation) ([]string, error) {
	out, err := exec.CommandContext(ctx, inv.Command, inv.Args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("running %s: %w", inv.Command, err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

// splitOrdinal removes the "N:" line-number prefix the tool emits and
// returns it as the line's ordinal. Lines without the prefix pass through
// with ordinal zero.
func splitOrdinal(line string) (int, string) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return 0, line
	}
	ordinal, err := strconv.Atoi(line[:colon])
	if err != nil {
		return 0, line
	}
	return ordinal, line[colon+1:]
}

// requireSource fails with the data-not-found condition before any search
// is attempted against a missing dataset file.
func requireSource(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrDataNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return nil
}

// loadAllLines parses the entire dataset file into entries, skipping
// malformed lines. Used when a caller needs the full catalog from a text
// source, e.g. for format conversion.
func loadAllLines(path string) ([]domain.Entry, error) {
	if err := requireSource(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []domain.Entry
	skipped := 0
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		entry, ok := domain.ParseLine(line)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if skipped > 0 {
		logger.Warn("Skipped %d malformed lines in %s", skipped, path)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s holds no parseable lines", domain.ErrInvalidData, path)
	}
	return entries, nil
}
