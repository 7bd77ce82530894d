// Package shell implements a small line-oriented command language on top of
// a HashTable[string, string]. It backs the hashtable CLI.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/homier/hashtable"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrNoSnapshot     = errors.New("no snapshot, run clone first")
)

type command struct {
	usage   string
	minArgs int
	// -1 for unbounded.
	maxArgs int
	run     func(s *Shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"set":    {"set <key> <value...>", 2, -1, (*Shell).set},
		"get":    {"get <key>", 1, 1, (*Shell).get},
		"getor":  {"getor <key> <default>", 2, 2, (*Shell).getOr},
		"has":    {"has <key>", 1, 1, (*Shell).has},
		"del":    {"del <key>", 1, 1, (*Shell).del},
		"len":    {"len", 0, 0, (*Shell).length},
		"cap":    {"cap", 0, 0, (*Shell).capacity},
		"keys":   {"keys", 0, 0, (*Shell).keys},
		"values": {"values", 0, 0, (*Shell).values},
		"pairs":  {"pairs", 0, 0, (*Shell).pairs},
		"print":  {"print", 0, 0, (*Shell).show},
		"repr":   {"repr", 0, 0, (*Shell).repr},
		"stats":  {"stats", 0, 0, (*Shell).stats},
		"reset":  {"reset", 0, 0, (*Shell).reset},
		"clone":  {"clone", 0, 0, (*Shell).clone},
		"equal":  {"equal", 0, 0, (*Shell).equal},
		"help":   {"help", 0, 0, (*Shell).help},
	}
}

// Shell owns one table. Command results go to out, failed commands to errOut.
type Shell struct {
	table    *hashtable.HashTable[string, string]
	snapshot *hashtable.HashTable[string, string]

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func New(capacity int, out, errOut io.Writer, logger *slog.Logger) (*Shell, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	table, err := hashtable.New(capacity, hashtable.WithLogger[string, string](logger))
	if err != nil {
		return nil, err
	}

	return &Shell{
		table:  table,
		out:    out,
		errOut: errOut,
		logger: logger,
	}, nil
}

// SetOutput redirects command results and error reports.
func (s *Shell) SetOutput(out, errOut io.Writer) {
	s.out = out
	s.errOut = errOut
}

// Table exposes the underlying table.
func (s *Shell) Table() *hashtable.HashTable[string, string] {
	return s.table
}

// Exec runs a single line. Blank lines and # comments are no-ops.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}

	s.logger.Debug("exec", slog.String("cmd", name), slog.Int("args", len(args)))

	return cmd.run(s, args)
}

// Run executes every line of r. A failing line is reported to errOut and
// does not stop the script. Returns the number of failed lines; err is set only
// when reading r fails.
func (s *Shell) Run(r io.Reader) (failed int, err error) {
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := s.Exec(scanner.Text()); err != nil {
			failed++
			s.Report(fmt.Sprintf("line %d", lineNo), err)
		}
	}

	return failed, scanner.Err()
}

// Report writes a failed command to errOut, prefixed with where if set.
func (s *Shell) Report(where string, err error) {
	if where != "" {
		fmt.Fprintf(s.errOut, "%s: error: %v\n", where, err)
		return
	}

	fmt.Fprintf(s.errOut, "error: %v\n", err)
}

func (s *Shell) set(args []string) error {
	s.table.Set(args[0], strings.Join(args[1:], " "))
	return nil
}

func (s *Shell) get(args []string) error {
	v, err := s.table.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, v)
	return nil
}

func (s *Shell) getOr(args []string) error {
	fmt.Fprintln(s.out, s.table.GetOr(args[0], args[1]))
	return nil
}

func (s *Shell) has(args []string) error {
	fmt.Fprintln(s.out, s.table.Contains(args[0]))
	return nil
}

func (s *Shell) del(args []string) error {
	return s.table.Delete(args[0])
}

func (s *Shell) length([]string) error {
	fmt.Fprintln(s.out, s.table.Len())
	return nil
}

func (s *Shell) capacity([]string) error {
	fmt.Fprintln(s.out, s.table.Capacity())
	return nil
}

// keys, values and pairs are sorted so scripts have stable output.

func (s *Shell) keys([]string) error {
	fmt.Fprintln(s.out, strings.Join(slices.Sorted(s.table.Iter()), " "))
	return nil
}

func (s *Shell) values([]string) error {
	values := s.table.Values()
	slices.Sort(values)

	fmt.Fprintln(s.out, strings.Join(values, " "))
	return nil
}

func (s *Shell) pairs([]string) error {
	pairs := s.table.Pairs()
	slices.SortFunc(pairs, func(a, b hashtable.Pair[string, string]) int {
		return strings.Compare(a.Key, b.Key)
	})

	for _, p := range pairs {
		fmt.Fprintf(s.out, "%s=%s\n", p.Key, strconv.Quote(p.Value))
	}
	return nil
}

func (s *Shell) show([]string) error {
	fmt.Fprintln(s.out, s.table.String())
	return nil
}

func (s *Shell) repr([]string) error {
	fmt.Fprintln(s.out, s.table.GoString())
	return nil
}

func (s *Shell) stats([]string) error {
	st := s.table.Stats()
	fmt.Fprintf(s.out, "size=%d capacity=%d tombstones=%d tombstones/capacity=%.2f\n",
		st.Size, st.Capacity, st.Tombstones, st.TombstonesCapacityRatio)
	return nil
}

func (s *Shell) reset([]string) error {
	s.table.Reset()
	return nil
}

func (s *Shell) clone([]string) error {
	s.snapshot = s.table.Clone()
	return nil
}

func (s *Shell) equal([]string) error {
	if s.snapshot == nil {
		return ErrNoSnapshot
	}

	fmt.Fprintln(s.out, hashtable.Equal(s.table, s.snapshot))
	return nil
}

func (s *Shell) help([]string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintln(s.out, commands[name].usage)
	}
	return nil
}
