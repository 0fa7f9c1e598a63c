// Command jodyhash prints jodyhash fingerprints of files or stdin.
//
// By default each named file (or stdin, when no name or "-" is given)
// is hashed as one stream and printed as a bare 64-bit hex hash. The
// flags mirror the classic utility: md5sum-style output, per-line
// hashing for text, per-4096-byte-block hashing, and the rolling
// variant of the hash.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jbruchon/go-jodyhash"
	"github.com/jbruchon/go-jodyhash/dedup"
)

// version is overridden at build time via -ldflags.
var version = "dev"

const (
	readSize  = 32768
	blockSize = 4096
)

type cli struct {
	Binary    bool     `short:"b" help:"Output in md5sum binary style (hash *name)."`
	Sum       bool     `short:"s" help:"Alias for --binary."`
	Name      bool     `short:"n" help:"Output the file name after the hash."`
	Lines     bool     `short:"l" help:"Generate a hash for each text input line."`
	LinesEcho bool     `short:"L" help:"Same as -l but also prints the hashed text."`
	Blocks    bool     `short:"B" help:"Output a hash for every 4096 byte block."`
	Rolling   bool     `short:"r" help:"Output a rolling hash of the whole stream."`
	Dupes     bool     `short:"d" help:"Treat arguments as directories and report duplicate files."`
	Verbose   bool     `help:"Log scan progress to stderr (with --dupes)."`
	Version   bool     `short:"v" help:"Print version and acceleration info."`
	Files     []string `arg:"" optional:"" help:"Files to hash ('-' or none reads stdin)."`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("jodyhash"),
		kong.Description("Jody Bruchon's fast file hashing utility."),
	)

	if params.Version {
		fmt.Fprintf(os.Stderr, "jodyhash %s [64 bit width] %s accelerated\n",
			version, jodyhash.Accelerator())
		return
	}

	if params.Dupes {
		roots := params.Files
		if len(roots) == 0 {
			roots = []string{"."}
		}
		if err := findDupes(&params, roots); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	files := params.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	exit := 0
	for _, name := range files {
		if err := hashOne(&params, name); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func hashOne(params *cli, name string) error {
	var in io.Reader
	if name == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	switch {
	case params.Lines || params.LinesEcho:
		return hashLines(in, params.LinesEcho)
	case params.Blocks:
		return hashBlocks(in)
	case params.Rolling:
		return hashStream(in, name, params, true)
	default:
		return hashStream(in, name, params, false)
	}
}

// hashStream chains the whole input through one accumulator and prints
// a single hash, annotated per the output flags.
func hashStream(in io.Reader, name string, params *cli, rolling bool) error {
	var acc uint64
	buf := make([]byte, readSize)
	for {
		n, err := io.ReadFull(in, buf)
		if n > 0 {
			if rolling {
				if herr := jodyhash.RollingHash64(&acc, buf[:n]); herr != nil {
					return herr
				}
			} else {
				if herr := jodyhash.BlockHash64(&acc, buf[:n]); herr != nil {
					return herr
				}
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}

	switch {
	case params.Binary || params.Sum:
		fmt.Printf("%016x *%s\n", acc, name)
	case params.Name:
		fmt.Printf("%016x %s\n", acc, name)
	default:
		fmt.Printf("%016x\n", acc)
	}
	return nil
}

// hashLines hashes each text line independently, skipping empty lines,
// with trailing CR/LF already stripped.
func hashLines(in io.Reader, echo bool) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, readSize), readSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		sum := jodyhash.Sum64([]byte(line))
		if echo {
			fmt.Printf("%016x '%s'\n", sum, line)
		} else {
			fmt.Printf("%016x\n", sum)
		}
	}
	return sc.Err()
}

// hashBlocks prints an independent hash for every 4096-byte block of
// the input; the final block may be short.
func hashBlocks(in io.Reader) error {
	buf := make([]byte, blockSize)
	for {
		n, err := io.ReadFull(in, buf)
		if n > 0 {
			fmt.Printf("%016x\n", jodyhash.Sum64(buf[:n]))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// findDupes scans the given directories and prints one line per
// duplicate group member, blank-line separated, md5sum-style.
func findDupes(params *cli, roots []string) error {
	opts := []dedup.Option{}
	if params.Verbose {
		opts = append(opts, dedup.WithLogger(newLogger()))
	}
	groups, err := dedup.NewScanner(opts...).Duplicates(context.Background(), roots...)
	if err != nil {
		return err
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		for _, p := range g.Paths {
			fmt.Printf("%016x %s\n", g.Hash, p)
		}
	}
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
