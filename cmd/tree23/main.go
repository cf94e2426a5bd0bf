// Command tree23 builds a 2-3 tree from a range of integer keys, or from
// "key value" lines on stdin, and dumps it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-tree23/pkg/datastructs/tree23"
	"github.com/huynhanx03/go-tree23/pkg/logger"
	"github.com/huynhanx03/go-tree23/pkg/settings"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	preload := flag.Int("n", -1, "Insert keys 0..n-1 (overrides config)")
	value := flag.String("value", "", "Value bound to every preloaded key (overrides config)")
	fromStdin := flag.Bool("stdin", false, "Read \"key value\" lines from stdin")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tree23: %v\n", err)
		os.Exit(1)
	}
	if *preload >= 0 {
		cfg.Tree.Preload = *preload
	}
	if *value != "" {
		cfg.Tree.Value = *value
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tree23: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var in io.Reader
	if *fromStdin {
		in = os.Stdin
	}
	if err := run(cfg.Tree, in, os.Stdout, log); err != nil {
		log.Fatal("tree23 failed", zap.Error(err))
	}
}

func loadConfig(path string) (settings.Config, error) {
	if path == "" {
		return settings.Default(), nil
	}
	return settings.Load(path)
}

// run preloads the tree, then reads in (when non-nil), and dumps the result to out.
func run(cfg settings.Tree, in io.Reader, out io.Writer, log *zap.Logger) error {
	tree := tree23.NewLocked(tree23.NewOrdered[int, string](nil, tree23.WithLogger(log)))
	defer tree.Close()

	if err := preload(tree, cfg); err != nil {
		return err
	}
	log.Info("preloaded", zap.Int("keys", cfg.Preload), zap.Int("workers", cfg.Workers))

	if in != nil {
		if err := readEntries(tree, in, log); err != nil {
			return err
		}
	}

	if cfg.Validate {
		if err := tree.Validate(); err != nil {
			return errors.Wrap(err, "tree invariants violated")
		}
	}
	return tree.Dump(out)
}

// preload inserts keys 0..Preload-1, striped across Workers writers.
func preload(tree *tree23.Locked[int, string], cfg settings.Tree) error {
	workers := max(cfg.Workers, 1)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for k := w; k < cfg.Preload; k += workers {
				if err := tree.Insert(k, cfg.Value); err != nil {
					return errors.Wrapf(err, "preload key %d", k)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// readEntries inserts one "key value" pair per line. Duplicates and malformed
// lines are logged and skipped.
func readEntries(tree *tree23.Locked[int, string], in io.Reader, log *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		key, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Warn("skipping line: bad key", zap.Int("line", line), zap.String("key", fields[0]))
			continue
		}
		value := strings.Join(fields[1:], " ")
		if err := tree.Insert(key, value); err != nil {
			if errors.Is(err, tree23.ErrDuplicateKey) {
				log.Warn("skipping line: duplicate key", zap.Int("line", line), zap.Int("key", key))
				continue
			}
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "failed to read input")
}
