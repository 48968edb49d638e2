// Package replay loads batches of encoded transfer records into a tree.
//
// The tree itself never skips or retries a rejected record. Replay is the
// caller that decides: abort the batch on the first rejection, or log it and
// carry on.
package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-transfertree/transfertree"
)

type Policy uint8

const (
	// PolicyAbort stops at the first record the tree rejects.
	PolicyAbort Policy = iota
	// PolicySkip logs and skips rejected records.
	PolicySkip
)

func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

var ErrRecordRejected = errors.New("replay: record rejected")

type Config struct {
	Policy Policy
	// RecordRoots records the root after every accepted record.
	RecordRoots bool
}

type Result struct {
	Inserted int
	Skipped  int
	// Roots has one entry per accepted record when Config.RecordRoots is set.
	Roots [][transfertree.HashBytes]byte
}

// Replayer applies records to a single tree. Like the tree, it is not safe for
// concurrent use.
type Replayer struct {
	Cfg  Config
	Log  logger.Logger
	Tree *transfertree.Tree
}

func NewReplayer(cfg Config, log logger.Logger, tree *transfertree.Tree) *Replayer {
	return &Replayer{
		Cfg:  cfg,
		Log:  log,
		Tree: tree,
	}
}

// apply inserts one hex record. recordNum is 1 based and only used for
// reporting.
func (r *Replayer) apply(result *Result, recordNum int, encoded string) error {
	err := r.Tree.InsertHex(encoded)
	if err == nil {
		result.Inserted++
		if r.Cfg.RecordRoots {
			result.Roots = append(result.Roots, r.Tree.Root())
		}
		return nil
	}

	if r.Cfg.Policy == PolicySkip {
		result.Skipped++
		r.Log.Infof("record %d skipped: %v", recordNum, err)
		return nil
	}
	return fmt.Errorf("%w: record %d: %w", ErrRecordRejected, recordNum, err)
}

// Records applies each hex encoded record in order.
func (r *Replayer) Records(ctx context.Context, records []string) (Result, error) {
	var result Result
	for i, encoded := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := r.apply(&result, i+1, encoded); err != nil {
			return result, err
		}
	}
	r.Log.Debugf("replayed %d records: inserted=%d, skipped=%d, leaves=%d",
		len(records), result.Inserted, result.Skipped, r.Tree.Len())
	return result, nil
}

// Reader applies one hex encoded record per line. Blank lines and lines
// starting with '#' are ignored but still count towards record numbering, so
// that reported numbers match line numbers.
func (r *Replayer) Reader(ctx context.Context, in io.Reader) (Result, error) {
	var result Result

	scanner := bufio.NewScanner(in)
	// a record is 770 hex characters, well inside the default, but comments may
	// be long.
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return result, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := r.apply(&result, line, text); err != nil {
			return result, err
		}
	}
	if err := scanner.Err(); err != nil {
		return result, err
	}
	r.Log.Debugf("replayed %d lines: inserted=%d, skipped=%d, leaves=%d",
		line, result.Inserted, result.Skipped, r.Tree.Len())
	return result, nil
}
