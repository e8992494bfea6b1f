package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/quintale/botlog/store"
)

// Outcome classifies what happened to a single log line. The pass loop
// never aborts on a per-line outcome; Failed is logged and skipped.
type Outcome int

const (
	Imported Outcome = iota
	SkippedType
	SkippedMalformed
	SkippedDuplicate
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Imported:
		return "imported"
	case SkippedType:
		return "skipped-type"
	case SkippedMalformed:
		return "skipped-malformed"
	case SkippedDuplicate:
		return "skipped-duplicate"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Importer copies completed-trade events from the bot's NDJSON activity
// log into the trade store. Re-running it over the same log is safe:
// duplicate trade IDs are rejected by the store, not recounted.
type Importer struct {
	LogPath string
	DBPath  string
	Log     *zap.SugaredLogger
}

// Run performs one whole-file import pass and returns the number of rows
// actually added to the store.
//
// A missing (or unreadable) log file means "nothing to import": Run logs a
// diagnostic and returns 0 without touching the store. Per-line problems
// are absorbed — malformed JSON is skipped silently, store errors are
// logged — so one bad record never aborts the pass. Only failures that
// prevent the pass entirely (store open, final commit) are returned.
func (imp *Importer) Run() (int, error) {
	log := imp.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	f, err := os.Open(imp.LogPath)
	if err != nil {
		log.Infof("no log file found at %s", imp.LogPath)
		return 0, nil
	}
	defer f.Close()

	st, err := store.Open(imp.DBPath)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tx, err := st.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	var imported, malformed, duplicates int

	// Read line by line without a length cap: an oversized garbage line is
	// just another malformed record, never a reason to stop the pass.
	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadBytes('\n')
		if len(line) > 0 {
			outcome, err := processLine(tx, line)
			switch outcome {
			case Imported:
				imported++
			case SkippedMalformed:
				malformed++
			case SkippedDuplicate:
				duplicates++
			case Failed:
				log.Errorf("import error: %v", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// A truncated read still commits whatever was imported so far.
			log.Errorf("read %s: %v", imp.LogPath, readErr)
			break
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	log.Infof("imported %d trades from %s (%d duplicates, %d malformed lines)",
		imported, imp.LogPath, duplicates, malformed)
	return imported, nil
}

// processLine handles one log line independently of all others.
func processLine(tx *store.Tx, line []byte) (Outcome, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return SkippedMalformed, nil
	}

	var entry Entry
	if err := json.Unmarshal(line, &entry); err != nil {
		// Malformed lines are expected noise, not worth logging.
		return SkippedMalformed, nil
	}

	if !entry.IsTrade() {
		return SkippedType, nil
	}

	added, err := tx.InsertTrade(entry.Trade())
	if err != nil {
		return Failed, err
	}
	if !added {
		return SkippedDuplicate, nil
	}
	return Imported, nil
}
