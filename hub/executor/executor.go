package executor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Cmiroslaf/BEFA-Library/common/observable"
	"github.com/Cmiroslaf/BEFA-Library/component/report"
	"github.com/Cmiroslaf/BEFA-Library/component/stats"
	"github.com/Cmiroslaf/BEFA-Library/component/tokenizer"
	"github.com/Cmiroslaf/BEFA-Library/config"
	"github.com/Cmiroslaf/BEFA-Library/log"
)

var mux sync.Mutex

// readConfig fails on a missing or empty file, unlike
// config.ReadRawConfig which falls back to the defaults.
func readConfig(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("configuration file %s is empty", path)
	}
	return data, nil
}

// ParseWithPath parses the config file at path, which must exist.
func ParseWithPath(path string) (*config.Config, error) {
	buf, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	return ParseWithBytes(buf)
}

// ParseWithBytes parses a config held in memory.
func ParseWithBytes(buf []byte) (*config.Config, error) {
	cfg, err := config.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyConfig dispatch configure to all parts
func ApplyConfig(cfg *config.Config) {
	mux.Lock()
	defer mux.Unlock()

	updateGeneral(cfg.General)
}

func updateGeneral(general *config.General) {
	log.SetLevel(general.LogLevel)
	if general.LogFile != "" {
		log.SetOutputFile(general.LogFile, 10, 3, 28, false)
		log.Infoln("Write logs to %s", general.LogFile)
	}
}

// drain pulls values until the generator is exhausted
func drain[T any](subject *observable.Subject[T]) error {
	for {
		err := subject.Next()
		if errors.Is(err, observable.ErrStreamExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Scan runs the scan pipeline: every match of the pattern is counted, then
// filtered by length, optionally upper-cased and finally collected.
func Scan(cfg *config.Scan) (*report.Report, error) {
	gen, err := observable.NewRegexpGenerator(cfg.Input, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	subject := observable.NewSubjectWithGenerator[string](gen)
	r := report.New(cfg.Pattern)
	counter := stats.NewCounter[string]()

	values := subject.AsObservable()
	// subscribed first, so it has moved on by the time the stages below run
	index := -1
	values.Pipe(func(string) {
		index++
	})

	selected := values.Filter(func(s string) bool {
		return utf8.RuneCountInString(s) >= cfg.MinLength
	})
	if cfg.UpperCase {
		selected = selected.Map(strings.ToUpper)
	}
	selected.Pipe(func(s string) {
		r.Matches = append(r.Matches, report.Match{Index: index, Value: s})
	})
	counter.Attach(selected)

	if err := drain(subject); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	r.Scanned = index + 1
	r.Counts = counter.Top(cfg.Top)
	log.Debugln("[Scan] %s: %d of %d values selected", r.ID, len(r.Matches), r.Scanned)
	return r, nil
}

// Tokenize splits every instruction of text into tokens and counts the
// mnemonics.
func Tokenize(text string, top int) (*report.Report, error) {
	gen, err := tokenizer.NewGenerator(text)
	if err != nil {
		return nil, err
	}
	subject := observable.NewSubjectWithGenerator[tokenizer.Instruction](gen)
	r := report.New("")
	mnemonics := stats.NewCounter[string]()

	instructions := subject.AsObservable()
	instructions.Pipe(func(tokenizer.Instruction) {
		r.Scanned++
	})
	mnemonics.Attach(tokenizer.Mnemonics(instructions))

	position := 0
	tokenizer.Tokens(instructions).Pipe(func(token string) {
		r.Matches = append(r.Matches, report.Match{Index: position, Value: token})
		position++
	})

	if err := drain(subject); err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	r.Counts = mnemonics.Top(top)
	log.Debugln("[Tokenize] %s: %d instructions, %d tokens", r.ID, r.Scanned, len(r.Matches))
	return r, nil
}
