// Package logs builds the structured logger used by the gcssc command and
// adapts it to the tracing interface used by the syntax package.
package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options control the handlers of a logger built by New.
type Options struct {
	Writer   io.Writer      // terminal output, stderr if nil
	Level    slog.Leveler   // minimum level, slog.LevelInfo if nil
	Journal  bool           // also log to the systemd journal
	Handlers []slog.Handler // extra handlers, filtered by Level
}

// Seams for tests.
var (
	newJournalHandler = defaultJournalHandler
	runningAsService  = isSystemdService
)

// New returns a logger that fans every record out to its handlers: a text
// handler on Writer, the systemd journal if Journal is set, and any extra
// Handlers. A systemd service that logs to the journal skips the text
// handler, since journald captures its stderr already.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}

	var handlers []slog.Handler
	var terminal slog.Handler
	addTerminal := func() {
		terminal = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
			Level: opts.Level,
		})
		handlers = append(handlers, terminal)
	}
	if !opts.Journal || !runningAsService() {
		addTerminal()
	}

	if opts.Journal {
		journal, err := newJournalHandler()
		if err != nil {
			if terminal == nil {
				addTerminal()
			}
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, &leveled{Handler: journal, level: opts.Level})
		}
	}

	for _, h := range opts.Handlers {
		handlers = append(handlers, &leveled{Handler: h, level: opts.Level})
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func defaultJournalHandler() (slog.Handler, error) {
	h, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// toJournalKey maps an attribute key to a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func isSystemdService() bool {
	cgroup, err := cgroupPath()
	if err != nil {
		return false
	}
	return strings.HasSuffix(path.Dir(cgroup), ".service")
}

func cgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
