package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySession = "session"
	KeyMonth   = "month"
	KeyDay     = "day"
	KeyTask    = "task"
	KeyKey     = "key"
	KeyBytes   = "bytes"
	KeyCommand = "command"
	KeyPath    = "path"
	KeyError   = "error"
	KeySchema  = "schema_version"
)

func Session(id string) slog.Attr { return slog.String(KeySession, id) }
func Month(m int) slog.Attr { return slog.Int(KeyMonth, m) }
func Day(d int) slog.Attr { return slog.Int(KeyDay, d) }
func Task(name string) slog.Attr { return slog.String(KeyTask, name) }
func Key(k string) slog.Attr { return slog.String(KeyKey, k) }
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }
func Command(c string) slog.Attr { return slog.String(KeyCommand, c) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Schema(v int) slog.Attr { return slog.Int(KeySchema, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
