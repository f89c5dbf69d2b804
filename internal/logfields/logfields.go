package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRenderID   = "render_id"
	KeyNamespace  = "namespace"
	KeyVar        = "var"
	KeyPath       = "path"
	KeyAsset      = "asset"
	KeyOutputDir  = "output_dir"
	KeyPages      = "pages"
	KeyBytes      = "bytes"
	KeyDurationMS = "duration_ms"
	KeyURL        = "url"
	KeyError      = "error"
)

func RenderID(id string) slog.Attr    { return slog.String(KeyRenderID, id) }
func Namespace(ns string) slog.Attr   { return slog.String(KeyNamespace, ns) }
func Var(name string) slog.Attr       { return slog.String(KeyVar, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Asset(name string) slog.Attr     { return slog.String(KeyAsset, name) }
func OutputDir(dir string) slog.Attr  { return slog.String(KeyOutputDir, dir) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
