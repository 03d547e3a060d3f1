package editor

import (
	"strings"

	"github.com/npillmayer/artboard/idgen"
	"github.com/npillmayer/artboard/tracks"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by OptionsFrom.
const (
	KeyHistoryLimit  = "history.limit"
	KeyIDLength      = "idgen.length"
	KeyIDKind        = "idgen.kind" // "nanoid" (default) or "uuid"
	KeySnapTolerance = "tracks.snaptolerance"
)

// Options configure an Editor.
type Options struct {
	HistoryLimit  int             // maximum number of undo snapshots
	IDs           idgen.Generator // produces ids for new elements and artboards
	SnapTolerance float64         // grid line snapping distance in px
}

// DefaultOptions returns the options used if no configuration is given.
func DefaultOptions() Options {
	return Options{
		HistoryLimit:  DefaultHistoryLimit,
		IDs:           idgen.Default,
		SnapTolerance: tracks.DefaultSnapTolerance,
	}
}

// OptionsFrom reads editor options from a configuration. Keys which are not
// set (or set to nonsensical values) keep their defaults.
func OptionsFrom(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet(KeyHistoryLimit) {
		if n := conf.GetInt(KeyHistoryLimit); n > 0 {
			opts.HistoryLimit = n
		}
	}
	length := idgen.DefaultLength
	if conf.IsSet(KeyIDLength) {
		if n := conf.GetInt(KeyIDLength); n > 0 {
			length = n
			opts.IDs = idgen.NanoID(length)
		}
	}
	if strings.EqualFold(conf.GetString(KeyIDKind), "uuid") {
		opts.IDs = idgen.UUID()
	}
	if conf.IsSet(KeySnapTolerance) {
		if n := conf.GetInt(KeySnapTolerance); n >= 0 {
			opts.SnapTolerance = float64(n)
		}
	}
	tracer().Debugf("editor options: history=%d, id length=%d, snap=%.0fpx",
		opts.HistoryLimit, length, opts.SnapTolerance)
	return opts
}

func (opts Options) normalized() Options {
	d := DefaultOptions()
	if opts.HistoryLimit < 1 {
		opts.HistoryLimit = d.HistoryLimit
	}
	if opts.IDs == nil {
		opts.IDs = d.IDs
	}
	if opts.SnapTolerance < 0 {
		opts.SnapTolerance = d.SnapTolerance
	}
	return opts
}
