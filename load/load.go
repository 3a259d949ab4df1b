// Package load reads JSON and YAML documents into fastjson value trees, so
// that pointers and references can navigate them regardless of the on-disk
// format.
package load

import (
	"os"

	"github.com/valyala/fastjson"
	"golang.org/x/sync/errgroup"

	"github.com/jsonptrio/jsonptr/format"
	"github.com/jsonptrio/jsonptr/log"
	"github.com/jsonptrio/jsonptr/xerrors"
)

type Options struct {
	// Format overrides the format detection by filename extension.
	// Default: format.UnknownFormat (detect by extension).
	Format format.Format
}

// Option is the functional option type.
type Option func(*Options)

// Format sets the document format explicitly instead of detecting it from
// the filename extension.
func Format(fmt format.Format) Option {
	return func(opts *Options) {
		opts.Format = fmt
	}
}

// newDefault returns a default Options.
func newDefault() *Options {
	return &Options{
		Format: format.UnknownFormat,
	}
}

// ParseOptions applies the setters on a default Options.
func ParseOptions(setters ...Option) *Options {
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// Load reads the document at path into a fastjson value. The format is
// detected from the filename extension unless overridden by [Format].
func Load(path string, options ...Option) (*fastjson.Value, error) {
	opts := ParseOptions(options...)
	fmt := opts.Format
	if fmt == format.UnknownFormat {
		fmt = format.GetFormat(path)
	}
	if !format.IsInputFormat(fmt) {
		return nil, xerrors.ErrorKV("unsupported document format", xerrors.KeyFile, path, xerrors.KeyFormat, fmt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	log.Debugf("loaded %d bytes from %s as %s", len(data), path, fmt)
	doc, err := Parse(data, fmt)
	if err != nil {
		return nil, xerrors.WithMessageKV(err, xerrors.KeyFile, path)
	}
	return doc, nil
}

// Parse parses data in the given format into a fastjson value.
func Parse(data []byte, fmt format.Format) (*fastjson.Value, error) {
	switch fmt {
	case format.JSON:
		doc, err := fastjson.ParseBytes(data)
		if err != nil {
			return nil, xerrors.WrapKV(err, xerrors.KeyFormat, format.JSON)
		}
		return doc, nil
	case format.YAML:
		doc, err := parseYAML(data)
		if err != nil {
			return nil, xerrors.WrapKV(err, xerrors.KeyFormat, format.YAML)
		}
		return doc, nil
	default:
		return nil, xerrors.ErrorKV("unsupported document format", xerrors.KeyFormat, fmt)
	}
}

// LoadAll loads multiple documents concurrently. The returned slice is
// parallel to paths. If any load fails, the first error is returned.
func LoadAll(paths []string, options ...Option) ([]*fastjson.Value, error) {
	docs := make([]*fastjson.Value, len(paths))
	var eg errgroup.Group
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			doc, err := Load(path, options...)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
