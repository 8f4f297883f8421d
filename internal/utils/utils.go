package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"

	"github.com/sw33tLie/epicurve/pkg/whttp"
)

var Log = logrus.New()

func SetLogLevel(level string) error {
	// We are not using logrus' trace and panic levels
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(log.DebugLevel)
	case "info":
		Log.SetLevel(log.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(log.WarnLevel)
	case "error":
		Log.SetLevel(log.ErrorLevel)
	case "fatal":
		Log.SetLevel(log.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q", level)
	}
	return nil
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// FetchOptions configures remote reads.
type FetchOptions struct {
	Proxy   string
	Retries int
	Timeout time.Duration
}

// ReadInput loads a line list from a file path, an http(s) URL, or stdin
// when source is "-". The returned name carries an extension that selects
// the parser.
func ReadInput(ctx context.Context, source string, stdin io.Reader, opts FetchOptions) (name string, data []byte, err error) {
	switch {
	case source == "-":
		data, err = io.ReadAll(stdin)
		return "stdin.csv", data, err
	case IsURL(source):
		client, err := whttp.NewClient(opts.Retries, opts.Timeout, opts.Proxy)
		if err != nil {
			return "", nil, err
		}
		res, err := whttp.Fetch(ctx, source, client)
		if err != nil {
			return "", nil, err
		}
		if res.HTTPTitle != "" {
			Log.Debugf("Fetched %q from %s", res.HTTPTitle, source)
		}
		return whttp.FileName(source, res.ContentType), res.Body, nil
	}
	data, err = os.ReadFile(source)
	if err != nil {
		return "", nil, err
	}
	return source, data, nil
}
