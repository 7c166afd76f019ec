package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/fiscotools/integrador/internal/logging"
)

// Transfer constants.
const (
	ChunkSize        = 8 * 1024
	ConnectTimeout   = 30 * time.Second
	ResponseTimeout  = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

	// ProgressStep is the default percent interval between callbacks.
	ProgressStep = 5
)

// ErrCancelled reports a transfer aborted by the caller. It is logged
// apart from transport errors but yields the same failure outcome.
var ErrCancelled = errors.New("download cancelled")

// ProgressFunc receives transfer progress: percent complete (0 when the
// total is unknown, except for the final call at 100), bytes downloaded,
// total bytes declared by the server (0 if absent), and the transfer
// start time.
type ProgressFunc func(percent int, downloaded, total int64, startedAt time.Time)

// Downloader streams URLs to local files. Safe for reuse across transfers;
// concurrency control belongs to the caller.
type Downloader struct {
	client       *http.Client
	userAgent    string
	progressStep int
	log          *logging.Logger
}

// NewDownloader creates a downloader with bounded connect/response
// timeouts. progressStep <= 0 falls back to the default 5% interval.
func NewDownloader(log *logging.Logger, progressStep int) *Downloader {
	if progressStep <= 0 {
		progressStep = ProgressStep
	}
	return &Downloader{
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: ConnectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: ResponseTimeout,
				Proxy:                 http.ProxyFromEnvironment,
			},
		},
		userAgent:    DefaultUserAgent,
		progressStep: progressStep,
		log:          log.WithComponent("download"),
	}
}

// Fetch streams url into dest in 8 KiB chunks. The destination file is
// created or truncated; on any failure it is removed again. A nil
// onProgress is allowed. Cancellation is cooperative through ctx, checked
// before every chunk write, and reported as ErrCancelled.
//
// No retries: a single attempt per call. On success the file size matches
// the declared content length when the server provided one.
func (d *Downloader) Fetch(ctx context.Context, url, dest string, onProgress ProgressFunc) error {
	if url == "" {
		return errors.New("download URL is empty")
	}

	d.log.Info().Str("url", url).Str("dest", dest).Msg("starting download")
	startedAt := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return d.fail(dest, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return d.fail(dest, fmt.Errorf("unexpected status %s", resp.Status))
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	file, err := os.Create(dest)
	if err != nil {
		return d.fail(dest, fmt.Errorf("failed to create destination: %w", err))
	}

	if err := d.copyChunks(ctx, file, resp.Body, total, startedAt, onProgress); err != nil {
		file.Close()
		if errors.Is(err, ErrCancelled) {
			d.log.Warn().Str("url", url).Msg("download cancelled")
			os.Remove(dest)
			return err
		}
		return d.fail(dest, err)
	}

	if err := file.Close(); err != nil {
		return d.fail(dest, fmt.Errorf("failed to finish destination file: %w", err))
	}

	d.log.Info().Str("dest", dest).Dur("elapsed", time.Since(startedAt)).
		Msg("download completed")
	return nil
}

// copyChunks runs the chunk loop, invoking onProgress on every configured
// percent boundary and exactly once more at 100 on completion.
func (d *Downloader) copyChunks(ctx context.Context, file *os.File, body io.Reader, total int64, startedAt time.Time, onProgress ProgressFunc) error {
	buf := make([]byte, ChunkSize)
	var downloaded int64
	lastReported := -1

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			select {
			case <-ctx.Done():
				return ErrCancelled
			default:
			}

			if _, err := file.Write(buf[:n]); err != nil {
				return fmt.Errorf("failed to write chunk: %w", err)
			}
			downloaded += int64(n)

			if onProgress != nil && total > 0 {
				percent := int(downloaded * 100 / total)
				if percent > 100 {
					percent = 100
				}
				if percent < 100 && percent >= lastReported+d.progressStep {
					onProgress(percent, downloaded, total, startedAt)
					lastReported = percent
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return ErrCancelled
			}
			return fmt.Errorf("failed to read response body: %w", readErr)
		}
	}

	if downloaded == 0 {
		return errors.New("empty response body")
	}
	if total > 0 && downloaded != total {
		return fmt.Errorf("incomplete transfer: got %d of %d bytes", downloaded, total)
	}

	if onProgress != nil {
		onProgress(100, downloaded, total, startedAt)
	}
	return nil
}

// fail logs the error, removes a partial destination file, and passes the
// error through.
func (d *Downloader) fail(dest string, err error) error {
	d.log.Error().Err(err).Str("dest", dest).Msg("download failed")
	if _, statErr := os.Stat(dest); statErr == nil {
		if rmErr := os.Remove(dest); rmErr != nil {
			d.log.Warn().Err(rmErr).Str("dest", dest).Msg("failed to remove partial file")
		}
	}
	return err
}
