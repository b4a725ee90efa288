package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	hexdisplay "go.codycody31.dev/hexdisplay/v1"
	"go.codycody31.dev/hexdisplay/v1/internal/config"
)

// Run reads r until EOF and writes its hex rendering to w followed by a
// newline. The context is checked between chunks.
func Run(ctx context.Context, cfg config.Config, r io.Reader, w io.Writer) error {
	buf := make([]byte, cfg.ChunkSize)

	var read, written int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			slog.Debug("rendering chunk", "len", n, "head", hexdisplay.Of(chunk[:min(n, 8)], cfg.Case))

			m, err := hexdisplay.Of(chunk, cfg.Case).WriteTo(w)
			written += m
			if err != nil {
				return fmt.Errorf("failed to write hex output: %w", err)
			}
			read += int64(n)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("failed to read input: %w", rerr)
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write hex output: %w", err)
	}

	slog.Debug("done", "bytes_in", read, "bytes_out", written, "case", cfg.Case.String())
	return nil
}
