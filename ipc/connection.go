package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nstehr/meanmax/meanmax-core/model"
)

// Handler turns one frame into the turn's orders. A returned error ends
// the match.
type Handler func(f model.Frame) (Orders, error)

// Connection is the referee link: frames come in on r, orders go out on w.
type Connection struct {
	r *Reader
	w *bufio.Writer
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		r: NewReader(r),
		w: bufio.NewWriter(w),
	}
}

// ReadLoop feeds frames to handler until the input ends or something goes
// wrong. A clean end of input between frames returns nil. Orders are
// flushed after every turn since the referee waits for them.
func (c *Connection) ReadLoop(ctx context.Context, handler Handler) error {
	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := c.r.ReadFrame()
		if errors.Is(err, io.EOF) {
			slog.Info("input closed", "turns", turn-1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		orders, err := handler(frame)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		if err := WriteOrders(c.w, orders); err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := c.w.Flush(); err != nil {
			return fmt.Errorf("turn %d: flush: %w", turn, err)
		}
	}
}
