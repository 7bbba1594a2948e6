package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nstehr/meanmax/meanmax-core/model"
)

// Reader turns the referee's line stream into frames.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// ReadFrame reads one full turn. It returns io.EOF only when the stream
// ends cleanly between frames.
func (r *Reader) ReadFrame() (model.Frame, error) {
	var f model.Frame

	for i := 0; i < scoreLines; i++ {
		v, err := r.readInt(i == 0)
		if err != nil {
			return model.Frame{}, fmt.Errorf("read score %d: %w", i, err)
		}
		f.Scores[i] = v
	}
	for i := 0; i < rageLines; i++ {
		v, err := r.readInt(false)
		if err != nil {
			return model.Frame{}, fmt.Errorf("read rage %d: %w", i, err)
		}
		f.Rages[i] = v
	}

	count, err := r.readInt(false)
	if err != nil {
		return model.Frame{}, fmt.Errorf("read entity count: %w", err)
	}
	if count < 0 {
		return model.Frame{}, fmt.Errorf("line %d: negative entity count %d: %w", r.line, count, ErrMalformedRow)
	}

	f.Rows = make([]model.Row, 0, count)
	for i := 0; i < count; i++ {
		text, err := r.next(false)
		if err != nil {
			return model.Frame{}, fmt.Errorf("read row %d of %d: %w", i+1, count, err)
		}
		row, err := ParseRow(strings.Fields(text))
		if err != nil {
			return model.Frame{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// next returns the next line. At a frame boundary blank lines are skipped
// and a clean end of input is reported as io.EOF; anywhere else it is
// ErrShortFrame.
func (r *Reader) next(boundary bool) (string, error) {
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return "", err
			}
			if boundary {
				return "", io.EOF
			}
			return "", ErrShortFrame
		}
		r.line++
		text := r.sc.Text()
		if boundary && strings.TrimSpace(text) == "" {
			continue
		}
		return text, nil
	}
}

func (r *Reader) readInt(boundary bool) (int, error) {
	text, err := r.next(boundary)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("line %d: %q: %w", r.line, text, ErrMalformedRow)
	}
	return v, nil
}

// ParseRow converts the eleven fields of an entity line. Any missing,
// extra or non-numeric field is ErrMalformedRow.
func ParseRow(fields []string) (model.Row, error) {
	if len(fields) != rowFields {
		return model.Row{}, fmt.Errorf("want %d fields, got %d: %w", rowFields, len(fields), ErrMalformedRow)
	}

	ints := make([]int, rowFields)
	var mass float64
	for i, s := range fields {
		var err error
		if i == 3 {
			mass, err = strconv.ParseFloat(s, 64)
		} else {
			ints[i], err = strconv.Atoi(s)
		}
		if err != nil {
			return model.Row{}, fmt.Errorf("field %d %q: %w", i, s, errors.Join(ErrMalformedRow, err))
		}
	}

	return model.Row{
		ID:     ints[0],
		Kind:   model.Kind(ints[1]),
		Owner:  model.Owner(ints[2]),
		Mass:   mass,
		Radius: ints[4],
		X:      ints[5],
		Y:      ints[6],
		VX:     ints[7],
		VY:     ints[8],
		Extra:  ints[9],
		Extra2: ints[10],
	}, nil
}

// WriteOrders emits one line per looter in referee order.
func WriteOrders(w io.Writer, o Orders) error {
	lines, err := o.Lines()
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return fmt.Errorf("write order: %w", err)
		}
	}
	return nil
}
