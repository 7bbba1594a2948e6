package ipc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nstehr/meanmax/meanmax-core/model"
)

const sampleFrame = `12
3
0
44
10
2
3
0 0 0 0.5 400 0 -1500 10 -4 -1 -1
1 1 1 1.5 400 1732 1000 0 0 -1 -1
7 3 -1 4.5 550 4000 0 -120 35 4 6
`

func TestReadFrame(t *testing.T) {
	r := NewReader(strings.NewReader(sampleFrame))
	f, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error: %v", err)
	}
	if f.Scores != [3]int{12, 3, 0} {
		t.Errorf("scores = %v, want [12 3 0]", f.Scores)
	}
	if f.RageOf(0) != 44 || f.RageOf(2) != 2 || f.Rages != [3]int{44, 10, 2} {
		t.Errorf("rages = %v, want [44 10 2]", f.Rages)
	}
	if len(f.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(f.Rows))
	}

	want := model.Row{ID: 7, Kind: model.KindCarrier, Owner: model.NeutralOwner, Mass: 4.5, Radius: 550,
		X: 4000, Y: 0, VX: -120, VY: 35, Extra: 4, Extra2: 6}
	if f.Rows[2] != want {
		t.Errorf("row 2 = %+v, want %+v", f.Rows[2], want)
	}

	if _, err := r.ReadFrame(); !errors.Is(err, io.EOF) {
		t.Errorf("second ReadFrame() error = %v, want io.EOF", err)
	}
}

func TestReadFrameBlankLinesBetweenFrames(t *testing.T) {
	r := NewReader(strings.NewReader(sampleFrame + "\n" + sampleFrame + "\n  \n"))
	for i := 0; i < 2; i++ {
		if _, err := r.ReadFrame(); err != nil {
			t.Fatalf("frame %d: ReadFrame() error: %v", i+1, err)
		}
	}
	if _, err := r.ReadFrame(); !errors.Is(err, io.EOF) {
		t.Errorf("trailing blank lines: error = %v, want io.EOF", err)
	}
}

func TestReadFrameErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"non-numeric header", "12\nabc\n", ErrMalformedRow},
		{"truncated header", "12\n3\n0\n", ErrShortFrame},
		{"missing rows", "0\n0\n0\n0\n0\n0\n2\n0 0 0 0.5 400 0 0 0 0 -1 -1\n", ErrShortFrame},
		{"short row", "0\n0\n0\n0\n0\n0\n1\n0 0 0 0.5 400 0 0 0 0 -1\n", ErrMalformedRow},
		{"bad mass", "0\n0\n0\n0\n0\n0\n1\n0 0 0 heavy 400 0 0 0 0 -1 -1\n", ErrMalformedRow},
		{"negative count", "0\n0\n0\n0\n0\n0\n-1\n", ErrMalformedRow},
		{"blank line inside header", "12\n\n0\n", ErrMalformedRow},
	}
	for _, tc := range tests {
		_, err := NewReader(strings.NewReader(tc.input)).ReadFrame()
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestParseRow(t *testing.T) {
	row, err := ParseRow(strings.Fields("3 4 -1 -1 650 -500 2200 0 0 5 -1"))
	if err != nil {
		t.Fatalf("ParseRow() error: %v", err)
	}
	if row.Kind != model.KindWreck || row.Extra != 5 || row.X != -500 || row.Y != 2200 {
		t.Errorf("ParseRow() = %+v", row)
	}

	// Unknown kinds parse fine; classification drops them.
	row, err = ParseRow(strings.Fields("3 9 -1 -1 650 0 0 0 0 0 0"))
	if err != nil || row.Kind != 9 {
		t.Errorf("ParseRow(kind 9) = %+v, %v", row, err)
	}

	if _, err := ParseRow(strings.Fields("3 4 -1 -1 650 0 0 0 0 0 0 0")); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("ParseRow(12 fields) error = %v, want ErrMalformedRow", err)
	}
	if _, err := ParseRow(strings.Fields("3 4 -1 -1 650 1.5 0 0 0 0 0")); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("ParseRow(float x) error = %v, want ErrMalformedRow", err)
	}
}

func TestCommandStrings(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MoveCommand{X: 485, Y: 506, Throttle: 200, Label: "Reaper"}, "485 506 200 Reaper"},
		{WaitCommand{Label: "Reaper", VX: 10, VY: -4}, "WAIT Reaper 10 -4"},
		{SkillCommand{X: -300, Y: 40, Label: "Destroyer"}, "SKILL -300 40 Destroyer"},
	}
	for _, tc := range tests {
		if got := tc.cmd.String(); got != tc.want {
			t.Errorf("%s.String() = %q, want %q", tc.cmd.Type(), got, tc.want)
		}
	}
}

func TestWriteOrdersMissingCommand(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOrders(&buf, Orders{Harvester: WaitCommand{Label: "Reaper"}})
	if err == nil {
		t.Fatal("WriteOrders() with missing orders should fail")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
}

func TestReadLoop(t *testing.T) {
	input := sampleFrame + sampleFrame
	var out bytes.Buffer
	conn := NewConnection(strings.NewReader(input), &out)

	turns := 0
	err := conn.ReadLoop(context.Background(), func(f model.Frame) (Orders, error) {
		turns++
		return Orders{
			Harvester: WaitCommand{Label: "Reaper", VX: turns},
			Combat:    MoveCommand{X: 0, Y: 0, Throttle: 200, Label: "Destroyer"},
			Support:   SkillCommand{X: 1, Y: 2, Label: "Doof"},
		}, nil
	})
	if err != nil {
		t.Fatalf("ReadLoop() error: %v", err)
	}
	if turns != 2 {
		t.Errorf("turns = %d, want 2", turns)
	}

	want := "WAIT Reaper 1 0\n0 0 200 Destroyer\nSKILL 1 2 Doof\n" +
		"WAIT Reaper 2 0\n0 0 200 Destroyer\nSKILL 1 2 Doof\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestReadLoopStopsOnHandlerError(t *testing.T) {
	var out bytes.Buffer
	conn := NewConnection(strings.NewReader(sampleFrame+sampleFrame), &out)

	boom := errors.New("boom")
	calls := 0
	err := conn.ReadLoop(context.Background(), func(f model.Frame) (Orders, error) {
		calls++
		return Orders{}, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("ReadLoop() error = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestReadLoopCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conn := NewConnection(strings.NewReader(sampleFrame), io.Discard)
	err := conn.ReadLoop(ctx, func(f model.Frame) (Orders, error) {
		t.Error("handler called after cancel")
		return Orders{}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ReadLoop() error = %v, want context.Canceled", err)
	}
}
