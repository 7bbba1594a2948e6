package ipc

import "fmt"

// Command type constants. The referee distinguishes them by the first token.
const (
	TypeMove  = "move"
	TypeWait  = "wait"
	TypeSkill = "skill"
)

// Command is one order line for a single looter.
type Command interface {
	Type() string
	String() string
}

// MoveCommand accelerates toward (X, Y) with the given throttle.
type MoveCommand struct {
	X        int
	Y        int
	Throttle int
	Label    string
}

// WaitCommand applies no thrust. The velocity is echoed in the message
// slot so it shows up in the replay viewer.
type WaitCommand struct {
	Label string
	VX    int
	VY    int
}

// SkillCommand fires the looter's skill centred on (X, Y).
type SkillCommand struct {
	X     int
	Y     int
	Label string
}

func (MoveCommand) Type() string  { return TypeMove }
func (WaitCommand) Type() string  { return TypeWait }
func (SkillCommand) Type() string { return TypeSkill }

func (c MoveCommand) String() string {
	return fmt.Sprintf("%d %d %d %s", c.X, c.Y, c.Throttle, c.Label)
}

func (c WaitCommand) String() string {
	return fmt.Sprintf("WAIT %s %d %d", c.Label, c.VX, c.VY)
}

func (c SkillCommand) String() string {
	return fmt.Sprintf("SKILL %d %d %s", c.X, c.Y, c.Label)
}

// Orders holds the three lines owed to the referee each turn.
type Orders struct {
	Harvester Command
	Combat    Command
	Support   Command
}

// Lines returns the orders in the referee's fixed order.
func (o Orders) Lines() ([]string, error) {
	cmds := []struct {
		name string
		cmd  Command
	}{
		{"harvester", o.Harvester},
		{"combat", o.Combat},
		{"support", o.Support},
	}
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c.cmd == nil {
			return nil, fmt.Errorf("missing %s order", c.name)
		}
		lines = append(lines, c.cmd.String())
	}
	return lines, nil
}
