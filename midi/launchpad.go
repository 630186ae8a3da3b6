package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-simon/debug"
)

// Launchpad drives a Novation Launchpad X in programmer mode.
type Launchpad struct {
	id       string
	inPort   drivers.In
	outPort  drivers.Out
	send     func(msg gomidi.Message) error
	stopFunc func()

	padChan chan PadEvent
}

// NewLaunchpad opens both ports and switches the device to programmer
// mode at full brightness.
func NewLaunchpad(id string, inPort drivers.In, outPort drivers.Out) (*Launchpad, error) {
	lp := &Launchpad{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
		padChan: make(chan PadEvent, 32),
	}

	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		lp.send = send

		// Programmer mode: F0 00 20 29 02 0C 00 7F F7
		lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F}))
		// Brightness: F0 00 20 29 02 0C 08 <0-127> F7
		lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, 0x7F}))
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			var channel, note, velocity uint8
			// NoteOn with velocity zero is a release; only presses count
			if msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0 {
				row, col := noteToRowCol(note)
				if row >= 0 {
					select {
					case lp.padChan <- PadEvent{Row: row, Col: col, Velocity: velocity}:
					default:
					}
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lp.stopFunc = stop
	}

	return lp, nil
}

func (lp *Launchpad) ID() string {
	return lp.id
}

func (lp *Launchpad) PadEvents() <-chan PadEvent {
	return lp.padChan
}

// SetLED paints one pad with the nearest palette color.
func (lp *Launchpad) SetLED(row, col int, rgb [3]uint8, channel uint8) error {
	if lp.send == nil {
		return nil
	}
	return lp.send(gomidi.NoteOn(channel, rowColToNote(row, col), nearestPaletteColor(rgb)))
}

// ClearLEDs blanks the whole grid.
func (lp *Launchpad) ClearLEDs() error {
	if lp.send == nil {
		return nil
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if err := lp.send(gomidi.NoteOn(ChannelStatic, rowColToNote(row, col), 0)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (lp *Launchpad) Close() error {
	lp.ClearLEDs()
	if lp.stopFunc != nil {
		lp.stopFunc()
	}
	close(lp.padChan)
	debug.Log().Info().Str("id", lp.id).Msg("launchpad closed")
	return nil
}

// nearestPaletteColor finds the closest Launchpad X palette velocity for an
// RGB value. The device only takes palette indexes on the note channels;
// the table approximates the palette entries worth hitting.
func nearestPaletteColor(rgb [3]uint8) uint8 {
	palette := [][4]uint8{
		{0, 0, 0, 0},         // off
		{5, 255, 0, 0},       // red
		{7, 180, 60, 60},     // dim red
		{9, 255, 100, 0},     // orange
		{11, 180, 80, 40},    // dim orange
		{13, 255, 200, 0},    // yellow
		{97, 180, 180, 60},   // dim yellow
		{17, 0, 180, 0},      // green
		{19, 0, 100, 0},      // dim green
		{21, 0, 255, 0},      // bright green
		{37, 0, 200, 200},    // cyan
		{43, 40, 60, 120},    // dim blue
		{45, 0, 100, 255},    // blue
		{78, 100, 100, 255},  // light blue
		{49, 150, 0, 200},    // purple
		{53, 255, 80, 180},   // pink
		{119, 255, 255, 255}, // white
	}

	best := uint8(0)
	bestDist := 1 << 30

	r, g, b := int(rgb[0]), int(rgb[1]), int(rgb[2])
	for _, p := range palette {
		pr, pg, pb := int(p[1]), int(p[2]), int(p[3])
		dist := (r-pr)*(r-pr) + (g-pg)*(g-pg) + (b-pb)*(b-pb)
		if dist < bestDist {
			bestDist = dist
			best = p[0]
		}
	}
	return best
}

// Launchpad X grid notes: row 0 (bottom) = 11-18, row 7 (top) = 81-88.
// The control strip above the grid talks CC and is not part of the board.

func rowColToNote(row, col int) uint8 {
	return uint8((row+1)*10 + col + 1)
}

func noteToRowCol(note uint8) (row, col int) {
	row = int(note/10) - 1
	col = int(note%10) - 1
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return -1, -1
	}
	return row, col
}
