package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"go-simon/debug"
)

// DeviceEvent is emitted when the controller connects or disconnects.
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager watches the MIDI ports for a pad controller and hot-plugs
// it. The game needs at most one; the first matching port wins unless a
// preferred name narrows the match.
type DeviceManager struct {
	mu        sync.Mutex
	current   Controller
	preferred string
	events    chan DeviceEvent
	pollRate  time.Duration
}

// NewDeviceManager creates a watcher. preferred, when non-empty, restricts
// matching to port names containing it.
func NewDeviceManager(preferred string) *DeviceManager {
	return &DeviceManager{
		preferred: strings.ToLower(preferred),
		events:    make(chan DeviceEvent, 16),
		pollRate:  time.Second,
	}
}

// Events returns the connect/disconnect stream.
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Run polls for the device until ctx ends. Blocking; run it in a
// goroutine.
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()
	for {
		select {
		case <-ctx.Done():
			dm.disconnect()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	inPorts, outPorts, ok := listPorts()
	if !ok {
		return
	}

	dm.mu.Lock()
	cur := dm.current
	dm.mu.Unlock()

	if cur != nil {
		for _, p := range inPorts {
			if p.String() == cur.ID() {
				return
			}
		}
		dm.disconnect()
		return
	}

	for i, inPort := range inPorts {
		id := inPort.String()
		if !dm.wants(id) {
			continue
		}
		var outPort drivers.Out
		for j, op := range outPorts {
			if strings.EqualFold(op.String(), id) {
				outPort = outPorts[j]
				break
			}
		}
		lp, err := NewLaunchpad(id, inPorts[i], outPort)
		if err != nil {
			debug.Log().Warn().Err(err).Str("port", id).Msg("launchpad open failed")
			continue
		}
		dm.mu.Lock()
		dm.current = lp
		dm.mu.Unlock()
		debug.Log().Info().Str("port", id).Msg("launchpad connected")
		dm.events <- DeviceEvent{Type: DeviceConnected, Controller: lp, ID: id}
		return
	}
}

// listPorts guards against a hung MIDI backend; a stalled scan is skipped
// instead of wedging the watcher.
func listPorts() (ins []drivers.In, outs []drivers.Out, ok bool) {
	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ch <- result{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()
	select {
	case r := <-ch:
		return r.ins, r.outs, true
	case <-time.After(3 * time.Second):
		return nil, nil, false
	}
}

func (dm *DeviceManager) wants(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "launchpad") {
		return false
	}
	if dm.preferred != "" && !strings.Contains(lower, dm.preferred) {
		return false
	}
	// the device exposes a DAW port and a MIDI port; the game wants MIDI
	return strings.Contains(lower, "midi")
}

func (dm *DeviceManager) disconnect() {
	dm.mu.Lock()
	cur := dm.current
	dm.current = nil
	dm.mu.Unlock()
	if cur == nil {
		return
	}
	id := cur.ID()
	cur.Close()
	debug.Log().Info().Str("port", id).Msg("launchpad disconnected")
	dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
}
