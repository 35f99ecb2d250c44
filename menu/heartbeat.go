package menu

import "serialmenu/x/mathx"

// Heartbeat pacing: a marker every ~10s of idling, and after the first
// marker the indicator flips every ~1s.
const markerSeconds = 10

func (e *Engine) heartbeatEnabled(elapsedMs uint16) bool {
	return elapsedMs != 0 && e.cfg.Indicator != nil && !e.cfg.DisableHeartbeat
}

func (e *Engine) beat(avail bool, elapsedMs uint16) {
	// Loops slower than 1 Hz count each call as a second.
	callsPerSecond := mathx.Max(uint32(1000/elapsedMs), 1)
	ticksPerMarker := markerSeconds * callsPerSecond
	ticksPerBlink := callsPerSecond

	if !avail {
		e.idle++
		if e.idle >= ticksPerMarker && e.idle%ticksPerBlink == 0 {
			e.cfg.Indicator.Set((e.idle/ticksPerBlink)&1 == 1)
		}
		if e.idle%ticksPerMarker == 0 {
			e.write([]byte{e.cfg.Marker})
		}
		return
	}

	// Close the marker line before any output caused by the input.
	if e.idle >= ticksPerMarker {
		e.write(e.eol)
	}
	e.idle = 0
}
