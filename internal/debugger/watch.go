package debugger

import (
	"log"
	"slices"

	"github.com/wnxd/guestmem/debugger"
)

// watchManager keeps the armed watchpoints in registration order and a
// single-slot trigger latch. While the latch is set evaluate does nothing.
type watchManager struct {
	logger  *log.Logger
	watches []debugger.Watchpoint
	trigger *debugger.Trigger
}

func (w *watchManager) ctor(logger *log.Logger) {
	w.logger = logger
	w.watches = make([]debugger.Watchpoint, 0, 8)
}

func (w *watchManager) dtor() {
	w.watches = nil
	w.trigger = nil
}

func (w *watchManager) evaluate(addr, size uint32, isWrite bool) {
	if w.trigger != nil {
		return
	}
	for _, wp := range w.watches {
		if !wp.Kind.Accepts(isWrite) {
			continue
		}
		if overlaps(addr, size, wp) {
			w.trigger = &debugger.Trigger{Kind: wp.Kind, Addr: addr}
			w.logger.Printf("watchpoint %s: %s", wp, w.trigger)
			return
		}
	}
}

// overlaps reports whether the access [addr, addr+size) reaches the watched
// range: either it starts below the watch and its end reaches the watch
// start, or it starts inside the watch.
func overlaps(addr, size uint32, wp debugger.Watchpoint) bool {
	start, end := uint64(addr), uint64(addr)+uint64(size)
	watchStart, watchEnd := uint64(wp.Addr), uint64(wp.Addr)+uint64(wp.Len)
	if start < watchStart {
		return end >= watchStart
	}
	return start < watchEnd
}

func (w *watchManager) addWatchpoint(addr, size uint32, kind debugger.WatchKind) error {
	switch kind {
	case debugger.WatchKind_Read, debugger.WatchKind_Write, debugger.WatchKind_Access:
	default:
		return debugger.ErrArgumentInvalid
	}
	wp := debugger.Watchpoint{Addr: addr, Len: size, Kind: kind}
	w.watches = append(w.watches, wp)
	w.logger.Printf("watchpoint armed: %s", wp)
	return nil
}

func (w *watchManager) removeWatchpoint(addr, size uint32, kind debugger.WatchKind) error {
	wp := debugger.Watchpoint{Addr: addr, Len: size, Kind: kind}
	i := slices.Index(w.watches, wp)
	if i == -1 {
		return debugger.ErrWatchpointNotFound
	}
	w.watches = slices.Delete(w.watches, i, i+1)
	w.logger.Printf("watchpoint disarmed: %s", wp)
	return nil
}

func (w *watchManager) clearWatchpoints() {
	if len(w.watches) > 0 {
		w.logger.Printf("watchpoints disarmed: %d", len(w.watches))
	}
	w.watches = w.watches[:0]
}

func (w *watchManager) clearTrigger() {
	if w.trigger != nil {
		w.logger.Printf("watchpoint trigger cleared: %s", w.trigger)
	}
	w.trigger = nil
}

func (dbg *Dbg) AddWatchpoint(addr, size uint32, kind debugger.WatchKind) error {
	return dbg.watchManager.addWatchpoint(addr, size, kind)
}

func (dbg *Dbg) RemoveWatchpoint(addr, size uint32, kind debugger.WatchKind) error {
	return dbg.watchManager.removeWatchpoint(addr, size, kind)
}

func (dbg *Dbg) ClearWatchpoints() {
	dbg.watchManager.clearWatchpoints()
}

func (dbg *Dbg) Watchpoints() []debugger.Watchpoint {
	return slices.Clone(dbg.watchManager.watches)
}

func (dbg *Dbg) Trigger() (debugger.Trigger, bool) {
	if t := dbg.watchManager.trigger; t != nil {
		return *t, true
	}
	return debugger.Trigger{}, false
}

func (dbg *Dbg) ClearTrigger() {
	dbg.watchManager.clearTrigger()
}
