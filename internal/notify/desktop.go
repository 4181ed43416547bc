package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusDest   = "org.freedesktop.Notifications"
	dbusPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusMethod = dbusDest + ".Notify"

	expireTimeoutMs int32 = 5000
)

type busCaller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Desktop sends notifications through the freedesktop notification
// service. Each notification replaces the previous one.
type Desktop struct {
	mu     sync.Mutex
	app    string
	obj    busCaller
	lastID uint32
}

// NewDesktop connects to the session bus. It returns an error wrapping
// ErrUnavailable when there is no session bus.
func NewDesktop(app string) (*Desktop, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return newDesktop(app, conn.Object(dbusDest, dbusPath)), nil
}

func newDesktop(app string, obj busCaller) *Desktop {
	return &Desktop{app: app, obj: obj}
}

// Notify shows title and body.
func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	call := d.obj.CallWithContext(ctx, dbusMethod, 0,
		d.app,
		d.lastID,
		"",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		expireTimeoutMs,
	)
	if call.Err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, call.Err)
	}
	var id uint32
	if err := call.Store(&id); err == nil {
		d.lastID = id
	}
	return nil
}
