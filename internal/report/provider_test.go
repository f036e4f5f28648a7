package report

import (
	"strings"
	"sync"
	"testing"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
)

// recordingLogger captures log messages for assertions.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	l.msgs = append(l.msgs, level+": "+msg)
	l.mu.Unlock()
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.record("error", msg) }

func (l *recordingLogger) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.msgs {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

// newHouse builds a house with the named rooms.
func newHouse(t *testing.T, name string, rooms ...string) *location.House {
	t.Helper()
	h := location.NewHouse(name)
	for _, r := range rooms {
		h.AddRoom(location.NewRoom(r))
	}
	return h
}

// attach places d in room or fails the test.
func attach(t *testing.T, h *location.House, room string, d device.Device) {
	t.Helper()
	if err := h.AddDevice(room, d); err != nil {
		t.Fatalf("AddDevice(%q, %q): %v", room, d.Name(), err)
	}
}

func TestOwningProvider_SimpleReport(t *testing.T) {
	h := newHouse(t, "name", "room")
	socket := device.NewSocket("name")
	attach(t, h, "room", socket)

	p := NewOwningProvider(socket)

	want := "Device was detected in name, room, dev: socket name is off\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
	if got := h.CreateReport(p); got != want {
		t.Errorf("House.CreateReport() = %q, want %q", got, want)
	}
}

func TestOwningProvider_OwnsACopy(t *testing.T) {
	h := newHouse(t, "home", "kitchen")
	socket := device.NewSocket("kettle")
	attach(t, h, "kitchen", socket)

	p := NewOwningProvider(socket)
	socket.PlugIn()

	want := "Device was detected in home, kitchen, dev: socket kettle is off\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}

	p.Socket().PlugIn()
	want = "Device was detected in home, kitchen, dev: socket kettle - 0 mw\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() after owned PlugIn = %q, want %q", got, want)
	}
}

func TestOwningProvider_DeviceInNoRoom(t *testing.T) {
	h := newHouse(t, "home", "kitchen", "hall")
	p := NewOwningProvider(device.NewSocket("lonely"))

	if got := p.CreateReport(h); got != "" {
		t.Errorf("CreateReport() = %q, want empty", got)
	}
}

func TestOwningProvider_EmptyHouse(t *testing.T) {
	p := NewOwningProvider(device.NewSocket("socket1"))
	if got := location.NewHouse("house").CreateReport(p); got != "" {
		t.Errorf("CreateReport() = %q, want empty", got)
	}
}

func TestOwningProvider_MultipleRooms(t *testing.T) {
	h := newHouse(t, "home", "kitchen", "hall", "attic")
	socket := device.NewSocket("ext")
	attach(t, h, "kitchen", socket)
	attach(t, h, "attic", socket)

	want := "Device was detected in home, kitchen, dev: socket ext is off\n" +
		"Device was detected in home, attic, dev: socket ext is off\n"
	if got := NewOwningProvider(socket).CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
}

func TestOwningProvider_DuplicateRoomNames(t *testing.T) {
	h := newHouse(t, "home", "dup", "dup")
	socket := device.NewSocket("s")
	attach(t, h, "dup", socket)

	// Both rooms named "dup" resolve to the first one, so the device is
	// reported once per matching room name.
	want := strings.Repeat("Device was detected in home, dup, dev: socket s is off\n", 2)
	if got := NewOwningProvider(socket).CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
}

func TestBorrowingProvider_Order(t *testing.T) {
	h := newHouse(t, "home", "kitchen")
	socket := device.NewSocket("kettle")
	thermo := device.NewThermometer("thermo")
	attach(t, h, "kitchen", thermo)
	attach(t, h, "kitchen", socket)

	p := NewBorrowingProvider(socket, thermo)

	want := "Device was detected in home, kitchen, dev: socket kettle is off\n" +
		"Device was detected in home, kitchen, dev: thermometer thermo - 0 c\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
}

func TestBorrowingProvider_SeesLiveState(t *testing.T) {
	h := newHouse(t, "home", "kitchen", "hall")
	socket := device.NewSocket("kettle")
	thermo := device.NewThermometer("thermo")
	attach(t, h, "kitchen", socket)
	attach(t, h, "hall", thermo)

	p := NewBorrowingProvider(socket, thermo)
	socket.PlugIn()
	socket.SetWattage(device.Wattage{Value: 2, Unit: device.Gigawatt})
	thermo.SetTemperature(device.Temperature{Value: 70, Unit: device.Fahrenheit})

	want := "Device was detected in home, kitchen, dev: socket kettle - 2 gw\n" +
		"Device was detected in home, hall, dev: thermometer thermo - 70 f\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
}

func TestBorrowingProvider_OnlyThermometerPlaced(t *testing.T) {
	h := newHouse(t, "home", "hall")
	thermo := device.NewThermometer("thermo")
	attach(t, h, "hall", thermo)

	p := NewBorrowingProvider(device.NewSocket("socket2"), thermo)

	want := "Device was detected in home, hall, dev: thermometer thermo - 0 c\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
}

func TestProvider_NoticeMissingPolicy(t *testing.T) {
	h := newHouse(t, "home", "hall")
	thermo := device.NewThermometer("thermo")
	attach(t, h, "hall", thermo)

	log := &recordingLogger{}
	p := NewBorrowingProvider(device.NewSocket("socket2"), thermo)
	p.SetLogger(log)
	p.SetMissingPolicy(NoticeMissing)

	want := "Device socket2 was not detected in home\n" +
		"Device was detected in home, hall, dev: thermometer thermo - 0 c\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
	if !log.contains("device not detected in any room") {
		t.Errorf("expected debug log for missing device, got %v", log.msgs)
	}

	p.SetMissingPolicy(nil)
	want = "Device was detected in home, hall, dev: thermometer thermo - 0 c\n"
	if got := p.CreateReport(h); got != want {
		t.Errorf("CreateReport() after nil policy = %q, want %q", got, want)
	}
}

func TestRegistryProvider(t *testing.T) {
	reg := device.NewRegistry()
	socket := device.NewSocket("kettle")
	thermo := device.NewThermometer("thermo")
	sh, _ := reg.Add(socket)
	th, _ := reg.Add(thermo)

	h := newHouse(t, "home", "kitchen")
	attach(t, h, "kitchen", socket)
	attach(t, h, "kitchen", thermo)

	log := &recordingLogger{}
	p := NewRegistryProvider(reg, th, "stale-handle", sh)
	p.SetLogger(log)

	want := "Device was detected in home, kitchen, dev: thermometer thermo - 0 c\n" +
		"Device was detected in home, kitchen, dev: socket kettle is off\n"
	if got := h.CreateReport(p); got != want {
		t.Errorf("CreateReport() = %q, want %q", got, want)
	}
	if !log.contains("skipping unresolved device handle") {
		t.Errorf("expected warning for stale handle, got %v", log.msgs)
	}
	if len(p.Handles()) != 3 {
		t.Errorf("Handles() = %v", p.Handles())
	}
}
