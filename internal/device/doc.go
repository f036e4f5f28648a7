// Package device provides the reportable devices of a smart house and the
// registry that owns them.
//
// A device is anything with a stable name and a textual status report. Two
// kinds exist today: Socket (power flag plus wattage) and Thermometer
// (temperature reading). Both satisfy the Device interface, so rooms and
// report providers can hold either without knowing the concrete type.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                        device package                        │
//	│                                                              │
//	│  ┌──────────────────┐    ┌──────────────────┐                │
//	│  │     Registry     │    │   Device (iface) │                │
//	│  │  (registry.go)   │───▶│  • Socket        │                │
//	│  │                  │    │  • Thermometer   │                │
//	│  │ • Handle → dev   │    └──────────────────┘                │
//	│  │ • Typed lookups  │                                        │
//	│  │ • Thread safety  │                                        │
//	│  └──────────────────┘                                        │
//	└──────────────────────────────────────────────────────────────┘
//	            │
//	            ▼
//	┌──────────────────────┐   ┌──────────────────────┐
//	│   location.Room      │   │  report providers    │
//	│   (non-owning refs)  │   │  (handles or refs)   │
//	└──────────────────────┘   └──────────────────────┘
//
// # Usage
//
//	reg := device.NewRegistry()
//	reg.SetLogger(log)
//
//	sock := device.NewSocket("kettle")
//	h := reg.Add(sock)
//
//	sock.PlugIn()
//	fmt.Println(sock.Report()) // socket kettle - 0 mw
//
//	dev, err := reg.Get(h)
//
// # Thread Safety
//
// Socket and Thermometer guard their state with a read-write mutex, so a
// Report running on one goroutine never races a setter on another. The
// Registry is safe for concurrent use.
package device
