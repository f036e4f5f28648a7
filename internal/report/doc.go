// Package report composes device status reports for a house.
//
// A provider selects which devices to report on. For every device it walks
// the rooms of the house in order, resolves the device's location in each
// room, and emits one line per room where the device is found:
//
//	Device was detected in {house}, {room}, dev: {device report}
//
// Lookup failures never reach the caller. A device that sits in no room
// contributes whatever the configured MissingPolicy returns, which is
// nothing by default.
//
// Three providers exist:
//
//   - OwningProvider keeps its own copy of a single Socket.
//   - BorrowingProvider references a Socket and a Thermometer owned elsewhere
//     and always reports the socket first.
//   - RegistryProvider keeps device.Handle values and resolves them against a
//     device.Registry at report time.
//
// # Usage
//
//	p := report.NewBorrowingProvider(sock, thermo)
//	p.SetLogger(log)
//	text := house.CreateReport(p)
package report
