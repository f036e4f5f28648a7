// Package layout decodes a YAML description of a house and builds the
// in-memory object graph from it.
//
// A layout names the house, defines each device once, places devices in
// rooms by name (a device may appear in several rooms), and lists the
// reports to produce:
//
//	house: cottage
//	devices:
//	  - name: kettle
//	    kind: socket
//	    on: true
//	    wattage: {value: 1500, unit: mw}
//	  - name: hall-thermo
//	    kind: thermometer
//	    temperature: {value: 21, unit: c}
//	rooms:
//	  - name: kitchen
//	    devices: [kettle]
//	  - name: hall
//	    devices: [hall-thermo]
//	reports:
//	  - name: kettle only
//	    provider: owning
//	    socket: kettle
//	  - provider: borrowing
//	    socket: kettle
//	    thermometer: hall-thermo
//	  - provider: registry
//	    devices: [hall-thermo, kettle]
//
// Build registers every device in a device.Registry, wires the rooms and
// returns a Plan holding the house and the ready-to-run providers.
package layout
