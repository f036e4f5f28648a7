package device

import (
	"sync"
	"testing"
)

func TestSocket_Name(t *testing.T) {
	s := NewSocket("name")
	if s.Name() != "name" {
		t.Errorf("Name() = %q, want %q", s.Name(), "name")
	}
}

func TestSocket_Report(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Socket)
		want   string
		wantOn bool
	}{
		{
			name:  "new socket is off",
			setup: func(*Socket) {},
			want:  "socket name is off",
		},
		{
			name:   "plugged in reports default wattage",
			setup:  func(s *Socket) { s.PlugIn() },
			want:   "socket name - 0 mw",
			wantOn: true,
		},
		{
			name: "plugged in with gigawatt reading",
			setup: func(s *Socket) {
				s.PlugIn()
				s.SetWattage(Wattage{Value: 3, Unit: Gigawatt})
			},
			want:   "socket name - 3 gw",
			wantOn: true,
		},
		{
			name: "wattage hidden while off",
			setup: func(s *Socket) {
				s.SetWattage(Wattage{Value: 1500, Unit: Milliwatt})
			},
			want: "socket name is off",
		},
		{
			name: "plug out after plug in",
			setup: func(s *Socket) {
				s.PlugIn()
				s.PlugOut()
			},
			want: "socket name is off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSocket("name")
			tt.setup(s)

			if got := s.Report(); got != tt.want {
				t.Errorf("Report() = %q, want %q", got, tt.want)
			}
			if s.IsOn() != tt.wantOn {
				t.Errorf("IsOn() = %v, want %v", s.IsOn(), tt.wantOn)
			}
		})
	}
}

func TestSocket_ReportDoesNotMutate(t *testing.T) {
	s := NewSocket("name")
	first := s.Report()
	second := s.Report()

	if first != second {
		t.Errorf("Report() changed between calls: %q then %q", first, second)
	}
	if s.IsOn() {
		t.Error("Report() must not switch the socket on")
	}
}

func TestSocket_Clone(t *testing.T) {
	orig := NewSocket("kettle")
	orig.PlugIn()
	orig.SetWattage(Wattage{Value: 7, Unit: Milliwatt})

	clone := orig.Clone()
	if clone == orig {
		t.Fatal("Clone() returned the same pointer")
	}
	if clone.Report() != orig.Report() {
		t.Errorf("clone report = %q, want %q", clone.Report(), orig.Report())
	}

	clone.PlugOut()
	if !orig.IsOn() {
		t.Error("switching the clone off affected the original")
	}
}

func TestSocket_ConcurrentReportAndMutation(t *testing.T) {
	s := NewSocket("name")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.PlugIn()
			s.SetWattage(Wattage{Value: 1, Unit: Milliwatt})
			s.PlugOut()
		}()
		go func() {
			defer wg.Done()
			_ = s.Report()
		}()
	}
	wg.Wait()
}
