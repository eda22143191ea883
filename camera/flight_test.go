package camera

import (
	"testing"
	"time"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingListener struct {
	started  []Flight
	finished []Flight
}

func (r *recordingListener) FlightStarted(f Flight)  { r.started = append(r.started, f) }
func (r *recordingListener) FlightFinished(f Flight) { r.finished = append(r.finished, f) }

func newFlightRig() (*Camera, *OrbitControls, *FlightController) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, nil, ControlsConfig{
		MinDistance: 10, MaxDistance: 300, Damping: 0.05, RotateSpeed: 0.05, ZoomFactor: 0.95,
	})
	fc := NewFlightController(cam, controls, time.Second, vmath.V3(0, 5, 15))
	return cam, controls, fc
}

func TestFlightInterpolation(t *testing.T) {
	cam, controls, fc := newFlightRig()
	earth := components.NewBody("Earth", 1.2, 20, 0.03, components.RGB{})
	start := cam.Position()

	fc.Request(earth, epoch)
	if fc.Mode() != Flying {
		t.Fatalf("mode = %v, want Flying", fc.Mode())
	}

	wantTarget := vmath.V3(20, 5, 15)
	tests := []struct {
		name    string
		elapsed time.Duration
		want    vmath.Vec3
		mode    Mode
	}{
		{"t=0 at start", 0, start, Flying},
		{"halfway", 500 * time.Millisecond, vmath.V3Lerp(start, wantTarget, 0.5), Flying},
		{"t=duration at target", time.Second, wantTarget, Idle},
	}

	for _, tt := range tests {
		fc.Update(epoch.Add(tt.elapsed))
		if !vmath.V3ApproxEqual(cam.Position(), tt.want, 1e-9) {
			t.Errorf("%s: position = %v, want %v", tt.name, cam.Position(), tt.want)
		}
		if cam.Target() != earth.Position {
			t.Errorf("%s: camera looks at %v, want %v", tt.name, cam.Target(), earth.Position)
		}
		if fc.Mode() != tt.mode {
			t.Errorf("%s: mode = %v, want %v", tt.name, fc.Mode(), tt.mode)
		}
	}

	if controls.Target() != earth.Position {
		t.Errorf("controls target = %v, want %v", controls.Target(), earth.Position)
	}
}

func TestFlightIdleAfterDuration(t *testing.T) {
	cam, _, fc := newFlightRig()
	body := components.NewBody("Mars", 0.9, 25, 0.024, components.RGB{})

	fc.Request(body, epoch)
	// Frame arrives late, flight ends clamped on the target
	if !fc.Update(epoch.Add(3 * time.Second)) {
		t.Fatal("Update did not write the camera")
	}
	if fc.Mode() != Idle {
		t.Fatalf("mode = %v, want Idle", fc.Mode())
	}
	want := vmath.V3(25, 5, 15)
	if !vmath.V3ApproxEqual(cam.Position(), want, 1e-9) {
		t.Errorf("position = %v, want %v", cam.Position(), want)
	}

	// Idle controller no longer touches the camera
	cam.SetPosition(vmath.V3(1, 2, 3))
	if fc.Update(epoch.Add(4 * time.Second)) {
		t.Error("Idle Update wrote the camera")
	}
	if cam.Position() != vmath.V3(1, 2, 3) {
		t.Errorf("position moved to %v while Idle", cam.Position())
	}
}

func TestFlightLastRequestWins(t *testing.T) {
	cam, _, fc := newFlightRig()
	a := components.NewBody("A", 1, 10, 0, components.RGB{})
	b := components.NewBody("B", 1, 40, 0, components.RGB{})

	fc.Request(a, epoch)
	fc.Update(epoch.Add(400 * time.Millisecond))
	mid := cam.Position()

	fc.Request(b, epoch.Add(400*time.Millisecond))
	f, ok := fc.Current()
	if !ok || f.Body != "B" {
		t.Fatalf("current flight = %+v (ok=%v), want B", f, ok)
	}
	if f.Start != mid {
		t.Errorf("second flight starts at %v, want camera position %v", f.Start, mid)
	}

	fc.Update(epoch.Add(1400 * time.Millisecond))
	if fc.Mode() != Idle {
		t.Errorf("mode = %v, want Idle", fc.Mode())
	}
	if !vmath.V3ApproxEqual(cam.Position(), vmath.V3(40, 5, 15), 1e-9) {
		t.Errorf("final position = %v, want B framing", cam.Position())
	}
}

func TestFlightListeners(t *testing.T) {
	_, _, fc := newFlightRig()
	rec := &recordingListener{}
	fc.AddListener(rec)

	body := components.NewBody("Venus", 1, 15, 0.035, components.RGB{})
	fc.Request(body, epoch)
	fc.Update(epoch.Add(500 * time.Millisecond))
	if len(rec.started) != 1 || len(rec.finished) != 0 {
		t.Fatalf("mid-flight: started=%d finished=%d", len(rec.started), len(rec.finished))
	}

	fc.Update(epoch.Add(time.Second))
	if len(rec.finished) != 1 || rec.finished[0].Body != "Venus" {
		t.Errorf("finished = %+v", rec.finished)
	}
}

func TestFlightNilBodyIgnored(t *testing.T) {
	_, _, fc := newFlightRig()
	fc.Request(nil, epoch)
	if fc.Mode() != Idle {
		t.Errorf("mode = %v after nil request", fc.Mode())
	}
}

func TestModeString(t *testing.T) {
	if Idle.String() != "Idle" || Flying.String() != "Flying" || Mode(9).String() != "Unknown" {
		t.Error("unexpected Mode strings")
	}
}
