package commands

import (
	"errors"
	"flag"
	"math"
	"strings"
	"testing"

	"cube-viewer/internal/loop"
	"cube-viewer/internal/view"
)

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", "echo [-upper] WORDS", func(fs *flag.FlagSet) RunFunc {
		upper := fs.Bool("upper", false, "")
		return func(args []string) (string, error) {
			out := strings.Join(args, " ")
			if *upper {
				out = strings.ToUpper(out)
			}
			return out, nil
		}
	})

	tests := []struct {
		line    string
		want    string
		wantErr string
	}{
		{"echo hello world", "hello world", ""},
		{"echo -upper hi", "HI", ""},
		{"echo again", "again", ""}, // -upper from the previous run does not stick
		{"", "", "empty command"},
		{"nope", "", "unknown command: nope"},
		{"echo -bogus", "", "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := r.ExecuteLine(tt.line)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ExecuteLine(%q) error = %v, want %q", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExecuteLine(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ExecuteLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}

	if _, err := r.Execute(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Execute(nil) error = %v, want ErrEmpty", err)
	}
}

func TestRegistry_Help(t *testing.T) {
	r := NewRegistry()
	RegisterView(r, newController())
	help, err := r.ExecuteLine("help")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"spin", "zoom", "elevation", "color", "status"} {
		if !strings.Contains(help, name) {
			t.Errorf("help does not mention %q:\n%s", name, help)
		}
	}
}

func newController() *view.Controller {
	return view.NewController(view.DefaultOptions(), &view.Style{}, loop.New(), nil)
}

func TestRegisterView(t *testing.T) {
	c := newController()
	r := NewRegistry()
	RegisterView(r, c)

	run := func(line string) string {
		t.Helper()
		out, err := r.ExecuteLine(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		return out
	}

	run("zoom")
	run("zoom -in")
	if got := c.Snapshot().Size; math.Abs(got-198) > 1e-9 {
		t.Errorf("size after zoom out/in = %v, want 198", got)
	}

	run("rotate -x 10 -y -5")
	if s := c.Snapshot(); s.RotateX != -20 || s.RotateY != 25 {
		t.Errorf("rotation = (%v, %v), want (-20, 25)", s.RotateX, s.RotateY)
	}
	run("reset")
	if s := c.Snapshot(); s.RotateX != -30 || s.RotateY != 30 {
		t.Errorf("rotation after reset = (%v, %v)", s.RotateX, s.RotateY)
	}

	run("elevation 150")
	if got := c.Snapshot().Elevation; got != 150 {
		t.Errorf("elevation = %v, want 150", got)
	}
	run("wireframe on")
	run("visible off")
	if s := c.Snapshot(); !s.Wireframe || s.Visible {
		t.Errorf("wireframe/visible = %v/%v", s.Wireframe, s.Visible)
	}
	run("color #00F")
	if got := c.Snapshot().Color; got != "#0000ff" {
		t.Errorf("color = %q", got)
	}

	if out := run("spin"); out != "spinning" {
		t.Errorf("spin = %q", out)
	}
	if out := run("spin"); out != "already spinning" {
		t.Errorf("second spin = %q", out)
	}
	if out := run("stop"); out != "stopped" {
		t.Errorf("stop = %q", out)
	}
	if out := run("status"); !strings.Contains(out, "translateY(150px)") || !strings.HasSuffix(out, "idle") {
		t.Errorf("status = %q", out)
	}
}

func TestRegisterView_Errors(t *testing.T) {
	r := NewRegistry()
	c := newController()
	RegisterView(r, c)

	for _, line := range []string{
		"elevation 500",
		"elevation high",
		"elevation",
		"visible maybe",
		"color red",
		"zoom -n 0",
		"rotate 5",
	} {
		if _, err := r.ExecuteLine(line); err == nil {
			t.Errorf("%q: error = nil", line)
		}
	}
	if s := c.Snapshot(); s.Elevation != 0 || s.Color != "#ff0000" || s.Size != 200 {
		t.Errorf("failed commands changed state: %+v", s)
	}
}
