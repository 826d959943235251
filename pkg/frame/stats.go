package frame

import "fmt"

// DefaultTitleInterval is how often the title diagnostics refresh, in seconds.
const DefaultTitleInterval = 1.0 / 30.0

// Stats averages frame times over a short window for the title bar.
type Stats struct {
	interval float64
	since    float64
	frames   int
	started  bool
}

// NewStats creates a Stats that reports at most once per interval seconds.
func NewStats(interval float64) *Stats {
	if interval <= 0 {
		interval = DefaultTitleInterval
	}
	return &Stats{interval: interval}
}

// Frame counts one frame at time now. Once the interval has elapsed it
// returns the mean frame time in milliseconds and the frame rate, and starts
// a new window.
func (s *Stats) Frame(now float64) (msPerFrame, fps float64, ok bool) {
	if !s.started {
		s.started = true
		s.since = now
	}

	s.frames++
	elapsed := now - s.since
	if elapsed < s.interval || elapsed <= 0 {
		return 0, 0, false
	}

	msPerFrame = elapsed / float64(s.frames) * 1000
	fps = float64(s.frames) / elapsed

	s.since = now
	s.frames = 0
	return msPerFrame, fps, true
}

// Title formats the diagnostics shown in the window title.
func Title(msPerFrame, fps float64, yaw, pitch, roll float32) string {
	return fmt.Sprintf("time: %f fps: %f yaw: %f pitch: %f roll: %f", msPerFrame, fps, yaw, pitch, roll)
}
