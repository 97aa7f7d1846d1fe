package notify

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

// Cue is one notification sound, referenced by fixed path.
type Cue struct {
	Name string
	Path string
}

// Player turns a cue into an audible notification. Playback failures are
// always swallowed by the trigger, a missed sound must never break a screen.
type Player interface {
	Play(cue Cue) error
}

var cueFiles = map[string]string{
	model.CategoryToyGuns:       "ebona.mp3",
	model.CategoryActionFigures: "cruz.mp3",
	model.CategoryDolls:         "marl.mp3",
	model.CategoryPuzzles:       "renz.mp3",
}

// Trigger maps categories to sound cues and gates playback behind an
// explicit arming step. It starts locked; Arm primes every known cue and
// unlocks playback even when priming fails.
type Trigger struct {
	player Player
	lg     *zap.SugaredLogger

	mu      sync.Mutex
	cues    map[string]Cue
	armed   bool
	lastCue string
}

// NewTrigger builds the cue set for one screen. An empty category means the
// admin screen, which carries every department's cue.
func NewTrigger(soundsDir, category string, player Player, lg *zap.SugaredLogger) *Trigger {
	cues := make(map[string]Cue)

	for cat, file := range cueFiles {
		if category != "" && cat != category {
			continue
		}
		cues[cat] = Cue{
			Name: file,
			Path: filepath.Join(soundsDir, file),
		}
	}

	return &Trigger{
		player: player,
		lg:     lg,
		cues:   cues,
	}
}

// Arm primes every known cue and unlocks playback. Priming failures are
// logged and arming proceeds anyway: a silent miss beats a blocked screen.
// Arming an already armed trigger is a no-op.
func (t *Trigger) Arm() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.armed {
		return
	}

	for _, cue := range t.cues {
		if err := t.prime(cue); err != nil {
			t.lg.Errorf("audio priming failed for %s: %v", cue.Name, err)
		}
	}

	t.armed = true
}

func (t *Trigger) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.armed
}

// Notify plays the cue mapped to the category. Nothing happens while
// locked, for an unmapped category, or after Release; playback errors are
// logged and swallowed.
func (t *Trigger) Notify(category string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed {
		return
	}

	cue, ok := t.cues[category]
	if !ok {
		return
	}

	if err := t.player.Play(cue); err != nil {
		t.lg.Errorf("cue playback failed for %s: %v", cue.Name, err)
		return
	}

	t.lastCue = cue.Name
}

func (t *Trigger) LastCue() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lastCue
}

// Release frees the cue set on screen teardown.
func (t *Trigger) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cues = map[string]Cue{}
	t.armed = false
}

func (t *Trigger) prime(cue Cue) error {
	f, err := os.Open(cue.Path)
	if err != nil {
		return err
	}

	return f.Close()
}
