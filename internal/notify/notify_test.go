package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

type recordingPlayer struct {
	played []string
	err    error
}

func (p *recordingPlayer) Play(cue Cue) error {
	if p.err != nil {
		return p.err
	}
	p.played = append(p.played, cue.Name)
	return nil
}

func soundsDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, file := range []string{"ebona.mp3", "cruz.mp3", "marl.mp3", "renz.mp3"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("mp3"), 0o644))
	}

	return dir
}

func TestTrigger_StartsLocked(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), model.CategoryPuzzles, player, zap.NewNop().Sugar())

	assert.False(t, trigger.Armed())

	trigger.Notify(model.CategoryPuzzles)

	assert.Empty(t, player.played)
}

func TestTrigger_ArmThenNotify(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), model.CategoryPuzzles, player, zap.NewNop().Sugar())

	trigger.Arm()

	assert.True(t, trigger.Armed())

	trigger.Notify(model.CategoryPuzzles)

	assert.Equal(t, []string{"renz.mp3"}, player.played)
	assert.Equal(t, "renz.mp3", trigger.LastCue())
}

func TestTrigger_ArmTwice_NoOp(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), model.CategoryPuzzles, player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Arm()

	assert.True(t, trigger.Armed())
}

func TestTrigger_PrimingFailureStillArms(t *testing.T) {
	player := &recordingPlayer{}
	// No sound files on disk, priming fails for every cue.
	trigger := NewTrigger(t.TempDir(), "", player, zap.NewNop().Sugar())

	trigger.Arm()

	assert.True(t, trigger.Armed())

	trigger.Notify(model.CategoryDolls)

	assert.Equal(t, []string{"marl.mp3"}, player.played)
}

func TestTrigger_UnknownCategory_NoCueNoError(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), "", player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Notify("Board Games")

	assert.Empty(t, player.played)
	assert.Empty(t, trigger.LastCue())
}

func TestTrigger_DepartmentCarriesOnlyItsCue(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), model.CategoryToyGuns, player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Notify(model.CategoryPuzzles)
	trigger.Notify(model.CategoryToyGuns)

	assert.Equal(t, []string{"ebona.mp3"}, player.played)
}

func TestTrigger_AdminCarriesAllCues(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), "", player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Notify(model.CategoryToyGuns)
	trigger.Notify(model.CategoryActionFigures)
	trigger.Notify(model.CategoryDolls)
	trigger.Notify(model.CategoryPuzzles)

	assert.Equal(t, []string{"ebona.mp3", "cruz.mp3", "marl.mp3", "renz.mp3"}, player.played)
}

func TestTrigger_PlaybackFailureSwallowed(t *testing.T) {
	player := &recordingPlayer{err: errors.New("device busy")}
	trigger := NewTrigger(soundsDir(t), "", player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Notify(model.CategoryPuzzles)

	assert.Empty(t, trigger.LastCue())
}

func TestTrigger_Release(t *testing.T) {
	player := &recordingPlayer{}
	trigger := NewTrigger(soundsDir(t), "", player, zap.NewNop().Sugar())

	trigger.Arm()
	trigger.Release()

	assert.False(t, trigger.Armed())

	trigger.Notify(model.CategoryPuzzles)

	assert.Empty(t, player.played)
}
