package notify

import "go.uber.org/zap"

// LogPlayer is the headless default: it announces the cue in the log and
// leaves actual playback to whatever tails the process output.
type LogPlayer struct {
	lg *zap.SugaredLogger
}

func NewLogPlayer(lg *zap.SugaredLogger) *LogPlayer {
	return &LogPlayer{lg: lg}
}

func (p *LogPlayer) Play(cue Cue) error {
	p.lg.Infof("playing cue %s (%s)", cue.Name, cue.Path)
	return nil
}
