package game

import (
	"time"

	"github.com/lixenwraith/vi-runner/config"
)

// ObstacleScheduler produces obstacles with randomized height, width and traversal time
type ObstacleScheduler struct {
	cfg        config.ObstacleConfig
	fieldWidth float64
	rng        Rand
	nextID     uint64
}

func NewObstacleScheduler(cfg config.ObstacleConfig, fieldWidth float64, rng Rand) *ObstacleScheduler {
	return &ObstacleScheduler{
		cfg:        cfg,
		fieldWidth: fieldWidth,
		rng:        rng,
	}
}

// StartX is the off-screen-right spawn position of the left edge
func (sc *ObstacleScheduler) StartX() float64 {
	return sc.fieldWidth
}

// EndX is the off-screen-left position where a traversal completes
func (sc *ObstacleScheduler) EndX() float64 {
	return -sc.cfg.Width
}

// Initial returns the idle configuration applied on start, before the first spawn
func (sc *ObstacleScheduler) Initial() ObstacleState {
	return ObstacleState{
		X:      sc.StartX(),
		Height: sc.cfg.InitialHeight,
		Width:  sc.cfg.Width,
	}
}

// Next returns a fresh obstacle with a new traversal ID
func (sc *ObstacleScheduler) Next() ObstacleState {
	sc.nextID++

	d := sc.duration()
	return ObstacleState{
		ID:       sc.nextID,
		X:        sc.StartX(),
		Height:   sc.height(),
		Width:    sc.cfg.Width,
		Speed:    (sc.StartX() - sc.EndX()) / d.Seconds(),
		Duration: d,
		Active:   true,
	}
}

func (sc *ObstacleScheduler) height() float64 {
	if n := len(sc.cfg.Heights); n > 0 {
		return sc.cfg.Heights[sc.rng.IntN(n)]
	}
	return sc.cfg.HeightMin + sc.rng.Float64()*(sc.cfg.HeightMax-sc.cfg.HeightMin)
}

func (sc *ObstacleScheduler) duration() time.Duration {
	span := float64(sc.cfg.DurationMax - sc.cfg.DurationMin)
	return sc.cfg.DurationMin + time.Duration(sc.rng.Float64()*span)
}
