package world

import (
	"fmt"

	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/trace"
)

// Records returns one trace record per body for the last step: the player
// first, then active enemies
func (w *World) Records() []trace.Record {
	records := make([]trace.Record, 0, 1+len(w.enemies))
	records = append(records, record(w.frame, "player", &w.player.Body, w.playerResult))
	for i, e := range w.enemies {
		if !e.Active {
			continue
		}
		records = append(records, record(w.frame, fmt.Sprintf("enemy-%d", e.ID), &e.Body, w.enemyResults[i]))
	}
	return records
}

func record(frame int, name string, body *entity.Body, res system.Result) trace.Record {
	r := trace.Record{
		Frame:    frame,
		Body:     name,
		X:        body.Position.X,
		Y:        body.Position.Y,
		VX:       body.Velocity.X,
		VY:       body.Velocity.Y,
		State:    body.State().String(),
		Collided: res.Collided,
		HitCol:   -1,
		HitRow:   -1,
	}
	if res.Collided && res.Hit.Tile != nil {
		r.HitCol, r.HitRow = res.Hit.Tile.Col, res.Hit.Tile.Row
		r.NormalX, r.NormalY = res.Hit.Normal.X, res.Hit.Normal.Y
		r.Depth = res.Hit.Depth
	}
	return r
}
