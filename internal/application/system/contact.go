package system

import (
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/domain/shape"
)

const (
	tagPlayer = "player"
	tagEnemy  = "enemy"
	tagPickup = "pickup"
)

// ContactKind is what the player touched
type ContactKind int

const (
	ContactEnemy ContactKind = iota
	ContactPickup
)

// Contact is a player overlap with another actor
type Contact struct {
	Kind   ContactKind
	Enemy  *entity.Enemy
	Pickup *entity.Pickup
}

// ContactSystem finds actor overlaps. A resolv space narrows the candidates
// by cell and the SAT test confirms the overlap.
type ContactSystem struct {
	space      *resolv.Space
	player     *resolv.Object
	playerBody *entity.Body
	actors     []actor
}

type actor struct {
	obj  *resolv.Object
	body *entity.Body
}

// NewContactSystem creates a contact space covering width×height world units
func NewContactSystem(width, height, cellSize int) *ContactSystem {
	return &ContactSystem{
		space: resolv.NewSpace(width, height, cellSize, cellSize),
	}
}

// SetPlayer registers the player
func (s *ContactSystem) SetPlayer(player *entity.Player) {
	if s.player != nil {
		s.remove(s.player)
	}
	s.player = s.add(&player.Body, player, tagPlayer)
	s.playerBody = &player.Body
}

// AddEnemy registers an enemy
func (s *ContactSystem) AddEnemy(enemy *entity.Enemy) {
	s.add(&enemy.Body, enemy, tagEnemy)
}

// AddPickup registers a pickup
func (s *ContactSystem) AddPickup(pickup *entity.Pickup) {
	s.add(&pickup.Body, pickup, tagPickup)
}

// RemovePickup drops a collected pickup from the space
func (s *ContactSystem) RemovePickup(pickup *entity.Pickup) {
	for _, a := range s.actors {
		if a.obj.Data == pickup {
			s.remove(a.obj)
			return
		}
	}
}

func (s *ContactSystem) add(body *entity.Body, data any, tag string) *resolv.Object {
	b := body.Bounds()
	obj := resolv.NewObject(b.Min.X, b.Min.Y, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, tag)
	obj.Data = data
	s.space.Add(obj)
	s.actors = append(s.actors, actor{obj: obj, body: body})
	return obj
}

func (s *ContactSystem) remove(obj *resolv.Object) {
	s.space.Remove(obj)
	s.actors = slices.DeleteFunc(s.actors, func(a actor) bool { return a.obj == obj })
}

// Update syncs every actor into the space and returns the player's contacts
// with active enemies and pickups, enemies first
func (s *ContactSystem) Update() []Contact {
	for _, a := range s.actors {
		b := a.body.Bounds()
		a.obj.X, a.obj.Y = b.Min.X, b.Min.Y
		a.obj.Update()
	}

	if s.player == nil {
		return nil
	}
	player := s.playerBody

	check := s.player.Check(0, 0, tagEnemy, tagPickup)
	if check == nil {
		return nil
	}

	var contacts []Contact
	for _, obj := range check.ObjectsByTags(tagEnemy) {
		enemy, ok := obj.Data.(*entity.Enemy)
		if !ok || !enemy.Active || !overlaps(player, &enemy.Body) {
			continue
		}
		contacts = append(contacts, Contact{Kind: ContactEnemy, Enemy: enemy})
	}
	for _, obj := range check.ObjectsByTags(tagPickup) {
		pickup, ok := obj.Data.(*entity.Pickup)
		if !ok || !pickup.Active || !overlaps(player, &pickup.Body) {
			continue
		}
		contacts = append(contacts, Contact{Kind: ContactPickup, Pickup: pickup})
	}
	return contacts
}

func overlaps(a, b *entity.Body) bool {
	_, hit := shape.TestOverlap(a.Shape, a.Position, b.Shape, b.Position)
	return hit
}
