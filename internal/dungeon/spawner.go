package dungeon

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/roomwalk/internal/room"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/world"
)

// Placement is everything a spawner needs to materialise one room.
type Placement struct {
	Seed     int64
	Coord    world.Coord
	Kind     room.Kind
	Template *template.Template
	Position template.Vec3
}

// Spawner instantiates rooms. The returned handle is stored on the room
// record untouched.
type Spawner interface {
	Spawn(p Placement) (uuid.UUID, error)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(p Placement) (uuid.UUID, error)

// Spawn calls f.
func (f SpawnerFunc) Spawn(p Placement) (uuid.UUID, error) {
	return f(p)
}

// roomNamespace scopes the handles minted by HandleSpawner.
var roomNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("roomwalk.room"))

// HandleSpawner mints a name-based UUID from the seed and coordinate, so the
// same layout always gets the same handles. It instantiates nothing.
var HandleSpawner Spawner = SpawnerFunc(func(p Placement) (uuid.UUID, error) {
	return RoomHandle(p.Seed, p.Coord), nil
})

// RoomHandle returns the handle HandleSpawner assigns to a room.
func RoomHandle(seed int64, c world.Coord) uuid.UUID {
	return uuid.NewSHA1(roomNamespace, fmt.Appendf(nil, "%d:%d:%d", seed, c.X, c.Y))
}
