package osm

import "fmt"

// ItemType identifies the kind of OSM entity a reference points at.
type ItemType uint8

const (
	// ItemTypeUndefined is the zero value; no valid member carries it.
	ItemTypeUndefined ItemType = iota
	// ItemTypeNode references a node.
	ItemTypeNode
	// ItemTypeWay references a way.
	ItemTypeWay
	// ItemTypeRelation references a relation.
	ItemTypeRelation
)

// String returns the lowercase OSM name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemTypeNode:
		return "node"
	case ItemTypeWay:
		return "way"
	case ItemTypeRelation:
		return "relation"
	default:
		return fmt.Sprintf("undefined(%d)", uint8(t))
	}
}

// ObjectID is a signed OSM object identifier as it appears in the source data.
// Negative IDs occur in editing workflows for not-yet-uploaded objects.
type ObjectID int64

// UnsignedObjectID is an object identifier known to be positive.
// All index structures in this module key on the unsigned form.
type UnsignedObjectID uint64

// Positive returns the absolute value of the ID as an UnsignedObjectID.
func (id ObjectID) Positive() UnsignedObjectID {
	if id < 0 {
		return UnsignedObjectID(-id)
	}
	return UnsignedObjectID(id)
}

// Member is one typed reference from a relation to another entity.
type Member struct {
	Type ItemType
	Ref  ObjectID
	Role string
}

// PositiveRef returns the referenced object's ID as an UnsignedObjectID.
func (m Member) PositiveRef() UnsignedObjectID {
	return m.Ref.Positive()
}
