package fcp

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// uidNamespace scopes name-based UIDs to this exporter.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kinetic/fcpxml"))

// GenerateUID derives a stable UID from a name. Final Cut Pro ties a UID to
// the first thing imported with it, so the same project name must always map
// to the same UID.
func GenerateUID(name string) string {
	return strings.ToUpper(uuid.NewSHA1(uidNamespace, []byte(name)).String())
}

// GenerateResourceID creates a standardized resource ID
func GenerateResourceID(index int) string {
	return fmt.Sprintf("r%d", index)
}

// IDGenerator hands out resource and text-style IDs that are unique within
// one document.
type IDGenerator struct {
	usedIDs   map[string]bool
	nextIndex int
	nextStyle int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		usedIDs:   make(map[string]bool),
		nextIndex: 1,
		nextStyle: 1,
	}
}

// ReserveID reserves a single ID and marks it as used
func (g *IDGenerator) ReserveID() string {
	for {
		id := GenerateResourceID(g.nextIndex)
		g.nextIndex++

		if !g.usedIDs[id] {
			g.usedIDs[id] = true
			return id
		}
	}
}

// ReserveStyleID reserves a text-style-def ID.
func (g *IDGenerator) ReserveStyleID() string {
	for {
		id := fmt.Sprintf("ts%d", g.nextStyle)
		g.nextStyle++

		if !g.usedIDs[id] {
			g.usedIDs[id] = true
			return id
		}
	}
}
