package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Lucky", "Cold", "Hot", "Wild", "Silent", "Loose", "Tight", "Bold", "Quiet", "Crooked", "Golden",
	"Red", "Blue", "Green", "Black", "Velvet", "Smoky", "Late", "Early", "Grand", "Midnight", "Prime",
}

var places = []string{
	"River", "Turn", "Flop", "Felt", "Rail", "Button", "Blind", "Pot", "Deck", "Table", "Parlor",
	"Saloon", "Lounge", "Den", "Room", "Club", "Casino", "Boat", "Cellar", "Attic",
}

var (
	random     = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
	randomLock sync.Mutex
)

// GetRandomName returns a random table name by combining an adjective with a place
func GetRandomName() string {
	randomLock.Lock()
	defer randomLock.Unlock()

	adjectivesIndex := random.Intn(len(adjectives))
	placesIndex := random.Intn(len(places))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], places[placesIndex])
}
