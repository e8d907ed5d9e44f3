package util

import (
	"fmt"

	"showdown-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Bluffing", "Folding", "Stoic", "Gracious", "Happy", "Grinning",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate",
	"Sly", "Steady", "Cool", "Daring",
}

var animals = []string{
	"Dog", "Cat", "Otter", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Fox",
	"Wolf", "Panda", "Eagle", "Okapi", "Badger", "Heron", "Walrus", "Lynx",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
