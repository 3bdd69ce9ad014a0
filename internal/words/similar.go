// internal/words/similar.go
//
// "Similar words" lookup. This is a fixed category table, not a language
// model: a query naming a category ("birds", "fruit") returns the known words
// belonging to it. Other queries fall back to substring containment in either
// direction, and finally to a fuzzy subsequence match.

package words

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxFuzzyResults = 25

var reWordParts = regexp.MustCompile(`[\s\-]+`)

var (
	countries  = []string{"france", "japan", "brazil", "canada", "germany", "italy", "spain", "australia", "china", "india", "mexico", "russia", "england", "america", "usa", "united states"}
	birds      = []string{"eagle", "parrot", "penguin", "owl", "chicken", "duck", "goose", "swan", "crow", "robin", "sparrow", "hawk", "falcon", "peacock", "flamingo", "toucan", "hummingbird", "cardinal", "bluebird", "woodpecker", "canary", "finch", "wren", "jay", "magpie", "raven", "vulture", "ostrich", "emu", "kiwi", "pelican", "heron", "crane", "stork", "seagull", "albatross", "puffin", "pheasant", "quail", "turkey", "rooster", "hen", "chick", "mockingbird"}
	space      = []string{"nasa", "moon", "astronaut", "rocket", "satellite", "planet", "mars", "jupiter", "saturn", "neptune", "uranus", "mercury", "venus", "earth", "galaxy", "star", "comet", "asteroid"}
	insects    = []string{"butterfly", "bee", "ant", "spider", "fly", "mosquito", "beetle", "ladybug", "dragonfly", "grasshopper", "cricket", "moth", "wasp", "hornet", "caterpillar"}
	animals    = []string{"dog", "cat", "lion", "tiger", "elephant", "bear", "wolf", "fox", "rabbit", "squirrel", "deer", "horse", "cow", "pig", "sheep", "goat", "monkey", "giraffe", "zebra", "panda", "koala"}
	food       = []string{"pizza", "burger", "sandwich", "pasta", "rice", "bread", "cake", "cookie", "apple", "banana", "orange", "grape", "strawberry", "chocolate", "ice cream", "soup", "salad", "cheese", "milk", "juice"}
	sports     = []string{"football", "basketball", "soccer", "tennis", "baseball", "golf", "swimming", "running", "cycling", "boxing", "wrestling", "hockey", "volleyball", "badminton", "cricket", "rugby"}
	colors     = []string{"red", "blue", "green", "yellow", "orange", "purple", "pink", "black", "white", "brown", "gray", "grey", "silver", "gold", "turquoise", "magenta", "cyan"}
	vehicles   = []string{"car", "truck", "bus", "motorcycle", "bicycle", "train", "plane", "helicopter", "boat", "ship", "submarine", "rocket", "tank", "ambulance", "fire truck", "police car"}
	fruits     = []string{"apple", "banana", "orange", "grape", "strawberry", "blueberry", "raspberry", "blackberry", "cherry", "peach", "pear", "pineapple", "watermelon", "lemon", "lime", "kiwi", "mango", "avocado"}
	vegetables = []string{"carrot", "broccoli", "spinach", "lettuce", "tomato", "potato", "onion", "garlic", "pepper", "cucumber", "celery", "cabbage", "cauliflower", "corn", "peas", "beans", "radish", "beet"}
)

// categories maps a query (singular or plural) to its member words.
var categories = map[string][]string{
	"country": countries, "countries": countries,
	"bird": birds, "birds": birds,
	"space":  space,
	"insect": insects, "insects": insects,
	"animal": animals, "animals": animals,
	"food":  food,
	"sport": sports, "sports": sports,
	"color": colors, "colors": colors,
	"vehicle": vehicles, "vehicles": vehicles,
	"fruit": fruits, "fruits": fruits,
	"vegetable": vegetables, "vegetables": vegetables,
}

// Categories lists the category names Similar understands.
func Categories() []string {
	out := make([]string, 0, len(categories))
	for k := range categories {
		out = append(out, k)
	}
	sortFold(out)
	return out
}

// Similar returns the words of list related to query.
func Similar(query string, list []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if members, ok := categories[q]; ok {
		set := make(map[string]struct{}, len(members))
		for _, m := range members {
			set[m] = struct{}{}
		}
		return filter(list, func(w string) bool {
			lw := strings.ToLower(w)
			if _, ok := set[lw]; ok {
				return true
			}
			for _, part := range reWordParts.Split(lw, -1) {
				if _, ok := set[part]; ok {
					return true
				}
			}
			return false
		})
	}

	out := filter(list, func(w string) bool {
		lw := strings.ToLower(w)
		return strings.Contains(lw, q) || strings.Contains(q, lw)
	})
	if len(out) > 0 {
		return out
	}

	matches := fuzzy.Find(q, list)
	for i, m := range matches {
		if i == maxFuzzyResults {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
