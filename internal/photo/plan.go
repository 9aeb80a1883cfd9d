package photo

import "fmt"

// Batch is a group of same-sized photos sharing a category prefix.
type Batch struct {
	Category string
	Count    int
	Width    int
	Height   int
}

// Item is one planned photo.
type Item struct {
	Category string
	Index    int
	Width    int
	Height   int
}

// Plan is an ordered list of batches.
type Plan []Batch

// DefaultPlan is the set of photos the editor expects.
var DefaultPlan = Plan{
	{Category: "opt", Count: 12, Width: 512, Height: 512},
	{Category: "stem", Count: 6, Width: 1280, Height: 720},
	{Category: "tall", Count: 4, Width: 720, Height: 1280},
}

// Items expands the plan into individual photos, indexes starting at 1.
func (p Plan) Items() []Item {
	var items []Item

	for _, b := range p {
		for i := 1; i <= b.Count; i++ {
			items = append(items, Item{Category: b.Category, Index: i, Width: b.Width, Height: b.Height})
		}
	}

	return items
}

// FileName returns the photo's file name, e.g. "opt-01.jpg".
func (it Item) FileName() string {
	return FileName(it.Category, it.Index)
}

// FileName builds "<category>-<index>.jpg" with a zero-padded index.
func FileName(category string, index int) string {
	return fmt.Sprintf("%s-%02d.jpg", category, index)
}
