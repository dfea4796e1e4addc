package mansion

import "fmt"

// ProductItem — вход размещения: товар, уже отнесенный к комнате
// (классификацию делает internal/catalog).
type ProductItem struct {
	DealID string
	Room   RoomID
}

// PlacedProduct — статичная выкладка товара на сетке.
// Ядро ее не мутирует, рендерер только читает.
type PlacedProduct struct {
	DealID string `json:"dealId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Room   RoomID `json:"room"`
}

// PlaceProducts раскладывает товары по фиксированным слотам их комнат
// в порядке поступления. Когда слоты комнаты кончаются, лишние товары
// этой комнаты пропускаются. Одна позиция никогда не занимается дважды.
func PlaceProducts(items []ProductItem) []PlacedProduct {
	placed := make([]PlacedProduct, 0, len(items))
	used := make(map[string]bool)
	nextSlot := make(map[RoomID]int)

	for _, item := range items {
		slots := productSlots[item.Room]
		idx := nextSlot[item.Room]
		if idx >= len(slots) {
			continue
		}

		pos := slots[idx]
		key := fmt.Sprintf("%d,%d", pos.X, pos.Y)
		if used[key] {
			continue
		}
		used[key] = true
		nextSlot[item.Room]++

		placed = append(placed, PlacedProduct{
			DealID: item.DealID,
			X:      pos.X,
			Y:      pos.Y,
			Room:   item.Room,
		})
	}

	return placed
}
