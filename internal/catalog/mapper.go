package catalog

import (
	"regexp"
	"strings"

	"mansion-server/pkg/mansion"
)

// categoryPattern связывает регулярку по тексту предложения с комнатой.
type categoryPattern struct {
	re   *regexp.Regexp
	room mansion.RoomID
}

// categoryPatterns — эвристика "категория -> комната". Порядок значим:
// выигрывает первое совпадение. Паттерны смешивают голландский и
// английский, потому что таким приходит фид.
var categoryPatterns = []categoryPattern{
	// Woonkamer (гостиная)
	{regexp.MustCompile(`(?i)televisies|tv|television`), mansion.RoomWoonkamer},
	{regexp.MustCompile(`(?i)audio|speaker|koptelefoon|headphone|soundbar`), mansion.RoomWoonkamer},
	{regexp.MustCompile(`(?i)meubels|furniture|bank|sofa|stoel`), mansion.RoomWoonkamer},
	{regexp.MustCompile(`(?i)gaming|console|playstation|xbox`), mansion.RoomWoonkamer},

	// Keuken (кухня)
	{regexp.MustCompile(`(?i)keuken|kitchen|koken|cooking`), mansion.RoomKeuken},
	{regexp.MustCompile(`(?i)oven|magnetron|microwave|blender|mixer`), mansion.RoomKeuken},
	{regexp.MustCompile(`(?i)koffie|coffee|espresso`), mansion.RoomKeuken},
	{regexp.MustCompile(`(?i)koelkast|refrigerator|vriezer|freezer`), mansion.RoomKeuken},
	{regexp.MustCompile(`(?i)pannen|pots|cookware`), mansion.RoomKeuken},
	{regexp.MustCompile(`(?i)pizza`), mansion.RoomKeuken},

	// Slaapkamer (спальня)
	{regexp.MustCompile(`(?i)kleding|clothing|fashion|mode`), mansion.RoomSlaapkamer},
	{regexp.MustCompile(`(?i)bed|matras|mattress|bedding|dekbed`), mansion.RoomSlaapkamer},
	{regexp.MustCompile(`(?i)ondergoed|underwear|lingerie`), mansion.RoomSlaapkamer},
	{regexp.MustCompile(`(?i)badjas|robe|pyjama`), mansion.RoomSlaapkamer},
	{regexp.MustCompile(`(?i)horloge|watch|sieraden|jewelry`), mansion.RoomSlaapkamer},

	// Badkamer (ванная)
	{regexp.MustCompile(`(?i)badkamer|bathroom`), mansion.RoomBadkamer},
	{regexp.MustCompile(`(?i)wellness|spa|massage`), mansion.RoomBadkamer},
	{regexp.MustCompile(`(?i)personal care|verzorging|beauty`), mansion.RoomBadkamer},
	{regexp.MustCompile(`(?i)scheerapparaat|shaver|razor`), mansion.RoomBadkamer},
	{regexp.MustCompile(`(?i)tandenborstel|toothbrush`), mansion.RoomBadkamer},
	{regexp.MustCompile(`(?i)haardroger|hairdryer|föhn`), mansion.RoomBadkamer},

	// Home Office
	{regexp.MustCompile(`(?i)computer|laptop|pc|monitor`), mansion.RoomHomeOffice},
	{regexp.MustCompile(`(?i)printer|scanner`), mansion.RoomHomeOffice},
	{regexp.MustCompile(`(?i)tablet|ipad`), mansion.RoomHomeOffice},
	{regexp.MustCompile(`(?i)telefoon|phone|smartphone`), mansion.RoomHomeOffice},
	{regexp.MustCompile(`(?i)bureau|desk|office`), mansion.RoomHomeOffice},
	{regexp.MustCompile(`(?i)keyboard|toetsenbord|muis|mouse`), mansion.RoomHomeOffice},

	// Garage (гараж)
	{regexp.MustCompile(`(?i)gereedschap|tools`), mansion.RoomGarage},
	{regexp.MustCompile(`(?i)auto|car|automotive`), mansion.RoomGarage},
	{regexp.MustCompile(`(?i)fiets|bike|bicycle`), mansion.RoomGarage},
	{regexp.MustCompile(`(?i)boor|drill|zaag|saw`), mansion.RoomGarage},
	{regexp.MustCompile(`(?i)compressor|werkbank`), mansion.RoomGarage},

	// Tuin (сад)
	{regexp.MustCompile(`(?i)tuin|garden`), mansion.RoomTuin},
	{regexp.MustCompile(`(?i)bbq|barbecue|grill`), mansion.RoomTuin},
	{regexp.MustCompile(`(?i)outdoor|buiten`), mansion.RoomTuin},
	{regexp.MustCompile(`(?i)grasmaaier|lawn`), mansion.RoomTuin},
	{regexp.MustCompile(`(?i)tuinmeubel|patio`), mansion.RoomTuin},
	{regexp.MustCompile(`(?i)zwembad|pool`), mansion.RoomTuin},
}

// fallbackRooms — куда распределяются предложения без совпавшей
// категории: детерминированно по хешу id, чтобы комнаты не пустовали.
var fallbackRooms = []mansion.RoomID{
	mansion.RoomWoonkamer,
	mansion.RoomKeuken,
	mansion.RoomSlaapkamer,
	mansion.RoomHomeOffice,
}

// RoomFor относит предложение к комнате особняка.
func RoomFor(d Deal) mansion.RoomID {
	text := strings.ToLower(d.GoogleProductCategory + " " + d.Title + " " + d.Description)

	for _, p := range categoryPatterns {
		if p.re.MatchString(text) {
			return p.room
		}
	}

	var hash int
	for _, b := range []byte(d.ID) {
		hash += int(b)
	}
	return fallbackRooms[hash%len(fallbackRooms)]
}

// Items превращает фид во вход размещения: каждое предложение
// с уже назначенной комнатой.
func Items(deals []Deal) []mansion.ProductItem {
	items := make([]mansion.ProductItem, len(deals))
	for i, d := range deals {
		items[i] = mansion.ProductItem{DealID: d.ID, Room: RoomFor(d)}
	}
	return items
}

// GroupByRoom раскладывает предложения по комнатам (для витрин/отладки).
func GroupByRoom(deals []Deal) map[mansion.RoomID][]Deal {
	grouped := make(map[mansion.RoomID][]Deal, len(mansion.Rooms))
	for _, d := range deals {
		room := RoomFor(d)
		grouped[room] = append(grouped[room], d)
	}
	return grouped
}
