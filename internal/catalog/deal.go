// Пакет catalog загружает фид предложений и раскладывает его по
// комнатам особняка. Ядру синхронизации он не нужен — это поставщик
// статичных данных для выкладки товаров и рендера.
package catalog

// Deal — одна запись фида. Все поля — строки, как в исходном CSV.
type Deal struct {
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	ShortTitle            string `json:"short_title"`
	Description           string `json:"description"`
	Brand                 string `json:"brand"`
	Price                 string `json:"price"`
	SalePrice             string `json:"sale_price"`
	PriceNowClean         string `json:"price_now_clean"`
	PriceOld              string `json:"price_old"`
	ImageLink             string `json:"image_link"`
	Link                  string `json:"link"`
	GoogleProductCategory string `json:"google_product_category"`
	ShortSpecs            string `json:"shortspecs"`
	Availability          string `json:"availability"`
	EndDatetime           string `json:"enddatetime"`
}
