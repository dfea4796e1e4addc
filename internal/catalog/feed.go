package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"mansion-server/pkg/logger"
)

// LoadFeedFile открывает CSV-фид и разбирает его в список предложений.
func LoadFeedFile(path string) ([]Deal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFeed(f)
}

// LoadFeed разбирает CSV с заголовком. Имена колонок нормализуются
// (trim, нижний регистр, пробелы -> подчеркивания), строки без id или
// title пропускаются. Ошибки отдельных строк не фатальны.
func LoadFeed(r io.Reader) ([]Deal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // фиды бывают рваные, не падаем на ширине строки

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read feed header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[normalizeHeader(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var deals []Deal
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Log.WithError(err).Warn("skipping malformed feed row")
			continue
		}

		d := Deal{
			ID:                    field(row, "id"),
			Title:                 field(row, "title"),
			ShortTitle:            field(row, "short_title"),
			Description:           field(row, "description"),
			Brand:                 field(row, "brand"),
			Price:                 field(row, "price"),
			SalePrice:             field(row, "sale_price"),
			PriceNowClean:         field(row, "price_now_clean"),
			PriceOld:              field(row, "price_old"),
			ImageLink:             field(row, "image_link"),
			Link:                  field(row, "link"),
			GoogleProductCategory: field(row, "google_product_category"),
			ShortSpecs:            field(row, "shortspecs"),
			Availability:          field(row, "availability"),
			EndDatetime:           field(row, "enddatetime"),
		}

		if d.ID == "" || d.Title == "" {
			continue
		}
		if d.ShortTitle == "" {
			d.ShortTitle = d.Title
		}
		if d.PriceNowClean == "" {
			d.PriceNowClean = extractPrice(d.SalePrice)
		}
		if d.PriceOld == "" {
			d.PriceOld = extractPrice(d.Price)
		}
		if d.Availability == "" {
			d.Availability = "in stock"
		}

		deals = append(deals, d)
	}

	return deals, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_")
}

var priceRe = regexp.MustCompile(`[\d.,]+`)

// extractPrice выдергивает число из строки цены. Фид пишет цены с
// точкой, наружу отдаем с запятой ("EUR 79.95" -> "79,95").
func extractPrice(priceStr string) string {
	m := priceRe.FindString(priceStr)
	if m == "" {
		return "0"
	}
	return strings.ReplaceAll(m, ".", ",")
}
