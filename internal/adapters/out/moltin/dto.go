package moltin

type productDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         []priceDTO `json:"price"`
	Relationships struct {
		MainImage *struct {
			Data *struct {
				ID string `json:"id"`
			} `json:"data"`
		} `json:"main_image"`
	} `json:"relationships"`
}

type priceDTO struct {
	Amount   *int64 `json:"amount"`
	Currency string `json:"currency"`
}

type fileDTO struct {
	Link struct {
		Href string `json:"href"`
	} `json:"link"`
}

type cartItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice struct {
		Amount *int64 `json:"amount"`
	} `json:"unit_price"`
}

type cartMetaDTO struct {
	DisplayPrice struct {
		WithTax struct {
			Amount *int64 `json:"amount"`
		} `json:"with_tax"`
	} `json:"display_price"`
}

type cartItemRequest struct {
	Data struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Quantity int    `json:"quantity"`
	} `json:"data"`
}

type pointEntryDTO struct {
	ID                string   `json:"id"`
	Address           string   `json:"address"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	CourierTelegramID string   `json:"courier_telegram_id"`
}

type customerEntryDTO struct {
	ID            string   `json:"id,omitempty"`
	Type          string   `json:"type,omitempty"`
	ChatID        string   `json:"id_field"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Address       string   `json:"address"`
	NearestShopID string   `json:"nearest_shop_id"`
}
