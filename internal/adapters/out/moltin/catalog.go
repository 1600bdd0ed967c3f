package moltin

import (
	"context"
	"net/http"
	"net/url"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/pkg/errs"
)

// ListProducts returns the catalog in backend order. Images are not
// resolved; the menu shows names only.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var dtos []productDTO
	if err := c.call(ctx, "list products", http.MethodGet, "/v2/products", nil, &dtos, nil); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toProduct(dto, "")
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct returns one product with the link of its main image.
func (c *Client) GetProduct(ctx context.Context, productID string) (catalog.Product, error) {
	var dto productDTO
	path := "/v2/products/" + url.PathEscape(productID)
	if err := c.call(ctx, "get product", http.MethodGet, path, nil, &dto, nil); err != nil {
		return catalog.Product{}, err
	}

	imageURL := ""
	if img := dto.Relationships.MainImage; img != nil && img.Data != nil && img.Data.ID != "" {
		var file fileDTO
		filePath := "/v2/files/" + url.PathEscape(img.Data.ID)
		if err := c.call(ctx, "get file", http.MethodGet, filePath, nil, &file, nil); err != nil {
			return catalog.Product{}, err
		}
		imageURL = file.Link.Href
	}

	return toProduct(dto, imageURL)
}

func toProduct(dto productDTO, imageURL string) (catalog.Product, error) {
	if len(dto.Price) == 0 || dto.Price[0].Amount == nil {
		return catalog.Product{}, errs.NewDataError(service, "product price")
	}

	p, err := catalog.NewProduct(dto.ID, dto.Name, dto.Description, *dto.Price[0].Amount, imageURL)
	if err != nil {
		return catalog.Product{}, errs.NewDataErrorWithCause(service, "product", err)
	}
	return p, nil
}
