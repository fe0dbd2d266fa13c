package client

import "context"

// ProductBrowser keeps the listing state: current page, page size and
// the last loaded rows. Changing the page reloads automatically.
type ProductBrowser struct {
	client   *Client
	page     int
	limit    int
	products []Product
	total    int64
}

func NewProductBrowser(client *Client, limit int) *ProductBrowser {
	if limit < 1 {
		limit = 50
	}
	return &ProductBrowser{client: client, page: 1, limit: limit}
}

func (b *ProductBrowser) Load(ctx context.Context) error {
	list, err := b.client.ListProducts(ctx, b.page, b.limit)
	if err != nil {
		return err
	}
	b.products = list.Data
	b.total = list.Total
	return nil
}

// SetPage moves to the given page (clamped to 1) and reloads.
func (b *ProductBrowser) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	b.page = page
	return b.Load(ctx)
}

func (b *ProductBrowser) Page() int           { return b.page }
func (b *ProductBrowser) Limit() int          { return b.limit }
func (b *ProductBrowser) Products() []Product { return b.products }
func (b *ProductBrowser) Total() int64        { return b.total }

// TotalPages derives the page count from the server-reported total.
func (b *ProductBrowser) TotalPages() int {
	if b.total == 0 {
		return 0
	}
	return int((b.total + int64(b.limit) - 1) / int64(b.limit))
}
