package osrsapi

import (
	"context"
	"net/url"
	"strconv"
)

// Item — запись каталога из mapping-эндпоинта. Остальные поля записи
// не читаются: их типы могут поменяться, а каталог должен загрузиться.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Price — последняя котировка в gp. Отсутствующие поля остаются нулями.
type Price struct {
	High int64 `json:"high"`
	Low  int64 `json:"low"`
}

type pricesResponse struct {
	Data map[string]Price `json:"data"`
}

type detailResponse struct {
	Item struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Icon      string `json:"icon"`
		IconLarge string `json:"icon_large"`
	} `json:"item"`
}

// FetchMapping получает полный каталог предметов. Если в ответе не массив —
// возвращается ошибка с ErrMalformed.
func (c *Client) FetchMapping(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.getJSON(ctx, EndpointMapping, c.mappingURL, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchPrices возвращает всю ленту цен: id предмета (строкой) -> котировка.
func (c *Client) FetchPrices(ctx context.Context) (map[string]Price, error) {
	var pr pricesResponse
	if err := c.getJSON(ctx, EndpointPrices, c.pricesURL, &pr); err != nil {
		return nil, err
	}
	if pr.Data == nil {
		pr.Data = map[string]Price{}
	}
	return pr.Data, nil
}

// LatestPrice достаёт котировку одного предмета из свежей ленты.
// Предмета нет в ленте — нулевая котировка без ошибки.
func (c *Client) LatestPrice(ctx context.Context, itemID int) (Price, error) {
	data, err := c.FetchPrices(ctx)
	if err != nil {
		return Price{}, err
	}
	return data[strconv.Itoa(itemID)], nil
}

// ItemIcon возвращает ссылку на большую иконку предмета (может быть пустой).
func (c *Client) ItemIcon(ctx context.Context, itemID int) (string, error) {
	u, err := url.Parse(c.detailURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("item", strconv.Itoa(itemID))
	u.RawQuery = q.Encode()

	var dr detailResponse
	if err := c.getJSON(ctx, EndpointDetail, u.String(), &dr); err != nil {
		return "", err
	}
	return dr.Item.IconLarge, nil
}
