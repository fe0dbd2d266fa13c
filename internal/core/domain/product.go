package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type Product struct {
	ID        int64
	Article   string
	Name      string
	Price     Amount
	Quantity  int
	CreatedAt time.Time
}

func NewProduct(article string, name string, price Amount, quantity int) *Product {
	return &Product{
		Article:   strings.TrimSpace(article),
		Name:      strings.TrimSpace(name),
		Price:     price,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
}

// Field names as they appear in the API payloads and on the form.
const (
	FieldArticle  = "article"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Rule messages. This is the single definition used on both sides of the
// HTTP boundary; the service and the client form never restate them.
const (
	MsgArticleEmpty      = "Артикул не может быть пустым"
	MsgNameEmpty         = "Название не может быть пустым"
	MsgPriceNotNumber    = "Цена должна быть числом"
	MsgPriceNotPositive  = "Цена должна быть больше 0"
	MsgPriceTooPrecise   = "Цена не может иметь больше двух знаков после запятой"
	MsgQuantityNotNumber = "Количество должно быть числом"
	MsgQuantityNotInt    = "Количество должно быть целым числом"
	MsgQuantityNegative  = "Количество не может быть отрицательным"
)

func ValidateArticle(article string) *FieldError {
	if strings.TrimSpace(article) == "" {
		return &FieldError{Field: FieldArticle, Message: MsgArticleEmpty}
	}
	return nil
}

func ValidateName(name string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: FieldName, Message: MsgNameEmpty}
	}
	return nil
}

func ValidatePrice(price float64) *FieldError {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return &FieldError{Field: FieldPrice, Message: MsgPriceNotNumber}
	}
	if price <= 0 {
		return &FieldError{Field: FieldPrice, Message: MsgPriceNotPositive}
	}
	if kopecks := price * 100; math.Abs(kopecks-math.Round(kopecks)) > 1e-6 {
		return &FieldError{Field: FieldPrice, Message: MsgPriceTooPrecise}
	}
	return nil
}

func ValidateQuantity(quantity float64) *FieldError {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return &FieldError{Field: FieldQuantity, Message: MsgQuantityNotNumber}
	}
	if quantity != math.Trunc(quantity) {
		return &FieldError{Field: FieldQuantity, Message: MsgQuantityNotInt}
	}
	if quantity < 0 {
		return &FieldError{Field: FieldQuantity, Message: MsgQuantityNegative}
	}
	return nil
}

// ProductInput is a partially supplied set of product fields. Nil means
// the caller did not send the field at all.
type ProductInput struct {
	Article  *string
	Name     *string
	Price    *float64
	Quantity *float64
}

// ValidateCreate collects every violated rule; it never stops at the
// first bad field. Article, name and price are required, an omitted
// quantity defaults to zero.
func ValidateCreate(in ProductInput) []FieldError {
	var violations []FieldError

	if in.Article == nil {
		violations = append(violations, FieldError{Field: FieldArticle, Message: MsgArticleEmpty})
	} else if fe := ValidateArticle(*in.Article); fe != nil {
		violations = append(violations, *fe)
	}

	if in.Name == nil {
		violations = append(violations, FieldError{Field: FieldName, Message: MsgNameEmpty})
	} else if fe := ValidateName(*in.Name); fe != nil {
		violations = append(violations, *fe)
	}

	if in.Price == nil {
		violations = append(violations, FieldError{Field: FieldPrice, Message: MsgPriceNotNumber})
	} else if fe := ValidatePrice(*in.Price); fe != nil {
		violations = append(violations, *fe)
	}

	if in.Quantity != nil {
		if fe := ValidateQuantity(*in.Quantity); fe != nil {
			violations = append(violations, *fe)
		}
	}

	return violations
}

// ValidateUpdate checks only the supplied fields.
func ValidateUpdate(in ProductInput) []FieldError {
	var violations []FieldError

	if in.Article != nil {
		if fe := ValidateArticle(*in.Article); fe != nil {
			violations = append(violations, *fe)
		}
	}
	if in.Name != nil {
		if fe := ValidateName(*in.Name); fe != nil {
			violations = append(violations, *fe)
		}
	}
	if in.Price != nil {
		if fe := ValidatePrice(*in.Price); fe != nil {
			violations = append(violations, *fe)
		}
	}
	if in.Quantity != nil {
		if fe := ValidateQuantity(*in.Quantity); fe != nil {
			violations = append(violations, *fe)
		}
	}

	return violations
}

// ParsePrice coerces raw form input the way the create/update payloads
// coerce JSON numbers, with the same messages for unparsable values.
func ParsePrice(raw string) (Amount, *FieldError) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &FieldError{Field: FieldPrice, Message: MsgPriceNotNumber}
	}
	if fe := ValidatePrice(value); fe != nil {
		return 0, fe
	}
	return AmountFromFloat(value), nil
}

// ParseQuantity coerces raw form input into a whole item count.
func ParseQuantity(raw string) (int, *FieldError) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &FieldError{Field: FieldQuantity, Message: MsgQuantityNotNumber}
	}
	if fe := ValidateQuantity(value); fe != nil {
		return 0, fe
	}
	return int(value), nil
}
